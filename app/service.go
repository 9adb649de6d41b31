package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apifleet "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/api/fleet"
	apirentals "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/api/rentals"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/app/plugins"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/config"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/fleet"
	coremetrics "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/metrics"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/rental"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/logger"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/metrics"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/telemetry"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/internal/eventbus"
)

// Service orchestrates the rental engine and its adapters.
type Service struct {
	Engine *rental.Engine

	store    audit.Store
	bus      eventbus.EventBus
	pub      telemetry.Publisher
	log      logger.Logger
	apiCfg   config.APIConfig
	promAddr string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	reg, err := fleet.FromConfig(cfg.Fleet)
	if err != nil {
		return nil, fmt.Errorf("fleet: %w", err)
	}
	store, err := plugins.NewAuditStore(cfg.Audit)
	if err != nil {
		return nil, fmt.Errorf("audit store: %w", err)
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New()
	engine, err := rental.NewEngine(reg, store, sink, nil, bus, logger.New("rental"))
	if err != nil {
		return nil, fmt.Errorf("rental engine: %w", err)
	}

	svc := &Service{
		Engine:   engine,
		store:    store,
		bus:      bus,
		log:      logg,
		apiCfg:   cfg.API,
		promAddr: cfg.Metrics.PrometheusAddr,
	}

	if cfg.Telemetry.Enabled {
		mode := cfg.Telemetry.Mode
		if mode == "" {
			mode = "paho"
		}
		f, ok := plugins.Publishers[mode]
		if !ok {
			return nil, fmt.Errorf("unknown telemetry mode %s", mode)
		}
		pub, err := f(cfg.Telemetry)
		if err != nil {
			return nil, fmt.Errorf("telemetry publisher: %w", err)
		}
		svc.pub = pub
	}
	return svc, nil
}

// Run starts the background surfaces and blocks until the context is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.pub != nil {
		telemetry.StartForwarder(ctx, s.bus, s.pub, logger.New("telemetry"))
	}
	if s.promAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.apiCfg.Enabled {
		go func() {
			if err := s.serveAPI(ctx); err != nil {
				s.log.Errorf("api server: %v", err)
			}
		}()
	}
	s.log.Infof("service running, fleet size %d", len(s.Engine.Fleet()))
	<-ctx.Done()
	return nil
}

func (s *Service) serveAPI(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/api/fleet/status", apifleet.NewStatusHandler(s.Engine))
	mux.Handle("/api/rentals/logs", apirentals.NewLogHandler(s.store, s.apiCfg.Token))
	mux.Handle("/api/rentals/report", apirentals.NewReportHandler(s.store, s.apiCfg.Token))
	srv := &http.Server{Addr: s.apiCfg.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("api server shutdown: %v", err)
		}
		cancel()
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.pub != nil {
		s.pub.Disconnect()
	}
	return s.Engine.Close()
}

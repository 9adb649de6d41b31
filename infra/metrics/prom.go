package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/metrics"
)

// PromSink records rental transactions in Prometheus metrics.
type PromSink struct {
	transactions *prometheus.CounterVec
	revenue      *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	fleetTotal   prometheus.Gauge
	fleetRented  prometheus.Gauge
	battery      *prometheus.GaugeVec
}

// NewPromSink registers rental metrics on the default Prometheus
// registerer. The Prometheus server is started separately.
func NewPromSink(cfg coremetrics.Config) (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	transactions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_transactions_total",
		Help: "Total number of rental transaction attempts",
	}, []string{"op", "outcome", "kind"})
	revenue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_revenue_total",
		Help: "Total amount billed by successful transactions",
	}, []string{"kind"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rental_transaction_duration_seconds",
		Help:    "Time spent executing one transaction",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	fleetTotal := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rental_fleet_vehicles_total",
		Help: "Number of vehicles in the fleet",
	})
	fleetRented := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rental_fleet_vehicles_rented",
		Help: "Number of vehicles currently rented",
	})
	battery := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rental_battery_charge_kwh",
		Help: "Current battery charge of electric vehicles",
	}, []string{"vehicle_id"})

	if err := reg.Register(transactions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			transactions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(revenue); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			revenue = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fleetTotal); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fleetTotal = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fleetRented); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fleetRented = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(battery); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			battery = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		transactions: transactions,
		revenue:      revenue,
		duration:     duration,
		fleetTotal:   fleetTotal,
		fleetRented:  fleetRented,
		battery:      battery,
	}, nil
}

// RecordTransaction increments the counters for one transaction attempt.
func (s *PromSink) RecordTransaction(ev coremetrics.TransactionEvent) error {
	s.transactions.WithLabelValues(ev.Op, ev.Outcome, string(ev.Kind)).Inc()
	s.duration.WithLabelValues(ev.Op).Observe(ev.Duration.Seconds())
	if ev.Outcome == "ok" && ev.Amount > 0 {
		s.revenue.WithLabelValues(string(ev.Kind)).Add(ev.Amount)
	}
	return nil
}

// RecordFleetState sets the occupancy gauges.
func (s *PromSink) RecordFleetState(ev coremetrics.FleetStateEvent) error {
	s.fleetTotal.Set(float64(ev.Total))
	s.fleetRented.Set(float64(ev.Rented))
	return nil
}

// RecordBatteryLevel sets the battery gauge for the vehicle.
func (s *PromSink) RecordBatteryLevel(ev coremetrics.BatteryLevelEvent) error {
	s.battery.WithLabelValues(strconv.Itoa(ev.VehicleID)).Set(ev.ChargeKWh)
	return nil
}

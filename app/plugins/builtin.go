package plugins

import (
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/config"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	infraaudit "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/telemetry"

	// Sink factories register themselves with the metrics registry.
	_ "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/metrics"
)

func init() {
	RegisterAuditStore("text", func(cfg config.AuditConfig) (audit.Store, error) {
		return infraaudit.NewTextStore(cfg.Path)
	})
	RegisterAuditStore("jsonl", func(cfg config.AuditConfig) (audit.Store, error) {
		return infraaudit.NewJSONLStore(cfg.Path)
	})
	RegisterAuditStore("rotating", func(cfg config.AuditConfig) (audit.Store, error) {
		return infraaudit.NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays)
	})
	RegisterAuditStore("sqlite", func(cfg config.AuditConfig) (audit.Store, error) {
		return infraaudit.NewSQLiteStore(cfg.Path)
	})

	RegisterPublisher("paho", func(cfg telemetry.Config) (telemetry.Publisher, error) {
		return telemetry.NewPahoPublisher(cfg)
	})
	RegisterPublisher("mock", func(_ telemetry.Config) (telemetry.Publisher, error) {
		return telemetry.NewMockPublisher(), nil
	})
}

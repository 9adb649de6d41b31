package plugins

import (
	"fmt"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/config"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/telemetry"
)

// AuditStoreFactory builds an audit store from the audit configuration
// section.
type AuditStoreFactory func(cfg config.AuditConfig) (audit.Store, error)

// PublisherFactory builds a telemetry publisher from the telemetry
// configuration section.
type PublisherFactory func(cfg telemetry.Config) (telemetry.Publisher, error)

var (
	AuditStores = map[string]AuditStoreFactory{}
	Publishers  = map[string]PublisherFactory{}
)

func RegisterAuditStore(name string, f AuditStoreFactory) { AuditStores[name] = f }
func RegisterPublisher(name string, f PublisherFactory)   { Publishers[name] = f }

// NewAuditStore builds the store selected by cfg.Backend.
func NewAuditStore(cfg config.AuditConfig) (audit.Store, error) {
	f, ok := AuditStores[cfg.Backend]
	if !ok {
		return nil, fmt.Errorf("unknown audit backend %s", cfg.Backend)
	}
	return f(cfg)
}

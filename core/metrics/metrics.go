package metrics

import (
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
)

// TransactionEvent represents one rental transaction attempt to be recorded.
type TransactionEvent struct {
	Op        string
	VehicleID int
	Kind      model.Kind
	Renter    string
	Outcome   string
	Amount    float64
	Duration  time.Duration
	Time      time.Time
}

// MetricsSink records transaction events for observability purposes.
type MetricsSink interface {
	RecordTransaction(ev TransactionEvent) error
}

// FleetStateEvent is a snapshot of the fleet occupancy.
type FleetStateEvent struct {
	Total     int
	Rented    int
	Component string
	Time      time.Time
}

// FleetStateRecorder records fleet occupancy snapshots.
type FleetStateRecorder interface {
	RecordFleetState(ev FleetStateEvent) error
}

// BatteryLevelEvent is a snapshot of an electric vehicle's battery.
type BatteryLevelEvent struct {
	VehicleID   int
	ChargeKWh   float64
	CapacityKWh float64
	Time        time.Time
}

// BatteryLevelRecorder records battery snapshots.
type BatteryLevelRecorder interface {
	RecordBatteryLevel(ev BatteryLevelEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordTransaction(TransactionEvent) error { return nil }

func (NopSink) RecordFleetState(FleetStateEvent) error     { return nil }
func (NopSink) RecordBatteryLevel(BatteryLevelEvent) error { return nil }

package model

import "fmt"

const (
	// lowChargeFraction is the state of charge below which renting incurs
	// the flat surcharge.
	lowChargeFraction = 0.2
	// minStartFraction is the state of charge required to start at all.
	minStartFraction = 0.1
	// lowChargeSurcharge is the flat fee added when renting with a low
	// battery.
	lowChargeSurcharge = 50.0
)

// ElectricCar is a battery-electric car. Its charge level drives both the
// rental surcharge and the start precondition.
type ElectricCar struct {
	base
	capacityKWh float64
	chargeKWh   float64
}

// NewElectricCar builds an electric car template. The initial charge is
// clamped into [0, capacityKWh].
func NewElectricCar(id int, name string, dailyRate, capacityKWh, chargeKWh float64) *ElectricCar {
	e := &ElectricCar{base: base{id: id, name: name, rate: dailyRate}, capacityKWh: capacityKWh}
	e.chargeKWh = clampCharge(chargeKWh, capacityKWh)
	return e
}

func (e *ElectricCar) Kind() Kind { return KindElectric }

// BatteryCapacityKWh returns the total battery capacity.
func (e *ElectricCar) BatteryCapacityKWh() float64 { return e.capacityKWh }

// CurrentChargeKWh returns the current charge level.
func (e *ElectricCar) CurrentChargeKWh() float64 { return e.chargeKWh }

// Cost adds a flat surcharge when the battery is below 20% of capacity at
// rental time.
func (e *ElectricCar) Cost(days int) float64 {
	cost := e.rate * float64(days)
	if e.chargeKWh < lowChargeFraction*e.capacityKWh {
		cost += lowChargeSurcharge
	}
	return cost
}

// Start fails with a *BatteryLowError when the charge is below 10% of
// capacity.
func (e *ElectricCar) Start() error {
	if min := minStartFraction * e.capacityKWh; e.chargeKWh < min {
		return &BatteryLowError{ID: e.id, ChargeKWh: e.chargeKWh, RequiredKWh: min}
	}
	return nil
}

// Charge adds kwh to the battery and returns the new charge level. The level
// is clamped into [0, capacity]; charging never fails.
func (e *ElectricCar) Charge(kwh float64) float64 {
	e.chargeKWh = clampCharge(e.chargeKWh+kwh, e.capacityKWh)
	return e.chargeKWh
}

func (e *ElectricCar) Describe() string {
	return e.header() + fmt.Sprintf(" Electric battery=%g/%g", e.chargeKWh, e.capacityKWh)
}

func (e *ElectricCar) Clone() Vehicle {
	cp := *e
	return &cp
}

func clampCharge(charge, capacity float64) float64 {
	if charge < 0 {
		return 0
	}
	if charge > capacity {
		return capacity
	}
	return charge
}

// BatteryLowError reports a start attempt with insufficient charge. It is the
// only failure a vehicle start precondition can produce.
type BatteryLowError struct {
	ID          int
	ChargeKWh   float64
	RequiredKWh float64
}

func (e *BatteryLowError) Error() string {
	return fmt.Sprintf("battery too low to start vehicle id=%d: %g kWh, need %g kWh", e.ID, e.ChargeKWh, e.RequiredKWh)
}

// FailureKind returns the stable label used in audit entries and metrics.
func (e *BatteryLowError) FailureKind() string { return "battery_low" }

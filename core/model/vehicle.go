package model

import "fmt"

// Kind identifies a vehicle variant. The set of variants is closed: the
// rental engine pattern-matches on the concrete types and no open extension
// point exists.
type Kind string

const (
	KindCar      Kind = "car"
	KindTruck    Kind = "truck"
	KindElectric Kind = "electric"
)

// Vehicle is the behaviour shared by every rentable vehicle. Implementations
// are limited to Car, Truck and ElectricCar; the interface is sealed so the
// engine can rely on exhaustive type switches.
type Vehicle interface {
	ID() int
	Name() string
	DailyRate() float64
	Kind() Kind

	// Rented reports whether the vehicle is currently out. The flag is
	// owned by the rental engine: it is true exactly when the ledger holds
	// a record for the vehicle.
	Rented() bool
	SetRented(bool)

	// Cost returns the rental price computed from the vehicle's own state.
	// days must be at least 1. Trucks expose a separate load-aware formula,
	// see Truck.CostWithLoad.
	Cost(days int) float64

	// Start checks the variant's start precondition. Only ElectricCar can
	// fail, with a *BatteryLowError.
	Start() error

	// Describe returns a one-line human-readable summary.
	Describe() string

	// Clone returns an independent copy. The registry stores clones so the
	// caller's template remains untouched.
	Clone() Vehicle

	sealed()
}

// base carries the state common to all variants.
type base struct {
	id     int
	name   string
	rate   float64
	rented bool
}

func (b *base) ID() int            { return b.id }
func (b *base) Name() string       { return b.name }
func (b *base) DailyRate() float64 { return b.rate }
func (b *base) Rented() bool       { return b.rented }
func (b *base) SetRented(r bool)   { b.rented = r }
func (b *base) Start() error       { return nil }
func (b *base) sealed()            {}

func (b *base) header() string {
	return fmt.Sprintf("[%d] %s (rate %g)", b.id, b.name, b.rate)
}

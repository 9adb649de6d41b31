package model

import "fmt"

// loadFeePerKgDay is the surcharge applied per kilogram of committed load per
// rented day.
const loadFeePerKgDay = 0.10

// Truck is a cargo truck with a maximum load capacity in kilograms.
type Truck struct {
	base
	maxLoadKg float64
}

// NewTruck builds a truck template.
func NewTruck(id int, name string, dailyRate, maxLoadKg float64) *Truck {
	return &Truck{base: base{id: id, name: name, rate: dailyRate}, maxLoadKg: maxLoadKg}
}

func (t *Truck) Kind() Kind { return KindTruck }

// MaxLoadKg returns the maximum load the truck may carry.
func (t *Truck) MaxLoadKg() float64 { return t.maxLoadKg }

// Cost is the load-less fallback formula. The engine always supplies the
// committed load for trucks, see CostWithLoad.
func (t *Truck) Cost(days int) float64 { return t.rate * float64(days) }

// CostWithLoad prices a rental carrying loadKg kilograms for the given number
// of days.
func (t *Truck) CostWithLoad(days int, loadKg float64) float64 {
	return t.rate*float64(days) + loadKg*loadFeePerKgDay*float64(days)
}

func (t *Truck) Describe() string {
	return t.header() + fmt.Sprintf(" Truck maxLoadKg=%g", t.maxLoadKg)
}

func (t *Truck) Clone() Vehicle {
	cp := *t
	return &cp
}

package model

import "fmt"

// Car is a passenger car. The passenger capacity is informational and plays
// no role in cost or precondition logic.
type Car struct {
	base
	passengers int
}

// NewCar builds a passenger car template.
func NewCar(id int, name string, dailyRate float64, passengers int) *Car {
	return &Car{base: base{id: id, name: name, rate: dailyRate}, passengers: passengers}
}

func (c *Car) Kind() Kind { return KindCar }

// PassengerCapacity returns the number of seats.
func (c *Car) PassengerCapacity() int { return c.passengers }

// Cost is the flat daily rate times the number of days.
func (c *Car) Cost(days int) float64 { return c.rate * float64(days) }

func (c *Car) Describe() string {
	return c.header() + fmt.Sprintf(" Car cap=%d", c.passengers)
}

func (c *Car) Clone() Vehicle {
	cp := *c
	return &cp
}

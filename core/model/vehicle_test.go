package model

import (
	"errors"
	"testing"
)

func TestCarCost(t *testing.T) {
	c := NewCar(1, "Toyota Avanza", 200, 7)
	if got := c.Cost(3); got != 600 {
		t.Fatalf("expected 600 got %v", got)
	}
}

func TestTruckCostWithLoad(t *testing.T) {
	tr := NewTruck(2, "Hino Dutro", 400, 1000)
	if got := tr.Cost(3); got != 1200 {
		t.Fatalf("load-less cost: expected 1200 got %v", got)
	}
	want := 400*2 + 500*0.10*2
	if got := tr.CostWithLoad(2, 500); got != want {
		t.Fatalf("load cost: expected %v got %v", want, got)
	}
}

func TestElectricCarSurcharge(t *testing.T) {
	low := NewElectricCar(3, "Tesla Model 3", 350, 75, 5)
	if got := low.Cost(2); got != 2*350+50 {
		t.Fatalf("low battery: expected surcharge, got %v", got)
	}
	ok := NewElectricCar(3, "Tesla Model 3", 350, 75, 35)
	if got := ok.Cost(2); got != 700 {
		t.Fatalf("charged battery: expected 700 got %v", got)
	}
	// 20% exactly is not "below 20%".
	edge := NewElectricCar(3, "Tesla Model 3", 350, 75, 15)
	if got := edge.Cost(1); got != 350 {
		t.Fatalf("boundary: expected 350 got %v", got)
	}
}

func TestElectricCarStartPrecondition(t *testing.T) {
	low := NewElectricCar(3, "Tesla Model 3", 350, 75, 5)
	err := low.Start()
	var blErr *BatteryLowError
	if !errors.As(err, &blErr) {
		t.Fatalf("expected BatteryLowError got %v", err)
	}
	if blErr.ID != 3 || blErr.ChargeKWh != 5 || blErr.RequiredKWh != 7.5 {
		t.Fatalf("wrong error context: %#v", blErr)
	}
	// 10% exactly may start.
	edge := NewElectricCar(3, "Tesla Model 3", 350, 75, 7.5)
	if err := edge.Start(); err != nil {
		t.Fatalf("boundary start: %v", err)
	}
}

func TestElectricCarChargeClamp(t *testing.T) {
	e := NewElectricCar(3, "Tesla Model 3", 350, 75, 70)
	if got := e.Charge(30); got != 75 {
		t.Fatalf("expected clamp to 75 got %v", got)
	}
	if got := e.Charge(10); got != 75 {
		t.Fatalf("clamp is not idempotent: %v", got)
	}
	if got := e.Charge(-100); got != 0 {
		t.Fatalf("expected floor at 0 got %v", got)
	}
}

func TestOtherVariantsAlwaysStart(t *testing.T) {
	vs := []Vehicle{
		NewCar(1, "Toyota Avanza", 200, 7),
		NewTruck(2, "Hino Dutro", 400, 1000),
	}
	for _, v := range vs {
		if err := v.Start(); err != nil {
			t.Fatalf("%s: unexpected start error %v", v.Kind(), err)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewElectricCar(3, "Tesla Model 3", 350, 75, 5)
	cp := orig.Clone().(*ElectricCar)
	cp.SetRented(true)
	cp.Charge(30)
	if orig.Rented() {
		t.Fatal("clone shares the rented flag")
	}
	if orig.CurrentChargeKWh() != 5 {
		t.Fatalf("clone shares the battery: %v", orig.CurrentChargeKWh())
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		v    Vehicle
		want string
	}{
		{NewCar(1, "Toyota Avanza", 200, 7), "[1] Toyota Avanza (rate 200) Car cap=7"},
		{NewTruck(2, "Hino Dutro", 400, 1000), "[2] Hino Dutro (rate 400) Truck maxLoadKg=1000"},
		{NewElectricCar(3, "Tesla Model 3", 350, 75, 5), "[3] Tesla Model 3 (rate 350) Electric battery=5/75"},
	}
	for _, c := range cases {
		if got := c.v.Describe(); got != c.want {
			t.Errorf("expected %q got %q", c.want, got)
		}
	}
}

package fleet

import (
	"fmt"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/factory"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
)

type vehicleConf struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	DailyRate float64 `json:"daily_rate"`

	// car
	Passengers int `json:"passengers"`

	// truck
	MaxLoadKg float64 `json:"max_load_kg"`

	// electric
	BatteryKWh float64 `json:"battery_kwh"`
	ChargeKWh  float64 `json:"charge_kwh"`
}

func (c vehicleConf) validate() error {
	if c.ID < 1 {
		return fmt.Errorf("vehicle id must be >= 1, got %d", c.ID)
	}
	if c.Name == "" {
		return fmt.Errorf("vehicle %d: name is required", c.ID)
	}
	if c.DailyRate < 0 {
		return fmt.Errorf("vehicle %d: daily_rate must not be negative", c.ID)
	}
	return nil
}

// VehicleFactories returns the registry of vehicle constructors keyed by
// kind. New variants register here.
func VehicleFactories() *factory.Registry[model.Vehicle] {
	reg := factory.NewRegistry[model.Vehicle]()

	// Kind names are distinct constants, so registration cannot fail.
	_ = reg.Register(string(model.KindCar), func(conf map[string]any) (model.Vehicle, error) {
		var c vehicleConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		if c.Passengers < 1 {
			return nil, fmt.Errorf("vehicle %d: passengers must be >= 1, got %d", c.ID, c.Passengers)
		}
		return model.NewCar(c.ID, c.Name, c.DailyRate, c.Passengers), nil
	})

	_ = reg.Register(string(model.KindTruck), func(conf map[string]any) (model.Vehicle, error) {
		var c vehicleConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		if c.MaxLoadKg < 0 {
			return nil, fmt.Errorf("vehicle %d: max_load_kg must not be negative", c.ID)
		}
		return model.NewTruck(c.ID, c.Name, c.DailyRate, c.MaxLoadKg), nil
	})

	_ = reg.Register(string(model.KindElectric), func(conf map[string]any) (model.Vehicle, error) {
		var c vehicleConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		if c.BatteryKWh <= 0 {
			return nil, fmt.Errorf("vehicle %d: battery_kwh must be positive", c.ID)
		}
		return model.NewElectricCar(c.ID, c.Name, c.DailyRate, c.BatteryKWh, c.ChargeKWh), nil
	})

	return reg
}

// FromConfig builds a populated registry from declarative vehicle configs.
// Duplicate ids are rejected here so that later lookups stay unambiguous.
func FromConfig(configs []factory.ModuleConfig) (*Registry, error) {
	factories := VehicleFactories()
	reg := NewRegistry()
	seen := make(map[int]struct{}, len(configs))

	for i, mc := range configs {
		v, err := factories.Create(mc)
		if err != nil {
			return nil, fmt.Errorf("vehicle %d: %w", i, err)
		}
		if _, dup := seen[v.ID()]; dup {
			return nil, fmt.Errorf("duplicate vehicle id %d", v.ID())
		}
		seen[v.ID()] = struct{}{}
		reg.Add(v)
	}
	return reg, nil
}

package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/factory"
)

type VehicleDef struct {
	Kind       string  `yaml:"kind"`
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	DailyRate  float64 `yaml:"daily_rate"`
	Passengers int     `yaml:"passengers,omitempty"`
	MaxLoadKg  float64 `yaml:"max_load_kg,omitempty"`
	BatteryKWh float64 `yaml:"battery_kwh,omitempty"`
	ChargeKWh  float64 `yaml:"charge_kwh,omitempty"`
}

// ToConfig converts the definition into the declarative form the fleet
// builders consume.
func (v VehicleDef) ToConfig() factory.ModuleConfig {
	conf := map[string]any{
		"id":         v.ID,
		"name":       v.Name,
		"daily_rate": v.DailyRate,
	}
	switch v.Kind {
	case "car":
		conf["passengers"] = v.Passengers
	case "truck":
		conf["max_load_kg"] = v.MaxLoadKg
	case "electric":
		conf["battery_kwh"] = v.BatteryKWh
		conf["charge_kwh"] = v.ChargeKWh
	}
	return factory.ModuleConfig{Type: v.Kind, Conf: conf}
}

// StepDef is one action in a scenario. Op selects the action: "rent",
// "return", "charge" or "advance". WantErr names the failure kind the step
// must produce; an empty WantErr means the step must succeed. WantAmount,
// when non-zero, pins the quote cost, receipt total or battery level.
type StepDef struct {
	Op         string  `yaml:"op"`
	Renter     string  `yaml:"renter,omitempty"`
	Vehicle    int     `yaml:"vehicle,omitempty"`
	Days       int     `yaml:"days,omitempty"`
	LoadKg     float64 `yaml:"load_kg,omitempty"`
	Damaged    bool    `yaml:"damaged,omitempty"`
	KWh        float64 `yaml:"kwh,omitempty"`
	Hours      int     `yaml:"hours,omitempty"`
	WantErr    string  `yaml:"want_err,omitempty"`
	WantAmount float64 `yaml:"want_amount,omitempty"`
}

type Expected struct {
	OK      int     `yaml:"ok"`
	Failed  int     `yaml:"failed"`
	Revenue float64 `yaml:"revenue"`
	Rented  []int   `yaml:"rented"`
}

type Scenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Vehicles    []VehicleDef `yaml:"vehicles"`
	Steps       []StepDef    `yaml:"steps"`
	Expected    Expected     `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

package fleet

import (
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
)

// Registry is the ordered collection of vehicles owned by the rental
// business. It is the sole owner of its instances: Add stores clones of the
// caller's templates and Find hands out the owned instance for the duration
// of one transaction.
//
// The registry itself is not safe for concurrent use; the rental engine
// serializes access.
type Registry struct {
	vehicles []model.Vehicle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores an independent clone of the template, preserving insertion
// order. Identifier uniqueness is the caller's responsibility; the registry
// does not deduplicate.
func (r *Registry) Add(template model.Vehicle) {
	r.vehicles = append(r.vehicles, template.Clone())
}

// Find returns the owned vehicle with the given id.
func (r *Registry) Find(id int) (model.Vehicle, bool) {
	for _, v := range r.vehicles {
		if v.ID() == id {
			return v, true
		}
	}
	return nil, false
}

// Size returns the number of registered vehicles.
func (r *Registry) Size() int { return len(r.vehicles) }

// Summary describes one vehicle together with its rental status.
type Summary struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Kind        model.Kind `json:"kind"`
	DailyRate   float64    `json:"daily_rate"`
	Rented      bool       `json:"rented"`
	Description string     `json:"description"`
}

// List returns one summary per vehicle in insertion order.
func (r *Registry) List() []Summary {
	out := make([]Summary, len(r.vehicles))
	for i, v := range r.vehicles {
		out[i] = Summary{
			ID:          v.ID(),
			Name:        v.Name(),
			Kind:        v.Kind(),
			DailyRate:   v.DailyRate(),
			Rented:      v.Rented(),
			Description: v.Describe(),
		}
	}
	return out
}

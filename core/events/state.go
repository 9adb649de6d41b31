package events

import "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"

// StateChangeEvent is published when a vehicle moves between the available
// and rented states.
type StateChangeEvent struct {
	VehicleID int
	Kind      model.Kind
	Rented    bool
	Renter    string
}

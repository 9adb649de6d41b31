package events

import (
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
)

// TransactionEvent is published after every transaction attempt, success or
// failure.
type TransactionEvent struct {
	Op        audit.Op
	VehicleID int
	Kind      model.Kind
	Renter    string
	Outcome   string
	Amount    float64
	Err       error
	Time      time.Time
}

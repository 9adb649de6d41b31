package audit

import (
	"context"
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
)

// Op identifies the transaction that produced an entry.
type Op string

const (
	OpRent   Op = "rent"
	OpReturn Op = "return"
	OpCharge Op = "charge"
)

// OutcomeOK marks a successful transaction. Failed transactions carry the
// failure kind of the error that rejected them ("overload", "battery_low",
// "not_found", ...).
const OutcomeOK = "ok"

// Entry captures one transaction attempt and its result. Every attempt
// produces exactly one entry, success or failure.
type Entry struct {
	Time      time.Time  `json:"time"`
	Op        Op         `json:"op"`
	VehicleID int        `json:"vehicle_id"`
	Kind      model.Kind `json:"kind,omitempty"`
	Renter    string     `json:"renter,omitempty"`
	Outcome   string     `json:"outcome"`
	Amount    float64    `json:"amount,omitempty"`
	LateDays  int        `json:"late_days,omitempty"`
	Penalty   float64    `json:"penalty,omitempty"`
	Message   string     `json:"message"`
}

// Query defines filters for retrieving entries. Zero values match
// everything.
type Query struct {
	Start     time.Time
	End       time.Time
	Op        Op
	VehicleID int
	Outcome   string
}

// Matches reports whether the entry passes every filter set on the query.
func (q Query) Matches(e Entry) bool {
	if !q.Start.IsZero() && e.Time.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && e.Time.After(q.End) {
		return false
	}
	if q.Op != "" && e.Op != q.Op {
		return false
	}
	if q.VehicleID != 0 && e.VehicleID != q.VehicleID {
		return false
	}
	if q.Outcome != "" && e.Outcome != q.Outcome {
		return false
	}
	return true
}

// Store persists entries and supports querying. Every backend can read its
// own output back, though the text format only round-trips time and message.
type Store interface {
	Append(ctx context.Context, e Entry) error
	Query(ctx context.Context, q Query) ([]Entry, error)
	Close() error
}

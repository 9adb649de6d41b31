package rental

import (
	"sort"
	"time"
)

// Record is one active rental. The ledger keys records by vehicle id, so a
// vehicle carries at most one at a time.
type Record struct {
	RentalID  string    `json:"rental_id"`
	VehicleID int       `json:"vehicle_id"`
	Renter    string    `json:"renter"`
	RentedAt  time.Time `json:"rented_at"`
	Due       time.Time `json:"due"`
	Days      int       `json:"days"`
	LoadKg    float64   `json:"load_kg,omitempty"`
}

// Ledger tracks active rentals in memory. Not safe for concurrent use; the
// engine serializes access.
type Ledger struct {
	records map[int]Record
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make(map[int]Record)}
}

// Insert stores the record under its vehicle id.
func (l *Ledger) Insert(rec Record) {
	l.records[rec.VehicleID] = rec
}

// Get returns the record for the vehicle id.
func (l *Ledger) Get(vehicleID int) (Record, bool) {
	rec, ok := l.records[vehicleID]
	return rec, ok
}

// Has reports whether a record exists for the vehicle id.
func (l *Ledger) Has(vehicleID int) bool {
	_, ok := l.records[vehicleID]
	return ok
}

// Remove deletes the record for the vehicle id.
func (l *Ledger) Remove(vehicleID int) {
	delete(l.records, vehicleID)
}

// Size returns the number of active rentals.
func (l *Ledger) Size() int { return len(l.records) }

// Active returns all records ordered by vehicle id.
func (l *Ledger) Active() []Record {
	out := make([]Record, 0, len(l.records))
	for _, rec := range l.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VehicleID < out[j].VehicleID })
	return out
}

package rental

import "time"

// Quote is the successful result of a rent transaction. The cost is
// informational; billing happens at return time.
type Quote struct {
	RentalID  string    `json:"rental_id"`
	VehicleID int       `json:"vehicle_id"`
	Renter    string    `json:"renter"`
	Days      int       `json:"days"`
	Cost      float64   `json:"cost"`
	Due       time.Time `json:"due"`
}

// Receipt is the successful result of a return transaction.
type Receipt struct {
	RentalID  string  `json:"rental_id"`
	VehicleID int     `json:"vehicle_id"`
	Renter    string  `json:"renter"`
	Days      int     `json:"days"`
	Base      float64 `json:"base"`
	LateDays  int     `json:"late_days"`
	Penalty   float64 `json:"penalty"`
	Total     float64 `json:"total"`
}

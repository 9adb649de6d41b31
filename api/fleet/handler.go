package fleet

import (
	"encoding/json"
	"net/http"

	corefleet "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/fleet"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/rental"
)

// Source provides the fleet and ledger snapshots served by the handler.
// *rental.Engine satisfies it.
type Source interface {
	Fleet() []corefleet.Summary
	ActiveRentals() []rental.Record
}

type statusResponse struct {
	Vehicles      []corefleet.Summary `json:"vehicles"`
	ActiveRentals []rental.Record     `json:"active_rentals"`
}

// NewStatusHandler returns an HTTP handler exposing fleet state via
// GET /api/fleet/status.
func NewStatusHandler(src Source) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		resp := statusResponse{
			Vehicles:      src.Fleet(),
			ActiveRentals: src.ActiveRentals(),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

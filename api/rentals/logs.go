package rentals

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/report"
)

// NewLogHandler returns an HTTP handler exposing audit history via
// GET /api/rentals/logs. Requests must include an Authorization header with
// "Bearer <token>" when token is non-empty.
func NewLogHandler(store audit.Store, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		entries, err := store.Query(r.Context(), queryFromRequest(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// NewReportHandler returns an HTTP handler computing a KPI report over the
// audit history via GET /api/rentals/report. It accepts the same filters and
// token rule as the log handler.
func NewReportHandler(store audit.Store, token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, token) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		rep, err := report.Generate(r.Context(), store, queryFromRequest(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rep); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func authorized(r *http.Request, token string) bool {
	if token == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+token
}

func queryFromRequest(r *http.Request) audit.Query {
	q := audit.Query{}
	if s := r.URL.Query().Get("start"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			q.Start = t
		}
	}
	if s := r.URL.Query().Get("end"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			q.End = t
		}
	}
	q.Op = audit.Op(r.URL.Query().Get("op"))
	if s := r.URL.Query().Get("vehicle_id"); s != "" {
		if id, err := strconv.Atoi(s); err == nil {
			q.VehicleID = id
		}
	}
	q.Outcome = r.URL.Query().Get("outcome")
	return q
}

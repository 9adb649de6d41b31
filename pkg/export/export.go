package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
)

// WriteJSON writes the audit entries to w in JSON format.
func WriteJSON(w io.Writer, entries []audit.Entry) error {
	enc := json.NewEncoder(w)
	return enc.Encode(entries)
}

// WriteCSV writes the audit entries to w in CSV format with a header row.
func WriteCSV(w io.Writer, entries []audit.Entry) error {
	cw := csv.NewWriter(w)
	header := []string{"time", "op", "vehicle_id", "kind", "renter", "outcome", "amount", "late_days", "penalty", "message"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			e.Time.Format(time.RFC3339),
			string(e.Op),
			strconv.Itoa(e.VehicleID),
			string(e.Kind),
			e.Renter,
			e.Outcome,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			strconv.Itoa(e.LateDays),
			strconv.FormatFloat(e.Penalty, 'f', -1, 64),
			e.Message,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
)

func sampleEntries() []audit.Entry {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return []audit.Entry{
		{Time: base, Op: audit.OpRent, VehicleID: 1, Kind: "car", Renter: "memberA", Outcome: audit.OutcomeOK, Amount: 200, Message: "memberA rented vehicle 1 for 1 day(s), cost 200.00"},
		{Time: base.Add(25 * time.Hour), Op: audit.OpReturn, VehicleID: 1, Kind: "car", Renter: "memberA", Outcome: audit.OutcomeOK, Amount: 220, LateDays: 1, Penalty: 20},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleEntries()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "time,op,vehicle_id") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "2024-05-01T08:00:00Z,rent,1,car,memberA,ok,200") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[2], "return") || !strings.Contains(lines[2], "220,1,20") {
		t.Errorf("unexpected second row: %s", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleEntries()); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var out []audit.Entry
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[1].Penalty != 20 || out[1].LateDays != 1 {
		t.Errorf("penalty fields lost: %+v", out[1])
	}
}

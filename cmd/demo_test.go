package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	demoLogPath = filepath.Join(t.TempDir(), "rental_log.txt")
	var buf bytes.Buffer
	demoCmd.SetOut(&buf)

	if err := runDemo(demoCmd, nil); err != nil {
		t.Fatalf("demo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"charged vehicle 3, battery now 35.0 kWh",
		"returned vehicle 1, total 220.00 (1 late day(s), penalty 20.00)",
		"rent truck:",
		"rent electric:",
		"return truck:",
		"[RENTED]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output missing %q:\n%s", want, out)
		}
	}
	// Only the electric car stays out: the severe damage return released
	// the truck.
	if got := strings.Count(out, "[RENTED]"); got != 1 {
		t.Fatalf("expected one rented vehicle at the end, got %d:\n%s", got, out)
	}
}

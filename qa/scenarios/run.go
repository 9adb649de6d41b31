package scenarios

import (
	"context"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/factory"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/fleet"
	coremetrics "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/metrics"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/rental"
	infraaudit "github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/logger"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/metrics"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/infra/telemetry"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/internal/eventbus"
)

var scenarioStart = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

// RunScenario executes the scenario against a freshly wired engine: JSONL
// audit store, Prometheus sink on a private registry, mock telemetry behind
// the event bus and a manual clock.
func RunScenario(t *testing.T, sc *Scenario) {
	configs := make([]factory.ModuleConfig, len(sc.Vehicles))
	for i, v := range sc.Vehicles {
		configs[i] = v.ToConfig()
	}
	reg, err := fleet.FromConfig(configs)
	if err != nil {
		t.Fatalf("fleet: %v", err)
	}

	store, err := infraaudit.NewJSONLStore(filepath.Join(t.TempDir(), "audit.jsonl"))
	if err != nil {
		t.Fatalf("audit store: %v", err)
	}
	sink, err := metrics.NewPromSinkWithRegistry(coremetrics.Config{}, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	bus := eventbus.New()
	pub := telemetry.NewMockPublisher()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	telemetry.StartForwarder(ctx, bus, pub, logger.NopLogger{})

	clock := rental.NewManualClock(scenarioStart)
	eng, err := rental.NewEngine(reg, store, sink, clock, bus, logger.NopLogger{})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	defer func() {
		if err := eng.Close(); err != nil {
			t.Errorf("engine close: %v", err)
		}
	}()

	for i, st := range sc.Steps {
		switch st.Op {
		case "advance":
			clock.Advance(time.Duration(st.Hours) * time.Hour)
		case "rent":
			quote, err := eng.Rent(ctx, st.Renter, st.Vehicle, st.Days, st.LoadKg)
			checkStep(t, i, st, quote.Cost, err)
		case "return":
			receipt, err := eng.Return(ctx, st.Renter, st.Vehicle, st.Days, st.Damaged)
			checkStep(t, i, st, receipt.Total, err)
		case "charge":
			level, err := eng.Charge(ctx, st.Vehicle, st.KWh)
			checkStep(t, i, st, level, err)
		default:
			t.Fatalf("step %d: unknown op %q", i, st.Op)
		}
	}

	entries, err := store.Query(context.Background(), audit.Query{})
	if err != nil {
		t.Fatalf("query audit store: %v", err)
	}
	var okCount, failedCount int
	var revenue float64
	for _, e := range entries {
		if e.Outcome == audit.OutcomeOK {
			okCount++
			revenue += e.Amount
		} else {
			failedCount++
		}
	}
	if okCount != sc.Expected.OK {
		t.Errorf("scenario %s: expected %d ok, got %d", sc.Name, sc.Expected.OK, okCount)
	}
	if failedCount != sc.Expected.Failed {
		t.Errorf("scenario %s: expected %d failed, got %d", sc.Name, sc.Expected.Failed, failedCount)
	}
	if revenue != sc.Expected.Revenue {
		t.Errorf("scenario %s: expected revenue %.2f, got %.2f", sc.Name, sc.Expected.Revenue, revenue)
	}

	var rented []int
	for _, s := range eng.Fleet() {
		if s.Rented {
			rented = append(rented, s.ID)
		}
	}
	sort.Ints(rented)
	want := append([]int(nil), sc.Expected.Rented...)
	sort.Ints(want)
	if !equalInts(rented, want) {
		t.Errorf("scenario %s: expected rented %v, got %v", sc.Name, want, rented)
	}

	// Every attempt reaches the telemetry publisher through the bus.
	total := okCount + failedCount
	deadline := time.Now().Add(2 * time.Second)
	for {
		txs, _ := pub.Counts()
		if txs >= total {
			break
		}
		if time.Now().After(deadline) {
			t.Errorf("scenario %s: telemetry saw %d of %d transactions", sc.Name, txs, total)
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func checkStep(t *testing.T, i int, st StepDef, amount float64, err error) {
	t.Helper()
	if st.WantErr != "" {
		if err == nil {
			t.Errorf("step %d (%s): expected %s failure, got success", i, st.Op, st.WantErr)
			return
		}
		if kind := rental.FailureKind(err); kind != st.WantErr {
			t.Errorf("step %d (%s): expected failure %s, got %s (%v)", i, st.Op, st.WantErr, kind, err)
		}
		return
	}
	if err != nil {
		t.Errorf("step %d (%s): unexpected error: %v", i, st.Op, err)
		return
	}
	if st.WantAmount != 0 && amount != st.WantAmount {
		t.Errorf("step %d (%s): expected amount %.2f, got %.2f", i, st.Op, st.WantAmount, amount)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

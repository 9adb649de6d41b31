package backfill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/metrics"
)

type fakeStore struct {
	entries []audit.Entry
	err     error
}

func (s *fakeStore) Append(context.Context, audit.Entry) error { return nil }
func (s *fakeStore) Close() error                              { return nil }

func (s *fakeStore) Query(_ context.Context, q audit.Query) ([]audit.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []audit.Entry
	for _, e := range s.entries {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

type recordingSink struct {
	events []metrics.TransactionEvent
	failAt int
	fail   bool
}

func (s *recordingSink) RecordTransaction(ev metrics.TransactionEvent) error {
	if s.fail && len(s.events) == s.failAt {
		return errors.New("sink down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestRunReplaysHistory(t *testing.T) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	store := &fakeStore{entries: []audit.Entry{
		{Time: base, Op: audit.OpRent, VehicleID: 1, Kind: "car", Renter: "memberA", Outcome: audit.OutcomeOK, Amount: 200},
		{Time: base.Add(time.Hour), Op: audit.OpRent, VehicleID: 2, Kind: "truck", Renter: "memberB", Outcome: "overload"},
		{Time: base.Add(2 * time.Hour), Op: audit.OpReturn, VehicleID: 1, Kind: "car", Renter: "memberA", Outcome: audit.OutcomeOK, Amount: 220},
	}}
	sink := &recordingSink{}

	n, err := Run(context.Background(), store, sink, audit.Query{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 3 || len(sink.events) != 3 {
		t.Fatalf("expected 3 replayed events, got n=%d recorded=%d", n, len(sink.events))
	}
	if sink.events[0].Op != "rent" || sink.events[0].Amount != 200 {
		t.Errorf("unexpected first event: %+v", sink.events[0])
	}
	if sink.events[1].Outcome != "overload" {
		t.Errorf("unexpected second event: %+v", sink.events[1])
	}
	if !sink.events[2].Time.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("replay must keep the original time, got %v", sink.events[2].Time)
	}
	if sink.events[2].Duration != 0 {
		t.Errorf("replayed events carry no duration, got %v", sink.events[2].Duration)
	}
}

func TestRunFiltered(t *testing.T) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	store := &fakeStore{entries: []audit.Entry{
		{Time: base, Op: audit.OpRent, VehicleID: 1, Outcome: audit.OutcomeOK, Amount: 200},
		{Time: base, Op: audit.OpCharge, VehicleID: 3, Outcome: audit.OutcomeOK},
	}}
	sink := &recordingSink{}

	n, err := Run(context.Background(), store, sink, audit.Query{Op: audit.OpRent})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1 || len(sink.events) != 1 || sink.events[0].Op != "rent" {
		t.Fatalf("expected only the rent entry, got n=%d events=%+v", n, sink.events)
	}
}

func TestRunStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("disk gone")}
	if _, err := Run(context.Background(), store, &recordingSink{}, audit.Query{}); err == nil {
		t.Fatal("expected store error")
	}
}

func TestRunSinkError(t *testing.T) {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	store := &fakeStore{entries: []audit.Entry{
		{Time: base, Op: audit.OpRent, VehicleID: 1, Outcome: audit.OutcomeOK},
		{Time: base, Op: audit.OpReturn, VehicleID: 1, Outcome: audit.OutcomeOK},
	}}
	sink := &recordingSink{fail: true, failAt: 1}

	n, err := Run(context.Background(), store, sink, audit.Query{})
	if err == nil {
		t.Fatal("expected sink error")
	}
	if n != 1 {
		t.Fatalf("expected 1 replayed before failure, got %d", n)
	}
}

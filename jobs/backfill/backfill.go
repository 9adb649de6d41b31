// Package backfill replays audit history into a metrics sink, for
// populating a time-series backend that was enabled after the fact.
package backfill

import (
	"context"
	"fmt"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/metrics"
)

// Run feeds every audit entry matching q to the sink in store order and
// returns the number of entries replayed. Replayed events carry the original
// transaction time and no duration.
func Run(ctx context.Context, store audit.Store, sink metrics.MetricsSink, q audit.Query) (int, error) {
	entries, err := store.Query(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("query audit store: %w", err)
	}
	for i, e := range entries {
		ev := metrics.TransactionEvent{
			Op:        string(e.Op),
			VehicleID: e.VehicleID,
			Kind:      e.Kind,
			Renter:    e.Renter,
			Outcome:   e.Outcome,
			Amount:    e.Amount,
			Time:      e.Time,
		}
		if err := sink.RecordTransaction(ev); err != nil {
			return i, fmt.Errorf("record transaction %d: %w", i, err)
		}
	}
	return len(entries), nil
}

package rental

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/events"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/fleet"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/logger"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/metrics"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/internal/eventbus"
)

// Penalty schedule applied at return time.
const (
	lateFeePerDay  = 20.0
	minorDamageFee = 100.0
)

// Engine executes rental transactions against the fleet and the ledger.
// All operations serialize on one mutex so that a vehicle holds at most one
// active rental at any time.
type Engine struct {
	mu     sync.Mutex
	fleet  *fleet.Registry
	ledger *Ledger
	clock  Clock
	store  audit.Store
	sink   metrics.MetricsSink
	bus    eventbus.EventBus
	log    logger.Logger
}

// NewEngine creates an engine over the given fleet. The audit store and
// logger are mandatory. A nil clock defaults to the system clock, a nil
// sink to NopSink; the bus is optional.
func NewEngine(reg *fleet.Registry, store audit.Store, sink metrics.MetricsSink, clock Clock, bus eventbus.EventBus, log logger.Logger) (*Engine, error) {
	if reg == nil || store == nil || log == nil {
		return nil, fmt.Errorf("rental: nil parameter provided to NewEngine")
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{
		fleet:  reg,
		ledger: NewLedger(),
		clock:  clock,
		store:  store,
		sink:   sink,
		bus:    bus,
		log:    log,
	}, nil
}

// Close releases the audit store and the event bus.
func (e *Engine) Close() error {
	if e.bus != nil {
		e.bus.Close()
	}
	return e.store.Close()
}

// Rent hands the vehicle to the renter for the given number of days.
// Trucks carry loadKg against their maximum; other variants ignore it.
// Checks run in a fixed order and the first failure aborts with no state
// change: existence, availability, truck load, cost, start precondition.
func (e *Engine) Rent(ctx context.Context, renter string, vehicleID int, days int, loadKg float64) (Quote, error) {
	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if days < 1 {
		err := fmt.Errorf("rent for %d day(s): %w", days, ErrInvalidDays)
		return Quote{}, e.reject(ctx, audit.OpRent, vehicleID, "", renter, now, start, err)
	}
	v, ok := e.fleet.Find(vehicleID)
	if !ok {
		return Quote{}, e.reject(ctx, audit.OpRent, vehicleID, "", renter, now, start, &NotFoundError{ID: vehicleID})
	}
	if v.Rented() {
		return Quote{}, e.reject(ctx, audit.OpRent, vehicleID, v.Kind(), renter, now, start, &UnavailableError{ID: vehicleID})
	}

	// Cost is computed before the start precondition, and both before the
	// ledger write. A precondition failure must leave no trace. Only trucks
	// commit a load to the record; other variants ignore loadKg entirely.
	var cost, committedLoad float64
	if t, isTruck := v.(*model.Truck); isTruck {
		if loadKg > t.MaxLoadKg() {
			over := &OverloadError{ID: vehicleID, RequestedKg: loadKg, MaxKg: t.MaxLoadKg()}
			return Quote{}, e.reject(ctx, audit.OpRent, vehicleID, v.Kind(), renter, now, start, over)
		}
		cost = t.CostWithLoad(days, loadKg)
		committedLoad = loadKg
	} else {
		cost = v.Cost(days)
	}
	if err := v.Start(); err != nil {
		return Quote{}, e.reject(ctx, audit.OpRent, vehicleID, v.Kind(), renter, now, start, err)
	}

	rec := Record{
		RentalID:  uuid.NewString(),
		VehicleID: vehicleID,
		Renter:    renter,
		RentedAt:  now,
		Due:       now.Add(time.Duration(days) * 24 * time.Hour),
		Days:      days,
		LoadKg:    committedLoad,
	}
	v.SetRented(true)
	e.ledger.Insert(rec)

	e.commit(ctx, audit.Entry{
		Time:      now,
		Op:        audit.OpRent,
		VehicleID: vehicleID,
		Kind:      v.Kind(),
		Renter:    renter,
		Outcome:   audit.OutcomeOK,
		Amount:    cost,
		Message:   fmt.Sprintf("%s rented vehicle %d for %d day(s), cost %.2f", renter, vehicleID, days, cost),
	}, nil, start)
	e.notifyState(v, renter, true)
	e.snapshotBattery(v, now)

	return Quote{
		RentalID:  rec.RentalID,
		VehicleID: vehicleID,
		Renter:    renter,
		Days:      days,
		Cost:      cost,
		Due:       rec.Due,
	}, nil
}

// Return closes the renter's active rental on the vehicle. The base cost is
// recomputed from actualDays and, for trucks, the load committed at rent
// time. Late returns pay per started late day; damage is assessed from the
// vehicle id parity. A severe assessment still releases the vehicle even
// though the call reports failure.
func (e *Engine) Return(ctx context.Context, renter string, vehicleID int, actualDays int, damaged bool) (Receipt, error) {
	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if actualDays < 1 {
		err := fmt.Errorf("return after %d day(s): %w", actualDays, ErrInvalidDays)
		return Receipt{}, e.reject(ctx, audit.OpReturn, vehicleID, "", renter, now, start, err)
	}
	v, ok := e.fleet.Find(vehicleID)
	if !ok {
		return Receipt{}, e.reject(ctx, audit.OpReturn, vehicleID, "", renter, now, start, &NotFoundError{ID: vehicleID})
	}
	rec, ok := e.ledger.Get(vehicleID)
	if !ok {
		return Receipt{}, e.reject(ctx, audit.OpReturn, vehicleID, v.Kind(), renter, now, start, &NotRentedError{ID: vehicleID})
	}
	if rec.Renter != renter {
		mism := &RenterMismatchError{ID: vehicleID, Renter: renter, Holder: rec.Renter}
		return Receipt{}, e.reject(ctx, audit.OpReturn, vehicleID, v.Kind(), renter, now, start, mism)
	}

	var base float64
	if t, isTruck := v.(*model.Truck); isTruck {
		base = t.CostWithLoad(actualDays, rec.LoadKg)
	} else {
		base = v.Cost(actualDays)
	}

	var penalty float64
	lateDays := 0
	if now.After(rec.Due) {
		hoursLate := now.Sub(rec.Due).Hours()
		lateDays = int(hoursLate/24) + 1
		penalty += float64(lateDays) * lateFeePerDay
	}

	if damaged && vehicleID%2 == 0 {
		// Severe damage still completes the return: the vehicle goes back
		// to the fleet while the call reports failure.
		v.SetRented(false)
		e.ledger.Remove(vehicleID)
		cause := &SevereDamageError{ID: vehicleID}
		e.commit(ctx, audit.Entry{
			Time:      now,
			Op:        audit.OpReturn,
			VehicleID: vehicleID,
			Kind:      v.Kind(),
			Renter:    renter,
			Outcome:   FailureKind(cause),
			Message:   cause.Error(),
		}, cause, start)
		e.notifyState(v, renter, false)
		return Receipt{}, cause
	}
	if damaged {
		penalty += minorDamageFee
	}

	v.SetRented(false)
	e.ledger.Remove(vehicleID)
	total := base + penalty

	e.commit(ctx, audit.Entry{
		Time:      now,
		Op:        audit.OpReturn,
		VehicleID: vehicleID,
		Kind:      v.Kind(),
		Renter:    renter,
		Outcome:   audit.OutcomeOK,
		Amount:    total,
		LateDays:  lateDays,
		Penalty:   penalty,
		Message:   fmt.Sprintf("%s returned vehicle %d after %d day(s), total %.2f (base %.2f, penalty %.2f)", renter, vehicleID, actualDays, total, base, penalty),
	}, nil, start)
	e.notifyState(v, renter, false)
	e.snapshotBattery(v, now)

	return Receipt{
		RentalID:  rec.RentalID,
		VehicleID: vehicleID,
		Renter:    renter,
		Days:      actualDays,
		Base:      base,
		LateDays:  lateDays,
		Penalty:   penalty,
		Total:     total,
	}, nil
}

// Charge adds energy to an electric vehicle's battery, clamped to its
// capacity. Rented vehicles may charge too.
func (e *Engine) Charge(ctx context.Context, vehicleID int, kwh float64) (float64, error) {
	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	v, ok := e.fleet.Find(vehicleID)
	if !ok {
		return 0, e.reject(ctx, audit.OpCharge, vehicleID, "", "", now, start, &NotFoundError{ID: vehicleID})
	}
	ev, ok := v.(*model.ElectricCar)
	if !ok {
		return 0, e.reject(ctx, audit.OpCharge, vehicleID, v.Kind(), "", now, start, &NotElectricError{ID: vehicleID})
	}

	level := ev.Charge(kwh)
	e.commit(ctx, audit.Entry{
		Time:      now,
		Op:        audit.OpCharge,
		VehicleID: vehicleID,
		Kind:      v.Kind(),
		Outcome:   audit.OutcomeOK,
		Message:   fmt.Sprintf("charged vehicle %d by %.1f kWh, battery %.1f/%.1f", vehicleID, kwh, level, ev.BatteryCapacityKWh()),
	}, nil, start)
	e.snapshotBattery(v, now)
	return level, nil
}

// Fleet returns summaries for every vehicle in insertion order.
func (e *Engine) Fleet() []fleet.Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fleet.List()
}

// ActiveRentals returns the open ledger records ordered by vehicle id.
func (e *Engine) ActiveRentals() []Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Active()
}

// History queries the audit store.
func (e *Engine) History(ctx context.Context, q audit.Query) ([]audit.Entry, error) {
	return e.store.Query(ctx, q)
}

// reject records a failed attempt and returns its cause unchanged.
func (e *Engine) reject(ctx context.Context, op audit.Op, vehicleID int, kind model.Kind, renter string, now, start time.Time, cause error) error {
	e.commit(ctx, audit.Entry{
		Time:      now,
		Op:        op,
		VehicleID: vehicleID,
		Kind:      kind,
		Renter:    renter,
		Outcome:   FailureKind(cause),
		Message:   cause.Error(),
	}, cause, start)
	return cause
}

// commit writes the audit entry and fans the outcome out to the log, the
// metrics sink and the event bus. Every attempt passes through here exactly
// once, before the result reaches the caller.
func (e *Engine) commit(ctx context.Context, entry audit.Entry, cause error, start time.Time) {
	if err := e.store.Append(ctx, entry); err != nil {
		e.log.Errorf("audit append failed: %v", err)
	}
	if entry.Outcome == audit.OutcomeOK {
		e.log.Infof("%s vehicle=%d renter=%s amount=%.2f", entry.Op, entry.VehicleID, entry.Renter, entry.Amount)
	} else {
		e.log.Warnf("%s vehicle=%d renter=%s rejected: %s", entry.Op, entry.VehicleID, entry.Renter, entry.Message)
	}
	if err := e.sink.RecordTransaction(metrics.TransactionEvent{
		Op:        string(entry.Op),
		VehicleID: entry.VehicleID,
		Kind:      entry.Kind,
		Renter:    entry.Renter,
		Outcome:   entry.Outcome,
		Amount:    entry.Amount,
		Duration:  time.Since(start),
		Time:      entry.Time,
	}); err != nil {
		e.log.Errorf("metrics sink error: %v", err)
	}
	if e.bus != nil {
		e.bus.Publish(events.TransactionEvent{
			Op:        entry.Op,
			VehicleID: entry.VehicleID,
			Kind:      entry.Kind,
			Renter:    entry.Renter,
			Outcome:   entry.Outcome,
			Amount:    entry.Amount,
			Err:       cause,
			Time:      entry.Time,
		})
	}
}

// notifyState publishes an availability transition and a fleet occupancy
// snapshot.
func (e *Engine) notifyState(v model.Vehicle, renter string, rented bool) {
	if e.bus != nil {
		e.bus.Publish(events.StateChangeEvent{
			VehicleID: v.ID(),
			Kind:      v.Kind(),
			Rented:    rented,
			Renter:    renter,
		})
	}
	if fr, ok := e.sink.(metrics.FleetStateRecorder); ok {
		if err := fr.RecordFleetState(metrics.FleetStateEvent{
			Total:     e.fleet.Size(),
			Rented:    e.ledger.Size(),
			Component: "rental_engine",
			Time:      e.clock.Now(),
		}); err != nil {
			e.log.Errorf("fleet state metrics error: %v", err)
		}
	}
}

// snapshotBattery records the battery level when the vehicle is electric.
func (e *Engine) snapshotBattery(v model.Vehicle, now time.Time) {
	ev, ok := v.(*model.ElectricCar)
	if !ok {
		return
	}
	if br, ok := e.sink.(metrics.BatteryLevelRecorder); ok {
		if err := br.RecordBatteryLevel(metrics.BatteryLevelEvent{
			VehicleID:   ev.ID(),
			ChargeKWh:   ev.CurrentChargeKWh(),
			CapacityKWh: ev.BatteryCapacityKWh(),
			Time:        now,
		}); err != nil {
			e.log.Errorf("battery metrics error: %v", err)
		}
	}
}

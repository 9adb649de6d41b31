// Package report computes business KPIs from audit history: revenue
// statistics, failure breakdowns and penalty totals.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/model"
)

// OpStats counts attempts and successes for one operation.
type OpStats struct {
	Attempts int `json:"attempts"`
	OK       int `json:"ok"`
}

// Report aggregates KPIs over a window of audit entries. Revenue figures
// cover successful paid transactions only; penalties are the share of
// revenue coming from late fees and damage fees.
type Report struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Attempts  int `json:"attempts"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	ByOp           map[audit.Op]OpStats `json:"by_op"`
	FailuresByKind map[string]int       `json:"failures_by_kind"`

	RevenueTotal  float64 `json:"revenue_total"`
	RevenueMean   float64 `json:"revenue_mean"`
	RevenueStdDev float64 `json:"revenue_stddev"`
	RevenueMin    float64 `json:"revenue_min"`
	RevenueMax    float64 `json:"revenue_max"`

	RevenueByKind    map[model.Kind]float64 `json:"revenue_by_kind"`
	RevenueByVehicle map[int]float64        `json:"revenue_by_vehicle"`

	PenaltyTotal        float64 `json:"penalty_total"`
	LateReturns         int     `json:"late_returns"`
	SevereDamageReturns int     `json:"severe_damage_returns"`
}

// SuccessRate returns the fraction of attempts that succeeded.
func (r Report) SuccessRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Succeeded) / float64(r.Attempts)
}

// Build computes a report from entries. Entry order does not matter; the
// window bounds come from the earliest and latest timestamps seen.
func Build(entries []audit.Entry) Report {
	r := Report{
		ByOp:             make(map[audit.Op]OpStats),
		FailuresByKind:   make(map[string]int),
		RevenueByKind:    make(map[model.Kind]float64),
		RevenueByVehicle: make(map[int]float64),
	}
	var amounts []float64
	for _, e := range entries {
		if r.Start.IsZero() || e.Time.Before(r.Start) {
			r.Start = e.Time
		}
		if e.Time.After(r.End) {
			r.End = e.Time
		}
		r.Attempts++
		st := r.ByOp[e.Op]
		st.Attempts++
		if e.Outcome == audit.OutcomeOK {
			st.OK++
			r.Succeeded++
		} else {
			r.Failed++
			r.FailuresByKind[e.Outcome]++
			if e.Outcome == "severe_damage" {
				r.SevereDamageReturns++
			}
		}
		r.ByOp[e.Op] = st

		if e.Outcome == audit.OutcomeOK && e.Amount > 0 {
			amounts = append(amounts, e.Amount)
			r.RevenueTotal += e.Amount
			r.RevenueByKind[e.Kind] += e.Amount
			r.RevenueByVehicle[e.VehicleID] += e.Amount
		}
		r.PenaltyTotal += e.Penalty
		if e.LateDays > 0 {
			r.LateReturns++
		}
	}
	if len(amounts) > 0 {
		r.RevenueMean = stat.Mean(amounts, nil)
		r.RevenueMin, r.RevenueMax = amounts[0], amounts[0]
		for _, a := range amounts[1:] {
			if a < r.RevenueMin {
				r.RevenueMin = a
			}
			if a > r.RevenueMax {
				r.RevenueMax = a
			}
		}
	}
	if len(amounts) > 1 {
		r.RevenueStdDev = stat.StdDev(amounts, nil)
	}
	return r
}

// Generate queries the store and builds a report from the result. Backends
// without query support surface their error unchanged.
func Generate(ctx context.Context, store audit.Store, q audit.Query) (Report, error) {
	entries, err := store.Query(ctx, q)
	if err != nil {
		return Report{}, fmt.Errorf("report: query audit store: %w", err)
	}
	return Build(entries), nil
}

// Render writes a human-readable summary.
func (r Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Rental KPI report (%s .. %s)\n", r.Start.Format("2006-01-02 15:04"), r.End.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "  attempts:  %d (ok %d, failed %d, success rate %.0f%%)\n", r.Attempts, r.Succeeded, r.Failed, r.SuccessRate()*100)
	fmt.Fprintf(w, "  revenue:   %.2f total, mean %.2f, stddev %.2f (min %.2f, max %.2f)\n",
		r.RevenueTotal, r.RevenueMean, r.RevenueStdDev, r.RevenueMin, r.RevenueMax)
	fmt.Fprintf(w, "  penalties: %.2f across %d late return(s), %d severe damage return(s)\n",
		r.PenaltyTotal, r.LateReturns, r.SevereDamageReturns)

	if len(r.ByOp) > 0 {
		fmt.Fprintln(w, "  by operation:")
		for _, op := range []audit.Op{audit.OpRent, audit.OpReturn, audit.OpCharge} {
			if st, ok := r.ByOp[op]; ok {
				fmt.Fprintf(w, "    %-8s %d attempt(s), %d ok\n", op, st.Attempts, st.OK)
			}
		}
	}
	if len(r.RevenueByKind) > 0 {
		fmt.Fprintln(w, "  revenue by kind:")
		kinds := make([]string, 0, len(r.RevenueByKind))
		for k := range r.RevenueByKind {
			kinds = append(kinds, string(k))
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "    %-10s %.2f\n", k, r.RevenueByKind[model.Kind(k)])
		}
	}
	if len(r.FailuresByKind) > 0 {
		fmt.Fprintln(w, "  failures:")
		kinds := make([]string, 0, len(r.FailuresByKind))
		for k := range r.FailuresByKind {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Fprintf(w, "    %-16s %d\n", k, r.FailuresByKind[k])
		}
	}
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/app/plugins"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/config"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/audit"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/report"
)

var (
	reportStart   string
	reportEnd     string
	reportOp      string
	reportVehicle int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize revenue and failures from the audit store",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportStart, "start", "", "window start (RFC3339)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "window end (RFC3339)")
	reportCmd.Flags().StringVar(&reportOp, "op", "", "filter by operation (rent, return, charge)")
	reportCmd.Flags().IntVar(&reportVehicle, "vehicle", 0, "filter by vehicle id")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	store, err := plugins.NewAuditStore(cfg.Audit)
	if err != nil {
		return fmt.Errorf("audit store: %w", err)
	}
	defer func() { _ = store.Close() }()

	q := audit.Query{Op: audit.Op(reportOp), VehicleID: reportVehicle}
	if reportStart != "" {
		t, err := time.Parse(time.RFC3339, reportStart)
		if err != nil {
			return fmt.Errorf("parse start: %w", err)
		}
		q.Start = t
	}
	if reportEnd != "" {
		t, err := time.Parse(time.RFC3339, reportEnd)
		if err != nil {
			return fmt.Errorf("parse end: %w", err)
		}
		q.End = t
	}

	rep, err := report.Generate(cmd.Context(), store, q)
	if err != nil {
		return err
	}
	rep.Render(cmd.OutOrStdout())
	return nil
}

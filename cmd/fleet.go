package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/config"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/fleet"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/rental"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet related commands",
}

var fleetLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the running service's vehicles",
	RunE:  runFleetLs,
}

func init() {
	fleetCmd.AddCommand(fleetLsCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetLs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.API.Enabled {
		return fmt.Errorf("the api section is disabled in %s", cfgPath)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(apiURL(cfg.API.Addr) + "/api/fleet/status")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fleet status: %s", resp.Status)
	}

	var out struct {
		Vehicles      []fleet.Summary `json:"vehicles"`
		ActiveRentals []rental.Record `json:"active_rentals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	holder := make(map[int]rental.Record, len(out.ActiveRentals))
	for _, r := range out.ActiveRentals {
		holder[r.VehicleID] = r
	}
	for _, s := range out.Vehicles {
		line := s.Description
		if s.Rented {
			if r, ok := holder[s.ID]; ok {
				line += fmt.Sprintf(" [RENTED by %s until %s]", r.Renter, r.Due.Format("2006-01-02 15:04"))
			} else {
				line += " [RENTED]"
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func apiURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

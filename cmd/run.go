// File: cmd/run.go
package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kennedy-st/curbside-cli/internal/config"
	"github.com/kennedy-st/curbside-cli/internal/observability"
	"github.com/kennedy-st/curbside-cli/internal/reporting"
	"github.com/kennedy-st/curbside-cli/internal/simulation"
)

// newRunCmd creates and configures the `run` command.
func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Runs one simulated collection day and renders the report",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their viper keys so CLI flags correctly override
			// values from the config file and environment.
			bindings := map[string]string{
				"simulation.day_type":  "day",
				"simulation.locations": "locations",
				"simulation.seed":      "seed",
				"simulation.workers":   "workers",
				"report.format":        "format",
				"report.output":        "output",
			}
			for key, flag := range bindings {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			// Re-load the config now that flags are bound, so overrides apply
			// with the right precedence.
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}

			// Raw day-type text is validated here at the boundary; the core
			// only ever receives the enum.
			day, err := simulation.ParseDayType(cfg.Simulation.DayType)
			if err != nil {
				return err
			}

			seed := cfg.Simulation.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			runID := uuid.New().String()
			logger.Info("Starting collection run",
				zap.String("runID", runID),
				zap.Stringer("day_type", day),
				zap.Int("locations", cfg.Simulation.Locations),
				zap.Int64("seed", seed),
				zap.Int("workers", cfg.Simulation.Workers),
			)

			gen := simulation.NewStreetGenerator(
				rand.New(rand.NewSource(seed)),
				day,
				cfg.Generator.PItem,
				cfg.Generator.PContam,
			)

			var result *simulation.Result
			if cfg.Simulation.Workers > 1 {
				result, err = simulation.RunParallel(ctx, day, cfg.Simulation.Locations, gen, cfg.Simulation.Workers)
			} else {
				result, err = simulation.Run(day, cfg.Simulation.Locations, gen)
			}
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			envelope := reporting.BuildEnvelope(runID, time.Now(), seed, result)

			reporter, err := reporting.New(cfg.Report.Format, cfg.Report.Output)
			if err != nil {
				return fmt.Errorf("failed to initialize reporter: %w", err)
			}
			defer func() {
				if err := reporter.Close(); err != nil {
					logger.Error("Failed to close reporter", zap.Error(err))
				}
			}()

			if err := reporter.Write(envelope); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			logger.Info("Collection run complete",
				zap.String("runID", runID),
				zap.Int("total_fines", result.TotalFines),
			)
			return nil
		},
	}

	runCmd.Flags().StringP("day", "d", "garbage", "Day type for the run: 'garbage' or 'recycle'. (Overrides config/env)")
	runCmd.Flags().IntP("locations", "n", 20, "Number of curbside locations to visit. (Overrides config/env)")
	runCmd.Flags().Int64("seed", 0, "Random seed for reproducible runs; 0 derives one from the clock.")
	runCmd.Flags().IntP("workers", "j", 0, "Concurrent policy evaluators; 0 or 1 evaluates sequentially.")
	runCmd.Flags().StringP("format", "f", "text", "Report format: 'text' or 'json'.")
	runCmd.Flags().StringP("output", "o", "", "Report output path. If unset, the report goes to stdout.")

	return runCmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

package main

import (
	"fmt"

	"github.com/sarchlab/hopsim/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation.",
		Long: `Run a simulation until the given number of messages arrive or ` +
			`the given simulated time passes. At least one of --max-arrivals ` +
			`and --time-limit is required.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLogger(cmd, false,
				func(cfg *config.Config, logger *zap.Logger) error {
					result, err := runSimulation(cfg, logger)
					if err != nil {
						return err
					}

					printResult(cmd, result)

					return nil
				})
		},
	}

	config.RegisterRunFlags(runCmd.Flags())

	return runCmd
}

func printResult(cmd *cobra.Command, r *runResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "simulated time: %.6f s\n", float64(r.Now))
	fmt.Fprintf(out, "%-10s %10s %10s %12s\n",
		"node", "#sent", "#received", "maxHopCount")

	for _, nr := range r.Reports {
		maxHops := "-"
		if nr.HopCount.Count > 0 {
			maxHops = fmt.Sprintf("%.0f", nr.MaxHopCount)
		}

		fmt.Fprintf(out, "%-10s %10d %10d %12s\n",
			nr.Name, nr.Sent, nr.Received, maxHops)
	}

	fmt.Fprintf(out, "total: %d sent, %d received, mean hop count %.3f\n",
		r.Totals.Sent, r.Totals.Received, r.Totals.MeanHops)

	if r.OutputPath != "" {
		fmt.Fprintf(out, "results: %s\n", r.OutputPath)
	}
}

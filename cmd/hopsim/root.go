package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/hopsim/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopsim",
		Short: "hopsim simulates random message routing over a network.",
		Long: `hopsim simulates random message routing over a network. ` +
			`Every node sends a message to a random other node. Nodes ` +
			`forward the messages over random links and record the hop ` +
			`counts of the messages that reach them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "",
		"YAML configuration file, also read from HOPSIM_CONFIG")
	rootCmd.PersistentFlags().String("env-file", "",
		"file of HOPSIM_* variables, .env by default")

	rootCmd.SetOut(out)
	rootCmd.AddCommand(newRunCmd(), newTopologyCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command, topologyOnly bool) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	return config.Load(config.Options{
		ConfigFile:   configFile,
		EnvFile:      envFile,
		Flags:        cmd.Flags(),
		TopologyOnly: topologyOnly,
	})
}

// withLogger builds the logger of the command. Errors are logged before they
// are returned to cobra.
func withLogger(
	cmd *cobra.Command,
	topologyOnly bool,
	f func(cfg *config.Config, logger *zap.Logger) error,
) error {
	cfg, err := loadConfig(cmd, topologyOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	defer func() { _ = logger.Sync() }()

	err = f(cfg, logger)
	if err != nil {
		logger.Error("command failed",
			zap.String("command", cmd.Name()), zap.Error(err))
	}

	return err
}

package main

import (
	"fmt"
	"os"

	"vtp/internal/cli"
	"vtp/internal/cli/commands"
	"vtp/internal/config"
	"vtp/internal/errors"
	vtplog "vtp/internal/log"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "vtp",
		Short:         "Vector test parameter generator",
		Long:          `Turns directories of JSON test vectors into filtered, ordered test parameter tuples. List them, save them as a snapshot, or browse the last snapshot interactively.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	logger, err := vtplog.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg, logger)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		logger.Debug(errors.PrintErrorWithStackTrace(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

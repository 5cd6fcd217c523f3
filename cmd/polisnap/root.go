package main

import (
	"context"
	"fmt"

	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/aleister1102/polisnap/internal/common/urlhandler"
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/aleister1102/polisnap/internal/datastore"
	"github.com/aleister1102/polisnap/internal/logger"
	"github.com/aleister1102/polisnap/internal/orchestrator"
	"github.com/aleister1102/polisnap/internal/scanner"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const rootExample = `  polisnap urls.txt -o out -e text,keywords
  polisnap urls.txt -e text -e keywords -w 8 --ledger`

func newRootCommand() *cobra.Command {
	flags := &AppFlags{}

	cmd := &cobra.Command{
		Use:           "polisnap <input_file>",
		Short:         "Acquire, extract and archive privacy policies",
		Long:          "Fetches every privacy policy URL listed in the input file, extracts its text and stores a dated snapshot whenever the policy changed.",
		Example:       rootExample,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args[0])
		},
	}
	bindFlags(cmd, flags)

	return cmd
}

func run(cmd *cobra.Command, flags *AppFlags, inputFile string) error {
	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, zerolog.Nop())
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	applyFlagOverrides(cmd, flags, gCfg)

	if err := config.ValidateConfig(gCfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.NewString()
	zLogger, err := logger.NewLoggerBuilder().
		WithConfig(gCfg.LogConfig).
		WithVerbose(flags.Verbose).
		WithRunID(runID).
		WithConsoleOutput(cmd.ErrOrStderr()).
		Build()
	if err != nil {
		return fmt.Errorf("could not initialize logger: %w", err)
	}

	targets, err := urlhandler.NewTargetManager(zLogger).LoadTargets(inputFile)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	acquirer, err := orchestrator.NewAcquirerFromConfig(gCfg, zLogger)
	if err != nil {
		return fmt.Errorf("could not initialize acquisition pipeline: %w", err)
	}

	opts := scanner.RunnerOptions{
		Workers: gCfg.AcquisitionConfig.Workers,
		RunID:   runID,
	}
	if gCfg.StorageConfig.LedgerEnabled {
		ledger, err := datastore.NewLedgerWriter(gCfg.StorageConfig, filemanager.NewFileManager(zLogger), zLogger)
		if err != nil {
			return fmt.Errorf("could not initialize run ledger: %w", err)
		}
		opts.Ledger = ledger
	}

	summary := scanner.NewRunner(acquirer, opts, zLogger).Run(contextOf(cmd), targets)

	if gCfg.AcquisitionConfig.RaiseErrors && summary.HasFailures() {
		return fmt.Errorf("%d of %d policies failed", summary.Failed, summary.Total)
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

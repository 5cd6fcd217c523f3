package main

import (
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/spf13/cobra"
)

// AppFlags holds the command line options
type AppFlags struct {
	OutputDir   string
	TimeoutSecs int
	Screenshot  bool
	Extractors  []string
	Workers     int
	Force       bool
	RaiseErrors bool
	Verbose     bool
	ConfigFile  string
	Ledger      bool
}

func bindFlags(cmd *cobra.Command, flags *AppFlags) {
	defaults := config.NewDefaultAcquisitionConfig()
	fs := cmd.Flags()

	fs.StringVarP(&flags.OutputDir, "output_dir", "o", "", "Directory the policy folders are written to (default: current directory)")
	fs.IntVarP(&flags.TimeoutSecs, "timeout", "t", defaults.TimeoutSecs, "Per-URL network timeout in seconds")
	fs.BoolVarP(&flags.Screenshot, "screenshot", "s", false, "Capture a full-page screenshot of rendered policies")
	fs.StringSliceVarP(&flags.Extractors, "extractors", "e", defaults.Extractors, "Extractors to run, in order (text, keywords); comma-separated (-e text,keywords) or repeated (-e text -e keywords)")
	fs.IntVarP(&flags.Workers, "workers", "w", defaults.Workers, "Number of URLs processed concurrently")
	fs.BoolVarP(&flags.Force, "force", "f", false, "Acquire even if already scraped today or unchanged")
	fs.BoolVarP(&flags.RaiseErrors, "raise_errors", "r", false, "Fail on network errors instead of skipping the URL")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	fs.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML/JSON configuration file")
	fs.BoolVar(&flags.Ledger, "ledger", false, "Write a parquet ledger of the run outcomes")
}

// applyFlagOverrides copies every flag the user set onto cfg. Flags left at
// their defaults do not override values from the configuration file.
func applyFlagOverrides(cmd *cobra.Command, flags *AppFlags, cfg *config.GlobalConfig) {
	fs := cmd.Flags()
	acq := &cfg.AcquisitionConfig

	if fs.Changed("output_dir") {
		acq.OutputDir = flags.OutputDir
	}
	if fs.Changed("timeout") {
		acq.TimeoutSecs = flags.TimeoutSecs
	}
	if fs.Changed("screenshot") {
		acq.Screenshot = flags.Screenshot
	}
	if fs.Changed("extractors") {
		acq.Extractors = flags.Extractors
	}
	if fs.Changed("workers") {
		acq.Workers = flags.Workers
	}
	if fs.Changed("force") {
		acq.Force = flags.Force
	}
	if fs.Changed("raise_errors") {
		acq.RaiseErrors = flags.RaiseErrors
	}
	if fs.Changed("ledger") {
		cfg.StorageConfig.LedgerEnabled = flags.Ledger
	}
}

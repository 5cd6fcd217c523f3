package config

import "time"

// AcquisitionConfig holds the run options of the acquisition pipeline
type AcquisitionConfig struct {
	OutputDir   string   `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	TimeoutSecs int      `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=1"`
	Screenshot  bool     `json:"screenshot,omitempty" yaml:"screenshot,omitempty"`
	Extractors  []string `json:"extractors,omitempty" yaml:"extractors,omitempty" validate:"min=1,dive,extractor"`
	Workers     int      `json:"workers,omitempty" yaml:"workers,omitempty" validate:"min=1"`
	Force       bool     `json:"force,omitempty" yaml:"force,omitempty"`
	RaiseErrors bool     `json:"raise_errors,omitempty" yaml:"raise_errors,omitempty"`
}

// NewDefaultAcquisitionConfig creates default acquisition configuration
func NewDefaultAcquisitionConfig() AcquisitionConfig {
	return AcquisitionConfig{
		OutputDir:   "",
		TimeoutSecs: DefaultAcquisitionTimeoutSecs,
		Extractors:  []string{DefaultAcquisitionExtractor},
		Workers:     DefaultAcquisitionWorkers,
	}
}

// Timeout returns the per-URL network timeout
func (c AcquisitionConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

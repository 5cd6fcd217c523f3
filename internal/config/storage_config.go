package config

// StorageConfig defines configuration for the run ledger
type StorageConfig struct {
	LedgerEnabled    bool   `json:"ledger_enabled,omitempty" yaml:"ledger_enabled,omitempty"`
	LedgerDir        string `json:"ledger_dir,omitempty" yaml:"ledger_dir,omitempty"`
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,compression"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		LedgerDir:        DefaultStorageLedgerDir,
		CompressionCodec: DefaultStorageCompressionCodec,
	}
}

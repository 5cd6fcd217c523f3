package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/common/filemanager"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	AcquisitionConfig AcquisitionConfig `json:"acquisition_config,omitempty" yaml:"acquisition_config,omitempty"`
	BrowserConfig     BrowserConfig     `json:"browser_config,omitempty" yaml:"browser_config,omitempty"`
	HTTPClientConfig  HTTPClientConfig  `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	LogConfig         LogConfig         `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	StorageConfig     StorageConfig     `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AcquisitionConfig: NewDefaultAcquisitionConfig(),
		BrowserConfig:     NewDefaultBrowserConfig(),
		HTTPClientConfig:  NewDefaultHTTPClientConfig(),
		LogConfig:         NewDefaultLogConfig(),
		StorageConfig:     NewDefaultStorageConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// Values missing from the file keep their defaults. YAML is used for .yaml
// and .yml files, JSON otherwise.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	fileManager := filemanager.NewFileManager(logger)
	if !fileManager.FileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := loadConfigFileContent(fileManager, filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Loaded configuration file")
	return cfg, nil
}

func loadConfigFileContent(fileManager *filemanager.FileManager, filePath string) ([]byte, error) {
	opts := filemanager.DefaultFileReadOptions()
	opts.MaxSize = 10 * 1024 * 1024

	return fileManager.ReadFile(filePath, opts)
}

func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. the --config flag value, returned as-is so a missing file is reported
// 2. POLISNAP_CONFIG_PATH environment variable
// 3. polisnap.yaml, polisnap.yml or polisnap.json in the current working directory
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		return configFilePathFlag
	}

	if envPath := os.Getenv(ConfigPathEnv); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for _, name := range []string{"polisnap.yaml", "polisnap.yml", "polisnap.json"} {
		path := filepath.Join(cwd, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

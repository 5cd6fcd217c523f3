package config

const (
	// Acquisition Defaults
	DefaultAcquisitionTimeoutSecs = 30
	DefaultAcquisitionWorkers     = 1
	DefaultAcquisitionExtractor   = "text"

	// Browser Defaults
	DefaultBrowserUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultBrowserAcceptLanguage = "en-US,en"
	DefaultBrowserWindowWidth    = 1920
	DefaultBrowserWindowHeight   = 1080

	// HTTP Client Defaults
	DefaultHTTPClientMaxRedirects = 10
	DefaultHTTPClientMaxBodyMB    = 50

	// Storage Defaults
	DefaultStorageLedgerDir        = ".polisnap/ledger"
	DefaultStorageCompressionCodec = "zstd"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv names the environment variable consulted for the config file
	ConfigPathEnv = "POLISNAP_CONFIG_PATH"
)

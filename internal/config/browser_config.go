package config

// BrowserConfig defines how the headless browser is launched for rendering
type BrowserConfig struct {
	BinaryPath     string `json:"binary_path,omitempty" yaml:"binary_path,omitempty"`
	NoSandbox      bool   `json:"no_sandbox" yaml:"no_sandbox"`
	UserAgent      string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	AcceptLanguage string `json:"accept_language,omitempty" yaml:"accept_language,omitempty"`
	WindowWidth    int    `json:"window_width,omitempty" yaml:"window_width,omitempty" validate:"min=320"`
	WindowHeight   int    `json:"window_height,omitempty" yaml:"window_height,omitempty" validate:"min=240"`
}

// NewDefaultBrowserConfig creates default browser configuration
func NewDefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		NoSandbox:      true,
		UserAgent:      DefaultBrowserUserAgent,
		AcceptLanguage: DefaultBrowserAcceptLanguage,
		WindowWidth:    DefaultBrowserWindowWidth,
		WindowHeight:   DefaultBrowserWindowHeight,
	}
}

package config

// HTTPClientConfig configures the client used for content-type classification
type HTTPClientConfig struct {
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	AcceptLanguage     string `json:"accept_language,omitempty" yaml:"accept_language,omitempty"`
	FollowRedirects    bool   `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"min=0"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	EnableHTTP2        bool   `json:"enable_http2" yaml:"enable_http2"`
	MaxBodyMB          int    `json:"max_body_mb,omitempty" yaml:"max_body_mb,omitempty" validate:"min=1"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		UserAgent:       DefaultBrowserUserAgent,
		AcceptLanguage:  DefaultBrowserAcceptLanguage,
		FollowRedirects: true,
		MaxRedirects:    DefaultHTTPClientMaxRedirects,
		EnableHTTP2:     true,
		MaxBodyMB:       DefaultHTTPClientMaxBodyMB,
	}
}

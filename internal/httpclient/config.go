package httpclient

import (
	"time"

	"github.com/aleister1102/polisnap/internal/config"
)

// HTTPClientConfig holds HTTP client configuration
type HTTPClientConfig struct {
	Timeout             time.Duration     // Request timeout, including reading the body
	InsecureSkipVerify  bool              // Skip TLS verification
	FollowRedirects     bool              // Whether to follow redirects
	MaxRedirects        int               // Maximum number of redirects to follow
	CustomHeaders       map[string]string // Headers added to all requests
	UserAgent           string            // User-Agent header
	AcceptLanguage      string            // Accept-Language header
	MaxContentSize      int64             // Maximum body bytes kept (0 = no limit)
	MaxIdleConns        int               // Maximum idle connections
	MaxIdleConnsPerHost int               // Maximum idle connections per host
	IdleConnTimeout     time.Duration     // Idle connection timeout
	TLSHandshakeTimeout time.Duration     // TLS handshake timeout
	DialTimeout         time.Duration     // Connection dial timeout
	KeepAlive           time.Duration     // Keep-alive duration
	EnableHTTP2         bool              // Enable HTTP/2 support
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             time.Duration(config.DefaultAcquisitionTimeoutSecs) * time.Second,
		FollowRedirects:     true,
		MaxRedirects:        config.DefaultHTTPClientMaxRedirects,
		UserAgent:           config.DefaultBrowserUserAgent,
		AcceptLanguage:      config.DefaultBrowserAcceptLanguage,
		MaxContentSize:      int64(config.DefaultHTTPClientMaxBodyMB) * 1024 * 1024,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
		EnableHTTP2:         true,
	}
}

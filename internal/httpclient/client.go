package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client. Every request is a single attempt.
type HTTPClient struct {
	client     *http.Client
	config     HTTPClientConfig
	logger     zerolog.Logger
	bufferPool sync.Pool
}

// NewHTTPClient creates a new HTTP client with the given configuration
func NewHTTPClient(cfg HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	logger = logger.With().Str("component", "HTTPClient").Logger()

	if cfg.MaxRedirects < 0 {
		return nil, common.NewValidationError("max_redirects", cfg.MaxRedirects, "must not be negative")
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: cfg.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	if cfg.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	if !cfg.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if cfg.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= cfg.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", cfg.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", cfg.Timeout).
		Bool("insecure_skip_verify", cfg.InsecureSkipVerify).
		Bool("follow_redirects", cfg.FollowRedirects).
		Int("max_redirects", cfg.MaxRedirects).
		Bool("http2_enabled", cfg.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: cfg,
		logger: logger,
		bufferPool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 32*1024)
				return &b
			},
		},
	}, nil
}

// Do performs a request and reads the whole body. Any status code is returned
// as a response; only transport and body read failures are errors, reported as
// *common.NetworkError.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, nil)
	if err != nil {
		return nil, common.NewNetworkError(req.URL, "failed to create HTTP request", err)
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if c.config.AcceptLanguage != "" && httpReq.Header.Get("Accept-Language") == "" {
		httpReq.Header.Set("Accept-Language", c.config.AcceptLanguage)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "*/*")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, common.NewNetworkError(req.URL, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	body, truncated, err := c.readBody(resp.Body)
	if err != nil {
		return nil, common.NewNetworkError(req.URL, "failed to read response body", err)
	}
	if truncated {
		c.logger.Warn().
			Str("url", req.URL).
			Int64("max_content_size", c.config.MaxContentSize).
			Msg("Response body exceeds limit, truncating")
	}

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
		Truncated:  truncated,
	}, nil
}

// Get performs a single GET request for url
func (c *HTTPClient) Get(ctx context.Context, url string) (*HTTPResponse, error) {
	return c.Do(&HTTPRequest{URL: url, Method: http.MethodGet, Context: ctx})
}

func (c *HTTPClient) readBody(body io.Reader) ([]byte, bool, error) {
	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := bytes.NewBuffer((*bufPtr)[:0])

	reader := body
	if c.config.MaxContentSize > 0 {
		reader = io.LimitReader(body, c.config.MaxContentSize+1)
	}
	if _, err := io.Copy(buf, reader); err != nil {
		return nil, false, err
	}

	truncated := false
	n := buf.Len()
	if c.config.MaxContentSize > 0 && int64(n) > c.config.MaxContentSize {
		n = int(c.config.MaxContentSize)
		truncated = true
	}

	out := make([]byte, n)
	copy(out, buf.Bytes()[:n])
	return out, truncated, nil
}

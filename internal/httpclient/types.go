package httpclient

import (
	"context"
	"net/http"
)

// HTTPRequest describes one outgoing request
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Context context.Context
}

// HTTPResponse is a fully read response
type HTTPResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	// Truncated is set when the body exceeded MaxContentSize.
	Truncated bool
}

// ContentType returns the Content-Type header value
func (r *HTTPResponse) ContentType() string {
	return r.Headers.Get("Content-Type")
}

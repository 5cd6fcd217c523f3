package browser

import (
	"context"
	"time"
)

// RenderOptions controls a single render
type RenderOptions struct {
	Screenshot bool
	// Timeout bounds the whole render. Zero uses the renderer default.
	Timeout time.Duration
}

// RenderResult is the rendered page
type RenderResult struct {
	HTML       string
	Screenshot []byte
}

// Renderer loads a URL in a browser and returns the rendered markup
type Renderer interface {
	Render(ctx context.Context, url string, opts RenderOptions) (*RenderResult, error)
}

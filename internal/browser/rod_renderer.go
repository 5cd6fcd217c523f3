package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

const defaultRenderTimeout = 30 * time.Second

// RodRenderer renders pages in headless Chromium. Every Render call launches
// its own browser process and tears it down before returning.
type RodRenderer struct {
	config         config.BrowserConfig
	logger         zerolog.Logger
	defaultTimeout time.Duration
}

// NewRodRenderer creates a renderer using the browser_config section
func NewRodRenderer(cfg config.BrowserConfig, defaultTimeout time.Duration, logger zerolog.Logger) *RodRenderer {
	if defaultTimeout <= 0 {
		defaultTimeout = defaultRenderTimeout
	}
	return &RodRenderer{
		config:         cfg,
		logger:         logger.With().Str("component", "RodRenderer").Logger(),
		defaultTimeout: defaultTimeout,
	}
}

// newLauncher prepares the launcher flags without starting a process
func (r *RodRenderer) newLauncher(ctx context.Context) *launcher.Launcher {
	l := launcher.New().Context(ctx).Headless(true)

	if r.config.BinaryPath != "" {
		l = l.Bin(r.config.BinaryPath)
	}
	if r.config.NoSandbox {
		l = l.Set("no-sandbox")
	}

	l = l.
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("disable-default-apps").
		Set("disable-sync").
		Set("incognito")

	if r.config.WindowWidth > 0 && r.config.WindowHeight > 0 {
		l = l.Set("window-size", fmt.Sprintf("%d,%d", r.config.WindowWidth, r.config.WindowHeight))
	}
	if lang := primaryLanguage(r.config.AcceptLanguage); lang != "" {
		l = l.Set("lang", lang)
	}

	return l
}

// Render loads url and returns its markup and, when requested, a full-page PNG.
// Any failure, including a timeout, is a *common.NetworkError.
func (r *RodRenderer) Render(ctx context.Context, url string, opts RenderOptions) (result *RenderResult, err error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = r.defaultTimeout
	}

	renderCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// rod reports some protocol faults by panicking
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = common.NewNetworkError(url, "browser session fault", fmt.Errorf("%v", rec))
		}
	}()

	l := r.newLauncher(renderCtx)
	defer l.Cleanup()
	defer l.Kill()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, common.NewNetworkError(url, "failed to launch browser", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(renderCtx)
	if err := browser.Connect(); err != nil {
		return nil, common.NewNetworkError(url, "failed to connect to browser", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			r.logger.Debug().Err(closeErr).Str("url", url).Msg("Failed to close browser")
		}
	}()

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, common.NewNetworkError(url, "failed to open incognito context", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, common.NewNetworkError(url, "failed to create page", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			r.logger.Debug().Err(closeErr).Str("url", url).Msg("Failed to close page")
		}
	}()

	r.preparePage(page)

	start := time.Now()
	if err := page.Navigate(url); err != nil {
		return nil, common.NewNetworkError(url, "failed to navigate", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, common.NewNetworkError(url, "page load timeout", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, common.NewNetworkError(url, "failed to get rendered HTML", err)
	}

	result = &RenderResult{HTML: html}
	if opts.Screenshot {
		shot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return nil, common.NewNetworkError(url, "failed to capture screenshot", err)
		}
		result.Screenshot = shot
	}

	r.logger.Debug().
		Str("url", url).
		Dur("duration", time.Since(start)).
		Int("html_size", len(html)).
		Bool("screenshot", opts.Screenshot).
		Msg("Rendered page")

	return result, nil
}

// primaryLanguage returns the first tag of an Accept-Language list
func primaryLanguage(acceptLanguage string) string {
	tag, _, _ := strings.Cut(acceptLanguage, ",")
	tag, _, _ = strings.Cut(tag, ";")
	return strings.TrimSpace(tag)
}

func (r *RodRenderer) preparePage(page *rod.Page) {
	if r.config.WindowWidth > 0 && r.config.WindowHeight > 0 {
		if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:  r.config.WindowWidth,
			Height: r.config.WindowHeight,
		}); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to set viewport")
		}
	}

	if r.config.UserAgent != "" || r.config.AcceptLanguage != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent:      r.config.UserAgent,
			AcceptLanguage: r.config.AcceptLanguage,
		}); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to set user agent")
		}
	}
}

package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/polisnap/internal/common"
	"github.com/aleister1102/polisnap/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRodRenderer_LauncherFlags(t *testing.T) {
	cfg := config.NewDefaultBrowserConfig()
	cfg.BinaryPath = "/opt/chromium/chrome"
	renderer := NewRodRenderer(cfg, 0, zerolog.Nop())

	l := renderer.newLauncher(context.Background())

	assert.True(t, l.Has("no-sandbox"))
	assert.True(t, l.Has("incognito"))
	assert.Equal(t, "1920,1080", l.Get("window-size"))
	assert.Equal(t, "en-US", l.Get("lang"))
	assert.Equal(t, defaultRenderTimeout, renderer.defaultTimeout)
}

func TestPrimaryLanguage(t *testing.T) {
	assert.Equal(t, "en-US", primaryLanguage("en-US,en"))
	assert.Equal(t, "fr", primaryLanguage(" fr;q=0.9, en"))
	assert.Equal(t, "", primaryLanguage(""))
}

func TestRodRenderer_SandboxKeptWhenConfigured(t *testing.T) {
	cfg := config.NewDefaultBrowserConfig()
	cfg.NoSandbox = false

	l := NewRodRenderer(cfg, time.Second, zerolog.Nop()).newLauncher(context.Background())
	assert.False(t, l.Has("no-sandbox"))
}

func TestRodRenderer_LaunchFailureIsNetworkError(t *testing.T) {
	cfg := config.NewDefaultBrowserConfig()
	cfg.BinaryPath = filepath.Join(t.TempDir(), "missing-chrome")
	renderer := NewRodRenderer(cfg, 5*time.Second, zerolog.Nop())

	result, err := renderer.Render(context.Background(), "https://example.com", RenderOptions{})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, common.IsNetworkError(err))
}

// Requires a local Chromium; enabled with POLISNAP_BROWSER_TESTS=1.
func TestRodRenderer_RenderLocalPage(t *testing.T) {
	if os.Getenv("POLISNAP_BROWSER_TESTS") == "" {
		t.Skip("set POLISNAP_BROWSER_TESTS=1 to run browser tests")
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p id="p">Privacy Policy</p><script>document.getElementById("p").textContent += " rendered"</script></body></html>`))
	}))
	defer server.Close()

	renderer := NewRodRenderer(config.NewDefaultBrowserConfig(), 30*time.Second, zerolog.Nop())
	result, err := renderer.Render(context.Background(), server.URL, RenderOptions{Screenshot: true})
	require.NoError(t, err)

	assert.Contains(t, result.HTML, "Privacy Policy rendered")
	assert.NotEmpty(t, result.Screenshot)
}

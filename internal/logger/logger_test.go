package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/polisnap/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	log, err := New(config.NewDefaultLogConfig(), false)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestBuilder_VerboseOverridesLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "warn"

	log, err := NewLoggerBuilder().WithConfig(cfg).WithVerbose(true).Build()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestBuilder_InvalidLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "loud"

	_, err := NewLoggerBuilder().WithConfig(cfg).Build()
	assert.Error(t, err)
}

func TestBuilder_JSONConsoleIncludesRunID(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	var buf bytes.Buffer

	log, err := NewLoggerBuilder().
		WithConfig(cfg).
		WithRunID("run-1").
		WithConsoleOutput(&buf).
		Build()
	require.NoError(t, err)

	log.Info().Str("url", "https://example.com").Msg("Saving privacy policy")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "https://example.com", entry["url"])
	assert.Equal(t, "info", entry["level"])
}

func TestBuilder_FileWriterUsesRunSubdir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "json"
	cfg.LogFile = filepath.Join(dir, "polisnap.log")

	log, err := NewWithRunID(cfg, false, "abc")
	require.NoError(t, err)
	log.Info().Msg("hello")

	content, err := os.ReadFile(filepath.Join(dir, "runs", "abc", "polisnap.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello")
}

func TestLogFormatParser(t *testing.T) {
	parser := NewLogFormatParser()
	assert.Equal(t, FormatJSON, parser.ParseFormat("JSON"))
	assert.Equal(t, FormatText, parser.ParseFormat("text"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("unknown"))
	assert.Equal(t, "console", FormatConsole.String())
}

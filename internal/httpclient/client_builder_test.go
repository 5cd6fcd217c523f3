package httpclient

import (
	"testing"
	"time"

	"github.com/aleister1102/polisnap/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientBuilder(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(15 * time.Second).
		WithUserAgent("test-agent").
		WithAcceptLanguage("fr-FR").
		WithFollowRedirects(false).
		WithInsecureSkipVerify(true).
		WithMaxRedirects(5).
		WithMaxContentSize(1024).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, client.config.Timeout)
	assert.Equal(t, "test-agent", client.config.UserAgent)
	assert.Equal(t, "fr-FR", client.config.AcceptLanguage)
	assert.False(t, client.config.FollowRedirects)
	assert.True(t, client.config.InsecureSkipVerify)
	assert.Equal(t, 5, client.config.MaxRedirects)
	assert.Equal(t, int64(1024), client.config.MaxContentSize)
}

func TestHTTPClientBuilder_WithConfig(t *testing.T) {
	section := config.NewDefaultHTTPClientConfig()
	section.MaxBodyMB = 2
	section.EnableHTTP2 = false

	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithConfig(section).Build()
	require.NoError(t, err)

	assert.Equal(t, int64(2*1024*1024), client.config.MaxContentSize)
	assert.False(t, client.config.EnableHTTP2)
	assert.Equal(t, "en-US,en", client.config.AcceptLanguage)
}

func TestHTTPClientBuilder_InvalidRedirects(t *testing.T) {
	_, err := NewHTTPClientBuilder(zerolog.Nop()).WithMaxRedirects(-1).Build()
	assert.Error(t, err)
}

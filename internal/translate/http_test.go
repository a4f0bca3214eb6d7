package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmikh/notes-keeper/internal/config"
	"github.com/ivmikh/notes-keeper/internal/logger"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc, timeout time.Duration) Provider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewHTTPProvider(config.Translation{
		APIURL:  srv.URL,
		APIKey:  "test-api-key",
		APIHost: "test-api-host",
		Timeout: timeout,
	}, logger.Nop())
	require.NoError(t, err)

	return p
}

func TestHTTPProvider_Translate(t *testing.T) {
	var gotReq translateRequest

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-api-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "test-api-host", r.Header.Get("x-rapidapi-host"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":{"translatedText":"Hello, world"}}}`))
	}, time.Second)

	got, err := p.Translate(context.Background(), "Привет, мир")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", got)
	assert.Equal(t, translateRequest{Q: "Привет, мир", Source: "ru", Target: "en"}, gotReq)
}

func TestHTTPProvider_Translate_NonSuccessStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}, time.Second)

	_, err := p.Translate(context.Background(), "Привет")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPProvider_Translate_MalformedPayload(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}, time.Second)

	_, err := p.Translate(context.Background(), "Привет")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestHTTPProvider_Translate_Timeout(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, 20*time.Millisecond)

	_, err := p.Translate(context.Background(), "Привет")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestHTTPProvider_Translate_ContextCancelled(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Translate(ctx, "Привет")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestNewHTTPProvider_InvalidURL(t *testing.T) {
	_, err := NewHTTPProvider(config.Translation{APIURL: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNewProviderFromConfig(t *testing.T) {
	t.Run("offline forced", func(t *testing.T) {
		p, err := NewProviderFromConfig(config.Translation{UseOffline: true, APIKey: "key"}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, offlineProvider{}, p)
	})

	t.Run("no api key falls back to offline", func(t *testing.T) {
		p, err := NewProviderFromConfig(config.Translation{APIURL: "https://example.com"}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, offlineProvider{}, p)
	})

	t.Run("http provider", func(t *testing.T) {
		p, err := NewProviderFromConfig(config.Translation{
			APIURL:  "https://example.com/translate",
			APIKey:  "key",
			APIHost: "example.com",
			Timeout: time.Second,
		}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &httpProvider{}, p)
	})
}

package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parts_harvester/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(maxAttempts int) *Client {
	return New(config.FetchConfig{
		Timeout:        2 * time.Second,
		MaxAttempts:    maxAttempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
}

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(3)

	params := url.Values{}
	params.Set("page", "1")

	body, err := client.Get(context.Background(), server.URL, params)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestGet_RetriesThenSucceeds(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := newTestClient(3)

	body, err := client.Get(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, 3, calls)
}

func TestGet_ExhaustsRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(3)

	body, err := client.Get(context.Background(), server.URL, nil)
	assert.Error(t, err)
	assert.Nil(t, body)
	assert.Equal(t, 3, calls)
}

func TestGet_NonOKStatusIsRetryable(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(2)

	_, err := client.Get(context.Background(), server.URL, nil)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestGet_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(config.FetchConfig{
		Timeout:        time.Second,
		MaxAttempts:    5,
		InitialBackoff: time.Minute,
		MaxBackoff:     time.Minute,
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.Get(ctx, server.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoff(t *testing.T) {
	client := New(config.FetchConfig{
		InitialBackoff: time.Second,
		MaxBackoff:     5 * time.Second,
		MaxAttempts:    10,
		Timeout:        time.Second,
	}, testLogger())

	assert.Equal(t, time.Second, client.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, client.calculateBackoff(2))
	assert.Equal(t, 4*time.Second, client.calculateBackoff(3))
	assert.Equal(t, 5*time.Second, client.calculateBackoff(4))
}

package images

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

func TestFetcher_EncodesBody(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	t.Cleanup(server.Close)
	url := server.URL + "/portrait.jpg"

	fetcher := NewFetcher(FetcherConfig{Timeout: 2 * time.Second, Logger: logging.NewNop()})

	got, err := fetcher.FetchImage(context.Background(), url)
	if err != nil {
		t.Fatalf("fetch image: %v", err)
	}
	if want := base64.StdEncoding.EncodeToString(payload); got != want {
		t.Fatalf("unexpected encoding: got %q want %q", got, want)
	}
}

func TestFetcher_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("img"))
	}))
	t.Cleanup(server.Close)

	fetcher := NewFetcher(FetcherConfig{Timeout: 2 * time.Second, MaxRetries: 1, Logger: logging.NewNop()})

	if _, err := fetcher.FetchImage(context.Background(), server.URL); err != nil {
		t.Fatalf("fetch image: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestFetcher_DoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	fetcher := NewFetcher(FetcherConfig{Timeout: 2 * time.Second, MaxRetries: 3, Logger: logging.NewNop()})

	if _, err := fetcher.FetchImage(context.Background(), server.URL); err == nil {
		t.Fatalf("expected error for 404")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestFetcher_RequiresURL(t *testing.T) {
	fetcher := NewFetcher(FetcherConfig{Logger: logging.NewNop()})

	if _, err := fetcher.FetchImage(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for blank url")
	}
}

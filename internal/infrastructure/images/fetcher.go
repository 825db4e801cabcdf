// Package images downloads player portrait images and encodes them for
// inline storage alongside the roster.
package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
	"github.com/volleyverse/fantasy-volley/internal/platform/resilience"
)

// maxImageBytes bounds a single portrait download.
const maxImageBytes = 1 << 20

var errImageTransient = crerr.New("image provider transient failure")

type FetcherConfig struct {
	HTTPClient     *http.Client
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Fetcher retrieves portrait images over HTTP and returns them
// base64-encoded.
type Fetcher struct {
	httpClient     *http.Client
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Fetcher{
		httpClient:     httpClient,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// FetchImage downloads the image at rawURL and returns it as a base64
// string suitable for inline transport.
func (f *Fetcher) FetchImage(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("image url is required")
	}

	if f.circuitEnabled {
		if err := f.breaker.Allow(); err != nil {
			return "", fmt.Errorf("image provider is temporarily unavailable: %w", err)
		}
	}

	raw, err := f.executeRequest(ctx, rawURL)
	if f.circuitEnabled {
		if err != nil && crerr.Is(err, errImageTransient) {
			f.breaker.RecordFailure()
		} else {
			f.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

func (f *Fetcher) executeRequest(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		raw, retryable, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable || attempt == f.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	f.logger.WarnContext(ctx, "portrait fetch failed", "url", rawURL, "error", lastErr)
	return nil, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: send request: %v", errImageTransient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxImageBytes)); err != nil {
		return nil, true, fmt.Errorf("%w: read response body: %v", errImageTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if retryableStatus(resp.StatusCode) {
			return nil, true, fmt.Errorf("%w: provider status=%d", errImageTransient, resp.StatusCode)
		}
		return nil, false, fmt.Errorf("provider status=%d", resp.StatusCode)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, false, nil
}

func retryableStatus(status int) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return status >= 500
}

// Package rosterapi is the HTTP client for the team-builder backend. It
// mirrors the wire format of the /api surface: plain JSON bodies on
// success and a single "detail" string on failure.
package rosterapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/volleyverse/fantasy-volley/internal/domain/lineup"
	"github.com/volleyverse/fantasy-volley/internal/domain/player"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
	"github.com/volleyverse/fantasy-volley/internal/platform/resilience"
	"github.com/volleyverse/fantasy-volley/internal/usecase"
)

const defaultBaseURL = "http://localhost:8000"

const maxResponseBytes = 6 << 20

var errRosterTransient = crerr.New("roster api transient failure")

// StatusError carries the backend's detail message for a non-2xx reply.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Detail) != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Account is the flat auth payload returned by signup and signin.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Lineup is a saved lineup resolved server-side against the catalog.
type Lineup struct {
	Players     map[lineup.Slot]*player.Player
	CreditsUsed int
	Remaining   int
}

// SaveSummary reports a successful lineup save.
type SaveSummary struct {
	Message     string `json:"message"`
	CreditsUsed int    `json:"creditsUsed"`
	Remaining   int    `json:"remaining"`
}

// ListOptions narrows a roster listing server-side.
type ListOptions struct {
	Position string
	Search   string
	SortBy   string
}

func (c *Client) SignUp(ctx context.Context, email, password, name string) (Account, error) {
	var account Account
	payload := map[string]string{"email": email, "password": password, "name": name}
	if err := c.doPost(ctx, "/api/auth/signup", "", payload, &account); err != nil {
		return Account{}, err
	}
	return account, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Account, error) {
	var account Account
	payload := map[string]string{"email": email, "password": password}
	if err := c.doPost(ctx, "/api/auth/signin", "", payload, &account); err != nil {
		return Account{}, err
	}
	return account, nil
}

func (c *Client) ListPlayers(ctx context.Context, token string, opts ListOptions) ([]player.Player, error) {
	query := url.Values{}
	if opts.Position != "" {
		query.Set("position", opts.Position)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.SortBy != "" {
		query.Set("sortBy", opts.SortBy)
	}

	var payload []playerPayload
	if err := c.doGet(ctx, "/api/players", query, token, &payload); err != nil {
		return nil, err
	}

	items := make([]player.Player, 0, len(payload))
	for _, item := range payload {
		items = append(items, item.toDomain())
	}
	return items, nil
}

func (c *Client) GetPlayer(ctx context.Context, token, playerID string) (player.Player, error) {
	trimmed := strings.TrimSpace(playerID)
	if trimmed == "" {
		return player.Player{}, fmt.Errorf("player id is required")
	}

	var payload playerPayload
	if err := c.doGet(ctx, "/api/players/"+url.PathEscape(trimmed), nil, token, &payload); err != nil {
		return player.Player{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) FetchLineup(ctx context.Context, token string) (Lineup, error) {
	var payload lineupPayload
	if err := c.doGet(ctx, "/api/lineup", nil, token, &payload); err != nil {
		return Lineup{}, err
	}
	return payload.toDomain(), nil
}

// SaveLineup submits the six slot assignments. It is deliberately
// single-shot: a retried save could double-apply a stale selection.
func (c *Client) SaveLineup(ctx context.Context, token string, playerIDs map[lineup.Slot]string) (SaveSummary, error) {
	payload := saveLineupPayload{}
	for slot, playerID := range playerIDs {
		trimmed := strings.TrimSpace(playerID)
		if trimmed == "" {
			continue
		}
		value := trimmed
		switch slot {
		case lineup.SlotSetter:
			payload.Setter = &value
		case lineup.SlotOutsideHitter:
			payload.OutsideHitter = &value
		case lineup.SlotOppositeHitter:
			payload.OppositeHitter = &value
		case lineup.SlotMiddleBlocker:
			payload.MiddleBlocker = &value
		case lineup.SlotLibero:
			payload.Libero = &value
		case lineup.SlotDefensiveSpecialist:
			payload.DefensiveSpecialist = &value
		default:
			return SaveSummary{}, fmt.Errorf("unknown lineup slot: %s", slot)
		}
	}

	var summary SaveSummary
	if err := c.doPost(ctx, "/api/lineup/save", token, payload, &summary); err != nil {
		return SaveSummary{}, err
	}
	return summary, nil
}

func (c *Client) SeedPlayers(ctx context.Context) (string, error) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := c.doPost(ctx, "/api/seed-players", "", struct{}{}, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func (c *Client) doGet(ctx context.Context, path string, query url.Values, token string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "roster api circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: team builder backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := fullURL + "|" + token
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeGet(ctx, fullURL, token)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errRosterTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}
	return nil
}

func (c *Client) executeGet(ctx context.Context, fullURL, token string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errRosterTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errRosterTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if retryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: backend status=%d", errRosterTransient, resp.StatusCode)
			} else {
				return nil, statusError(resp.StatusCode, raw)
			}
		}

		if attempt == c.maxRetries {
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

	if lastErr == nil {
		lastErr = fmt.Errorf("backend request failed")
	}
	c.logger.WarnContext(ctx, "roster api request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) doPost(ctx context.Context, path, token string, payload, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "roster api circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: team builder backend is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.circuitEnabled {
			c.breaker.RecordFailure()
		}
		return fmt.Errorf("%w: send request: %v", errRosterTransient, err)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		if c.circuitEnabled {
			c.breaker.RecordFailure()
		}
		return fmt.Errorf("%w: read response body: %v", errRosterTransient, readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.circuitEnabled {
			if retryableStatus(resp.StatusCode) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return statusError(resp.StatusCode, raw)
	}

	if c.circuitEnabled {
		c.breaker.RecordSuccess()
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode backend payload: %w", err)
	}
	return nil
}

func statusError(status int, raw []byte) error {
	var body struct {
		Detail string `json:"detail"`
	}
	_ = sonic.Unmarshal(raw, &body)
	return &StatusError{StatusCode: status, Detail: strings.TrimSpace(body.Detail)}
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

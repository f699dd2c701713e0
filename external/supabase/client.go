package supabase

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/gpbuil/fifa2026-new/internal/domain/prediction"
	"github.com/gpbuil/fifa2026-new/internal/domain/user"
	"github.com/gpbuil/fifa2026-new/internal/platform/logging"
	"github.com/gpbuil/fifa2026-new/internal/platform/resilience"
	"github.com/gpbuil/fifa2026-new/internal/usecase"
)

const (
	restPathPredictions = "/rest/v1/predictions"
	restPathUsers       = "/rest/v1/users"
	maxResponseBytes    = 6 << 20
)

var apikeyParamRegex = regexp.MustCompile(`apikey=[^&\s"']+`)
var errSupabaseTransient = crerr.New("supabase transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Supabase PostgREST endpoint that backs the pool's
// hosted deployment. It serves both the prediction rows and the user
// directory from their respective tables.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ prediction.Repository = (*Client)(nil)
var _ user.Directory = (*Client)(nil)

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL, err := validateHTTPBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, crerr.Wrap(err, "supabase base url")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

type predictionRow struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	MatchID   string    `json:"match_id"`
	ScoreA    int       `json:"score_a"`
	ScoreB    int       `json:"score_b"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type userRow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *Client) ListByUser(ctx context.Context, userID string) ([]prediction.Prediction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}

	var rows []predictionRow
	query := map[string]string{
		"user_id": "eq." + userID,
		"select":  "id,user_id,match_id,score_a,score_b,updated_at",
		"order":   "match_id.asc",
	}
	if err := c.getJSON(ctx, restPathPredictions, query, &rows); err != nil {
		return nil, err
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, prediction.Prediction{
			ID:        row.ID,
			UserID:    row.UserID,
			MatchID:   row.MatchID,
			ScoreA:    row.ScoreA,
			ScoreB:    row.ScoreB,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return out, nil
}

func (c *Client) ListUserIDs(ctx context.Context) ([]string, error) {
	var rows []predictionRow
	query := map[string]string{"select": "user_id"}
	if err := c.getJSON(ctx, restPathPredictions, query, &rows); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.UserID]; ok {
			continue
		}
		seen[row.UserID] = struct{}{}
		out = append(out, row.UserID)
	}
	sort.Strings(out)

	return out, nil
}

func (c *Client) Upsert(ctx context.Context, row prediction.Prediction) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	payload := []predictionRow{{
		ID:        row.ID,
		UserID:    row.UserID,
		MatchID:   row.MatchID,
		ScoreA:    row.ScoreA,
		ScoreB:    row.ScoreB,
		UpdatedAt: row.UpdatedAt,
	}}

	headers := map[string]string{
		"Prefer": "resolution=merge-duplicates,return=minimal",
	}
	query := map[string]string{"on_conflict": "user_id,match_id"}

	return c.postJSON(ctx, restPathPredictions, query, headers, payload)
}

func (c *Client) GetByID(ctx context.Context, id string) (user.Profile, bool, error) {
	if strings.TrimSpace(id) == "" {
		return user.Profile{}, false, fmt.Errorf("%w: user id is required", usecase.ErrInvalidInput)
	}

	var rows []userRow
	query := map[string]string{
		"id":     "eq." + id,
		"select": "id,name,email",
		"limit":  "1",
	}
	if err := c.getJSON(ctx, restPathUsers, query, &rows); err != nil {
		return user.Profile{}, false, err
	}
	if len(rows) == 0 {
		return user.Profile{}, false, nil
	}

	return user.Profile{ID: rows[0].ID, Name: rows[0].Name, Email: rows[0].Email}, true, nil
}

func (c *Client) ListAll(ctx context.Context) ([]user.Profile, error) {
	var rows []userRow
	query := map[string]string{
		"select": "id,name,email",
		"order":  "name.asc",
	}
	if err := c.getJSON(ctx, restPathUsers, query, &rows); err != nil {
		return nil, err
	}

	out := make([]user.Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, user.Profile{ID: row.ID, Name: row.Name, Email: row.Email})
	}

	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "supabase circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: prediction store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := buildRESTURL(c.baseURL, path, query)

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, http.MethodGet, fullURL, nil, nil)
		c.recordOutcome(reqErr)
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
		return fmt.Errorf("decode supabase payload: %w", err)
	}

	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, query map[string]string, headers map[string]string, payload any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "supabase circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: prediction store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return fmt.Errorf("encode supabase payload: %w", err)
	}

	fullURL := buildRESTURL(c.baseURL, path, query)

	_, reqErr := c.executeRequest(ctx, http.MethodPost, fullURL, buf.Bytes(), headers)
	c.recordOutcome(reqErr)

	return reqErr
}

func (c *Client) recordOutcome(err error) {
	if !c.circuitEnabled {
		return
	}
	if err != nil && isSupabaseCircuitFailure(err) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, body []byte, headers map[string]string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = strings.NewReader(string(body))
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSupabaseTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errSupabaseTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: supabase status=%d body=%s", errSupabaseTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("supabase status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
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
		lastErr = fmt.Errorf("supabase request failed")
	}
	c.logger.WarnContext(ctx, "supabase request failed", "url", redactRESTURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func buildRESTURL(baseURL, path string, query map[string]string) string {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	return fullURL
}

func isSupabaseCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSupabaseTransient) || stderrors.Is(err, context.DeadlineExceeded)
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gymslot/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token, empty when the user is not
// authenticated. Satisfied by session.Store.
type TokenSource interface {
	Token() string
}

// Client клиент для работы с booking backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenSource
	logger     *zerolog.Logger
}

// NewClient создает новый экземпляр клиента backend
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int, tokens TokenSource, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		tokens:  tokens,
		logger:  logger,
	}
}

// call describes one backend request.
type call struct {
	endpoint string // metrics label
	method   string
	path     string
	query    url.Values
	body     interface{}
	authed   bool
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func (c *Client) do(ctx context.Context, req call, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrNetwork, err)
	}

	token := ""
	if req.authed {
		token = c.tokens.Token()
		if token == "" {
			metrics.IncBackendRequest(req.endpoint, "unauthenticated")
			return ErrUnauthenticated
		}
	}

	fullURL := c.baseURL + req.path
	if len(req.query) > 0 {
		fullURL += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, fullURL, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrNetwork, err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("endpoint", req.endpoint).
		Str("method", req.method).
		Msg("Backend request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.IncBackendRequest(req.endpoint, "network_error")
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		metrics.IncBackendRequest(req.endpoint, "unauthenticated")
		return fmt.Errorf("%w: status %d", ErrUnauthenticated, resp.StatusCode)
	default:
		metrics.IncBackendRequest(req.endpoint, "upstream_error")
		var apiErr apiError
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.text() != "" {
			return fmt.Errorf("%w: %s (status %d)", ErrUpstream, apiErr.text(), resp.StatusCode)
		}
		return fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	if out != nil {
		if resp.StatusCode == http.StatusNoContent {
			metrics.IncBackendRequest(req.endpoint, "ok")
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.IncBackendRequest(req.endpoint, "decode_error")
			return fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
		}
	}

	metrics.IncBackendRequest(req.endpoint, "ok")
	return nil
}

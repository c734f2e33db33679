package backoffice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/benedict-erwin/agency-console/config"
	"github.com/benedict-erwin/agency-console/pkg/auth"
	"github.com/benedict-erwin/agency-console/pkg/logger"
	"github.com/benedict-erwin/agency-console/pkg/pager"
)

const (
	defaultTimeout          = 15 * time.Second
	defaultStatusTTL        = 10 * time.Minute
	defaultStatusMaxEntries = 32

	// maxBodySize caps how much of a response body is read
	maxBodySize = 8 << 20
)

// TokenProvider supplies the bearer token sent with every request
type TokenProvider interface {
	Token() (string, error)
}

// Options configures a Client
type Options struct {
	BaseURL          string
	Timeout          time.Duration
	Tokens           TokenProvider // nil sends no Authorization header
	StatusTTL        time.Duration
	StatusMaxEntries int
	HTTPClient       *http.Client
}

// Client talks to the back-office list API
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	tokens   TokenProvider
	statuses *expirable.LRU[string, []pager.StatusOption]
}

// envelope is the standard response wrapper of the back-office API
type envelope struct {
	Success   bool            `json:"success"`
	Code      int             `json:"code"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
}

// NewClient creates a client for the given base URL
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", opts.BaseURL)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = defaultStatusTTL
	}
	if opts.StatusMaxEntries <= 0 {
		opts.StatusMaxEntries = defaultStatusMaxEntries
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:  base,
		http:     httpClient,
		tokens:   opts.Tokens,
		statuses: expirable.NewLRU[string, []pager.StatusOption](opts.StatusMaxEntries, nil, opts.StatusTTL),
	}, nil
}

// NewFromConfig builds a client from the api and cache config sections
func NewFromConfig(cfg *config.Config) (*Client, error) {
	opts := Options{
		BaseURL:          cfg.API.BaseURL,
		Timeout:          config.Duration(cfg.API.Timeout, defaultTimeout),
		StatusTTL:        config.Duration(cfg.Cache.StatusTTL, defaultStatusTTL),
		StatusMaxEntries: cfg.Cache.StatusMaxEntries,
	}
	if cfg.API.ClientID != "" {
		opts.Tokens = auth.NewTokenSource(
			cfg.API.ClientID,
			cfg.API.SecretKey,
			config.Duration(cfg.API.TokenTTL, 15*time.Minute),
		)
	}
	return NewClient(opts)
}

// Get calls path relative to the base URL and decodes the envelope data into out.
// Transport failures come back as *pager.NetworkError, everything the server
// rejects as *pager.ServerError.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	log := logger.WithScope("backoffice")

	endpoint := c.baseURL.JoinPath(path)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("sign request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", endpoint.String()).Str("request_id", requestID).Msg("Request failed")
		return &pager.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &pager.NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	log.Debug().
		Str("url", endpoint.String()).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("latency", time.Since(start)).
		Msg("Request completed")

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serverErr := &pager.ServerError{Status: resp.StatusCode}
		if decodeErr == nil {
			serverErr.Code = env.Code
			serverErr.Message = env.Message
		}
		return serverErr
	}
	if decodeErr != nil {
		return fmt.Errorf("decode envelope: %w: %v", &pager.ServerError{Status: resp.StatusCode}, decodeErr)
	}
	if !env.Success {
		return &pager.ServerError{Status: resp.StatusCode, Code: env.Code, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w: %v", &pager.ServerError{Status: resp.StatusCode}, err)
	}
	return nil
}

// InvalidateStatuses drops every cached status list
func (c *Client) InvalidateStatuses() {
	c.statuses.Purge()
}

package courtapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"gavel/internal/config"
	"gavel/internal/logging"
)

const (
	defaultUserAgent   = "Gavel/dev"
	defaultHTTPTimeout = 30 * time.Second

	maxErrorBodyBytes = 4096
)

// Config describes the backend client configuration.
type Config struct {
	BaseURL    string
	APIToken   string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client wraps the court recording backend REST API.
type Client struct {
	baseURL   *url.URL
	token     string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("courtapi: base url is required")
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("courtapi: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		baseURL:   baseURL,
		token:     strings.TrimSpace(cfg.APIToken),
		userAgent: userAgent,
		http:      client,
		logger:    logging.WithComponent(logger, "courtapi"),
	}, nil
}

// NewFromConfig creates a Client from the application configuration.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("courtapi: config is nil")
	}
	return New(Config{
		BaseURL:  cfg.Backend.BaseURL,
		APIToken: cfg.Backend.APIToken,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Backend.RequestTimeout) * time.Second,
		},
		Logger: logger,
	})
}

// getJSON issues a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, operation, path string, out any) error {
	return c.roundTrip(ctx, operation, http.MethodGet, path, nil, out)
}

// sendJSON issues a request with a JSON body, decoding any JSON response into
// out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, operation, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("courtapi: encode %s request: %w", operation, err)
	}
	return c.roundTrip(ctx, operation, method, path, payload, out)
}

// deleteResource issues a DELETE request, ignoring any response body.
func (c *Client) deleteResource(ctx context.Context, operation, path string) error {
	return c.roundTrip(ctx, operation, http.MethodDelete, path, nil, nil)
}

func (c *Client) roundTrip(ctx context.Context, operation, method, path string, payload []byte, out any) error {
	if c == nil {
		return errors.New("courtapi: client is nil")
	}
	endpoint := c.baseURL.JoinPath(path)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("courtapi: build %s request: %w", operation, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	c.applyHeaders(req, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("op", operation),
			slog.String(logging.FieldRequestID, requestID),
			slog.Any("error", err))
		return fmt.Errorf("%w: %s: %w", ErrTransient, operation, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		slog.String("op", operation),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(started)),
		slog.String(logging.FieldRequestID, requestID))

	if resp.StatusCode >= 400 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &StatusError{
			Operation: operation,
			Status:    resp.StatusCode,
			Body:      strings.TrimSpace(string(excerpt)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("courtapi: decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) applyHeaders(req *http.Request, requestID string) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/animal-sounds/internal/model"
)

// Endpoint paths
const (
	SoundsPath  = "/get_sounds/"
	CallForPath = "/get_call_for"
	IndexPath   = "/"
	HealthPath  = "/health"
)

// HTTP constants
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"

	// MaxBodyBytes caps how much of a response body is read
	MaxBodyBytes = 1 << 20
)

// Client talks to the backend over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a per-request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL without a trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetSounds fetches GET /get_sounds/{animal}
func (c *Client) GetSounds(ctx context.Context, animal string) ([]string, error) {
	endpoint := c.baseURL + SoundsPath + url.PathEscape(animal)

	var resp model.SoundsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("get sounds for %q: %w", animal, err)
	}
	if resp.Sounds == nil {
		return []string{}, nil
	}
	return resp.Sounds, nil
}

// GetCallFor fetches POST /get_call_for
func (c *Client) GetCallFor(ctx context.Context, animal, sound string) (string, error) {
	payload, err := json.Marshal(model.CallForRequest{Animal: animal, Sound: sound})
	if err != nil {
		return "", fmt.Errorf("encode call-for request: %w", err)
	}

	var resp model.CallForResponse
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+CallForPath, payload, &resp); err != nil {
		return "", fmt.Errorf("get call-for for %q/%q: %w", animal, sound, err)
	}
	return resp.CallFor, nil
}

// Health fetches GET /health
func (c *Client) Health(ctx context.Context) (model.HealthResponse, error) {
	var resp model.HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+HealthPath, nil, &resp); err != nil {
		return model.HealthResponse{}, fmt.Errorf("health: %w", err)
	}
	return resp, nil
}

// ListAnimals fetches the index page and extracts the animal options
func (c *Client) ListAnimals(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+IndexPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}

	animals, err := ParseAnimalOptions(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}

// doJSON performs a request and decodes the JSON response into out
func (c *Client) doJSON(ctx context.Context, method, endpoint string, payload []byte, out any) error {
	body, err := c.do(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// do performs a request and returns the body of a 2xx response
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	if payload != nil {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", requestID, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("lookup request",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return nil, &StatusError{Method: method, URL: endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", requestID, err)
	}
	return body, nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beantz/labersaler/internal/client/tokenstore"
	"github.com/beantz/labersaler/internal/logging"
)

// DefaultTimeout bounds every call unless overridden per call.
const DefaultTimeout = 10 * time.Second

// Config holds the per-deployment settings of the API client.
type Config struct {
	// BaseURL is the backend endpoint, e.g. "http://192.168.0.105:3000".
	BaseURL string
	// Timeout applies to each call; zero means DefaultTimeout.
	Timeout time.Duration
	// DefaultHeaders are merged over the built-in Accept/Content-Type pair.
	DefaultHeaders map[string]string
}

// Caller is the request surface the domain services depend on.
// *Client satisfies it; tests provide fakes.
type Caller interface {
	Get(ctx context.Context, path string, opts ...CallOption) (*Response, error)
	Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error)
	Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error)
	Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error)
}

// Client is the single point of HTTP communication with the backend.
// It attaches the stored session token to every outgoing request, logs
// requests and responses, and turns failed responses into classified errors.
// Safe for concurrent use; in-flight calls are independent of each other.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	tokens  tokenstore.Store
	log     logging.Logger

	mu             sync.RWMutex
	defaultHeaders map[string]string
}

// New constructs a Client. Each call site receives the client by injection;
// there is no package-level instance.
func New(cfg Config, tokens tokenstore.Store, log logging.Logger) *Client {
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
	for k, v := range cfg.DefaultHeaders {
		headers[k] = v
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		timeout:        timeout,
		http:           &http.Client{},
		tokens:         tokens,
		log:            log,
		defaultHeaders: headers,
	}
}

// Response is a successful backend reply. Payload shapes vary per route and
// are decoded by the caller.
type Response struct {
	Status int
	Body   json.RawMessage
}

// Decode unmarshals the response body into v. An empty body is a no-op.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

type callConfig struct {
	timeout time.Duration
	headers map[string]string
}

// CallOption adjusts a single call.
type CallOption func(*callConfig)

// WithTimeout overrides the client's default timeout for one call.
func WithTimeout(d time.Duration) CallOption {
	return func(cc *callConfig) { cc.timeout = d }
}

// WithHeader sets an extra header for one call.
func WithHeader(key, value string) CallOption {
	return func(cc *callConfig) {
		if cc.headers == nil {
			cc.headers = map[string]string{}
		}
		cc.headers[key] = value
	}
}

func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, opts...)
}

// SetDefaultHeader sets a header applied to every subsequent request.
func (c *Client) SetDefaultHeader(key, value string) {
	c.mu.Lock()
	c.defaultHeaders[key] = value
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body any, opts ...CallOption) (*Response, error) {
	cc := callConfig{timeout: c.timeout}
	for _, o := range opts {
		o(&cc)
	}

	var reqBody io.Reader
	var contentType string
	switch b := body.(type) {
	case nil:
	case *Form:
		encoded, ct, err := b.Encode()
		if err != nil {
			return nil, fmt.Errorf("failed to encode multipart body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
		contentType = ct
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, cc.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.mu.RLock()
	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}
	c.mu.RUnlock()
	if contentType != "" {
		// Multipart bodies carry their own content type with the boundary.
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range cc.headers {
		req.Header.Set(k, v)
	}

	token, err := c.tokens.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := uuid.NewString()
	c.log.Debug(ctx, "api request", "id", reqID, "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "api transport failure", "id", reqID, "method", method, "path", path, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.log.Debug(ctx, "api response", "id", reqID, "status", resp.StatusCode, "path", path)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{Status: resp.StatusCode, Body: respBody}, nil
	}

	return nil, c.classify(ctx, path, resp.StatusCode, respBody)
}

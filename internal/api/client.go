// Package api is the single HTTP client for the wardrobe backend.
//
// Every page of the client goes through one Client: it owns the cookie jar,
// attaches the CSRF token to mutating requests, decodes the response envelope
// and turns failures into *APIError values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/wardrobe/internal/common"
	"github.com/Veraticus/wardrobe/internal/service"
)

const (
	csrfCookieName  = "csrftoken"
	csrfHeader      = "X-CSRFToken"
	requestIDHeader = "X-Request-Id"

	defaultTimeout = 30 * time.Second
	maxBodySize    = 16 << 20
)

// Client talks to the wardrobe backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        http.CookieJar
	store      service.SessionStore
	logger     *slog.Logger
	retryOpts  service.RetryOptions
	now        func() time.Time

	// cookies holds the backend's cookies with the attributes the jar hides.
	cookies map[string]*http.Cookie
	mu      sync.Mutex
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its cookie jar is replaced
// by the client's own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRetryOptions sets the retry policy for GET requests.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(c *Client) {
		c.retryOpts = opts
	}
}

// WithSessionStore persists session cookies between runs.
func WithSessionStore(store service.SessionStore) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL:    u,
		jar:        jar,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
		retryOpts:  service.DefaultRetryOptions(),
		now:        time.Now,
		cookies:    make(map[string]*http.Cookie),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Jar = c.jar

	return c, nil
}

// BaseURL returns the backend address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Host returns the backend host, which keys the saved session.
func (c *Client) Host() string {
	return c.baseURL.Host
}

// RestoreSession loads saved cookies into the jar. It is a no-op without a store.
func (c *Client) RestoreSession(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	cookies, err := c.store.Load(ctx, c.Host())
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	c.jar.SetCookies(c.baseURL, cookies)
	c.remember(cookies)
	c.logger.Debug("restored session", "host", c.Host(), "cookies", len(cookies))
	return nil
}

// remember merges cookies set by the backend, keeping their expiry.
// It reports whether anything changed.
func (c *Client) remember(set []*http.Cookie) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	changed := false
	for _, ck := range set {
		if ck == nil || ck.Name == "" {
			continue
		}
		kept := *ck
		if kept.MaxAge > 0 {
			kept.Expires = now.Add(time.Duration(kept.MaxAge) * time.Second)
			kept.MaxAge = 0
		}
		if ck.MaxAge < 0 || (!kept.Expires.IsZero() && !kept.Expires.After(now)) {
			if _, ok := c.cookies[ck.Name]; ok {
				delete(c.cookies, ck.Name)
				changed = true
			}
			continue
		}
		c.cookies[ck.Name] = &kept
		changed = true
	}
	return changed
}

// sessionCookies returns the remembered cookies that have not expired.
func (c *Client) sessionCookies() []*http.Cookie {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	out := make([]*http.Cookie, 0, len(c.cookies))
	for name, ck := range c.cookies {
		if !ck.Expires.IsZero() && !ck.Expires.After(now) {
			delete(c.cookies, name)
			continue
		}
		kept := *ck
		out = append(out, &kept)
	}
	return out
}

func (c *Client) saveSession(ctx context.Context) {
	if c.store == nil {
		return
	}
	cookies := c.sessionCookies()
	if len(cookies) == 0 {
		c.clearStore(ctx)
		return
	}
	if err := c.store.Save(ctx, c.Host(), cookies); err != nil {
		c.logger.Warn("failed to save session", "host", c.Host(), "error", err)
	}
}

func (c *Client) clearSession(ctx context.Context) {
	// Expire everything the jar holds for the backend.
	expired := make([]*http.Cookie, 0)
	for _, ck := range c.jar.Cookies(c.baseURL) {
		expired = append(expired, &http.Cookie{Name: ck.Name, Path: "/", MaxAge: -1})
	}
	c.jar.SetCookies(c.baseURL, expired)

	c.mu.Lock()
	c.cookies = make(map[string]*http.Cookie)
	c.mu.Unlock()

	c.clearStore(ctx)
}

func (c *Client) clearStore(ctx context.Context) {
	if c.store == nil {
		return
	}
	if err := c.store.Clear(ctx, c.Host()); err != nil {
		c.logger.Warn("failed to clear saved session", "host", c.Host(), "error", err)
	}
}

func (c *Client) csrfToken() string {
	for _, ck := range c.jar.Cookies(c.baseURL) {
		if ck.Name == csrfCookieName {
			return ck.Value
		}
	}
	return ""
}

// request describes one backend call.
type request struct {
	body        io.Reader
	method      string
	path        string
	contentType string
	size        int64
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

// do performs a single request and decodes its envelope.
func (c *Client) do(ctx context.Context, r request) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path), r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.size > 0 {
		req.ContentLength = r.size
	}
	if r.method != http.MethodGet {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(csrfHeader, token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("backend request",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start))

	// Rotated or refreshed cookies are persisted as soon as they arrive.
	if c.remember(resp.Cookies()) {
		c.saveSession(ctx)
	}

	return decodeEnvelope(resp.StatusCode, body)
}

// get performs an idempotent request, retrying transport failures and 5xx responses.
func (c *Client) get(ctx context.Context, path string) (*envelope, error) {
	var env *envelope
	err := common.WithRetry(ctx, func() error {
		var err error
		env, err = c.do(ctx, request{method: http.MethodGet, path: path})
		if err == nil {
			return nil
		}
		return classify(err)
	}, c.retryOpts)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// send performs a non-idempotent request with an optional JSON body.
func (c *Client) send(ctx context.Context, method, path string, payload any) (*envelope, error) {
	r := request{method: method, path: path}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		r.body = bytes.NewReader(data)
		r.contentType = "application/json"
	}
	return c.do(ctx, r)
}

// classify marks an error as retryable or not for common.WithRetry.
func classify(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusTooManyRequests {
			return &common.RetryableError{Err: fmt.Errorf("%w: %w", common.ErrRateLimit, apiErr), Retryable: true}
		}
		return &common.RetryableError{Err: apiErr, Retryable: apiErr.Temporary()}
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &common.RetryableError{Err: err, Retryable: true}
}

// Package backend is the panel's single client for the club's REST backend.
// Screens obtain a Client from a Builder bound to the request's token; nothing
// else in the panel constructs HTTP clients for the backend.
package backend

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
	"time"

	"clubadmin/internal/adapters/http/perf"
)

// TokenCookie is the cookie name the backend issues and expects.
const TokenCookie = "token"

// Client errors
var (
	// ErrTransport means no response was received from the backend.
	ErrTransport = errors.New("backend unreachable")
	// ErrNotFound means the backend answered 404 or returned an empty record.
	ErrNotFound = errors.New("not found")
	// ErrUnsuccessful means the backend answered 2xx with success:false.
	ErrUnsuccessful = errors.New("backend reported failure")
	// ErrUnauthorized means the current-user check did not identify an admin.
	ErrUnauthorized = errors.New("not authorized")
	// ErrNoToken means login succeeded but the backend issued no token.
	ErrNoToken = errors.New("backend issued no session token")
)

// APIError is a response the backend rejected, with its message when it sent one.
type APIError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.Path, e.Status)
}

// Is lets callers match a 404 against ErrNotFound and a success:false body against ErrUnsuccessful.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnsuccessful:
		return e.Status >= 200 && e.Status < 300
	}
	return false
}

// Message returns the backend's message carried by err, or fallback when there is none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// Builder configures backend clients. It is a value; each With method returns a copy.
type Builder struct {
	baseURL    string
	token      string
	httpClient *http.Client
	collector  *perf.Collector
}

// NewBuilder returns a builder for the backend at baseURL.
// PRE: baseURL is an absolute http(s) URL without trailing slash
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: strings.TrimRight(baseURL, "/"), httpClient: http.DefaultClient}
}

// WithToken binds the admin's token to the clients built next.
func (b Builder) WithToken(token string) Builder {
	b.token = token
	return b
}

// WithHTTPClient overrides the underlying transport client.
func (b Builder) WithHTTPClient(c *http.Client) Builder {
	if c != nil {
		b.httpClient = c
	}
	return b
}

// WithCollector records every backend call into the perf collector.
func (b Builder) WithCollector(c *perf.Collector) Builder {
	b.collector = c
	return b
}

// BaseURL returns the backend origin the builder targets.
func (b Builder) BaseURL() string {
	return b.baseURL
}

// Build returns a client carrying the bound token both as the token cookie and as a bearer header.
// POST: The returned client never retries and adds no timeout of its own
func (b Builder) Build() *Client {
	hc := *b.httpClient
	jar, _ := cookiejar.New(nil)
	if u, err := url.Parse(b.baseURL); err == nil && b.token != "" {
		jar.SetCookies(u, []*http.Cookie{{Name: TokenCookie, Value: b.token}})
	}
	hc.Jar = jar
	return &Client{
		baseURL:   b.baseURL,
		token:     b.token,
		http:      &hc,
		collector: b.collector,
	}
}

// Client talks to the backend on behalf of one admin request.
type Client struct {
	baseURL   string
	token     string
	http      *http.Client
	collector *perf.Collector
}

type response struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

// do sends one JSON request and returns the raw body of a successful response.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	resp, err := c.exchange(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

func (c *Client) exchange(ctx context.Context, method, path string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.record(method, path, 0, start)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	c.record(method, path, res.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrTransport, method, path, err)
	}

	var env struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &env)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &APIError{Status: res.StatusCode, Message: env.Message, Method: method, Path: path}
	}
	if env.Success != nil && !*env.Success {
		return nil, &APIError{Status: res.StatusCode, Message: env.Message, Method: method, Path: path}
	}
	return &response{status: res.StatusCode, body: raw, cookies: res.Cookies()}, nil
}

func (c *Client) record(method, path string, status int, start time.Time) {
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0
	slog.Debug("backend_call", "method", method, "path", path, "status", status, "duration_ms", durationMs)
	if c.collector == nil {
		return
	}
	c.collector.Record(perf.Entry{
		Kind:       perf.KindUpstream,
		Path:       method + " " + path,
		StatusCode: status,
		DurationMs: durationMs,
		Timestamp:  start,
	})
}

// list fetches a collection and unwraps whichever envelope the backend used.
func list[T any](ctx context.Context, c *Client, path string, fields ...string) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return DecodeList[T](body, fields...), nil
}

// get fetches one record.
func get[T any](ctx context.Context, c *Client, path string, fields ...string) (T, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return DecodeOne[T](body, fields...)
}

// send issues a mutation and returns the backend's message, if any.
func send(ctx context.Context, c *Client, method, path string, payload any) (string, error) {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return "", err
	}
	var env struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &env)
	return env.Message, nil
}

func escape(id string) string {
	return url.PathEscape(id)
}

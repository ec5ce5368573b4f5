package pagverde

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pagverde/pagverde-go/internal/debug"
)

// Version is the library release version, reported in the default User-Agent.
const Version = "1.2.0"

const (
	defaultUserAgent = "pagverde-go/" + Version
	contentTypeJSON  = "application/json"
)

// Client is the PagVerde API client. It holds the bearer token and the
// target environment and is safe for concurrent use; configuration changed
// through the setters applies to requests started afterwards.
type Client struct {
	mu                 sync.RWMutex
	token              string
	environment        Environment
	baseURL            string
	debug              bool
	decodeResponse     bool
	userAgent          string
	httpClient         *http.Client
	timeout            time.Duration
	idempotencyKeyFunc func() string
}

// Compile-time interface implementation check
var _ Requester = (*Client)(nil)

// New creates a client for the given bearer token. Without options it talks
// to Production and decodes response bodies. The underlying HTTP client has
// no timeout of its own; bound calls with a context deadline or WithTimeout.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:          token,
		environment:    Production,
		decodeResponse: true,
		userAgent:      defaultUserAgent,
		httpClient:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	// The timeout lands on whichever HTTP client the options installed.
	if c.timeout > 0 {
		c.httpClient.Timeout = c.timeout
	}
	return c
}

// Request describes a single API call. Resource services build these for
// you; use Do directly for endpoints the services do not cover yet.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string
	// Path is the endpoint path under the environment base URL, with or
	// without a leading slash, e.g. "/customers".
	Path string
	// Query is appended to the URL in order. Nil values and empty strings
	// are dropped; numeric zero is kept.
	Query []Param
	// Body is the payload for POST and PUT requests. Other methods never
	// send a body.
	Body Params
	// Multipart encodes a POST body as multipart/form-data instead of
	// JSON, with nested fields flattened to bracketed keys. PUT requests
	// always send JSON.
	Multipart bool
	// Headers are added on top of the standard header set without
	// replacing it.
	Headers http.Header
	// IdempotencyKey is sent as the Idempotency-Key header on mutating
	// requests, overriding the client-level generator for this call.
	IdempotencyKey string
}

// Do executes req against the configured environment and classifies the
// outcome: a 2xx response is returned as *Response, anything else becomes a
// nil response and an *APIError carrying the platform's message.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.run(ctx, req, c.DecodeResponse())
}

func (c *Client) run(ctx context.Context, req *Request, decode bool) (*Response, error) {
	res, err := c.execute(ctx, req, decode)
	if err != nil {
		return nil, err
	}
	if err := classifyResponse(res); err != nil {
		return nil, err
	}
	return res, nil
}

// execute performs the HTTP round trip without classifying the status code.
// It returns a *Response for every answer the server gives, reserving errors
// for configuration, encoding and transport failures.
func (c *Client) execute(ctx context.Context, req *Request, decode bool) (*Response, error) {
	if req == nil {
		return nil, &ConfigError{Reason: "nil request"}
	}
	if req.Method == "" {
		return nil, &ConfigError{Reason: "request method is required"}
	}

	url, err := c.requestURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	body, contentType, err := requestBody(req)
	if err != nil {
		return nil, err
	}
	if contentType == "" {
		contentType = contentTypeJSON
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, bodyReader)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	c.setHeaders(httpReq, req, contentType)

	debugEnabled := c.debugForContext(ctx)
	start := time.Now()

	resp, err := c.doHTTP(httpReq)
	if err != nil {
		if debugEnabled {
			slog.Debug("request failed", "method", req.Method, "url", url, "error", err)
		}
		return nil, &TransportError{Err: err}
	}
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}
	elapsed := time.Since(start)

	res := newResponse(raw, resp.StatusCode, decode)
	if debugEnabled {
		slog.Debug("request complete", "method", req.Method, "url", url, "status", resp.StatusCode, "duration", elapsed)
		res.Info = &RequestInfo{
			Method:         req.Method,
			URL:            url,
			Status:         resp.StatusCode,
			TotalTime:      elapsed.Seconds(),
			RequestHeaders: httpReq.Header.Clone(),
		}
	}
	return res, nil
}

// requestURL joins the effective base URL, the normalized path and the
// encoded query string.
func (c *Client) requestURL(path string, query []Param) (string, error) {
	base, err := c.baseEndpoint()
	if err != nil {
		return "", err
	}
	if path != "" && path[0] != '/' {
		path = "/" + path
	}
	return base + path + encodeQuery(query), nil
}

// baseEndpoint returns the WithBaseURL override when set, otherwise the
// configured environment's URL.
func (c *Client) baseEndpoint() (string, error) {
	c.mu.RLock()
	override, env := c.baseURL, c.environment
	c.mu.RUnlock()
	if override != "" {
		return strings.TrimSuffix(override, "/"), nil
	}
	return env.BaseURL()
}

// requestBody encodes the payload. Only POST and PUT carry a body, and
// multipart is honored for POST only; a multipart PUT falls back to JSON.
// The returned content type is empty for JSON so the caller applies the
// default.
func requestBody(req *Request) ([]byte, string, error) {
	if req.Body == nil {
		return nil, "", nil
	}
	switch req.Method {
	case http.MethodPost:
		if req.Multipart {
			return encodeMultipart(req.Body)
		}
	case http.MethodPut:
	default:
		return nil, "", nil
	}
	data, err := encodeJSON(req.Body)
	if err != nil {
		return nil, "", err
	}
	return data, "", nil
}

// setHeaders applies the standard header set, then merges per-request
// headers additively so callers can stack values without clobbering ours.
func (c *Client) setHeaders(httpReq *http.Request, req *Request, contentType string) {
	c.mu.RLock()
	token, userAgent := c.token, c.userAgent
	c.mu.RUnlock()

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("Content-Type", contentType)
	if userAgent != "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}
	if key := c.requestIdempotencyKey(req); key != "" && mutatingMethod(req.Method) {
		httpReq.Header.Set("Idempotency-Key", key)
	}
	for name, values := range req.Headers {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}
}

func (c *Client) requestIdempotencyKey(req *Request) string {
	if req.IdempotencyKey != "" {
		return req.IdempotencyKey
	}
	c.mu.RLock()
	fn := c.idempotencyKeyFunc
	c.mu.RUnlock()
	if fn != nil {
		return fn()
	}
	return ""
}

func mutatingMethod(method string) bool {
	return method != http.MethodGet && method != http.MethodHead && method != http.MethodOptions
}

func (c *Client) doHTTP(req *http.Request) (*http.Response, error) {
	c.mu.RLock()
	hc := c.httpClient
	c.mu.RUnlock()
	return hc.Do(req)
}

// debugForContext resolves the debug flag for one call: a context override
// set through ContextWithDebug wins over the client configuration.
func (c *Client) debugForContext(ctx context.Context) bool {
	if enabled, ok := debug.FromContext(ctx); ok {
		return enabled
	}
	return c.Debug()
}

// Get performs a GET request against path with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, query ...Param) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetRaw performs a GET request without decoding the response, leaving
// Response.Body as the raw string on success. Failed responses are still
// parsed so error classification keeps working.
func (c *Client) GetRaw(ctx context.Context, path string, query ...Param) (*Response, error) {
	return c.run(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, false)
}

// Post performs a JSON POST request with the given payload.
func (c *Client) Post(ctx context.Context, path string, body Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostMultipart performs a multipart/form-data POST request. Nested payload
// fields are flattened to bracketed keys and Attachment values become file
// parts.
func (c *Client) PostMultipart(ctx context.Context, path string, body Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body, Multipart: true})
}

// Put performs a JSON PUT request with the given payload.
func (c *Client) Put(ctx context.Context, path string, body Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request against path with the given query
// parameters.
func (c *Client) Delete(ctx context.Context, path string, query ...Param) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

// Options performs an OPTIONS request, typically a CORS preflight check.
func (c *Client) Options(ctx context.Context, path string, headers http.Header) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodOptions, Path: path, Headers: headers})
}

// Ping reports whether the configured environment answers on its health
// endpoint. A reachable API that answers non-200 yields (false, nil);
// transport failures are returned as errors.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	res, err := c.execute(ctx, &Request{Method: http.MethodGet, Path: "/ping"}, false)
	if err != nil {
		return false, err
	}
	return res.HTTPCode == http.StatusOK, nil
}

// requireID guards resource calls that interpolate an ID into the path.
func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ConfigError{Reason: kind + " id is required"}
	}
	return nil
}

package pagverde

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

// Option configures a Client at construction time. Settings that need to
// change on a live client go through the Set* methods instead.
type Option func(*Client)

// WithEnvironment selects the target environment. The value is stored as
// given; a request against an unrecognized environment fails with a
// *ConfigError instead of being silently rerouted.
func WithEnvironment(env Environment) Option {
	return func(c *Client) { c.environment = env }
}

// WithBaseURL points the client at an explicit base URL instead of a named
// environment, e.g. a test server or a self-hosted gateway. Trailing slashes
// are trimmed.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to install a
// proxy or a custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout caps each request at d, applied to whichever HTTP client the
// final option set installs regardless of option order. The default client
// carries no timeout because payment captures can legitimately take long;
// prefer context deadlines for per-call control.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithDebug toggles debug logging and per-response Info capture for all
// requests. ContextWithDebug overrides it for a single call.
func WithDebug(enabled bool) Option {
	return func(c *Client) { c.debug = enabled }
}

// WithDecodeResponse controls whether successful response bodies are parsed
// into Response.Body. Disabled, a 200 body stays a raw string; failed
// responses are always parsed so error classification keeps working.
func WithDecodeResponse(enabled bool) Option {
	return func(c *Client) { c.decodeResponse = enabled }
}

// WithUserAgent overrides the default pagverde-go User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithIdempotencyKeyFunc installs a generator consulted for every mutating
// request that does not carry its own key. Return "" to skip the header.
func WithIdempotencyKeyFunc(fn func() string) Option {
	return func(c *Client) { c.idempotencyKeyFunc = fn }
}

// WithGeneratedIdempotencyKeys sends a random UUID as the Idempotency-Key of
// every mutating request, making blind retries safe.
func WithGeneratedIdempotencyKeys() Option {
	return WithIdempotencyKeyFunc(uuid.NewString)
}

// SetToken replaces the bearer token used by subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the configured bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetEnvironment retargets subsequent requests at env. Unrecognized values
// are rejected so a bad selector cannot leave the client pointing nowhere.
func (c *Client) SetEnvironment(env Environment) error {
	if !env.IsValid() {
		return &ConfigError{Reason: fmt.Sprintf("unknown environment %d", int(env))}
	}
	c.mu.Lock()
	c.environment = env
	c.mu.Unlock()
	return nil
}

// Environment returns the configured target environment.
func (c *Client) Environment() Environment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.environment
}

// SetDebug toggles debug logging for all subsequent requests.
func (c *Client) SetDebug(enabled bool) {
	c.mu.Lock()
	c.debug = enabled
	c.mu.Unlock()
}

// Debug reports whether client-level debug logging is on.
func (c *Client) Debug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.debug
}

// SetDecodeResponse toggles response body decoding for subsequent requests.
func (c *Client) SetDecodeResponse(enabled bool) {
	c.mu.Lock()
	c.decodeResponse = enabled
	c.mu.Unlock()
}

// DecodeResponse reports whether successful response bodies are decoded.
func (c *Client) DecodeResponse() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.decodeResponse
}

// envSpec mirrors the PAGVERDE_* environment variables read by NewFromEnv.
type envSpec struct {
	Token          string        `required:"true"`
	Environment    Environment   `default:"production"`
	BaseURL        string        `split_words:"true"`
	Debug          bool          `default:"false"`
	DecodeResponse bool          `default:"true" split_words:"true"`
	Timeout        time.Duration `default:"0"`
	UserAgent      string        `split_words:"true"`
}

// NewFromEnv builds a client from the environment:
//
//	PAGVERDE_TOKEN            bearer token (required)
//	PAGVERDE_ENVIRONMENT      production, local, sandbox, staging or 1-4
//	PAGVERDE_BASE_URL         explicit base URL override
//	PAGVERDE_DEBUG            enable debug logging
//	PAGVERDE_DECODE_RESPONSE  decode successful bodies (default true)
//	PAGVERDE_TIMEOUT          request timeout, e.g. "30s" (default none)
//	PAGVERDE_USER_AGENT       User-Agent override
func NewFromEnv() (*Client, error) {
	var spec envSpec
	if err := envconfig.Process("pagverde", &spec); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	opts := []Option{
		WithEnvironment(spec.Environment),
		WithDebug(spec.Debug),
		WithDecodeResponse(spec.DecodeResponse),
	}
	if spec.BaseURL != "" {
		opts = append(opts, WithBaseURL(spec.BaseURL))
	}
	if spec.Timeout > 0 {
		opts = append(opts, WithTimeout(spec.Timeout))
	}
	if spec.UserAgent != "" {
		opts = append(opts, WithUserAgent(spec.UserAgent))
	}
	return New(spec.Token, opts...), nil
}

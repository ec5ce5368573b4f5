package pagverde

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	client := New("tok")

	assert.Equal(t, "tok", client.Token())
	assert.Equal(t, Production, client.Environment())
	assert.True(t, client.DecodeResponse())
	assert.False(t, client.Debug())
	assert.Zero(t, client.httpClient.Timeout, "default client must not impose a timeout")
}

func TestOptions(t *testing.T) {
	hc := &http.Client{}
	client := New("tok",
		WithEnvironment(Sandbox),
		WithHTTPClient(hc),
		WithTimeout(15*time.Second),
		WithDebug(true),
		WithDecodeResponse(false),
		WithUserAgent("conta-azul/2.1"),
	)

	assert.Equal(t, Sandbox, client.Environment())
	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
	assert.True(t, client.Debug())
	assert.False(t, client.DecodeResponse())
	assert.Equal(t, "conta-azul/2.1", client.userAgent)
}

func TestWithTimeoutAppliesToInstalledClient(t *testing.T) {
	hc := &http.Client{}
	client := New("tok", WithTimeout(10*time.Second), WithHTTPClient(hc))
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout,
		"timeout must survive a later WithHTTPClient")

	hc2 := &http.Client{}
	client = New("tok", WithHTTPClient(hc2), WithTimeout(10*time.Second))
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
}

func TestWithEnvironmentStoredAsGiven(t *testing.T) {
	client := New("tok", WithEnvironment(Environment(42)))
	assert.Equal(t, Environment(42), client.Environment())

	_, err := client.Get(context.Background(), "/ping")
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestSetEnvironment(t *testing.T) {
	client := New("tok")

	require.NoError(t, client.SetEnvironment(Staging))
	assert.Equal(t, Staging, client.Environment())

	err := client.SetEnvironment(Environment(42))
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, Staging, client.Environment(), "invalid selector must not change the environment")
}

func TestSetters(t *testing.T) {
	client := New("tok")

	client.SetToken("rotated")
	assert.Equal(t, "rotated", client.Token())

	client.SetDebug(true)
	assert.True(t, client.Debug())

	client.SetDecodeResponse(false)
	assert.False(t, client.DecodeResponse())
}

func TestSetTokenAffectsRequests(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.SetToken("rotated")

	_, err := client.Get(context.Background(), "/company")
	require.NoError(t, err)
	assert.Equal(t, "Bearer rotated", auth)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PAGVERDE_TOKEN", "env-token")
	t.Setenv("PAGVERDE_ENVIRONMENT", "sandbox")
	t.Setenv("PAGVERDE_DEBUG", "true")
	t.Setenv("PAGVERDE_DECODE_RESPONSE", "false")
	t.Setenv("PAGVERDE_TIMEOUT", "45s")
	t.Setenv("PAGVERDE_USER_AGENT", "faturamento/9")

	client, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env-token", client.Token())
	assert.Equal(t, Sandbox, client.Environment())
	assert.True(t, client.Debug())
	assert.False(t, client.DecodeResponse())
	assert.Equal(t, 45*time.Second, client.httpClient.Timeout)
	assert.Equal(t, "faturamento/9", client.userAgent)
}

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("PAGVERDE_TOKEN", "env-token")

	client, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, Production, client.Environment())
	assert.True(t, client.DecodeResponse())
	assert.False(t, client.Debug())
	assert.Zero(t, client.httpClient.Timeout)
}

func TestNewFromEnvNumericSelector(t *testing.T) {
	t.Setenv("PAGVERDE_TOKEN", "env-token")
	t.Setenv("PAGVERDE_ENVIRONMENT", "3")

	client, err := NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Sandbox, client.Environment())
}

func TestNewFromEnvMissingToken(t *testing.T) {
	// t.Setenv registers the restore; unsetting afterwards leaves the
	// variable absent for the test body, which is what required needs.
	t.Setenv("PAGVERDE_TOKEN", "")
	_ = os.Unsetenv("PAGVERDE_TOKEN")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestNewFromEnvBaseURLOverride(t *testing.T) {
	t.Setenv("PAGVERDE_TOKEN", "env-token")
	t.Setenv("PAGVERDE_BASE_URL", "http://127.0.0.1:9000/api")

	client, err := NewFromEnv()
	require.NoError(t, err)

	url, err := client.requestURL("/ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/api/ping", url)
}

func TestNewFromEnvInvalidEnvironment(t *testing.T) {
	t.Setenv("PAGVERDE_TOKEN", "env-token")
	t.Setenv("PAGVERDE_ENVIRONMENT", "qa")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

package pagverde

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment selects the deployment target the client talks to. The
// numeric values match the selectors used by the platform configuration.
type Environment int

const (
	// Production is the live API. Default for new clients.
	Production Environment = iota + 1
	// Local points at a locally running API instance.
	Local
	// Sandbox is the integration-testing environment. No real money moves.
	Sandbox
	// Staging is the pre-release "dusk" environment.
	Staging
)

// Base URLs by environment, all under the fixed /api prefix.
var environmentBaseURLs = map[Environment]string{
	Production: "https://api.pagverde.com.br/api",
	Local:      "http://localhost:8000/api",
	Sandbox:    "https://sandbox.pagverde.com.br/api",
	Staging:    "https://dusk.pagverde.com.br/api",
}

// IsValid reports whether e is one of the recognized environments.
func (e Environment) IsValid() bool {
	_, ok := environmentBaseURLs[e]
	return ok
}

// BaseURL returns the API base URL for the environment. The setters keep
// unknown values out of the client, so a failure here means the Environment
// was forged; it is reported as a *ConfigError rather than guessed around.
func (e Environment) BaseURL() (string, error) {
	base, ok := environmentBaseURLs[e]
	if !ok {
		return "", &ConfigError{Reason: fmt.Sprintf("unknown environment %d", int(e))}
	}
	return base, nil
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Local:
		return "local"
	case Sandbox:
		return "sandbox"
	case Staging:
		return "staging"
	}
	return fmt.Sprintf("environment(%d)", int(e))
}

// UnmarshalText parses an environment from its name, a common alias or the
// numeric selector ("1" through "4"). It implements encoding.TextUnmarshaler
// so PAGVERDE_ENVIRONMENT can be decoded by envconfig.
func (e *Environment) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch s {
	case "production", "prod", "live":
		*e = Production
	case "local", "dev", "development":
		*e = Local
	case "sandbox", "test":
		*e = Sandbox
	case "staging", "dusk":
		*e = Staging
	default:
		n, err := strconv.Atoi(s)
		if err != nil || !Environment(n).IsValid() {
			return &ConfigError{Reason: fmt.Sprintf("unknown environment %q", s)}
		}
		*e = Environment(n)
	}
	return nil
}

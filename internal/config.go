package internal

import "time"

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.sendkit.com"

	// APIKeyEnv is the environment variable consulted when no explicit key is given.
	APIKeyEnv = "SENDKIT_API_KEY"
)

// Config holds client configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"SENDKIT_API_KEY"`
	BaseURL string        `env:"SENDKIT_BASE_URL" envDefault:"https://api.sendkit.com"`
	Timeout time.Duration `env:"SENDKIT_TIMEOUT" envDefault:"0s"`
}

// LookupFunc reports the value of an environment variable.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ResolveAPIKey picks the API key for a new client.
// A non-empty explicit key always wins; otherwise APIKeyEnv is read through lookup.
// Returns ErrMissingAPIKey when both are empty.
func ResolveAPIKey(explicit string, lookup LookupFunc) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if lookup != nil {
		if key, ok := lookup(APIKeyEnv); ok && key != "" {
			return key, nil
		}
	}
	return "", ErrMissingAPIKey
}

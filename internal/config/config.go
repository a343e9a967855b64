package config

import "github.com/tradelab/fyers-auth/internal/env"

// Fallback credentials for when the environment provides none. These belong
// to the app registered for local development.
const (
	defaultClientID    = "GBJMHA44CH-100"
	defaultSecretKey   = "YW543H05CG"
	defaultRedirectURI = "https://www.google.com/"
)

// Credentials holds the Fyers app identity used for the login flow. Loaded
// once at startup and immutable afterwards.
type Credentials struct {
	ClientID    string
	SecretKey   string
	RedirectURI string
}

// Load reads credentials from the environment, falling back to the baked-in
// development defaults.
func Load() Credentials {
	return Credentials{
		ClientID:    env.GetOrDefault("FYERS_CLIENT_ID", defaultClientID),
		SecretKey:   env.GetOrDefault("FYERS_SECRET_KEY", defaultSecretKey),
		RedirectURI: env.GetOrDefault("FYERS_REDIRECT_URI", defaultRedirectURI),
	}
}

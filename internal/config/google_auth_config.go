package config

import "os"

type GGAuthConfig struct {
	// AllowedDomain restricts Google sign-in to one email domain when
	// set, for example "example.com". Empty allows any account.
	AllowedDomain string
	RedirectURL   string
}

func NewGGAuthConfig() *GGAuthConfig {
	return &GGAuthConfig{
		AllowedDomain: os.Getenv("GOOGLE_ALLOWED_DOMAIN"),
		RedirectURL:   getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8082/auth/callback"),
	}
}

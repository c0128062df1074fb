package config

import (
	"os"
	"strconv"
	"strings"
)

// API holds the backend API service configuration, loaded once at startup.
type API struct {
	DatabaseURL string
	APIKey      string
	CorsOrigins []string
}

// Web holds the relay service configuration, loaded once at startup.
type Web struct {
	BackendBase       string
	BackendKey        string
	SessionSecret     string
	SessionIssuer     string
	AdminUID          string
	SessionTTLSeconds int
	CookieSecure      bool
}

func LoadAPI() API {
	return API{
		DatabaseURL: mustEnv("DATABASE_URL"),
		APIKey:      mustEnv("API_KEY"),
		CorsOrigins: parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func LoadWeb() Web {
	return Web{
		BackendBase:       envOr("INTERNAL_API_BASE", "http://localhost:4000"),
		BackendKey:        mustEnv("INTERNAL_API_KEY"),
		SessionSecret:     mustEnv("SESSION_SECRET"),
		SessionIssuer:     envOr("SESSION_ISSUER", "folio"),
		AdminUID:          mustEnv("ADMIN_UID"),
		SessionTTLSeconds: envOrInt("SESSION_TTL_SECONDS", 172800),
		CookieSecure:      envOrBool("COOKIE_SECURE", false),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}

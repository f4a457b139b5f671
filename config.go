package main

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

// config is read from the environment after godotenv has loaded .env.
type config struct {
	Host           string
	Port           string
	AllowedOrigins []string
	SessionTTL     time.Duration
}

const (
	defaultHost       = "localhost"
	defaultPort       = "3000"
	defaultSessionTTL = 12 * time.Hour
)

// loadConfig reads HOST, PORT, CORS_ALLOWED_ORIGINS and SESSION_TTL, falling
// back to defaults for anything unset.
func loadConfig() (config, error) {
	cfg := config{
		Host:           envOr("HOST", defaultHost),
		Port:           envOr("PORT", defaultPort),
		AllowedOrigins: []string{"*"},
		SessionTTL:     defaultSessionTTL,
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("parse SESSION_TTL: %w", err)
		}
		if ttl <= 0 {
			return config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", v)
		}
		cfg.SessionTTL = ttl
	}

	return cfg, nil
}

func (c config) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

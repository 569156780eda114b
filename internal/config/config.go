package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mentorhub/internal/pkg/email"
)

const (
	defaultPort        = "8080"
	defaultJWTTTL      = "24h"
	defaultSMTPTimeout = "10s"
	defaultCORSOrigins = "http://localhost:3000"
)

// Config is the process configuration, loaded from the environment.
// DATABASE_URL, JWT_SECRET and the video credentials are mandatory,
// SMTP is optional: without it booking confirmations are skipped and
// surfaced as warnings.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	VideoAppID       string
	VideoCertificate string

	CORSOrigins []string

	SMTP email.Config
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", defaultPort),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		VideoAppID:       strings.TrimSpace(os.Getenv("VIDEO_APP_ID")),
		VideoCertificate: strings.TrimSpace(os.Getenv("VIDEO_APP_CERTIFICATE")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.VideoAppID == "" || cfg.VideoCertificate == "" {
		return nil, fmt.Errorf("VIDEO_APP_ID and VIDEO_APP_CERTIFICATE are required")
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.CORSOrigins = strings.Split(getEnv("CORS_ORIGINS", defaultCORSOrigins), ",")
	for i := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(cfg.CORSOrigins[i])
	}

	cfg.SMTP = email.Config{
		Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "no-reply@mentorhub.local"),
	}
	if port := strings.TrimSpace(os.Getenv("SMTP_PORT")); port != "" {
		cfg.SMTP.Port, err = strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("SMTP_PORT: %w", err)
		}
	}
	cfg.SMTP.Timeout, err = parseDurationEnv("SMTP_TIMEOUT", defaultSMTPTimeout)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

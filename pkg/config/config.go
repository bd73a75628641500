package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	JWTTTLHours int

	// AppURL is the public frontend address used in notification links.
	AppURL string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// NotifyBuffer caps the outbound notification queue; events beyond it
	// are dropped (delivery is at-most-once-attempted).
	NotifyBuffer int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:    getEnv("JWT_ISSUER", "snippet-vault"),
		JWTTTLHours:  getEnvInt("JWT_TTL_HOURS", 7*24),
		AppURL:       getEnv("APP_URL", "http://localhost:3000"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		NotifyBuffer: getEnvInt("NOTIFY_BUFFER", 128),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

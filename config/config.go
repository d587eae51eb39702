package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// DBUrl selects the store: empty means in-memory, otherwise Postgres.
	DBUrl string

	CORSAllowedOrigins []string

	AdminEmail       string
	EmailProvider    string
	EmailFromAddress string
	EmailFromName    string

	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string

	CalendarProvider   string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleTokenFile    string
	GoogleCalendarID   string
}

// Load loads configuration from environment variables. Outside production it
// first reads a .env file when one exists.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env usually does not exist; system env vars are enough.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		DBUrl:       os.Getenv("DATABASE_URL"),

		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		EmailProvider:    os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:    os.Getenv("EMAIL_FROM_NAME"),

		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),

		CalendarProvider:   os.Getenv("CALENDAR_PROVIDER"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleTokenFile:    os.Getenv("GOOGLE_TOKEN_FILE"),
		GoogleCalendarID:   os.Getenv("GOOGLE_CALENDAR_ID"),
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		cfg.CORSAllowedOrigins = strings.Split(raw, ",")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.CalendarProvider == "" {
		cfg.CalendarProvider = "noop"
	}
	if cfg.EmailFromName == "" {
		cfg.EmailFromName = "EventDesk"
	}

	return cfg, nil
}

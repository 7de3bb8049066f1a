package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// SMTP
	SMTPHost      string
	SMTPPort      int
	SMTPTLS       string // "tls" (implicit, port 465), "starttls", or "none"
	SenderEmail   string
	SenderPass    string
	SenderName    string
	OperatorEmail string // lead notifications go here; defaults to SenderEmail

	// Record store
	RedisURL string

	// Dashboard demo
	DemoUserID string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Catalogue
	CatalogFile string // optional YAML override for the product catalogue

	// Logging
	LogLevel string

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Delstarford Works"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
	SiteLogoURL string // env: SITE_LOGO_URL, default: "" (no logo, text only)
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory or the project root is loaded first
// if present; real environment variables always win.
func Load() *Config {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 465),
		SMTPTLS:       getEnv("SMTP_TLS", "tls"),
		SenderEmail:   getEnv("SENDER_EMAIL", ""),
		SenderPass:    getEnv("SENDER_PASSWORD", ""),
		SenderName:    getEnv("SENDER_NAME", "Delstarford Works"),
		OperatorEmail: getEnv("OPERATOR_EMAIL", ""),
		RedisURL:      getEnv("REDIS_URL", ""),
		DemoUserID:    getEnv("DEMO_USER_ID", "user_123"),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),
		CatalogFile:   getEnv("CATALOG_FILE", "catalog.yaml"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		SiteTitle:   getEnv("SITE_TITLE", "Delstarford Works"),
		SiteTagline: getEnv("SITE_TAGLINE", "AI solutions engineered in Nairobi"),
		SiteFooter:  getEnv("SITE_FOOTER", "Delstarford Works - AI solutions engineered in Nairobi"),
		SiteLogoURL: getEnv("SITE_LOGO_URL", ""),
	}

	// Lead notifications default to the sender's own inbox, matching the
	// single-mailbox setup this site runs with.
	if cfg.OperatorEmail == "" {
		cfg.OperatorEmail = cfg.SenderEmail
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true when the SMTP sender identity is fully
// configured. When false, notification sends fail fast with a configuration
// error instead of an opaque transport failure.
func (c *Config) IsEmailEnabled() bool {
	return c.SenderEmail != "" && c.SenderPass != "" && c.SMTPHost != ""
}

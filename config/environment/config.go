package environment

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds every runtime setting, loaded once at startup and passed by
// reference into the services that need it. Business logic never reads the
// environment directly.
type Config struct {
	Port        string
	Env         string
	FrontendURI string

	MongoURI      string
	MongoDatabase string

	JWTSecret      string
	JWTExpiresDays int

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads configuration from the environment and validates the values the
// core cannot run without.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		Env:         fallback(os.Getenv("APP_ENV"), "development"),
		FrontendURI: fallback(os.Getenv("FRONTEND_URI"), "http://localhost:3000"),

		MongoURI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase: fallback(os.Getenv("MONGO_DATABASE"), "portfolio"),

		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),

		CloudinaryName:      strings.TrimSpace(os.Getenv("CLOUDINARY_NAME")),
		CloudinaryAPIKey:    strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
		CloudinaryAPISecret: strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),

		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:     fallback(os.Getenv("SMTP_PORT"), "465"),
		SMTPUsername: strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword: strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		SMTPFrom:     strings.TrimSpace(os.Getenv("SMTP_FROM")),
	}

	days, err := strconv.Atoi(strings.TrimSpace(os.Getenv("JWT_EXPIRES")))
	if err != nil || days <= 0 {
		return nil, errors.New("JWT_EXPIRES must be a positive number of days")
	}
	cfg.JWTExpiresDays = days

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsProduction gates the Secure/SameSite=None cookie attributes.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

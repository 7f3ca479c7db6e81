// Package config loads the portfolio server configuration from environment
// variables. A .env file in the working directory is read first when present.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every configuration value the server needs.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Seed     SeedConfig
	Content  ContentConfig
	Web      WebConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig points at the single SQLite file.
type DatabaseConfig struct {
	Path string // e.g. ./data/portfolio.db
}

// SessionConfig controls the admin session cookie.
type SessionConfig struct {
	Secret     string // signs the session cookie
	Generated  bool   // true when Secret was generated at startup
	Expiry     time.Duration
	CookieName string
	Secure     bool
	BcryptCost int
}

// SeedConfig is the admin account created on first run.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	AdminFullName string
}

// ContentConfig holds content defaults applied on create.
type ContentConfig struct {
	DefaultAuthor       string
	DefaultProjectImage string
	DefaultCertImage    string
}

// WebConfig locates the HTML pages and static assets.
type WebConfig struct {
	PagesDir  string
	StaticDir string
}

// CORSConfig lists the origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load builds a Config from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	expiryHours, err := strconv.Atoi(getEnv("SESSION_EXPIRY_HOURS", "168"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_EXPIRY_HOURS: %w", err)
	}
	if expiryHours <= 0 {
		return nil, fmt.Errorf("SESSION_EXPIRY_HOURS must be positive")
	}

	secure, err := strconv.ParseBool(getEnv("SESSION_COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %w", err)
	}

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	pretty, err := strconv.ParseBool(getEnv("LOG_PRETTY", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_PRETTY: %w", err)
	}

	// No SECRET_KEY means a fresh random secret per process; sessions die
	// with the process.
	secret := getEnv("SECRET_KEY", "")
	generated := false
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate SECRET_KEY: %w", err)
		}
		generated = true
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/portfolio.db"),
		},
		Session: SessionConfig{
			Secret:     secret,
			Generated:  generated,
			Expiry:     time.Duration(expiryHours) * time.Hour,
			CookieName: getEnv("SESSION_COOKIE_NAME", "portfolio_session"),
			Secure:     secure,
			BcryptCost: bcryptCost,
		},
		Seed: SeedConfig{
			AdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@vishal.com"),
			AdminFullName: getEnv("SEED_ADMIN_FULL_NAME", "Admin User"),
		},
		Content: ContentConfig{
			DefaultAuthor:       getEnv("BLOG_DEFAULT_AUTHOR", "Vishal Kumar"),
			DefaultProjectImage: getEnv("DEFAULT_PROJECT_IMAGE", "/static/images/default-project.jpg"),
			DefaultCertImage:    getEnv("DEFAULT_CERT_IMAGE", "/static/images/default-cert.jpg"),
		},
		Web: WebConfig{
			PagesDir:  getEnv("PAGES_DIR", "./web/templates"),
			StaticDir: getEnv("STATIC_DIR", "./web/static"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: pretty,
		},
	}

	return cfg, nil
}

// Addr returns the listen address, e.g. "0.0.0.0:5000".
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

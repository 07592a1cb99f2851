// File: /config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"socialhub-app/geo"
)

// insecureSessionSecret is the shipped default; release builds refuse it.
const insecureSessionSecret = "change-me-session-secret"

// ErrInsecureSecret is returned by Load when a release build has no real
// SESSION_SECRET. The secret signs session cookies and door tickets.
var ErrInsecureSecret = errors.New("SESSION_SECRET must be set to a non-default value in release mode")

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// Browser origins allowed for CORS and WebSocket upgrades
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Remote API gateway
	APIBaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8000/api"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`

	// Browser sessions. SessionTTL is the idle time after which the in-memory
	// store is dropped; persisted entries live for StorageRetention.
	SessionSecret    string        `envconfig:"SESSION_SECRET" default:"change-me-session-secret"`
	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	StorageRetention time.Duration `envconfig:"STORAGE_RETENTION" default:"720h"`
	CookieSecure     bool          `envconfig:"COOKIE_SECURE" default:"false"`

	// Local storage mirror: memory, mysql or redis
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"memory"`
	DatabaseURL   string `envconfig:"DATABASE_URL" default:"user:password@tcp(localhost:3306)/socialhub?charset=utf8mb4&parseTime=True&loc=Local"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	FallbackEnabled bool   `envconfig:"FALLBACK_ENABLED" default:"true"`
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"fa"`

	ReservationHold   time.Duration `envconfig:"RESERVATION_HOLD" default:"10m"`
	NotificationTTL   time.Duration `envconfig:"NOTIFICATION_TTL" default:"5s"`
	SMSResendInterval time.Duration `envconfig:"SMS_RESEND_INTERVAL" default:"60s"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	RateLimitBurst     int `envconfig:"RATE_LIMIT_BURST" default:"20"`

	DefaultLatitude  float64 `envconfig:"DEFAULT_LATITUDE" default:"35.6892"`
	DefaultLongitude float64 `envconfig:"DEFAULT_LONGITUDE" default:"51.3890"`

	// Email Configuration (support ticket fallback)
	SMTPHost     string `envconfig:"SMTP_HOST" default:"sandbox.smtp.mailtrap.io"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"2525"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	FromEmail    string `envconfig:"FROM_EMAIL" default:"noreply@socialhub.ir"`
	FromName     string `envconfig:"FROM_NAME" default:"SocialHub"`
	SupportEmail string `envconfig:"SUPPORT_EMAIL" default:"support@socialhub.ir"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found; using system environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}

	if cfg.GinMode == "release" && (cfg.SessionSecret == "" || cfg.SessionSecret == insecureSessionSecret) {
		return nil, ErrInsecureSecret
	}

	switch cfg.StorageDriver {
	case "memory", "mysql", "redis":
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.DefaultLanguage != "fa" && cfg.DefaultLanguage != "en" {
		cfg.DefaultLanguage = "fa"
	}

	return &cfg, nil
}

// SMTPConfigured reports whether support mail can actually be delivered.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != ""
}

// DefaultLocation is used for distance sorting when the browser shares no position.
func (c *Config) DefaultLocation() geo.Point {
	p := geo.Point{Latitude: c.DefaultLatitude, Longitude: c.DefaultLongitude}
	if !p.Valid() {
		return geo.Tehran
	}
	return p
}

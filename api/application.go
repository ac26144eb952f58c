package api

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/color-swatch/api/datastore"
)

type Config struct {
	HTTPPort         string   `envconfig:"HTTP_PORT" default:":8080"`
	DatabaseType     string   `envconfig:"DB_TYPE" default:"postgres"` // postgres, sqlite or memory
	DatabaseHost     string   `envconfig:"DB_HOST" default:"localhost"`
	DatabasePort     string   `envconfig:"DB_PORT" default:"5432"`
	DatabaseUser     string   `envconfig:"DB_USER" default:"postgres"`
	DatabasePassword string   `envconfig:"DB_PASSWORD"`
	DatabaseName     string   `envconfig:"DB_NAME" default:"colorswatch"`
	SSLMode          string   `envconfig:"SSL_MODE" default:"disable"`
	DatabasePath     string   `envconfig:"DB_PATH" default:"colorswatch.db"` // sqlite only
	APIKey           string   `envconfig:"SHOPIFY_API_KEY" required:"true"`
	APISecret        string   `envconfig:"SHOPIFY_API_SECRET" required:"true"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"https://admin.shopify.com"`
	DevMode          bool     `envconfig:"DEV_MODE" default:"false"`
	WriteRateLimit   float64  `envconfig:"WRITE_RATE_LIMIT" default:"10"` // writes per second, 0 disables
	WriteRateBurst   int      `envconfig:"WRITE_RATE_BURST" default:"20"`
	MetricsEnabled   bool     `envconfig:"METRICS_ENABLED" default:"true"`
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// NewWriteLimiter returns the write path limiter described by config, or nil when disabled.
func (c Config) NewWriteLimiter() *rate.Limiter {
	if c.WriteRateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(c.WriteRateLimit), c.WriteRateBurst)
}

type Application struct {
	Config       Config
	Logger       zerolog.Logger
	ColorRepo    datastore.ColorRepository
	Auth         Authenticator
	WriteLimiter *rate.Limiter
	Metrics      http.Handler // served at /metrics when set
}

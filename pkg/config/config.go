package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix scopes every environment variable read by Load.
	EnvPrefix = "hms"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HMS_APP_ENV" default:"development"`
	Port         string `envconfig:"HMS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"HMS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HMS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig points at the external document store that owns menu items,
// cart line entries and orders.
type StoreConfig struct {
	BaseURL string        `envconfig:"HMS_STORE_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"HMS_STORE_TIMEOUT" default:"15s"`
}

type PricingConfig struct {
	TaxRate float64 `envconfig:"HMS_TAX_RATE" default:"0.05"`
}

func (p PricingConfig) validate() error {
	if p.TaxRate < 0 || p.TaxRate >= 1 {
		return fmt.Errorf("tax rate must be a fraction in [0,1), got %v", p.TaxRate)
	}
	return nil
}

// CheckoutConfig carries the descriptive payment label attached to orders.
// The label has no settlement semantics.
type CheckoutConfig struct {
	PaymentMethodLabel string `envconfig:"HMS_PAYMENT_METHOD_LABEL" default:"Cash on Counter or UPI or Credit/Debit Card"`
}

type SessionConfig struct {
	CookieName   string        `envconfig:"HMS_SESSION_COOKIE_NAME" default:"hms_session"`
	CookieMaxAge time.Duration `envconfig:"HMS_SESSION_COOKIE_MAX_AGE" default:"8760h"`
	CookieSecure bool          `envconfig:"HMS_SESSION_COOKIE_SECURE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HMS_REDIS_URL"`
	Address      string        `envconfig:"HMS_REDIS_ADDR"`
	Password     string        `envconfig:"HMS_REDIS_PASSWORD"`
	DB           int           `envconfig:"HMS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HMS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HMS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HMS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HMS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HMS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"HMS_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

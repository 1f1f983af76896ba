package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	// EnvPrefix scopes every environment variable the service reads.
	EnvPrefix = "honestpc"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Pricing      PricingConfig
	Advisor      AdvisorConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Pricing.Rate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HONESTPC_APP_ENV" default:"development"`
	Port         string `envconfig:"HONESTPC_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"HONESTPC_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HONESTPC_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"HONESTPC_DB_DSN" required:"true"`

	MaxOpenConns    int           `envconfig:"HONESTPC_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HONESTPC_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HONESTPC_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HONESTPC_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HONESTPC_REDIS_URL"`
	Address      string        `envconfig:"HONESTPC_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"HONESTPC_REDIS_PASSWORD"`
	DB           int           `envconfig:"HONESTPC_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HONESTPC_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HONESTPC_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HONESTPC_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HONESTPC_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HONESTPC_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"HONESTPC_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"HONESTPC_JWT_ISSUER" default:"honestpc"`
	ExpirationMinutes int    `envconfig:"HONESTPC_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"HONESTPC_SESSION_TTL_MINUTES" default:"1440"`
}

// SessionTTL returns the server-side session lifetime.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HONESTPC_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HONESTPC_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HONESTPC_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HONESTPC_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HONESTPC_ARGON_KEY_LEN" default:"32"`
}

// PricingConfig carries the fixed charges applied on top of the parts total.
// Amounts are whole rupees; the tax rate is a decimal fraction.
type PricingConfig struct {
	AssemblyFee int    `envconfig:"HONESTPC_ASSEMBLY_FEE" default:"999"`
	TaxRate     string `envconfig:"HONESTPC_TAX_RATE" default:"0.18"`
}

// Rate parses the configured tax rate into an exact decimal.
func (p PricingConfig) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(p.TaxRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing tax rate %q: %w", p.TaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("tax rate must not be negative")
	}
	return rate, nil
}

type AdvisorConfig struct {
	APIKey  string `envconfig:"HONESTPC_ADVISOR_API_KEY"`
	BaseURL string `envconfig:"HONESTPC_ADVISOR_BASE_URL"`
	Model   string `envconfig:"HONESTPC_ADVISOR_MODEL" default:"gpt-4o-mini"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HONESTPC_AUTO_MIGRATE" default:"false"`
}

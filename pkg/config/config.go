package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "GROCERLY"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv     = "GROCERLY_APP_ENV"
	EnvPort       = "GROCERLY_APP_PORT"
	EnvDBDSN      = "GROCERLY_DB_DSN"
	EnvDBHost     = "GROCERLY_DB_HOST"
	EnvDBUser     = "GROCERLY_DB_USER"
	EnvDBName     = "GROCERLY_DB_NAME"
	EnvRedisURL   = "GROCERLY_REDIS_URL"
	EnvJWTSecret  = "GROCERLY_JWT_SECRET"
	EnvJWTIssuer  = "GROCERLY_JWT_ISSUER"
	EnvJWTExpMins = "GROCERLY_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Orders       OrdersConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GROCERLY_APP_ENV" required:"true"`
	Port         string `envconfig:"GROCERLY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GROCERLY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GROCERLY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GROCERLY_DB_DSN"`
	Driver string `envconfig:"GROCERLY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GROCERLY_DB_HOST"`
	LegacyPort     int    `envconfig:"GROCERLY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GROCERLY_DB_USER"`
	LegacyPassword string `envconfig:"GROCERLY_DB_PASSWORD"`
	LegacyName     string `envconfig:"GROCERLY_DB_NAME"`
	LegacySSLMode  string `envconfig:"GROCERLY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GROCERLY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GROCERLY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GROCERLY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GROCERLY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GROCERLY_REDIS_URL" required:"true"`
	PoolSize     int           `envconfig:"GROCERLY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GROCERLY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GROCERLY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GROCERLY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GROCERLY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"GROCERLY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GROCERLY_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"GROCERLY_JWT_EXPIRATION_MINUTES" required:"true"`
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type OrdersConfig struct {
	// DeductInventory decrements each ordered item's stock inside the
	// order transaction. Off keeps orders and inventory independent.
	DeductInventory bool          `envconfig:"GROCERLY_ORDERS_DEDUCT_INVENTORY" default:"false"`
	IdempotencyTTL  time.Duration `envconfig:"GROCERLY_ORDERS_IDEMPOTENCY_TTL" default:"24h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"GROCERLY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}

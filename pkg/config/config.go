package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Auth         AuthConfig
	Password     PasswordConfig
	Storage      StorageConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.DB.Driver == DriverPostgres {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"FREIGHTDESK_APP_ENV" required:"true"`
	Port         string   `envconfig:"FREIGHTDESK_APP_PORT" default:"3000"`
	LogLevel     string   `envconfig:"FREIGHTDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"FREIGHTDESK_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"FREIGHTDESK_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"FREIGHTDESK_DB_DSN"`
	Driver     string `envconfig:"FREIGHTDESK_DB_DRIVER" default:"postgres"`
	SQLitePath string `envconfig:"FREIGHTDESK_DB_SQLITE_PATH" default:"database.sqlite"`

	LegacyHost     string `envconfig:"FREIGHTDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"FREIGHTDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FREIGHTDESK_DB_USER"`
	LegacyPassword string `envconfig:"FREIGHTDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"FREIGHTDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"FREIGHTDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FREIGHTDESK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FREIGHTDESK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FREIGHTDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FREIGHTDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"FREIGHTDESK_REDIS_URL"`
	Address      string        `envconfig:"FREIGHTDESK_REDIS_ADDR"`
	Password     string        `envconfig:"FREIGHTDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"FREIGHTDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FREIGHTDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FREIGHTDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FREIGHTDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FREIGHTDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FREIGHTDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"FREIGHTDESK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FREIGHTDESK_JWT_ISSUER" default:"freightdesk"`
	ExpirationMinutes int    `envconfig:"FREIGHTDESK_JWT_EXPIRATION_MINUTES" default:"480"`
	SessionTTLMinutes int    `envconfig:"FREIGHTDESK_SESSION_TTL_MINUTES" default:"480"`
}

// SessionTTL returns the server-side session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// AuthConfig carries the back-office credential pairs. Users is a
// semicolon-separated list of email:argon2id-hash entries; the hash format
// itself contains commas, so commas cannot delimit entries.
type AuthConfig struct {
	Users string `envconfig:"FREIGHTDESK_AUTH_USERS"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FREIGHTDESK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FREIGHTDESK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FREIGHTDESK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FREIGHTDESK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FREIGHTDESK_ARGON_KEY_LEN" default:"32"`
}

// StorageConfig locates the two file areas: carrier uploads and generated
// rate-confirmation documents.
type StorageConfig struct {
	UploadDir   string `envconfig:"FREIGHTDESK_UPLOAD_DIR" default:"uploads"`
	RateConDir  string `envconfig:"FREIGHTDESK_RATE_CON_DIR" default:"rate-confirmations"`
	MaxUploadMB int    `envconfig:"FREIGHTDESK_MAX_UPLOAD_MB" default:"50"`
}

// RateLimitConfig throttles the login surface. A zero window disables the
// limiter entirely.
type RateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"FREIGHTDESK_LOGIN_RATE_WINDOW" default:"1m"`
	LoginIPLimit    int           `envconfig:"FREIGHTDESK_LOGIN_RATE_IP_LIMIT" default:"20"`
	LoginEmailLimit int           `envconfig:"FREIGHTDESK_LOGIN_RATE_EMAIL_LIMIT" default:"5"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FREIGHTDESK_AUTO_MIGRATE" default:"false"`
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

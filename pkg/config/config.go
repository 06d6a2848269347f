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
	RateLimit    RateLimitConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Media        MediaConfig
	Cache        CacheConfig
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
	Env          string `envconfig:"LUKUSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"LUKUSTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"LUKUSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUKUSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUKUSTORE_DB_DSN"`
	Driver string `envconfig:"LUKUSTORE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LUKUSTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"LUKUSTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUKUSTORE_DB_USER"`
	LegacyPassword string `envconfig:"LUKUSTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUKUSTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUKUSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUKUSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUKUSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUKUSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUKUSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUKUSTORE_REDIS_URL"`
	Address      string        `envconfig:"LUKUSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"LUKUSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUKUSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUKUSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUKUSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUKUSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUKUSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LUKUSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// RateLimitConfig throttles the public form endpoints (contact, newsletter).
type RateLimitConfig struct {
	FormWindow  time.Duration `envconfig:"LUKUSTORE_RATE_LIMIT_FORM_WINDOW" default:"1m"`
	FormIPLimit int           `envconfig:"LUKUSTORE_RATE_LIMIT_FORM_IP_LIMIT" default:"10"`
}

// PasswordConfig tunes the Argon2id parameters embedded in each hash.
type PasswordConfig struct {
	ArgonMemoryKB    uint32 `envconfig:"LUKUSTORE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        uint32 `envconfig:"LUKUSTORE_ARGON_TIME" default:"3"`
	ArgonParallelism int    `envconfig:"LUKUSTORE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     uint32 `envconfig:"LUKUSTORE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      uint32 `envconfig:"LUKUSTORE_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LUKUSTORE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LUKUSTORE_AUTO_MIGRATE" default:"false"`
}

// MediaConfig overrides the compiled-in placeholder assets per entity.
type MediaConfig struct {
	BlogPlaceholder  string `envconfig:"LUKUSTORE_MEDIA_BLOG_PLACEHOLDER" default:"blog.jpg"`
	ImagePlaceholder string `envconfig:"LUKUSTORE_MEDIA_IMAGE_PLACEHOLDER" default:"image.jpg"`
	MixPlaceholder   string `envconfig:"LUKUSTORE_MEDIA_MIX_PLACEHOLDER" default:"mix-cover.jpg"`
}

type CacheConfig struct {
	ProductSlugTTL time.Duration `envconfig:"LUKUSTORE_CACHE_PRODUCT_SLUG_TTL" default:"5m"`
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

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STORELINK"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "STORELINK_DB_DSN"
	EnvDBHost = "STORELINK_DB_HOST"
	EnvDBUser = "STORELINK_DB_USER"
	EnvDBName = "STORELINK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Cloudinary   CloudinaryConfig
	Media        MediaConfig
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
	Env          string `envconfig:"STORELINK_APP_ENV" required:"true"`
	Port         string `envconfig:"STORELINK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STORELINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STORELINK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STORELINK_DB_DSN"`
	Driver string `envconfig:"STORELINK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STORELINK_DB_HOST"`
	LegacyPort     int    `envconfig:"STORELINK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STORELINK_DB_USER"`
	LegacyPassword string `envconfig:"STORELINK_DB_PASSWORD"`
	LegacyName     string `envconfig:"STORELINK_DB_NAME"`
	LegacySSLMode  string `envconfig:"STORELINK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STORELINK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STORELINK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STORELINK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STORELINK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"STORELINK_REDIS_URL"`
	Address      string        `envconfig:"STORELINK_REDIS_ADDR"`
	Password     string        `envconfig:"STORELINK_REDIS_PASSWORD"`
	DB           int           `envconfig:"STORELINK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STORELINK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STORELINK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STORELINK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STORELINK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STORELINK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The cache is
// optional; every lookup falls back to the database when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STORELINK_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type CloudinaryConfig struct {
	URL          string `envconfig:"STORELINK_CLOUDINARY_URL"`
	UploadFolder string `envconfig:"STORELINK_CLOUDINARY_FOLDER" default:"storelink/products"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"STORELINK_MAX_UPLOAD_MB" default:"5"`
}

// MaxUploadBytes converts the configured cap to bytes.
func (m MediaConfig) MaxUploadBytes() int64 {
	return int64(m.MaxUploadMB) << 20
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"STORELINK_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"STORELINK_AUTO_MIGRATE" default:"false"`
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

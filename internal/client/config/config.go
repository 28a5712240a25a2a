package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Config holds runtime settings for the interviewdesk CLI.
//
// Storage fields are only consulted for the selected StorageBackend.
// AuthDelay is the simulated network latency applied to login and signup.
type Config struct {
	StorageBackend string `envconfig:"STORAGE_BACKEND" validate:"oneof=memory file sqlite postgres redis s3"`
	StoragePath    string `envconfig:"STORAGE_PATH" validate:"required_if=StorageBackend sqlite,required_if=StorageBackend file"`
	PostgresDSN    string `envconfig:"POSTGRES_DSN" validate:"required_if=StorageBackend postgres"`
	RedisAddr      string `envconfig:"REDIS_ADDR" validate:"required_if=StorageBackend redis"`
	KeyPrefix      string `envconfig:"KEY_PREFIX"`

	S3Bucket       string `envconfig:"S3_BUCKET" validate:"required_if=StorageBackend s3"`
	S3Region       string `envconfig:"S3_REGION"`
	S3BaseEndpoint string `envconfig:"S3_BASE_ENDPOINT" validate:"omitempty,url"`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY"`

	AuthDelay      time.Duration `envconfig:"AUTH_DELAY" validate:"gte=0s"`
	PasswordScheme string        `envconfig:"PASSWORD_SCHEME" validate:"oneof=plaintext argon2id"`

	LogFormat   string `envconfig:"LOG_FORMAT" validate:"oneof=text json"`
	LogLevel    string `envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	MetricsAddr string `envconfig:"METRICS_ADDR" validate:"omitempty,hostname_port"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.StoragePath = "interviewdesk.db"
	c.KeyPrefix = "interviewdesk:"
	c.S3Region = "us-east-1"
	c.AuthDelay = 800 * time.Millisecond
	c.PasswordScheme = "argon2id"
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// Validate checks field constraints; see the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

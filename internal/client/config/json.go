package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/interviewdesk/internal/flagx"
	"github.com/dmitrijs2005/interviewdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty
// values leave the corresponding Config field untouched.
type JsonConfig struct {
	StorageBackend string          `json:"storage_backend"`
	StoragePath    string          `json:"storage_path"`
	PostgresDSN    string          `json:"postgres_dsn"`
	RedisAddr      string          `json:"redis_addr"`
	KeyPrefix      string          `json:"key_prefix"`
	S3Bucket       string          `json:"s3_bucket"`
	S3Region       string          `json:"s3_region"`
	S3BaseEndpoint string          `json:"s3_base_endpoint"`
	S3AccessKey    string          `json:"s3_access_key"`
	S3SecretKey    string          `json:"s3_secret_key"`
	AuthDelay      *timex.Duration `json:"auth_delay"`
	PasswordScheme string          `json:"password_scheme"`
	LogFormat      string          `json:"log_format"`
	LogLevel       string          `json:"log_level"`
	MetricsAddr    string          `json:"metrics_addr"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// It panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.StoragePath, jc.StoragePath)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.KeyPrefix, jc.KeyPrefix)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.PasswordScheme, jc.PasswordScheme)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.AuthDelay != nil {
		cfg.AuthDelay = jc.AuthDelay.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	JWT struct {
		Secret   string
		Lifetime time.Duration
	}
}

// Load reads config from environment (XYNC_ prefix) and optional xync.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("XYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("xync")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("jwt.lifetime", "24h")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.JWT.Secret = v.GetString("jwt.secret")

	lifetime, err := time.ParseDuration(v.GetString("jwt.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid XYNC_JWT_LIFETIME: %w", err)
	}
	cfg.JWT.Lifetime = lifetime

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("XYNC_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("XYNC_DB_DSN is required")
	}
	// The token signing secret must be supplied explicitly; there is no safe default.
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("XYNC_JWT_SECRET is required")
	}

	return cfg, nil
}

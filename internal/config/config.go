package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "NEIGHBORHOOD"

var (
	ErrInvalidPort     = errors.New("server port out of range")
	ErrMissingDBPath   = errors.New("database path is required")
	ErrInvalidInterval = errors.New("reminder interval must be positive")
)

// Config is the full runtime configuration. The defaults reproduce the
// original deployment: listen on 0.0.0.0:5000 and open the
// smart_neighborhood.db file next to the binary.
type Config struct {
	Server struct {
		Host string
		Port int
	}

	DB struct {
		Path           string
		MigrationsPath string
	}

	Auth struct {
		Secret   string
		TokenTTL time.Duration
	}

	Reminder struct {
		Interval time.Duration
	}

	Kafka struct {
		Brokers string
		Topic   string
	}
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load resolves configuration from defaults, an optional config file and
// NEIGHBORHOOD_* environment variables, in increasing precedence. An empty
// path skips the file lookup.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("db.path", "smart_neighborhood.db")
	v.SetDefault("db.migrations", "internal/db/migrations")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("reminder.interval", time.Hour)
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "neighborhood-notifications")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.DB.Path = v.GetString("db.path")
	cfg.DB.MigrationsPath = v.GetString("db.migrations")
	cfg.Auth.Secret = v.GetString("auth.secret")
	cfg.Auth.TokenTTL = v.GetDuration("auth.token_ttl")
	cfg.Reminder.Interval = v.GetDuration("reminder.interval")
	cfg.Kafka.Brokers = v.GetString("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")

	if cfg.Auth.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate auth secret: %w", err)
		}
		cfg.Auth.Secret = secret
		slog.Warn("No auth secret configured, generated an ephemeral one; tokens will not survive a restart")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	if c.DB.Path == "" {
		return ErrMissingDBPath
	}
	// viper.GetDuration reports 0 for an unparseable value; a zero or
	// negative interval would also panic time.NewTicker downstream.
	if c.Reminder.Interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.Reminder.Interval)
	}
	return nil
}

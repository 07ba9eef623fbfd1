// Package config reads the service settings from the environment. A .env
// file, when present, is loaded first by cmd/api.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "hrms-dev-secret"

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Auth    AuthConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Seed    bool
	AppEnv  string
	Metrics bool
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
	// RBACModelPath overrides the built-in casbin model when set.
	RBACModelPath string
}

// RedisConfig is optional; an empty Addr keeps sessions and caches in memory.
type RedisConfig struct {
	Addr string
}

// KafkaConfig is optional; without a broker the outbox is never drained.
type KafkaConfig struct {
	Broker       string
	PollInterval time.Duration
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func Load() (*Config, error) {
	var errs []error
	duration := func(key string, def time.Duration) time.Duration {
		d, err := getEnvDuration(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return d
	}
	boolean := func(key string, def bool) bool {
		b, err := getEnvBool(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return b
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Log: LogConfig{Level: strings.ToLower(getEnv("LOG_LEVEL", "debug"))},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			SessionTTL:    duration("SESSION_TTL", 24*time.Hour),
			RBACModelPath: os.Getenv("RBAC_MODEL_PATH"),
		},
		Redis: RedisConfig{Addr: os.Getenv("REDIS_ADDR")},
		Kafka: KafkaConfig{
			Broker:       os.Getenv("KAFKA_BROKER"),
			PollInterval: duration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		},
		Seed:    boolean("SEED_DEMO_DATA", true),
		Metrics: boolean("METRICS_ENABLED", true),
		AppEnv:  strings.ToLower(getEnv("APP_ENV", "development")),
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			errs = append(errs, errors.New("JWT_SECRET is required in production"))
		}
		cfg.Auth.JWTSecret = devJWTSecret
	}
	if cfg.Auth.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// Package cli wires the ambient infrastructure (resolver transport, audit
// store, event publisher, metrics) from environment variables and runs a
// chain build, keeping main() free of business logic.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the environment-derived settings for one invocation.
// Positional CLI arguments (target, output path) are never part of it.
type Config struct {
	ResolverAddr string
	DatabaseURL  string
	RedisURL     string
	KafkaBrokers []string
	KafkaTopic   string
	MetricsAddr  string
}

// ConfigError reports an invalid environment-derived setting, or (as
// ErrUsage) a wrong number of positional arguments.
type ConfigError struct {
	Var string
	Err error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("config: %s: %v", e.Var, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// LoadConfig reads the environment variables listed in the ambient stack:
// RESOLVER_ADDR, DATABASE_URL, REDIS_URL, KAFKA_BROKERS, METRICS_ADDR, plus
// KAFKA_TOPIC (default "chain.built").
func LoadConfig() Config {
	cfg := Config{
		ResolverAddr: os.Getenv("RESOLVER_ADDR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		KafkaTopic:   "chain.built",
	}
	if cfg.ResolverAddr == "" {
		cfg.ResolverAddr = "127.0.0.1"
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if topic := os.Getenv("KAFKA_TOPIC"); topic != "" {
		cfg.KafkaTopic = topic
	}
	return cfg
}

// AuditEnabled reports whether a Postgres audit store should be wired up.
// DATABASE_URL set to "none" is an explicit escape hatch to disable it.
func (c Config) AuditEnabled() bool {
	return c.DatabaseURL != "" && c.DatabaseURL != "none"
}

func (c Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c Config) MetricsEnabled() bool {
	return c.MetricsAddr != ""
}

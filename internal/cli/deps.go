package cli

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/maugier/dnssec-tls-tools/internal/audit"
	"github.com/maugier/dnssec-tls-tools/internal/events"
	"github.com/maugier/dnssec-tls-tools/internal/resolver"
)

// Deps bundles the collaborators a build needs, each defaulting to a
// no-op implementation when its environment variable is unset.
type Deps struct {
	Resolver  resolver.Resolver
	Audit     audit.Store
	Publisher events.Publisher
	Logger    *slog.Logger

	db       *sql.DB
	kafka    *events.KafkaPublisher
}

// Build wires Deps from cfg. The returned close function releases any
// opened database connection or Kafka producer and should run on exit.
func Build(cfg Config, logger *slog.Logger) (Deps, func() error, error) {
	deps := Deps{
		Resolver:  resolver.NewDigResolver(cfg.ResolverAddr),
		Audit:     audit.NoopStore{},
		Publisher: events.NoopPublisher{},
		Logger:    logger,
	}

	if cfg.CacheEnabled() {
		deps.Resolver = resolver.NewCachingResolver(deps.Resolver, cfg.RedisURL)
		logger.Info("resolver answers cached via redis", "addr", cfg.RedisURL)
	}

	if cfg.AuditEnabled() {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return Deps{}, nil, &ConfigError{Var: "DATABASE_URL", Err: err}
		}
		deps.db = db
		deps.Audit = audit.NewPostgresStore(db)
		logger.Info("build audit persisted to postgres")
	}

	if cfg.EventsEnabled() {
		pub, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			closeDB(deps.db)
			return Deps{}, nil, &ConfigError{Var: "KAFKA_BROKERS", Err: err}
		}
		deps.kafka = pub
		deps.Publisher = pub
		logger.Info("build events published to kafka", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	}

	return deps, deps.close, nil
}

func (d Deps) close() error {
	var firstErr error
	if d.kafka != nil {
		if err := d.kafka.Close(); err != nil {
			firstErr = fmt.Errorf("closing kafka producer: %w", err)
		}
	}
	if err := closeDB(d.db); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func closeDB(db *sql.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

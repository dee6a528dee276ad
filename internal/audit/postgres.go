package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore writes build records to a `chain_builds` table: a thin
// wrapper over *sql.DB issuing raw parameterised SQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Record(ctx context.Context, rec Record) error {
	const query = `INSERT INTO chain_builds
		(id, target, bytes_written, zone_count, direct_keyed_zones, error, built_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Target, rec.BytesWritten, rec.ZoneCount, rec.DirectKeyedZones, rec.Err, rec.BuiltAt)
	if err != nil {
		return fmt.Errorf("audit: inserting build record: %w", err)
	}
	return nil
}

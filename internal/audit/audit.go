// Package audit records the outcome of each chain build for later
// inspection: which target was built, how large the result was, and how
// many zones used direct-keying. This is purely an observability
// sidecar — nothing in internal/chain depends on it.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record describes one completed (or failed) chain-build run.
type Record struct {
	ID               uuid.UUID
	Target           string
	BytesWritten     int
	ZoneCount        int
	DirectKeyedZones int
	Err              string
	BuiltAt          time.Time
}

// Store persists build records. Implementations must tolerate being
// unreachable without failing the build itself — see NoopStore.
type Store interface {
	Record(ctx context.Context, rec Record) error
}

// NoopStore discards records; it is the default when no audit backend is
// configured.
type NoopStore struct{}

func (NoopStore) Record(ctx context.Context, rec Record) error { return nil }

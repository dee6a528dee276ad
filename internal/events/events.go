// Package events publishes a message each time a chain build completes,
// for downstream consumers (cache warmers, dashboards) that want to react
// without polling the audit store.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// BuildEvent is the payload published on a successful chain build.
type BuildEvent struct {
	Target           string    `json:"target"`
	BytesWritten     int       `json:"bytes_written"`
	ZoneCount        int       `json:"zone_count"`
	DirectKeyedZones int       `json:"direct_keyed_zones"`
	BuiltAt          time.Time `json:"built_at"`
}

// Publisher publishes build completion events.
type Publisher interface {
	Publish(ctx context.Context, ev BuildEvent) error
}

// NoopPublisher discards events; it is the default when no broker is
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, ev BuildEvent) error { return nil }

func marshal(ev BuildEvent) ([]byte, error) {
	return json.Marshal(ev)
}

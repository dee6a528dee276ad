package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/maugier/dnssec-tls-tools/internal/audit"
	"github.com/maugier/dnssec-tls-tools/internal/chain"
	"github.com/maugier/dnssec-tls-tools/internal/events"
	"github.com/maugier/dnssec-tls-tools/internal/metrics"
)

// ErrUsage is the *ConfigError returned when the positional arguments
// don't match the target/output-file arity; Run prints the usage message
// before returning it, and main exits nonzero.
var ErrUsage error = &ConfigError{Var: "arguments", Err: errors.New("expected exactly 2 arguments: target, output-file")}

// Run builds the authentication chain for args[1] and writes it to
// args[2]. main only wires Deps and maps the returned error to an exit
// code; all the actual work happens here.
func Run(ctx context.Context, args []string, out, errOut io.Writer, deps Deps) error {
	if len(args) != 3 {
		fmt.Fprintf(errOut, "usage: %s <target-name> <output-file>\n", progName(args))
		return ErrUsage
	}
	target, outputPath := args[1], args[2]
	buildID := uuid.New()
	start := time.Now()

	data, stats, err := chain.Build(ctx, deps.Resolver, target)
	if err != nil {
		metrics.BuildsTotal.WithLabelValues("error").Inc()
		deps.Logger.Error("chain build failed", "target", target, "build_id", buildID, "error", err)
		return fmt.Errorf("building chain for %s: %w", target, err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		metrics.BuildsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("writing output file %s: %w", outputPath, err)
	}

	duration := time.Since(start)
	metrics.BuildsTotal.WithLabelValues("success").Inc()
	metrics.BuildDuration.Observe(duration.Seconds())
	metrics.BytesWritten.Observe(float64(stats.BytesWritten))
	metrics.DirectKeyedZonesTotal.Add(float64(stats.DirectKeyedZones))

	deps.Logger.Info("chain build complete",
		"target", target,
		"build_id", buildID,
		"bytes", stats.BytesWritten,
		"zones", stats.ZoneCount,
		"direct_keyed_zones", stats.DirectKeyedZones,
		"duration_ms", duration.Milliseconds(),
	)

	rec := audit.Record{
		ID:               buildID,
		Target:           target,
		BytesWritten:     stats.BytesWritten,
		ZoneCount:        stats.ZoneCount,
		DirectKeyedZones: stats.DirectKeyedZones,
		BuiltAt:          start,
	}
	if err := deps.Audit.Record(ctx, rec); err != nil {
		deps.Logger.Warn("audit record failed", "target", target, "error", err)
	}

	ev := events.BuildEvent{
		Target:           target,
		BytesWritten:     stats.BytesWritten,
		ZoneCount:        stats.ZoneCount,
		DirectKeyedZones: stats.DirectKeyedZones,
		BuiltAt:          start,
	}
	if err := deps.Publisher.Publish(ctx, ev); err != nil {
		deps.Logger.Warn("event publish failed", "target", target, "error", err)
	}

	fmt.Fprintf(out, "wrote %d bytes (%d zones, %d direct-keyed) to %s\n",
		stats.BytesWritten, stats.ZoneCount, stats.DirectKeyedZones, outputPath)
	return nil
}

func progName(args []string) string {
	if len(args) == 0 {
		return "chainbuild"
	}
	return args[0]
}

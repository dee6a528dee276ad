package chain

import (
	"context"
	"log/slog"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/resolver"
	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// Stats summarizes one Build call, for logging and the audit record.
type Stats struct {
	Iterations       int
	ZoneCount        int
	DirectKeyedZones int
	BytesWritten     int
}

// Build resolves target's full authentication chain, following CNAMEs
// until a terminal TXT is reached, and returns the serialized chain
// bytes. A terminal TXT set with no v=tls1 member is logged as a warning
// through the default slog logger; the chain is still returned. Each
// iteration after the first
// splices against the previous iteration's path so shared ancestor zones
// are not re-emitted.
func Build(ctx context.Context, r resolver.Resolver, target string) ([]byte, Stats, error) {
	if !strings.HasSuffix(target, ".") {
		target += "."
	}

	out := wire.NewBuffer()
	out.WriteU16(RootKeyTag)

	var stats Stats
	var previous []*Zone

	for {
		path, err := buildPath(ctx, r, target)
		if err != nil {
			return nil, stats, err
		}
		if err := Plan(path); err != nil {
			return nil, stats, err
		}

		start := 0
		if previous != nil {
			start, err = Splice(path, previous)
			if err != nil {
				return nil, stats, err
			}
		}

		if err := Serialize(out, path, start, target); err != nil {
			return nil, stats, err
		}

		stats.Iterations++
		stats.ZoneCount += len(path) - start
		for _, z := range path[start:] {
			if z.DirectKey {
				stats.DirectKeyedZones++
			}
		}

		last := path[len(path)-1]
		if last.TerminalCNAME == nil {
			if last.TerminalTXT != nil && !last.TerminalTXT.Valid() {
				slog.Warn("terminal TXT set has no v=tls1 member; chain built anyway", "target", target)
			}
			break
		}
		target = last.TerminalCNAME.Target
		previous = path
	}

	stats.BytesWritten = out.Len()
	return out.Bytes(), stats, nil
}

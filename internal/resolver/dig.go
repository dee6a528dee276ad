package resolver

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/metrics"
)

// DigResolver resolves queries by shelling out to a validating resolver's
// dig client, e.g. "dig @127.0.0.1 +dnssec +noall +answer -t <type> <name>", then filters
// the transcript: lines whose owner matches the query name and whose
// class is IN are kept; <rrtype> lines contribute rdata, RRSIG lines
// whose rdata's first token equals <rrtype> are attached as covering
// signatures, and SOA lines yield the apex owner.
type DigResolver struct {
	// Addr is the resolver to query, e.g. "127.0.0.1" or "127.0.0.1:53".
	Addr string
	// Path is the dig binary to invoke; defaults to "dig" if empty.
	Path string
}

func NewDigResolver(addr string) *DigResolver {
	return &DigResolver{Addr: addr}
}

func (d *DigResolver) Resolve(ctx context.Context, name, rrtype string) (Answer, error) {
	metrics.ResolverQueriesTotal.WithLabelValues(rrtype).Inc()

	path := d.Path
	if path == "" {
		path = "dig"
	}

	args := []string{"@" + d.Addr, "+dnssec", "+noall", "+answer", "-t", rrtype, name}
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Answer{}, newError(name, rrtype, fmt.Errorf("%s: %w (%s)", path, err, strings.TrimSpace(stderr.String())))
	}

	return filterTranscript(stdout.String(), name, rrtype), nil
}

// filterTranscript applies the line-filtering rules described above to a
// dig +noall +answer transcript.
func filterTranscript(transcript, name, rrtype string) Answer {
	var ans Answer
	queryName := strings.TrimSuffix(name, ".")

	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}

		owner := strings.TrimSuffix(fields[0], ".")
		if !strings.EqualFold(owner, queryName) {
			continue
		}
		if fields[2] != "IN" {
			continue
		}

		rrType := fields[3]
		rdata := strings.Join(fields[4:], " ")

		switch {
		case strings.EqualFold(rrType, "SOA"):
			if owner, ok := dnsrecord.ParseSOAOwnerLine(line); ok {
				ans.SOAOwner = owner.Name
			}
		case strings.EqualFold(rrType, rrtype):
			ans.Records = append(ans.Records, rdata)
		case strings.EqualFold(rrType, "RRSIG"):
			covered := strings.Fields(rdata)
			if len(covered) > 0 && strings.EqualFold(covered[0], rrtype) {
				ans.RRSIGs = append(ans.RRSIGs, rdata)
			}
		}
	}

	return ans
}

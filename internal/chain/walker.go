package chain

import (
	"context"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/resolver"
)

// buildZoneNames walks from target up to the root via SOA owner names,
// returning the zone path in root-to-target order. At each
// step it queries SOA at the current name and takes the zone apex from
// the answer's owner, then strips one label from *that apex* (not from
// the query name) to continue upward — skipping straight past any
// remaining labels within the zone it just found.
func buildZoneNames(ctx context.Context, r resolver.Resolver, target string) ([]string, error) {
	var names []string
	t := target
	for {
		apex, err := fetchSOAOwner(ctx, r, t)
		if err != nil {
			return nil, newError(t, err)
		}
		names = append(names, apex)
		if t == "." {
			break
		}
		t = removeLeadingLabel(apex)
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names, nil
}

func removeLeadingLabel(name string) string {
	if len(name) == 1 {
		return name
	}
	parts := strings.SplitN(name, ".", 2)
	if len(parts) < 2 {
		return parts[0]
	}
	if parts[1] == "" {
		return "."
	}
	return parts[1]
}

// buildPath constructs the full zone path for target: the SOA-derived
// zone names, each populated with its DNSKEY set and (for all but the
// last zone) the next zone's DS set, with the terminal CNAME or TXT
// record attached to the last zone.
func buildPath(ctx context.Context, r resolver.Resolver, target string) ([]*Zone, error) {
	names, err := buildZoneNames(ctx, r, target)
	if err != nil {
		return nil, err
	}

	zones := make([]*Zone, len(names))
	for i, name := range names {
		zones[i] = &Zone{Name: name, PrevIndex: i - 1, NextIndex: i + 1}
	}
	zones[len(zones)-1].NextIndex = -1

	cname, cnameSigs, err := fetchCNAME(ctx, r, target)
	if err != nil {
		return nil, newError(target, err)
	}

	last := zones[len(zones)-1]
	if cname != nil {
		last.TerminalCNAME = cname
		last.TerminalRRSIGs = cnameSigs
	} else {
		txt, txtSigs, err := fetchTXT(ctx, r, target)
		if err != nil {
			return nil, newError(target, err)
		}
		last.TerminalTXT = txt
		last.TerminalRRSIGs = txtSigs
	}

	for _, z := range zones {
		keys, keySigs, err := fetchDNSKEYs(ctx, r, z.Name)
		if err != nil {
			return nil, newError(z.Name, err)
		}
		z.DNSKeys = keys
		z.DNSKeyRRSIGs = keySigs

		if z.NextIndex >= 0 {
			dses, dsSigs, err := fetchDS(ctx, r, zones[z.NextIndex].Name)
			if err != nil {
				return nil, newError(z.Name, err)
			}
			z.DS = dses
			z.DSRRSIGs = dsSigs
		}
	}

	return zones, nil
}

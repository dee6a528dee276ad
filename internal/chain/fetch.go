package chain

import (
	"context"
	"fmt"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/resolver"
)

func fetchDNSKEYs(ctx context.Context, r resolver.Resolver, name string) ([]dnsrecord.DNSKEY, []dnsrecord.RRSIG, error) {
	ans, err := r.Resolve(ctx, name, "DNSKEY")
	if err != nil {
		return nil, nil, err
	}

	keys := make([]dnsrecord.DNSKEY, 0, len(ans.Records))
	for _, line := range ans.Records {
		key, err := dnsrecord.ParseDNSKEY(line)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
	}
	dnsrecord.SortDNSKEYs(keys)

	sigs, err := parseRRSIGs(ans.RRSIGs)
	if err != nil {
		return nil, nil, err
	}
	return keys, sigs, nil
}

func fetchDS(ctx context.Context, r resolver.Resolver, name string) ([]dnsrecord.DS, []dnsrecord.RRSIG, error) {
	ans, err := r.Resolve(ctx, name, "DS")
	if err != nil {
		return nil, nil, err
	}

	dses := make([]dnsrecord.DS, 0, len(ans.Records))
	for _, line := range ans.Records {
		ds, err := dnsrecord.ParseDS(line)
		if err != nil {
			return nil, nil, err
		}
		dses = append(dses, ds)
	}
	dnsrecord.SortDS(dses)

	sigs, err := parseRRSIGs(ans.RRSIGs)
	if err != nil {
		return nil, nil, err
	}
	return dses, sigs, nil
}

// fetchCNAME returns nil, nil, nil if name has no CNAME (distinct from an
// error: absence is the expected, common case).
func fetchCNAME(ctx context.Context, r resolver.Resolver, name string) (*dnsrecord.CNAME, []dnsrecord.RRSIG, error) {
	ans, err := r.Resolve(ctx, name, "CNAME")
	if err != nil {
		return nil, nil, err
	}
	if len(ans.Records) == 0 {
		return nil, nil, nil
	}

	c := dnsrecord.ParseCNAME(ans.Records[0])
	sigs, err := parseRRSIGs(ans.RRSIGs)
	if err != nil {
		return nil, nil, err
	}
	return &c, sigs, nil
}

func fetchTXT(ctx context.Context, r resolver.Resolver, name string) (*dnsrecord.TXTSet, []dnsrecord.RRSIG, error) {
	ans, err := r.Resolve(ctx, name, "TXT")
	if err != nil {
		return nil, nil, err
	}

	set, err := dnsrecord.NewTXTSet(ans.Records)
	if err != nil {
		return nil, nil, err
	}
	sigs, err := parseRRSIGs(ans.RRSIGs)
	if err != nil {
		return nil, nil, err
	}
	return &set, sigs, nil
}

func fetchSOAOwner(ctx context.Context, r resolver.Resolver, name string) (string, error) {
	ans, err := r.Resolve(ctx, name, "SOA")
	if err != nil {
		return "", err
	}
	if ans.SOAOwner == "" {
		return "", fmt.Errorf("no SOA record found")
	}
	return ans.SOAOwner, nil
}

func parseRRSIGs(lines []string) ([]dnsrecord.RRSIG, error) {
	sigs := make([]dnsrecord.RRSIG, 0, len(lines))
	for _, line := range lines {
		sig, err := dnsrecord.ParseRRSIG(line)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

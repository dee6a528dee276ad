package dnsrecord

import "strings"

// SOAOwner is the zone apex name taken from the owner of a returned SOA
// record. The SOA record is consulted only for this: the rest of the SOA
// rdata (serial, refresh, retry, expire, minimum) plays no role in chain
// construction.
type SOAOwner struct {
	Name string
}

// ParseSOAOwnerLine extracts the owner name from a raw resolver line of
// the form "<owner> <ttl> IN SOA <rdata>". Resolver
// implementations that do their own line filtering (see internal/resolver)
// use this directly instead of going through Resolver.Answer.SOAOwner.
func ParseSOAOwnerLine(line string) (SOAOwner, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return SOAOwner{}, false
	}
	if fields[2] != "IN" || fields[3] != "SOA" {
		return SOAOwner{}, false
	}
	return SOAOwner{Name: fields[0]}, true
}

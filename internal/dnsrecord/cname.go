package dnsrecord

import "strings"

// CNAME is the terminal record at a zone that redirects to another name.
// The chain builder represents "no CNAME at the queried name" as a nil
// *CNAME, not as an empty Target.
type CNAME struct {
	Target string
}

// ParseCNAME parses a CNAME rdata line, which is simply the target name.
func ParseCNAME(line string) CNAME {
	return CNAME{Target: strings.TrimSpace(line)}
}

// Package chain builds a compact DNSSEC authentication chain from the root
// to a target name: a zone-by-zone record of the keys and signatures a
// verifier needs to walk the delegation chain without itself talking to a
// resolver.
package chain

import "github.com/maugier/dnssec-tls-tools/internal/dnsrecord"

// RootKeyTag is the well-known trust-anchor key tag every chain is rooted
// at.
const RootKeyTag = 19036

// Zone is one link in the path from the root to a target name. Prev/Next
// are indices into the path slice that owns all zones, not pointers
// between zones, so the path can never form a cycle.
type Zone struct {
	Name string

	DNSKeys      []dnsrecord.DNSKEY
	DNSKeyRRSIGs []dnsrecord.RRSIG

	// DS holds the next zone's delegation-signer set, as seen (and signed)
	// in this zone. Unset on the terminal zone.
	DS       []dnsrecord.DS
	DSRRSIGs []dnsrecord.RRSIG

	// Exactly one of TerminalCNAME/TerminalTXT is set, and only on the
	// last zone in the path.
	TerminalCNAME  *dnsrecord.CNAME
	TerminalTXT    *dnsrecord.TXTSet
	TerminalRRSIGs []dnsrecord.RRSIG

	PrevIndex int
	NextIndex int

	EntryKeyIndex int
	DirectKey     bool
	// DNSKeySig is nil when DirectKey is true: the DNSKEY RRSIG is omitted
	// from the output because the entry key itself signs the exit record.
	DNSKeySig     *dnsrecord.RRSIG
	ExitRecordSig dnsrecord.RRSIG
	AlreadyInZone bool
}

// IsRoot reports whether z has no parent zone in its path.
func (z *Zone) IsRoot() bool { return z.PrevIndex < 0 }

// IsTerminal reports whether z is the last zone in its path (carries the
// CNAME or TXT exit record rather than a child DS).
func (z *Zone) IsTerminal() bool { return z.NextIndex < 0 }

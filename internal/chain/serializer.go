package chain

import (
	"fmt"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/dnssec"
	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// DNS type values used as the exit-block type tag.
const (
	dnsTypeCNAME = 5
	dnsTypeTXT   = 16
	dnsTypeDS    = 43
)

// Serialize emits the wire form of path[startIndex:] onto out, in path
// order. path is passed in full (rather than pre-sliced) so
// that NextIndex lookups on zones spliced away from the emitted prefix
// still resolve correctly.
func Serialize(out *wire.Buffer, path []*Zone, startIndex int, target string) error {
	for i := startIndex; i < len(path); i++ {
		z := path[i]

		if !z.AlreadyInZone {
			if err := serializeKeyBlock(out, z); err != nil {
				return err
			}
		}
		if err := serializeExitBlock(out, path, z, target); err != nil {
			return err
		}
	}
	return nil
}

// serializeKeyBlock writes z.EntryKeyIndex as its position in the zone's
// full sorted DNSKEY list in both branches. Under direct-keying only the
// entry key itself is emitted, yet the index is not remapped to 0: a
// verifier must read it against the full list, not the one-key block.
func serializeKeyBlock(out *wire.Buffer, z *Zone) error {
	out.WriteU8(uint8(z.EntryKeyIndex))

	if z.DirectKey {
		out.WriteU16(0)
	} else {
		if err := out.WriteLengthPrefixed(z.DNSKeySig.Bytes()); err != nil {
			return newError(z.Name, fmt.Errorf("DNSKEY signature: %w", err))
		}
	}

	if z.DirectKey {
		out.WriteU8(1)
		key := z.DNSKeys[z.EntryKeyIndex]
		if err := out.WriteLengthPrefixed(key.Serialised()); err != nil {
			return newError(z.Name, fmt.Errorf("entry key: %w", err))
		}
		return nil
	}

	out.WriteU8(uint8(len(z.DNSKeys)))
	for _, key := range z.DNSKeys {
		serialised := key.Serialised()
		if z.IsRoot() && dnssec.ComputeKeyTag(key) == RootKeyTag {
			// The verifier already holds the trust anchor; no need to ship it.
			serialised = nil
		}
		if err := out.WriteLengthPrefixed(serialised); err != nil {
			return newError(z.Name, fmt.Errorf("DNSKEY set: %w", err))
		}
	}
	return nil
}

func serializeExitBlock(out *wire.Buffer, path []*Zone, z *Zone, target string) error {
	nextName := target
	if !z.IsTerminal() {
		nextName = path[z.NextIndex].Name
	}
	if err := wire.WriteName(out, nextName); err != nil {
		return newError(z.Name, fmt.Errorf("next-owner name: %w", err))
	}

	switch {
	case !z.IsTerminal():
		out.WriteU16(dnsTypeDS)
	case z.TerminalTXT != nil:
		out.WriteU16(dnsTypeTXT)
	case z.TerminalCNAME != nil:
		out.WriteU16(dnsTypeCNAME)
	default:
		return newError(z.Name, fmt.Errorf("zone has neither a next zone nor a terminal record"))
	}

	if err := out.WriteLengthPrefixed(z.ExitRecordSig.Bytes()); err != nil {
		return newError(z.Name, fmt.Errorf("exit-record signature: %w", err))
	}

	switch {
	case !z.IsTerminal():
		out.WriteU8(uint8(len(z.DS)))
		for _, ds := range z.DS {
			out.WriteU8(ds.DigestType)
			serialised := ds.Serialised()
			if ds.Elide {
				serialised = nil
			}
			if err := out.WriteLengthPrefixed(serialised); err != nil {
				return newError(z.Name, fmt.Errorf("DS set: %w", err))
			}
		}
	case z.TerminalTXT != nil:
		out.WriteU8(uint8(len(z.TerminalTXT.Values)))
		for _, s := range z.TerminalTXT.Values {
			if err := out.WriteLengthPrefixed(dnsrecord.EncodeTXTChunks(s)); err != nil {
				return newError(z.Name, fmt.Errorf("TXT value: %w", err))
			}
		}
	case z.TerminalCNAME != nil:
		if err := wire.WriteName(out, z.TerminalCNAME.Target); err != nil {
			return newError(z.Name, fmt.Errorf("CNAME target: %w", err))
		}
	}

	return nil
}

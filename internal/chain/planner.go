package chain

import (
	"fmt"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/dnssec"
)

// Plan selects, for every zone in path, its entry key, whether it can use
// direct-keying, the DNSKEY signature (if not direct-keyed), and the
// signature over its exit record, and marks which parent DS entries can
// be elided because the chosen entry key lets a verifier recompute them.
// Zones are planned independently but in path order, since a zone's DS
// set is mutated (its Elide flags) while planning its child.
func Plan(path []*Zone) error {
	for _, z := range path {
		if err := planZone(z, path); err != nil {
			return err
		}
	}
	return nil
}

func planZone(z *Zone, path []*Zone) error {
	exitRRSIGs := z.DSRRSIGs
	if z.IsTerminal() {
		exitRRSIGs = z.TerminalRRSIGs
	}

	exitSigners := make(map[int]bool)
	for _, sig := range exitRRSIGs {
		for i, key := range z.DNSKeys {
			if sig.KeyTag == dnssec.ComputeKeyTag(key) {
				exitSigners[i] = true
			}
		}
	}

	if z.IsRoot() {
		if err := selectRootEntryKey(z); err != nil {
			return err
		}
	} else if err := selectEntryKey(z, path[z.PrevIndex], exitSigners); err != nil {
		return err
	}

	if !z.DirectKey {
		if err := selectDNSKeySig(z); err != nil {
			return err
		}
	}

	return selectExitRecordSig(z, exitRRSIGs, exitSigners)
}

func selectRootEntryKey(z *Zone) error {
	for i, key := range z.DNSKeys {
		if dnssec.ComputeKeyTag(key) == RootKeyTag {
			z.EntryKeyIndex = i
			return nil
		}
	}
	return newError(z.Name, fmt.Errorf("failed to find root entry key (tag %d)", RootKeyTag))
}

func selectEntryKey(z, prev *Zone, exitSigners map[int]bool) error {
	entryKeys := make(map[int]bool)
	for i := range prev.DS {
		ds := &prev.DS[i]
		if !dnsrecord.DigestTypeSupported(ds.DigestType) {
			continue
		}
		for keyIndex, key := range z.DNSKeys {
			match, err := dnssec.MatchesDS(key, z.Name, *ds)
			if err != nil {
				return newError(z.Name, err)
			}
			if match {
				ds.Elide = true
				entryKeys[keyIndex] = true
			}
		}
	}
	if len(entryKeys) == 0 {
		return newError(z.Name, fmt.Errorf("no DNSKEY matches any DS held by the parent zone"))
	}

	if chosen, ok := firstIntersection(exitSigners, entryKeys); ok {
		z.EntryKeyIndex = chosen
		z.DirectKey = true
	} else {
		z.EntryKeyIndex = firstMember(entryKeys)
	}
	return nil
}

func selectDNSKeySig(z *Zone) error {
	entryTag := dnssec.ComputeKeyTag(z.DNSKeys[z.EntryKeyIndex])
	for i := range z.DNSKeyRRSIGs {
		if z.DNSKeyRRSIGs[i].KeyTag == entryTag {
			sig := z.DNSKeyRRSIGs[i]
			z.DNSKeySig = &sig
			return nil
		}
	}
	return newError(z.Name, fmt.Errorf("no DNSKEY RRSIG found for entry key (tag %d)", entryTag))
}

func selectExitRecordSig(z *Zone, exitRRSIGs []dnsrecord.RRSIG, exitSigners map[int]bool) error {
	if z.DirectKey {
		entryTag := dnssec.ComputeKeyTag(z.DNSKeys[z.EntryKeyIndex])
		for _, sig := range exitRRSIGs {
			if sig.KeyTag == entryTag {
				z.ExitRecordSig = sig
				return nil
			}
		}
		return newError(z.Name, fmt.Errorf("exit record is not signed by the direct-keyed entry key (tag %d)", entryTag))
	}

	if len(exitSigners) == 0 {
		return newError(z.Name, fmt.Errorf("exit record is not signed by any trusted key"))
	}
	keyIndex := firstMember(exitSigners)
	tag := dnssec.ComputeKeyTag(z.DNSKeys[keyIndex])
	for _, sig := range exitRRSIGs {
		if sig.KeyTag == tag {
			z.ExitRecordSig = sig
			return nil
		}
	}
	return newError(z.Name, fmt.Errorf("internal inconsistency: no exit record RRSIG carries key-tag %d", tag))
}

// firstMember returns the lowest index present in set, for deterministic,
// reproducible tie-breaking.
func firstMember(set map[int]bool) int {
	first := -1
	for i := range set {
		if first == -1 || i < first {
			first = i
		}
	}
	return first
}

// firstIntersection returns the lowest index present in both a and b.
func firstIntersection(a, b map[int]bool) (int, bool) {
	best := -1
	for i := range a {
		if b[i] && (best == -1 || i < best) {
			best = i
		}
	}
	return best, best != -1
}

// Package dnssec computes the two authentication primitives the chain
// planner needs: a DNSKEY's key tag, and the DS digest a parent zone would
// hold for it (RFC 4034 Appendix B and §5.2). Signing is out of scope here;
// this package only verifies/derives what resolver-supplied records assert.
package dnssec

import (
	"crypto/sha1" // #nosec G505 -- SHA-1 required for DNSSEC DS digest type 1 (RFC 4034)
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// ComputeKeyTag calculates the key tag for a DNSKEY per RFC 4034 Appendix B:
// a 16-bit accumulation over the serialised key bytes, folded into 16 bits.
func ComputeKeyTag(key dnsrecord.DNSKEY) uint16 {
	data := key.Serialised()

	var ac uint32
	for i, b := range data {
		if i%2 == 0 {
			ac += uint32(b) << 8
		} else {
			ac += uint32(b)
		}
	}
	ac += (ac >> 16) & 0xFFFF
	return uint16(ac & 0xFFFF)
}

// ComputeDSDigest computes the digest a parent zone's DS record for this key
// would carry, per RFC 4034 §5.2: digest-type over (wire-encoded owner name
// in canonical form ‖ serialised DNSKEY). Only SHA-1 (1) and SHA-256 (2) are
// supported; any other digestType is an error, since this system
// has no way to recompute or verify it.
func ComputeDSDigest(key dnsrecord.DNSKEY, ownerName string, digestType uint8) ([]byte, error) {
	if !dnsrecord.DigestTypeSupported(digestType) {
		return nil, fmt.Errorf("dnssec: unsupported DS digest type %d", digestType)
	}

	b := wire.NewBuffer()
	if err := wire.WriteName(b, strings.ToLower(ownerName)); err != nil {
		return nil, fmt.Errorf("dnssec: encoding owner name %q: %w", ownerName, err)
	}
	b.WriteRaw(key.Serialised())
	data := b.Bytes()

	switch digestType {
	case dnsrecord.DigestTypeSHA1:
		sum := sha1.Sum(data) // #nosec G401 -- DS digest type 1 is SHA-1 by definition
		return sum[:], nil
	case dnsrecord.DigestTypeSHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	default:
		// unreachable: guarded by DigestTypeSupported above
		return nil, fmt.Errorf("dnssec: unsupported DS digest type %d", digestType)
	}
}

// MatchesDS reports whether key, as owned by ownerName, is the key that ds
// attests to: the key tags must agree and the digest recomputed from key
// must equal ds.Digest byte-for-byte.
func MatchesDS(key dnsrecord.DNSKEY, ownerName string, ds dnsrecord.DS) (bool, error) {
	if ComputeKeyTag(key) != ds.KeyTag {
		return false, nil
	}
	digest, err := ComputeDSDigest(key, ownerName, ds.DigestType)
	if err != nil {
		return false, err
	}
	return string(digest) == string(ds.Digest), nil
}

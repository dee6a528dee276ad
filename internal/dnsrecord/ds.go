package dnsrecord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// Supported digest types.
const (
	DigestTypeSHA1   = 1
	DigestTypeSHA256 = 2
)

// DS is a Delegation Signer record: a digest of a child zone's DNSKEY,
// held in the parent. Elide is set by the chain planner when a
// verifier can recompute this DS from the child's entry key, letting the
// serializer omit the digest bytes.
type DS struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
	Elide      bool
}

// ParseDS parses a DS rdata line: "key-tag algorithm digest-type
// hex(digest)".
func ParseDS(line string) (DS, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return DS{}, newParseError("DS", line, fmt.Errorf("expected 4 fields, got %d", len(fields)))
	}

	keyTag, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return DS{}, newParseError("DS", line, fmt.Errorf("key-tag: %w", err))
	}
	algorithm, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return DS{}, newParseError("DS", line, fmt.Errorf("algorithm: %w", err))
	}
	digestType, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return DS{}, newParseError("DS", line, fmt.Errorf("digest-type: %w", err))
	}
	digest, err := decodeHex(strings.Join(fields[3:], ""))
	if err != nil {
		return DS{}, newParseError("DS", line, fmt.Errorf("digest: %w", err))
	}

	return DS{
		KeyTag:     uint16(keyTag),
		Algorithm:  uint8(algorithm),
		DigestType: uint8(digestType),
		Digest:     digest,
	}, nil
}

// Serialised returns the wire form used both for sorting a zone's DS set
// and for wire emission: key-tag‖algorithm‖digest-type‖digest.
func (d DS) Serialised() []byte {
	b := wire.NewBuffer()
	b.WriteU16(d.KeyTag)
	b.WriteU8(d.Algorithm)
	b.WriteU8(d.DigestType)
	b.WriteRaw(d.Digest)
	return b.Bytes()
}

// DigestTypeSupported reports whether digestType is one this system can
// compute and compare against: unsupported digest types are
// ignored during entry-key search.
func DigestTypeSupported(digestType uint8) bool {
	return digestType == DigestTypeSHA1 || digestType == DigestTypeSHA256
}

// SortDS orders a zone's DS set by serialised form, mirroring SortDNSKEYs.
func SortDS(dses []DS) {
	sort.Slice(dses, func(i, j int) bool {
		return string(dses[i].Serialised()) < string(dses[j].Serialised())
	})
}

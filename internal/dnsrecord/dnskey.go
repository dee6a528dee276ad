package dnsrecord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// DNSKEY is a public key published in a zone.
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	Key       []byte
}

// ParseDNSKEY parses a DNSKEY rdata line: "flags protocol algorithm
// base64(key)".
func ParseDNSKEY(line string) (DNSKEY, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return DNSKEY{}, newParseError("DNSKEY", line, fmt.Errorf("expected 4 fields, got %d", len(fields)))
	}

	flags, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return DNSKEY{}, newParseError("DNSKEY", line, fmt.Errorf("flags: %w", err))
	}
	protocol, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return DNSKEY{}, newParseError("DNSKEY", line, fmt.Errorf("protocol: %w", err))
	}
	algorithm, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return DNSKEY{}, newParseError("DNSKEY", line, fmt.Errorf("algorithm: %w", err))
	}
	key, err := decodeBase64(strings.Join(fields[3:], " "))
	if err != nil {
		return DNSKEY{}, newParseError("DNSKEY", line, fmt.Errorf("key: %w", err))
	}

	return DNSKEY{
		Flags:     uint16(flags),
		Protocol:  uint8(protocol),
		Algorithm: uint8(algorithm),
		Key:       key,
	}, nil
}

// Serialised returns the wire form used both for the key-tag computation
// and as the canonical sort key within a zone's DNSKEY set:
// flags‖protocol‖algorithm‖key-bytes.
func (k DNSKEY) Serialised() []byte {
	b := wire.NewBuffer()
	b.WriteU16(k.Flags)
	b.WriteU8(k.Protocol)
	b.WriteU8(k.Algorithm)
	b.WriteRaw(k.Key)
	return b.Bytes()
}

// SortDNSKEYs orders a zone's DNSKEY set by serialised form, making key
// indices reproducible across runs — this is what lets the wire
// format reference a key by a single u8 index.
func SortDNSKEYs(keys []DNSKEY) {
	sort.Slice(keys, func(i, j int) bool {
		return string(keys[i].Serialised()) < string(keys[j].Serialised())
	})
}

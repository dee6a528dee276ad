package dnsrecord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// dateFormat is the DNS presentation-format timestamp layout
// (YYYYMMDDHHMMSS), always interpreted in UTC.
const dateFormat = "20060102150405"

// RRSIG represents a DNSSEC signature record covering some other RRset.
type RRSIG struct {
	CoveredType string
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expires     uint32
	Begins      uint32
	KeyTag      uint16
	SignerName  string
	Signature   []byte
}

// ParseRRSIG parses a single RRSIG rdata line, as returned by a Resolver
// in the Answer.RRSIGs slice: nine whitespace-separated
// fields, with field 9 being whitespace-stripped base64.
func ParseRRSIG(line string) (RRSIG, error) {
	fields := strings.Fields(line)
	if len(fields) < 9 {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("expected 9 fields, got %d", len(fields)))
	}

	algorithm, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("algorithm: %w", err))
	}
	labels, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("labels: %w", err))
	}
	originalTTL, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("original-ttl: %w", err))
	}
	expires, err := parseDate(fields[4])
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("expires: %w", err))
	}
	begins, err := parseDate(fields[5])
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("begins: %w", err))
	}
	keyTag, err := strconv.ParseUint(fields[6], 10, 16)
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("key-tag: %w", err))
	}
	signature, err := decodeBase64(strings.Join(fields[8:], ""))
	if err != nil {
		return RRSIG{}, newParseError("RRSIG", line, fmt.Errorf("signature: %w", err))
	}

	return RRSIG{
		CoveredType: fields[0],
		Algorithm:   uint8(algorithm),
		Labels:      uint8(labels),
		OriginalTTL: uint32(originalTTL),
		Expires:     expires,
		Begins:      begins,
		KeyTag:      uint16(keyTag),
		SignerName:  strings.TrimSuffix(fields[7], "."),
		Signature:   signature,
	}, nil
}

func parseDate(s string) (uint32, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return 0, err
	}
	return uint32(t.Unix()), nil
}

// Serialise writes the wire form of the RRSIG: covered-type, signer-name,
// and length framing are all omitted, since the serializer's surrounding
// context (which zone, which exit record) already supplies them.
func (r RRSIG) Serialise(b *wire.Buffer) {
	b.WriteU8(r.Algorithm)
	b.WriteU8(r.Labels)
	b.WriteU32(r.OriginalTTL)
	b.WriteU32(r.Expires)
	b.WriteU32(r.Begins)
	b.WriteU16(r.KeyTag)
	b.WriteRaw(r.Signature)
}

// Bytes returns the RRSIG's wire-format encoding.
func (r RRSIG) Bytes() []byte {
	b := wire.NewBuffer()
	r.Serialise(b)
	return b.Bytes()
}

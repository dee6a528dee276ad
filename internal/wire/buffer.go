// Package wire implements the big-endian binary encoder used to serialise
// a DNSSEC authentication chain onto the wire.
package wire

import (
	"errors"
	"strings"
)

// MaxItemLength is the largest size a single length-prefixed item (a key,
// signature, or DS digest) may have on the wire: length prefixes are u16.
const MaxItemLength = 65535

// ErrItemTooLarge is returned when a caller attempts to write a
// length-prefixed item that would overflow the u16 length field.
var ErrItemTooLarge = errors.New("wire: item exceeds u16 length prefix")

// Buffer accumulates a forward-only, big-endian encoded byte stream. It
// grows on demand: this format is write-only and never re-read by the
// producer.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Bytes returns the accumulated stream.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// WriteU8 appends a single byte.
func (b *Buffer) WriteU8(v uint8) {
	b.buf = append(b.buf, v)
}

// WriteU16 appends a big-endian uint16.
func (b *Buffer) WriteU16(v uint16) {
	b.buf = append(b.buf, byte(v>>8), byte(v))
}

// WriteU32 appends a big-endian uint32.
func (b *Buffer) WriteU32(v uint32) {
	b.buf = append(b.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteRaw appends raw bytes verbatim.
func (b *Buffer) WriteRaw(p []byte) {
	b.buf = append(b.buf, p...)
}

// WriteLengthPrefixed appends a u16 length followed by p. It fails if p is
// longer than MaxItemLength, since the format has no way to represent that.
func (b *Buffer) WriteLengthPrefixed(p []byte) error {
	if len(p) > MaxItemLength {
		return ErrItemTooLarge
	}
	b.WriteU16(uint16(len(p)))
	b.WriteRaw(p)
	return nil
}

// WriteName encodes a DNS name as a sequence of length-prefixed labels
// terminated by a zero byte. The root name ("." or "") encodes as a single
// zero byte. Labels longer than 63 bytes are rejected, matching the DNS
// wire-format limit.
func WriteName(b *Buffer, name string) error {
	if name == "" || name == "." {
		b.WriteU8(0)
		return nil
	}
	name = strings.TrimSuffix(name, ".")
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		if len(label) > 63 {
			return errors.New("wire: label exceeds 63 bytes")
		}
		b.WriteU8(uint8(len(label)))
		b.WriteRaw([]byte(label))
	}
	b.WriteU8(0)
	return nil
}

// EncodeName is a convenience wrapper returning the wire-encoded bytes of
// name without requiring the caller to own a Buffer.
func EncodeName(name string) ([]byte, error) {
	b := NewBuffer()
	if err := WriteName(b, name); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

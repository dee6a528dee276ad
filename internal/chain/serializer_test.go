package chain

import (
	"testing"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

func TestSerializeDirectKeyOmitsDNSKeySig(t *testing.T) {
	key := testKey(0x50)
	z := &Zone{
		Name:          "example.",
		PrevIndex:     0,
		NextIndex:     -1,
		DNSKeys:       []dnsrecord.DNSKEY{key},
		EntryKeyIndex: 0,
		DirectKey:     true,
		ExitRecordSig: dnsrecord.RRSIG{KeyTag: keyTagOf(key), Signature: []byte{1, 2}},
		TerminalTXT:   &dnsrecord.TXTSet{Values: []string{"v=tls1"}},
	}
	path := []*Zone{{Name: "."}, z}

	out := wire.NewBuffer()
	if err := Serialize(out, path, 1, "example."); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	b := out.Bytes()
	// byte 0: entry-key-index; bytes 1-2: u16 DNSKEY-sig length, must be 0
	// for a direct-keyed zone.
	if b[0] != 0 {
		t.Fatalf("entry-key-index = %d, want 0", b[0])
	}
	if b[1] != 0 || b[2] != 0 {
		t.Fatalf("DNSKEY signature length = %d, want 0 (direct-keying)", uint16(b[1])<<8|uint16(b[2]))
	}
}

func TestSerializeElidedDSOmitsDigestBytes(t *testing.T) {
	childKey := testKey(0x60)
	ds := dsFor(childKey, "child.")
	ds.Elide = true

	z := &Zone{
		Name:          ".",
		PrevIndex:     -1,
		NextIndex:     1,
		DNSKeys:       []dnsrecord.DNSKEY{mustRootKey()},
		DNSKeySig:     &dnsrecord.RRSIG{KeyTag: 19036, Signature: []byte{9}},
		DS:            []dnsrecord.DS{ds},
		EntryKeyIndex: 0,
		ExitRecordSig: dnsrecord.RRSIG{KeyTag: 19036, Signature: []byte{9}},
	}
	// Serialize also emits the child zone, so it must be a complete
	// terminal zone; only the root's bytes are decoded below.
	child := &Zone{
		Name:        "child.",
		PrevIndex:   0,
		NextIndex:   -1,
		DNSKeys:     []dnsrecord.DNSKEY{childKey},
		DirectKey:   true,
		TerminalTXT: &dnsrecord.TXTSet{Values: []string{"v=tls1"}},
	}
	path := []*Zone{z, child}

	out := wire.NewBuffer()
	if err := Serialize(out, path, 0, "child."); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	// Decode manually to find the DS length field: entry-key-index (1) +
	// DNSKEY-sig length-prefixed block + key-count (1) + one length-prefixed
	// key + next-owner name + exit-type (2) + exit-sig length-prefixed
	// block + DS count (1) + digest-type (1) + DS length (2).
	b := out.Bytes()
	pos := 1
	sigLen := int(b[pos])<<8 | int(b[pos+1])
	pos += 2 + sigLen
	keyCount := int(b[pos])
	pos++
	for i := 0; i < keyCount; i++ {
		l := int(b[pos])<<8 | int(b[pos+1])
		pos += 2 + l
	}
	// next-owner name "child." -> one label
	labelLen := int(b[pos])
	pos += 1 + labelLen + 1 // label + trailing zero
	pos += 2                // exit type u16
	exitSigLen := int(b[pos])<<8 | int(b[pos+1])
	pos += 2 + exitSigLen
	dsCount := int(b[pos])
	pos++
	if dsCount != 1 {
		t.Fatalf("DS count = %d, want 1", dsCount)
	}
	pos++ // digest-type byte
	dsLen := int(b[pos])<<8 | int(b[pos+1])
	if dsLen != 0 {
		t.Errorf("elided DS length = %d, want 0", dsLen)
	}
}

func TestSerializeRootKeyElidedInKeyList(t *testing.T) {
	root := &Zone{
		Name:          ".",
		PrevIndex:     -1,
		NextIndex:     -1,
		DNSKeys:       []dnsrecord.DNSKEY{mustRootKey()},
		DNSKeySig:     &dnsrecord.RRSIG{KeyTag: 19036, Signature: []byte{1}},
		EntryKeyIndex: 0,
		ExitRecordSig: dnsrecord.RRSIG{KeyTag: 19036, Signature: []byte{1}},
		TerminalTXT:   &dnsrecord.TXTSet{Values: []string{"v=tls1"}},
	}
	out := wire.NewBuffer()
	if err := Serialize(out, []*Zone{root}, 0, "."); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	b := out.Bytes()
	pos := 1
	sigLen := int(b[pos])<<8 | int(b[pos+1])
	pos += 2 + sigLen
	pos++ // key count
	keyLen := int(b[pos])<<8 | int(b[pos+1])
	if keyLen != 0 {
		t.Errorf("root trust-anchor key length = %d, want 0 (elided)", keyLen)
	}
}

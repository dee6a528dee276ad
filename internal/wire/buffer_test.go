package wire

import "testing"

func TestWriteU16U32BigEndian(t *testing.T) {
	b := NewBuffer()
	b.WriteU16(19036)
	b.WriteU32(0x01020304)
	got := b.Bytes()
	want := []byte{0x4A, 0x5C, 0x01, 0x02, 0x03, 0x04}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestEncodeNameRoot(t *testing.T) {
	got, err := EncodeName(".")
	if err != nil {
		t.Fatalf("EncodeName: %v", err)
	}
	want := []byte{0x00}
	if string(got) != string(want) {
		t.Errorf("toDNSName(\".\") = % x, want % x", got, want)
	}
}

func TestEncodeNameEmptyEqualsRoot(t *testing.T) {
	got, err := EncodeName("")
	if err != nil {
		t.Fatalf("EncodeName: %v", err)
	}
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("EncodeName(\"\") = % x, want [0x00]", got)
	}
}

func TestEncodeNameTwoLabels(t *testing.T) {
	got, err := EncodeName("a.b.")
	if err != nil {
		t.Fatalf("EncodeName: %v", err)
	}
	want := []byte{0x01, 'a', 0x01, 'b', 0x00}
	if string(got) != string(want) {
		t.Errorf("toDNSName(\"a.b.\") = % x, want % x", got, want)
	}
}

func TestWriteLengthPrefixedRejectsOversize(t *testing.T) {
	b := NewBuffer()
	oversize := make([]byte, MaxItemLength+1)
	if err := b.WriteLengthPrefixed(oversize); err == nil {
		t.Errorf("expected error writing oversize item")
	}
}

func TestWriteLengthPrefixedRoundTripsLength(t *testing.T) {
	b := NewBuffer()
	payload := []byte{1, 2, 3}
	if err := b.WriteLengthPrefixed(payload); err != nil {
		t.Fatalf("WriteLengthPrefixed: %v", err)
	}
	got := b.Bytes()
	if got[0] != 0 || got[1] != 3 {
		t.Errorf("length prefix = % x, want 00 03", got[:2])
	}
}

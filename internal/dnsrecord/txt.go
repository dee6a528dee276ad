package dnsrecord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maugier/dnssec-tls-tools/internal/wire"
)

// ValidityMarker is the substring a terminal TXT set must contain in some
// member to be considered valid DANE-like TLS policy data.
const ValidityMarker = "v=tls1"

// TXTSet is the terminal record at a zone whose target is not a CNAME: an
// ordered, lexicographically sorted list of decoded strings.
type TXTSet struct {
	Values []string
}

// NewTXTSet decodes and sorts the rdata lines a Resolver returned for a
// TXT query.
func NewTXTSet(lines []string) (TXTSet, error) {
	values := make([]string, 0, len(lines))
	for _, line := range lines {
		v, err := ParseTXTValue(line)
		if err != nil {
			return TXTSet{}, err
		}
		values = append(values, v)
	}
	sort.Strings(values)
	return TXTSet{Values: values}, nil
}

// Valid reports whether some member contains the tls1 policy marker. An
// invalid TXT set is not itself an error; the caller decides whether to
// warn.
func (t TXTSet) Valid() bool {
	for _, v := range t.Values {
		if strings.Contains(v, ValidityMarker) {
			return true
		}
	}
	return false
}

// ParseTXTValue decodes a single TXT rdata line. A quoted
// string supports backslash-escaping and silently ignores whitespace
// outside the quotes; an unquoted token is used verbatim.
func ParseTXTValue(line string) (string, error) {
	if !strings.HasPrefix(strings.TrimLeft(line, " \t"), `"`) {
		return strings.TrimSpace(line), nil
	}
	return decodeQuotedString(line)
}

func decodeQuotedString(t string) (string, error) {
	var sb strings.Builder
	inString := false
	quoting := false

	for _, c := range t {
		if !inString {
			switch c {
			case '"':
				inString = true
			case ' ', '\t':
				// ignored outside quotes
			default:
				return "", newParseError("TXT", t, fmt.Errorf("unexpected character %q outside quotes", c))
			}
			continue
		}
		if quoting {
			sb.WriteRune(c)
			quoting = false
			continue
		}
		switch c {
		case '\\':
			quoting = true
		case '"':
			inString = false
		default:
			sb.WriteRune(c)
		}
	}
	if inString {
		return "", newParseError("TXT", t, fmt.Errorf("unterminated quoted string"))
	}
	return sb.String(), nil
}

// EncodeTXTChunks encodes s as a sequence of up to 255-byte chunks, each
// prefixed by its own u8 length: the empty
// string emits one zero-length chunk; a 255-byte string emits one chunk;
// a 256-byte string emits two chunks (255, 1).
func EncodeTXTChunks(s string) []byte {
	b := wire.NewBuffer()
	data := []byte(s)
	for {
		n := len(data)
		if n > 255 {
			n = 255
		}
		b.WriteU8(uint8(n))
		b.WriteRaw(data[:n])
		data = data[n:]
		if len(data) == 0 {
			break
		}
	}
	return b.Bytes()
}

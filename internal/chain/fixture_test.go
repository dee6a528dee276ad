package chain

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/maugier/dnssec-tls-tools/internal/dnsrecord"
	"github.com/maugier/dnssec-tls-tools/internal/dnssec"
)

// rootKeyB64 is the well-known ICANN root KSK-2010 public key, whose
// computed key tag is 19036.
const rootKeyB64 = "AwEAAagAIKlVZrpC6Ia7gEzahOR+9W29euxhJhVVLOyQbSEW0O8gcCjF" +
	"FVQUTf6v58fLjwBd0YI0EzrAcQqBGCzh/RStIoO8g0NfnfL2MTJRkxoX" +
	"bfDaUeVPQuYEhg37NZWAJQ9VnMVDxP/VHL496M/QZxkjf5/Efucp2gaD" +
	"X6RS6CXpoY68LsvPVjR0ZSwzz1apAzvN9dlzEheX7ICJBBtuA6G3LQpz" +
	"W5hOA2hzCTMjJPJ8LbqF6dsV6DoBQzgul0sGIcGOYl7OyQdXfZ57relS" +
	"Qageu+ipAdTTJ25AsRTAoub8ONGcLmqrAmRLKBP1dfwhYB4N7knNnulq" +
	"QxA+Uk1ihz0="

func mustRootKey() dnsrecord.DNSKEY {
	raw, err := base64.StdEncoding.DecodeString(rootKeyB64)
	if err != nil {
		panic(err)
	}
	return dnsrecord.DNSKEY{Flags: 257, Protocol: 3, Algorithm: 8, Key: raw}
}

func dnskeyLine(key dnsrecord.DNSKEY) string {
	return fmt.Sprintf("%d %d %d %s", key.Flags, key.Protocol, key.Algorithm,
		base64.StdEncoding.EncodeToString(key.Key))
}

func dsLine(ds dnsrecord.DS) string {
	return fmt.Sprintf("%d %d %d %s", ds.KeyTag, ds.Algorithm, ds.DigestType,
		hex.EncodeToString(ds.Digest))
}

// rrsigLine builds a 9-field RRSIG presentation line. signer "" encodes
// the root.
func rrsigLine(coveredType string, keyTag uint16, signer string) string {
	if signer == "" {
		signer = "."
	}
	return fmt.Sprintf("%s 8 0 3600 20300101000000 20240101000000 %d %s %s",
		coveredType, keyTag, signer, base64.StdEncoding.EncodeToString([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
}

func dsFor(key dnsrecord.DNSKEY, owner string) dnsrecord.DS {
	digest, err := dnssec.ComputeDSDigest(key, owner, dnsrecord.DigestTypeSHA256)
	if err != nil {
		panic(err)
	}
	return dnsrecord.DS{
		KeyTag:     dnssec.ComputeKeyTag(key),
		Algorithm:  key.Algorithm,
		DigestType: dnsrecord.DigestTypeSHA256,
		Digest:     digest,
	}
}

func keyTagOf(key dnsrecord.DNSKEY) uint16 {
	return dnssec.ComputeKeyTag(key)
}

func testKey(seed byte) dnsrecord.DNSKEY {
	return dnsrecord.DNSKEY{Flags: 256, Protocol: 3, Algorithm: 8, Key: []byte{seed, seed + 1, seed + 2}}
}

package resolver

import "testing"

func TestFilterTranscriptKeepsMatchingRecordsAndRRSIGs(t *testing.T) {
	transcript := `; <<>> DiG 9.18.0 <<>> @127.0.0.1 +dnssec -t DS example.
;; ANSWER SECTION:
example.		3600	IN	DS	19036 8 2 49aac11d7b6f6446702e54a1607371607a1a41855200fd2ce1cdde32f24e8fb5
example.		3600	IN	RRSIG	DS 8 1 3600 20300101000000 20240101000000 19036 . deadbeef
other.			3600	IN	DS	1 8 2 aabbcc
`
	ans := filterTranscript(transcript, "example.", "DS")
	if len(ans.Records) != 1 {
		t.Fatalf("Records = %v, want 1 entry", ans.Records)
	}
	if len(ans.RRSIGs) != 1 {
		t.Fatalf("RRSIGs = %v, want 1 entry", ans.RRSIGs)
	}
}

func TestFilterTranscriptIgnoresNonMatchingOwner(t *testing.T) {
	transcript := "unrelated.example.\t3600\tIN\tDS\t1 8 2 aabbcc\n"
	ans := filterTranscript(transcript, "example.", "DS")
	if len(ans.Records) != 0 {
		t.Errorf("expected no records for non-matching owner, got %v", ans.Records)
	}
}

func TestFilterTranscriptCapturesSOAOwner(t *testing.T) {
	transcript := "example.\t3600\tIN\tSOA\tns1.example. hostmaster.example. 1 7200 3600 1209600 3600\n"
	ans := filterTranscript(transcript, "example.", "SOA")
	if ans.SOAOwner != "example." {
		t.Errorf("SOAOwner = %q, want %q", ans.SOAOwner, "example.")
	}
}

func TestFilterTranscriptSkipsCommentsAndBlankLines(t *testing.T) {
	transcript := "\n; a comment\nexample.\t3600\tIN\tDS\t1 8 2 aabbcc\n"
	ans := filterTranscript(transcript, "example.", "DS")
	if len(ans.Records) != 1 {
		t.Errorf("expected one record, got %v", ans.Records)
	}
}

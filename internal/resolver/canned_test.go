package resolver

import (
	"context"
	"testing"
)

func TestCannedResolverReturnsRegisteredAnswer(t *testing.T) {
	r := NewCannedResolver().With("example.", "DS", Answer{Records: []string{"1 8 2 aabbcc"}})
	ans, err := r.Resolve(context.Background(), "example.", "DS")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(ans.Records) != 1 {
		t.Errorf("Records = %v, want 1 entry", ans.Records)
	}
}

func TestCannedResolverErrorsOnUnregisteredQuery(t *testing.T) {
	r := NewCannedResolver()
	if _, err := r.Resolve(context.Background(), "missing.", "DS"); err == nil {
		t.Errorf("expected error for unregistered query")
	}
}

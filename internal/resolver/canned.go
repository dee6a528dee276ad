package resolver

import (
	"context"
	"fmt"
)

// CannedResolver is a test double: a fixed map of (name, rrtype) queries to
// pre-built answers, used to drive deterministic chain-builder tests
// without a live validating resolver.
type CannedResolver struct {
	Answers map[string]Answer
}

func NewCannedResolver() *CannedResolver {
	return &CannedResolver{Answers: make(map[string]Answer)}
}

// With registers an answer for (name, rrtype) and returns the receiver,
// for compact test setup.
func (c *CannedResolver) With(name, rrtype string, ans Answer) *CannedResolver {
	c.Answers[cannedKey(name, rrtype)] = ans
	return c
}

func (c *CannedResolver) Resolve(ctx context.Context, name, rrtype string) (Answer, error) {
	ans, ok := c.Answers[cannedKey(name, rrtype)]
	if !ok {
		return Answer{}, newError(name, rrtype, fmt.Errorf("no canned answer registered"))
	}
	return ans, nil
}

func cannedKey(name, rrtype string) string {
	return rrtype + ":" + name
}

// Package resolver abstracts DNS resolution behind a small capability
// interface, so the chain planner never shells out or opens a socket
// itself: the validating resolver is an external, swappable collaborator.
package resolver

import (
	"context"
	"fmt"
)

// Answer is the resolver contract's result for one (name, rrtype) query:
// the matching rdata lines, their covering RRSIG lines, and the apex name
// taken from a returned SOA record's owner, if any.
type Answer struct {
	Records  []string
	RRSIGs   []string
	SOAOwner string
}

// Resolver resolves a single (name, rrtype) query against a validating
// DNS resolver, returning DNSSEC-validated data in presentation form.
type Resolver interface {
	Resolve(ctx context.Context, name, rrtype string) (Answer, error)
}

// Error wraps a failure to obtain an answer from the underlying resolver
// (process failure, network failure, malformed transcript).
type Error struct {
	Name   string
	RRType string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("resolver: resolving %s %s: %v", e.RRType, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(name, rrtype string, err error) error {
	return &Error{Name: name, RRType: rrtype, Err: err}
}

package transport

import (
	"context"
	"fmt"

	"github.com/ashvardanian/ucall/internal/protocol"
)

// Transport performs one validate_session round trip over a concrete wire.
// Implementations encode the request per their wire format, block until the
// server answers or fails, and decode the answer. No retries, no backoff:
// failures surface immediately as *Error.
type Transport interface {
	// RoundTrip sends one request and returns the decoded verdict.
	RoundTrip(ctx context.Context, req *protocol.ValidationRequest) (*protocol.ValidationResponse, error)

	// Close releases the underlying connection. Safe to call twice.
	Close() error
}

// Error wraps a failure of the wire itself: refused connections, TLS
// negotiation, interrupted reads, undecodable frames. Distinct from a
// wrong answer, which the client reports separately.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

package client

import (
	"context"

	validate "github.com/ashvardanian/ucall/internal"
)

// The following types are re-exported from internal for application use.

// Client is a session-validation client bound to one transport.
type Client = validate.Client

// Optional holds the recognized construction options (host, port, identity).
type Optional = validate.Optional

// MismatchError is the "Wrong Answer" failure: the server's verdict
// disagrees with the reference rule.
type MismatchError = validate.MismatchError

// UserDemo is the peripheral create_user client.
type UserDemo = validate.UserDemo

// New returns a client speaking plain HTTP, default port 8545.
func New(opt *Optional) *Client {
	return validate.NewREST(opt)
}

// NewTLS returns a client speaking HTTPS with server certificate
// verification disabled, default port 8545.
func NewTLS(opt *Optional) *Client {
	return validate.NewTLSREST(opt)
}

// NewWebSocket returns a client holding one long-lived WebSocket
// connection, default port 8000. The connection is dialed here; callers
// own it until Close.
func NewWebSocket(ctx context.Context, opt *Optional) (*Client, error) {
	return validate.NewWebSocket(ctx, opt)
}

// NewUserDemo returns the peripheral create_user client, default port 8000.
func NewUserDemo(opt *Optional) *UserDemo {
	return validate.NewUserDemo(opt)
}

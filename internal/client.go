package validate

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/ashvardanian/ucall/internal/protocol"
	"github.com/ashvardanian/ucall/internal/transport"
)

const (
	DefaultHost     = "127.0.0.1"
	DefaultHTTPPort = 8545
	DefaultWSPort   = 8000
)

// Optional configures a client at construction.
type Optional struct {
	// Host of the answering server. Empty means loopback.
	Host string

	// Port of the answering server. Zero picks the transport default:
	// 8545 for the HTTP variants, 8000 for WebSocket.
	Port int

	// Identity tags requests originating from this client. It is carried
	// and logged, never read by the validation logic. Callers needing a
	// meaningful tag supply their own; nothing is inherited from the
	// process.
	Identity int
}

// withDefaults fills the blanks without mutating the caller's struct.
func (o *Optional) withDefaults(port int) Optional {
	out := Optional{}
	if o != nil {
		out = *o
	}
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.Port == 0 {
		out.Port = port
	}
	return out
}

// Client validates sessions against a remote server and checks every
// answer against the locally recomputed reference rule. One transport per
// client; calls are synchronous and block until the wire completes.
type Client struct {
	identity  int
	transport transport.Transport
}

// NewREST returns a client speaking plain HTTP.
func NewREST(opt *Optional) *Client {
	o := opt.withDefaults(DefaultHTTPPort)
	return &Client{
		identity:  o.Identity,
		transport: transport.NewHTTP(o.Host, o.Port),
	}
}

// NewTLSREST returns a client speaking HTTPS with certificate
// verification disabled.
func NewTLSREST(opt *Optional) *Client {
	o := opt.withDefaults(DefaultHTTPPort)
	return &Client{
		identity:  o.Identity,
		transport: transport.NewTLS(o.Host, o.Port),
	}
}

// NewWebSocket returns a client speaking the binary WebSocket protocol.
// The connection is dialed here and reused until Close.
func NewWebSocket(ctx context.Context, opt *Optional) (*Client, error) {
	o := opt.withDefaults(DefaultWSPort)
	ws, err := transport.DialWS(ctx, o.Host, o.Port)
	if err != nil {
		return nil, err
	}
	return &Client{
		identity:  o.Identity,
		transport: ws,
	}, nil
}

// Validate draws both parameters uniformly from [1, 1000] and round-trips
// them, so two consecutive calls exercise different pairs.
func (c *Client) Validate(ctx context.Context) (bool, error) {
	return c.validate(ctx, protocol.NewRandomRequest())
}

// ValidatePair round-trips the given parameters.
func (c *Client) ValidatePair(ctx context.Context, userID, sessionID uint32) (bool, error) {
	return c.validate(ctx, &protocol.ValidationRequest{UserID: userID, SessionID: sessionID})
}

func (c *Client) validate(ctx context.Context, req *protocol.ValidationRequest) (bool, error) {
	resp, err := c.transport.RoundTrip(ctx, req)
	if err != nil {
		return false, err
	}

	if expected := req.Expected(); resp.Valid != expected {
		logx.WithContext(ctx).Errorf("Server returned wrong answer, identity=%d, user_id=%d, session_id=%d, expected=%t, got=%t",
			c.identity, req.UserID, req.SessionID, expected, resp.Valid)
		return false, &MismatchError{
			UserID:    req.UserID,
			SessionID: req.SessionID,
			Expected:  expected,
			Got:       resp.Valid,
		}
	}

	logx.WithContext(ctx).Debugf("Session validated, identity=%d, user_id=%d, session_id=%d, valid=%t",
		c.identity, req.UserID, req.SessionID, resp.Valid)
	return resp.Valid, nil
}

// Identity returns the caller-supplied tag.
func (c *Client) Identity() int {
	return c.identity
}

// Close releases the transport. Safe to call twice.
func (c *Client) Close() error {
	return c.transport.Close()
}

package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ashvardanian/ucall/internal/protocol"
)

const validateWSPath = "/validate_session_ws"

var errClosed = errors.New("connection closed")

// WSTransport holds one long-lived WebSocket connection to the
// validate_session_ws endpoint: dialed once at construction, reused for
// every round trip, released by Close. The mutex serializes round trips;
// gorilla connections tolerate only one concurrent reader and writer.
type WSTransport struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// DialWS opens the connection the transport will use for its lifetime.
func DialWS(ctx context.Context, host string, port int) (*WSTransport, error) {
	u := fmt.Sprintf("ws://%s:%d%s", host, port, validateWSPath)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, &Error{Op: "dial " + u, Err: err}
	}
	return &WSTransport{conn: conn}, nil
}

// RoundTrip writes one 8-byte request frame and blocks for the 4-byte
// answer frame.
func (t *WSTransport) RoundTrip(ctx context.Context, req *protocol.ValidationRequest) (*protocol.ValidationResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: "round trip", Err: err}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, &Error{Op: "round trip", Err: errClosed}
	}

	frame, err := req.Encode()
	if err != nil {
		return nil, &Error{Op: "encode frame", Err: err}
	}
	if err := t.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return nil, &Error{Op: "write frame", Err: err}
	}

	_, answer, err := t.conn.ReadMessage()
	if err != nil {
		return nil, &Error{Op: "read frame", Err: err}
	}

	resp := &protocol.ValidationResponse{}
	if err := resp.Decode(answer); err != nil {
		return nil, &Error{Op: "decode frame", Err: err}
	}
	return resp, nil
}

// Close shuts the connection down. Safe to call twice.
func (t *WSTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	return t.conn.Close()
}

package protocol

import (
	"encoding/binary"
	"fmt"
	"net/url"
	"strconv"
)

// ParamMin and ParamMax bound the uniform range used when a session
// parameter is not supplied by the caller.
const (
	ParamMin = 1
	ParamMax = 1000
)

// requestFrameLen is the size of an encoded request frame: two uint32 values.
const requestFrameLen = 8

// ValidationRequest carries the two parameters of one validate_session call.
// Requests are transient: built per call, never reused, never mutated after
// construction.
type ValidationRequest struct {
	UserID    uint32
	SessionID uint32
}

// NewRandomRequest draws both parameters uniformly from [ParamMin, ParamMax].
func NewRandomRequest() *ValidationRequest {
	return &ValidationRequest{UserID: RandParam(), SessionID: RandParam()}
}

// Expected recomputes the answer a correct server must return for this
// request: user_id XOR session_id divisible by 23.
func (r *ValidationRequest) Expected() bool {
	return (r.UserID^r.SessionID)%23 == 0
}

// Query renders the request as the query string the HTTP endpoints expect.
func (r *ValidationRequest) Query() url.Values {
	q := url.Values{}
	q.Set("user_id", strconv.FormatUint(uint64(r.UserID), 10))
	q.Set("session_id", strconv.FormatUint(uint64(r.SessionID), 10))
	return q
}

// Encode renders the request as a binary WebSocket frame:
// bytes 0-3 user_id, bytes 4-7 session_id, both little-endian.
func (r *ValidationRequest) Encode() ([]byte, error) {
	buf := make([]byte, requestFrameLen)
	binary.LittleEndian.PutUint32(buf[0:4], r.UserID)
	binary.LittleEndian.PutUint32(buf[4:8], r.SessionID)
	return buf, nil
}

// Decode restores a request from a binary frame. Inverse of Encode;
// answering servers use it.
func (r *ValidationRequest) Decode(data []byte) error {
	if len(data) != requestFrameLen {
		return fmt.Errorf("request frame must be %d bytes, got %d", requestFrameLen, len(data))
	}
	r.UserID = binary.LittleEndian.Uint32(data[0:4])
	r.SessionID = binary.LittleEndian.Uint32(data[4:8])
	return nil
}

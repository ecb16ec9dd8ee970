package protocol

import (
	"encoding/binary"
	"fmt"
)

// responseFrameLen is the size of a binary response frame: one uint32.
const responseFrameLen = 4

// ValidationResponse is the server's verdict for one request.
type ValidationResponse struct {
	Valid bool
}

// DecodeText interprets an HTTP response body. The wire contract is
// asymmetric: the literal body "false" means false, any other body
// (including an empty one) means true. Do not tighten it; the deployed
// endpoints depend on the loose form.
func (r *ValidationResponse) DecodeText(body []byte) {
	r.Valid = string(body) != "false"
}

// Decode interprets a binary WebSocket frame: one little-endian uint32,
// nonzero meaning true.
func (r *ValidationResponse) Decode(data []byte) error {
	if len(data) != responseFrameLen {
		return fmt.Errorf("response frame must be %d bytes, got %d", responseFrameLen, len(data))
	}
	r.Valid = binary.LittleEndian.Uint32(data) != 0
	return nil
}

// Encode renders the verdict as a binary frame. Answering servers use it.
func (r *ValidationResponse) Encode() ([]byte, error) {
	buf := make([]byte, responseFrameLen)
	if r.Valid {
		binary.LittleEndian.PutUint32(buf, 1)
	}
	return buf, nil
}

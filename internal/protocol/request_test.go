package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationRequest_Expected(t *testing.T) {
	cases := []struct {
		name      string
		userID    uint32
		sessionID uint32
		want      bool
	}{
		{"XorNotDivisible", 2, 25, false},  // 2^25 = 27, 27 % 23 = 4
		{"XorDivisible", 1, 22, true},      // 1^22 = 23
		{"XorZero", 7, 7, true},            // x^x = 0, divisible
		{"LargePair", 1000, 1000, true},
		{"AdjacentPair", 24, 1, false}, // 24^1 = 25
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ValidationRequest{UserID: tc.userID, SessionID: tc.sessionID}
			assert.Equal(t, tc.want, r.Expected())
		})
	}
}

func TestValidationRequest_Query(t *testing.T) {
	r := ValidationRequest{UserID: 2, SessionID: 25}
	q := r.Query()

	assert.Equal(t, "2", q.Get("user_id"))
	assert.Equal(t, "25", q.Get("session_id"))
}

func TestValidationRequest_Encode(t *testing.T) {
	r := ValidationRequest{UserID: 2, SessionID: 25}

	frame, err := r.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 0x19, 0x00, 0x00, 0x00}, frame)
}

func TestValidationRequest_Decode(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		in := ValidationRequest{UserID: 513, SessionID: 999}
		frame, err := in.Encode()
		require.NoError(t, err)

		var out ValidationRequest
		require.NoError(t, out.Decode(frame))
		assert.Equal(t, in, out)
	})

	t.Run("ShortFrame", func(t *testing.T) {
		var r ValidationRequest
		assert.Error(t, r.Decode([]byte{0x01, 0x02, 0x03}))
	})

	t.Run("LongFrame", func(t *testing.T) {
		var r ValidationRequest
		assert.Error(t, r.Decode(make([]byte, 12)))
	})
}

func TestNewRandomRequest(t *testing.T) {
	seen := map[ValidationRequest]bool{}
	for i := 0; i < 100; i++ {
		r := NewRandomRequest()
		require.GreaterOrEqual(t, r.UserID, uint32(ParamMin))
		require.LessOrEqual(t, r.UserID, uint32(ParamMax))
		require.GreaterOrEqual(t, r.SessionID, uint32(ParamMin))
		require.LessOrEqual(t, r.SessionID, uint32(ParamMax))
		seen[*r] = true
	}

	// 100 identical draws from a million-pair space would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

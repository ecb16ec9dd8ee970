package validate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoOptional(t *testing.T, rawURL string) *Optional {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return &Optional{Host: u.Hostname(), Port: port}
}

func TestUserDemo_CreateUser(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/create_user", req.URL.Path)
		got = req.URL.Query()
		_, _ = w.Write([]byte("user John created"))
	}))
	defer srv.Close()

	demo := NewUserDemo(demoOptional(t, srv.URL))
	defer demo.Close()

	body, err := demo.CreateUser(context.Background())
	require.NoError(t, err)

	// Raw body passthrough, no parsing.
	assert.Equal(t, "user John created", body)

	age, err := strconv.Atoi(got.Get("age"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, age, 1)
	assert.LessOrEqual(t, age, 1000)

	assert.Equal(t, "John", got.Get("name"))
	assert.Equal(t, got.Get("bio"), got.Get("text"))

	// 1500 uppercase ASCII characters of text.
	bio := got.Get("bio")
	assert.Len(t, bio, 1500)
	for i := 0; i < len(bio); i++ {
		require.True(t, bio[i] >= 'A' && bio[i] <= 'Z', "bio[%d] = %q", i, bio[i])
	}

	// The avatar blob is built once alongside bio but never sent.
	assert.Empty(t, got.Get("avatar"))
	assert.Len(t, demo.avatar, 2000) // base64 of 1500 random bytes
}

func TestUserDemo_PayloadIsStable(t *testing.T) {
	bios := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		bios[req.URL.Query().Get("bio")] = true
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	demo := NewUserDemo(demoOptional(t, srv.URL))
	defer demo.Close()

	// The payload is generated once at construction and resent verbatim.
	for i := 0; i < 3; i++ {
		_, err := demo.CreateUser(context.Background())
		require.NoError(t, err)
	}
	assert.Len(t, bios, 1)
}

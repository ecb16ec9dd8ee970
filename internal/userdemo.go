package validate

import (
	"context"
	"net/url"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/ashvardanian/ucall/internal/protocol"
	"github.com/ashvardanian/ucall/internal/transport"
)

const createUserPath = "/create_user"

// payloadLen is the size of the random payload carried by every
// create_user call, matching the upstream demo.
const payloadLen = 1500

const demoUserName = "John"

// UserDemo drives the unrelated create_user endpoint. It shares the
// client construction pattern but no part of the validation protocol; the
// response body is passed through unparsed.
type UserDemo struct {
	identity  int
	transport *transport.HTTPTransport

	// bio and avatar are generated once at construction; bio is resent on
	// every call, avatar is carried for future extension only.
	bio    string
	avatar string
	name   string
}

// NewUserDemo returns a demo client over plain HTTP, default port 8000.
func NewUserDemo(opt *Optional) *UserDemo {
	o := opt.withDefaults(DefaultWSPort)
	return &UserDemo{
		identity:  o.Identity,
		transport: transport.NewHTTP(o.Host, o.Port),
		bio:       protocol.RandText(payloadLen),
		avatar:    protocol.RandBlob(payloadLen),
		name:      demoUserName,
	}
}

// CreateUser GETs create_user with a fresh random age and the fixed
// payloads, returning the raw response body.
func (d *UserDemo) CreateUser(ctx context.Context) (string, error) {
	age := protocol.RandParam()

	q := url.Values{}
	q.Set("age", strconv.FormatUint(uint64(age), 10))
	q.Set("bio", d.bio)
	q.Set("name", d.name)
	q.Set("text", d.bio)

	body, err := d.transport.Get(ctx, createUserPath, q)
	if err != nil {
		return "", err
	}

	logx.WithContext(ctx).Debugf("User created, identity=%d, age=%d, body_len=%d", d.identity, age, len(body))
	return string(body), nil
}

// Close drops pooled connections.
func (d *UserDemo) Close() error {
	return d.transport.Close()
}

// Package client provides harnesses for exercising a remote
// session-validation server over plain HTTP, TLS HTTP, or a raw binary
// WebSocket. Every answer is checked against the reference rule
// ((user_id XOR session_id) mod 23 == 0); a disagreeing server aborts the
// call with a *MismatchError.
//
// Example:
//
//	import "github.com/ashvardanian/ucall/client"
//
//	c := client.New(&client.Optional{Host: "127.0.0.1", Port: 8545})
//	defer c.Close()
//
//	valid, err := c.Validate(ctx)          // random pair from [1, 1000]
//	valid, err = c.ValidatePair(ctx, 1, 22) // (1 XOR 22) % 23 == 0 → true
package client

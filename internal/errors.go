package validate

import "fmt"

// MismatchError reports a server verdict that disagrees with the locally
// recomputed rule. It signals a defect in the server under test, never in
// the client, and always aborts the call that produced it.
type MismatchError struct {
	UserID    uint32
	SessionID uint32
	Expected  bool
	Got       bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("wrong answer: user_id=%d, session_id=%d, expected=%t, got=%t",
		e.UserID, e.SessionID, e.Expected, e.Got)
}

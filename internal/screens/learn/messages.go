package learn

import (
	sess "github.com/asengupta/quizdeck/internal/session"
)

// sessionInitMsg is sent when the learning session has been built.
type sessionInitMsg struct {
	State *sess.State
	Err   error
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}

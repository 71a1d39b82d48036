// File: services/conversation/errors.go
package conversation

import "fmt"

// ValidationError marks a missing or malformed required field. Recovered
// locally by re-prompting; it never escapes the tool layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SessionNotFoundError is returned when Continue references an unknown or
// expired session.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %s not found", e.SessionID)
}

// UnknownIntentError signals a classifier contract violation: an intent
// outside the closed set reached the router. Fatal for the session.
type UnknownIntentError struct {
	Intent string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent %q", e.Intent)
}

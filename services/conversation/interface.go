// File: services/conversation/interface.go
package conversation

import (
	"context"

	"tripgenius/models"
)

// OutcomeKind discriminates the results of a tool step.
type OutcomeKind int

const (
	// OutcomeNeedsInput suspends the conversation until the user answers.
	OutcomeNeedsInput OutcomeKind = iota
	// OutcomeProgress reports intermediate text; the orchestrator steps again.
	OutcomeProgress
	// OutcomeDone completes the tool with a final summary.
	OutcomeDone
	// OutcomeFailed aborts the tool with an unrecoverable error.
	OutcomeFailed
)

// StepOutcome is the single result type of a tool step.
type StepOutcome struct {
	Kind    OutcomeKind
	Message string
	Err     error
}

func NeedsInput(message string) StepOutcome {
	return StepOutcome{Kind: OutcomeNeedsInput, Message: message}
}

func Progress(message string) StepOutcome {
	return StepOutcome{Kind: OutcomeProgress, Message: message}
}

func Done(message string) StepOutcome {
	return StepOutcome{Kind: OutcomeDone, Message: message}
}

func Failed(err error) StepOutcome {
	return StepOutcome{Kind: OutcomeFailed, Err: err}
}

// Tool is one conversational capability (flight booking, hotel booking,
// itinerary planning). A tool is stepped repeatedly with the session's shared
// state; it keeps its working memory in session.Tool and the collected
// parameters in session.Params.
type Tool interface {
	Name() models.ToolID
	Step(ctx context.Context, sess *models.Session, input string) StepOutcome
}

// SessionStore owns session state. Implementations must serialize access per
// session identifier: two concurrent WithSession calls for the same ID never
// interleave, while distinct IDs proceed independently.
type SessionStore interface {
	// Create persists a new session.
	Create(ctx context.Context, sess *models.Session) error
	// WithSession loads the session, runs fn under the session's lock, and
	// persists the mutated session unless fn errors. Returns
	// SessionNotFoundError for unknown or expired IDs. Sessions marked
	// Terminal by fn are removed instead of persisted.
	WithSession(ctx context.Context, sessionID string, fn func(*models.Session) error) error
}

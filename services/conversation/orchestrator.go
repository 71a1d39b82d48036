// File: services/conversation/orchestrator.go
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripgenius/models"
	"tripgenius/services/intelligence"
	"tripgenius/services/providers"
	"tripgenius/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const clarifyPrompt = "I can help you book flights, find hotels, plan a day-by-day itinerary, " +
	"or arrange a full trip. What would you like to do?"

// Orchestrator drives multi-turn conversations: it classifies the opening
// query, routes it onto a tool queue, and steps the active tool until it
// needs input, completes, or fails.
type Orchestrator struct {
	store SessionStore
	intel intelligence.Service
	tools map[models.ToolID]Tool
}

func NewOrchestrator(store SessionStore, intel intelligence.Service, tools ...Tool) *Orchestrator {
	byID := make(map[models.ToolID]Tool, len(tools))
	for _, t := range tools {
		byID[t.Name()] = t
	}
	return &Orchestrator{store: store, intel: intel, tools: byID}
}

// Initiate starts a new conversation from a free-form query. The returned
// response always carries a freshly minted session ID; done is true only if
// the whole request could be served without any user input.
func (o *Orchestrator) Initiate(ctx context.Context, query string) (models.ChatResponse, error) {
	sess := &models.Session{
		SessionID: uuid.New().String(),
		State:     models.StateCreated,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	resp, err := o.begin(ctx, sess, query)
	if err != nil {
		return models.ChatResponse{}, err
	}
	// A conversation that finished in its first turn is never stored.
	if !sess.Terminal {
		if err := o.store.Create(ctx, sess); err != nil {
			return models.ChatResponse{}, err
		}
	}
	return resp, nil
}

// begin classifies and routes the query, then steps the tool queue. Ambiguous
// queries leave the session in CREATED with a clarifying prompt; the next
// Continue re-classifies.
func (o *Orchestrator) begin(ctx context.Context, sess *models.Session, query string) (models.ChatResponse, error) {
	intent, err := o.intel.Classify(ctx, query)
	if err != nil {
		if errors.Is(err, intelligence.ErrAmbiguousIntent) {
			utils.GetLogger().Info("ambiguous intent, asking user to clarify",
				zap.String("sessionId", sess.SessionID))
			return o.respond(sess, models.ResponseTypePrompt, clarifyPrompt), nil
		}
		return models.ChatResponse{}, err
	}

	queue, err := Route(intent)
	if err != nil {
		return models.ChatResponse{}, err
	}
	sess.Intent = intent
	sess.Queue = queue
	sess.State = models.StateToolActive

	// Pre-fill whatever parameters the opening query already carries so
	// tools never re-ask for them.
	if extracted, err := o.intel.Extract(ctx, query); err == nil {
		for field, value := range extracted {
			if applyErr := sess.Params.Apply(field, value); applyErr != nil {
				utils.GetLogger().Debug("ignoring unusable extracted field",
					zap.String("field", field), zap.Error(applyErr))
			}
		}
	}

	return o.runSteps(ctx, sess, ""), nil
}

// Continue advances an existing conversation with the user's latest input.
func (o *Orchestrator) Continue(ctx context.Context, sessionID, input string) (models.ChatResponse, error) {
	var resp models.ChatResponse
	err := o.store.WithSession(ctx, sessionID, func(sess *models.Session) error {
		if sess.State == models.StateCreated {
			// Intent was ambiguous at Initiate; treat this input as a
			// fresh attempt to state one.
			r, err := o.begin(ctx, sess, input)
			if err != nil {
				return err
			}
			resp = r
			return nil
		}
		resp = o.runSteps(ctx, sess, input)
		return nil
	})
	if err != nil {
		return models.ChatResponse{}, err
	}
	return resp, nil
}

// runSteps drives the active tool until the turn must end. Progress outcomes
// accumulate and step again immediately; NeedsInput suspends; Done advances
// the queue; Failed either skips the leg or terminates.
func (o *Orchestrator) runSteps(ctx context.Context, sess *models.Session, input string) models.ChatResponse {
	var progress []string

	for {
		toolID := sess.ActiveTool()
		if toolID == "" {
			return o.terminate(sess, progress)
		}
		tool, ok := o.tools[toolID]
		if !ok {
			utils.GetLogger().Error("no tool registered for queue entry",
				zap.String("tool", string(toolID)))
			sess.Notices = append(sess.Notices, fmt.Sprintf("The %s step is unavailable right now.", toolID))
			sess.Queue = sess.Queue[1:]
			sess.Tool = models.ToolState{}
			continue
		}

		sess.State = models.StateProcessing
		outcome := tool.Step(ctx, sess, input)
		input = "" // consumed by the first step of the turn

		switch outcome.Kind {
		case OutcomeNeedsInput:
			sess.State = models.StateAwaitingInput
			return o.respond(sess, models.ResponseTypePrompt, joinParts(progress, outcome.Message))

		case OutcomeProgress:
			progress = append(progress, outcome.Message)

		case OutcomeDone:
			sess.Results = append(sess.Results, outcome.Message)
			progress = append(progress, outcome.Message)
			sess.Queue = sess.Queue[1:]
			sess.Tool = models.ToolState{}
			sess.State = models.StateToolActive

		case OutcomeFailed:
			apology := apologyFor(toolID, outcome.Err)
			utils.GetLogger().Warn("tool failed",
				zap.String("sessionId", sess.SessionID),
				zap.String("tool", string(toolID)),
				zap.Error(outcome.Err))
			if len(sess.Queue) > 1 {
				// More legs queued: skip this one and keep going.
				sess.Notices = append(sess.Notices, apology)
				progress = append(progress, apology)
				sess.Queue = sess.Queue[1:]
				sess.Tool = models.ToolState{}
				sess.State = models.StateToolActive
				continue
			}
			progress = append(progress, apology)
			return o.terminate(sess, progress)
		}
	}
}

// terminate closes the session and produces the final summary turn.
func (o *Orchestrator) terminate(sess *models.Session, progress []string) models.ChatResponse {
	sess.State = models.StateTerminated
	sess.Terminal = true

	content := joinParts(progress, "")
	if content == "" {
		content = joinParts(sess.Results, "")
	}
	if content == "" {
		content = "There's nothing more to do for this trip."
	}
	resp := o.respond(sess, models.ResponseTypeMessage, content)
	resp.Done = true
	return resp
}

func (o *Orchestrator) respond(sess *models.Session, typ, content string) models.ChatResponse {
	return models.ChatResponse{
		Type:      typ,
		Content:   content,
		SessionID: sess.SessionID,
		Done:      false,
	}
}

func joinParts(parts []string, last string) string {
	all := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		if p != "" {
			all = append(all, p)
		}
	}
	if last != "" {
		all = append(all, last)
	}
	return strings.Join(all, "\n\n")
}

// apologyFor converts a tool failure into user-facing text.
func apologyFor(tool models.ToolID, err error) string {
	var provErr *providers.ProviderError
	if errors.As(err, &provErr) {
		switch provErr.Category {
		case "flight":
			return "Sorry, I couldn't reach the flight providers right now, so I had to skip the flight booking."
		case "hotel":
			return "Sorry, I couldn't reach the hotel providers right now, so I had to skip the hotel booking."
		case "poi":
			return "Sorry, I couldn't fetch attractions for your destination, so I had to skip the itinerary."
		}
	}
	return fmt.Sprintf("Sorry, the %s step ran into a problem and couldn't be completed.", tool)
}

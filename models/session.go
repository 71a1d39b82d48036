package models

import "time"

// Orchestrator states for a conversation session.
const (
	StateCreated       = "CREATED"
	StateIntentRouted  = "INTENT_ROUTED"
	StateToolActive    = "TOOL_ACTIVE"
	StateAwaitingInput = "AWAITING_INPUT"
	StateProcessing    = "PROCESSING"
	StateTerminated    = "TERMINATED"
)

// ToolState is the active tool's working memory. It is reset whenever the
// orchestrator advances to the next queued tool.
type ToolState struct {
	Stage         string            `json:"stage,omitempty"`
	AwaitingField string            `json:"awaitingField,omitempty"`
	FlightOffers  []FlightOffer     `json:"flightOffers,omitempty"`
	HotelOptions  []HotelOption     `json:"hotelOptions,omitempty"`
	POIs          []PointOfInterest `json:"pois,omitempty"`
}

// Session is one end-to-end conversation. Owned by the session store and
// mutated only by the orchestrator while holding the session's lock.
type Session struct {
	SessionID string     `json:"sessionId"`
	State     string     `json:"state"`
	Intent    Intent     `json:"intent,omitempty"`
	Queue     []ToolID   `json:"queue,omitempty"` // head is the active tool
	Params    TripParams `json:"params"`
	Tool      ToolState  `json:"tool"`
	Results   []string   `json:"results,omitempty"` // completed tool summaries
	Notices   []string   `json:"notices,omitempty"` // user-facing notes (e.g. skipped legs)
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Terminal  bool       `json:"terminal"`
}

// ActiveTool returns the head of the tool queue, or "" when the queue is empty.
func (s *Session) ActiveTool() ToolID {
	if len(s.Queue) == 0 {
		return ""
	}
	return s.Queue[0]
}

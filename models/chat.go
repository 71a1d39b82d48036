package models

// ChatRequest is the payload coming from the frontend into /api/chat/initiate.
type ChatRequest struct {
	Query string `json:"query"` // free-form user query text
}

// ContinueRequest carries a follow-up input for an existing conversation.
type ContinueRequest struct {
	SessionID string `json:"session_id"`
	UserInput string `json:"user_input"`
}

// Response type values.
const (
	ResponseTypeMessage = "message"
	ResponseTypePrompt  = "prompt"
)

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Type      string `json:"type"`       // "message" or "prompt"
	Content   string `json:"content"`    // natural-language reply or prompt text
	SessionID string `json:"session_id"` // opaque conversation identifier
	Done      bool   `json:"done"`       // true once the conversation has terminated
}

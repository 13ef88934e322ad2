package models

// ChatRequest is the payload coming from the frontend into /api/chat/send.
type ChatRequest struct {
	ConversationID string `json:"conversationId,omitempty"` // empty on the first turn
	Text           string `json:"text" binding:"required"`
	ListingID      string `json:"listingId,omitempty"` // set when the user focuses a listing
}

// ChatAction is a single button/card action returned alongside a reply.
type ChatAction struct {
	Label       string `json:"label"`
	Type        string `json:"type"` // e.g. "select_slot", "widen_window", "cancel"
	SlotIndex   int    `json:"slotIndex,omitempty"`
	ListingID   string `json:"listingId,omitempty"`
	Description string `json:"description,omitempty"`
}

// ChatResponse is what the handler returns to the frontend.
type ChatResponse struct {
	ConversationID string       `json:"conversationId"`
	ReplyText      string       `json:"reply"`
	Stage          Stage        `json:"stage"`
	Actions        []ChatAction `json:"actions,omitempty"`
}

// Intent is the classification of one user turn, produced by the external
// text-understanding capability.
type Intent string

const (
	IntentProvideWindow Intent = "provide_window"
	IntentSelectSlot    Intent = "select_slot"
	IntentRejectAll     Intent = "reject_all"
	IntentCancel        Intent = "cancel"
	IntentUnrelated     Intent = "unrelated"
)

// ClassifiedInput is the classifier's verdict for one turn. Window is only
// set for provide_window; SlotIndex (1-based) only for select_slot.
type ClassifiedInput struct {
	Intent    Intent      `json:"intent"`
	SlotIndex int         `json:"slotIndex,omitempty"`
	Window    *TimeWindow `json:"window,omitempty"`
}

package models

// SessionContext holds the per-conversation context between turns. One
// instance per active conversation, JSON-encoded into redis with a TTL.
// A conversation's turns are processed strictly sequentially, so the
// context needs no internal locking.
type SessionContext struct {
	ConversationID  string           `json:"conversationId"`
	UserID          string           `json:"userId"`
	ListingID       string           `json:"listingId,omitempty"`
	ListingTitle    string           `json:"listingTitle,omitempty"`
	ListingAddress  string           `json:"listingAddress,omitempty"`
	AgentCalendarID string           `json:"agentCalendarId,omitempty"` // listing's own landlord calendar, when set
	Scheduling      *SchedulingState `json:"scheduling,omitempty"`
}

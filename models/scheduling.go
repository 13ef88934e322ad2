package models

import "time"

// BusyInterval is a calendar-reported occupied time range. Intervals arrive
// unordered and possibly overlapping; the interval engine normalizes them.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FreeSlot is a fixed-duration time interval offered for booking a tour.
// Label is the user-facing local-time string and is set once at proposal time.
type FreeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// TimeWindow is the date range a slot search is bounded to.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label,omitempty"` // e.g. "this week", "next Wednesday"
}

// IsZero reports whether the window carries no usable range.
func (w TimeWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Stage is the scheduling negotiation stage for one conversation.
type Stage string

const (
	StageIdle            Stage = "idle"
	StageWindowRequested Stage = "window_requested"
	StageSlotsProposed   Stage = "slots_proposed"
	StageSlotConfirmed   Stage = "slot_confirmed"
	StageBooked          Stage = "booked"
)

// SchedulingState tracks one conversation's tour negotiation. It is created
// lazily on the first scheduling intent, mutated only by the negotiation
// engine, and reset to idle after a booking or an explicit cancel.
type SchedulingState struct {
	Stage           Stage       `json:"stage"`
	RequestedWindow *TimeWindow `json:"requestedWindow,omitempty"`
	ProposalID      string      `json:"proposalId,omitempty"`
	ProposedSlots   []FreeSlot  `json:"proposedSlots,omitempty"` // display order; 1-based index is the user-facing reference
	ChosenSlot      *FreeSlot   `json:"chosenSlot,omitempty"`
	ListingID       string      `json:"listingId,omitempty"`
}

// NewSchedulingState returns an idle state bound to a listing.
func NewSchedulingState(listingID string) *SchedulingState {
	return &SchedulingState{Stage: StageIdle, ListingID: listingID}
}

// BookingStatus is the outcome of a double-calendar booking attempt.
type BookingStatus string

const (
	BookingCommitted BookingStatus = "committed"
	BookingPartial   BookingStatus = "partial" // renter event created, landlord event not
	BookingFailed    BookingStatus = "failed"
	// BookingCancelled only ever appears on persisted tour records, after an
	// explicit user-confirmed cancellation.
	BookingCancelled BookingStatus = "cancelled"
)

// BookingResult records both sides of a booking attempt. On partial the
// renter event id is present and the landlord id is empty; no rollback is
// performed automatically. LandlordCalendarID is the calendar the landlord
// side targeted (the listing's agent calendar when it has one), kept so a
// later cancellation deletes from the right place.
type BookingResult struct {
	RenterEventID      string        `json:"renterEventId,omitempty"`
	LandlordEventID    string        `json:"landlordEventId,omitempty"`
	LandlordCalendarID string        `json:"landlordCalendarId,omitempty"`
	Slot               FreeSlot      `json:"slot"`
	Status             BookingStatus `json:"status"`
}

package calendar

import (
	"context"
	"errors"
	"time"

	"aptiva/models"
)

// ErrUnavailable marks a transient transport/auth failure on a calendar
// call. Callers retry up to their configured bound, then degrade to
// manual-coordination messaging instead of failing the conversation.
var ErrUnavailable = errors.New("calendar unavailable")

// ErrCreateRejected marks a calendar refusing an event create outright.
// Not retryable.
var ErrCreateRejected = errors.New("event create rejected")

// Event is the payload for a calendar event create.
type Event struct {
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	Attendees   []string
}

// Service is the boundary to the two parties' external calendars.
// Idempotency is not guaranteed: a create that reports failure may still
// have landed, so callers treat resubmission as best-effort.
type Service interface {
	GetBusyIntervals(ctx context.Context, calendarID string, window models.TimeWindow) ([]models.BusyInterval, error)
	CreateEvent(ctx context.Context, calendarID string, ev Event) (string, error)
	// DeleteEvent is a best-effort compensating action. It is never invoked
	// automatically after a partial booking.
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

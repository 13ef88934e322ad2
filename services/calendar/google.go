// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"aptiva/models"
	"aptiva/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService implements Service against the Google Calendar API.
type GoogleCalendarService struct {
	svc        *gcal.Service
	maxRetries int
	timeout    time.Duration
}

// NewGoogleCalendarService builds the client from a service-account
// credentials file with a bounded retry/timeout policy per remote call.
func NewGoogleCalendarService(credentialsFile string, maxRetries int, timeout time.Duration) (*GoogleCalendarService, error) {
	ctx := context.Background()
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return &GoogleCalendarService{svc: svc, maxRetries: maxRetries, timeout: timeout}, nil
}

// GetBusyIntervals lists the calendar's events in the window and treats each
// timed event as a busy block. All-day events carry no dateTime and are
// skipped, matching how availability is negotiated for tours.
func (g *GoogleCalendarService) GetBusyIntervals(ctx context.Context, calendarID string, window models.TimeWindow) ([]models.BusyInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var busy []models.BusyInterval
	err := withRetry(ctx, g.maxRetries, func() error {
		call := g.svc.Events.List(calendarID).
			TimeMin(window.Start.Format(time.RFC3339)).
			TimeMax(window.End.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(50).
			Context(ctx)
		events, err := call.Do()
		if err != nil {
			utils.GetLogger().Warn("calendar events list failed",
				zap.String("calendarId", calendarID), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		busy = busy[:0]
		for _, ev := range events.Items {
			if ev.Start == nil || ev.End == nil || ev.Start.DateTime == "" || ev.End.DateTime == "" {
				continue
			}
			s, err := time.Parse(time.RFC3339, ev.Start.DateTime)
			if err != nil {
				continue
			}
			e, err := time.Parse(time.RFC3339, ev.End.DateTime)
			if err != nil {
				continue
			}
			busy = append(busy, models.BusyInterval{Start: s.UTC(), End: e.UTC()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return busy, nil
}

// CreateEvent inserts an event and returns its id.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, calendarID string, ev Event) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	attendees := make([]*gcal.EventAttendee, 0, len(ev.Attendees))
	for _, email := range ev.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}
	body := &gcal.Event{
		Summary:     ev.Title,
		Location:    ev.Location,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
		Attendees:   attendees,
	}

	var eventID string
	err := withRetry(ctx, g.maxRetries, func() error {
		created, err := g.svc.Events.Insert(calendarID, body).Context(ctx).Do()
		if err != nil {
			utils.GetLogger().Warn("calendar event insert failed",
				zap.String("calendarId", calendarID), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if created.Id == "" {
			return fmt.Errorf("%w: empty event id", ErrCreateRejected)
		}
		eventID = created.Id
		return nil
	})
	if err != nil {
		return "", err
	}
	return eventID, nil
}

// DeleteEvent removes an event. Best-effort; the caller decides whether a
// failure matters.
func (g *GoogleCalendarService) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return withRetry(ctx, g.maxRetries, func() error {
		if err := g.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil
	})
}

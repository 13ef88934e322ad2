package scheduling

import (
	"context"
	"fmt"

	"aptiva/models"
	"aptiva/services/calendar"
	"aptiva/utils"

	"go.uber.org/zap"
)

// TourDetails carries the listing metadata stamped into the calendar events.
// AgentCalendarID, when set, is the listing's own agent calendar and takes
// precedence over the configured landlord calendar.
type TourDetails struct {
	ListingTitle    string
	ListingAddress  string
	AgentCalendarID string
}

// Coordinator commits a chosen slot into both parties' calendars.
//
// Ordering is fixed: renter calendar first, landlord second. If the landlord
// create fails after the renter create succeeded the result is partial; the
// renter-side event is NOT deleted automatically (deletion is itself a
// remote call that can fail independently) and no retry is attempted. The
// caller surfaces the partial status so the user can retry or coordinate
// manually.
type Coordinator struct {
	Calendar           calendar.Service
	RenterCalendarID   string
	LandlordCalendarID string
	RenterEmail        string
}

// Book creates the tour event in both calendars and reports the outcome.
// The returned BookingResult is always meaningful, including on error.
func (c *Coordinator) Book(ctx context.Context, slot models.FreeSlot, details TourDetails) (models.BookingResult, error) {
	logger := utils.GetLogger()

	landlordCal := c.LandlordCalendarID
	if details.AgentCalendarID != "" {
		landlordCal = details.AgentCalendarID
	}
	result := models.BookingResult{Slot: slot, Status: models.BookingFailed, LandlordCalendarID: landlordCal}

	renterEvent := calendar.Event{
		Title:       fmt.Sprintf("Apartment tour - %s", details.ListingTitle),
		Start:       slot.Start,
		End:         slot.End,
		Location:    details.ListingAddress,
		Description: "Scheduled via Aptiva",
	}
	renterEventID, err := c.Calendar.CreateEvent(ctx, c.RenterCalendarID, renterEvent)
	if err != nil {
		logger.Warn("renter calendar create failed",
			zap.String("calendarId", c.RenterCalendarID), zap.Error(err))
		return result, err
	}
	result.RenterEventID = renterEventID

	landlordEvent := calendar.Event{
		Title:       fmt.Sprintf("Tour with %s - %s", c.RenterEmail, details.ListingTitle),
		Start:       slot.Start,
		End:         slot.End,
		Location:    details.ListingAddress,
		Description: "Scheduled via Aptiva",
		Attendees:   []string{c.RenterEmail},
	}
	landlordEventID, err := c.Calendar.CreateEvent(ctx, landlordCal, landlordEvent)
	if err != nil {
		logger.Error("landlord calendar create failed after renter create succeeded",
			zap.String("renterEventId", renterEventID), zap.Error(err))
		result.Status = models.BookingPartial
		return result, PartialBooking(renterEventID, err)
	}

	result.LandlordEventID = landlordEventID
	result.Status = models.BookingCommitted
	return result, nil
}

// CancelSide deletes one side's event. Explicit, caller-driven compensation
// only; never invoked by Book.
func (c *Coordinator) CancelSide(ctx context.Context, calendarID, eventID string) error {
	return c.Calendar.DeleteEvent(ctx, calendarID, eventID)
}

package scheduling

import (
	"context"
	"testing"
	"time"

	"aptiva/models"
	"aptiva/services/calendar"
)

func testSlot() models.FreeSlot {
	return models.FreeSlot{
		Start: monday.Add(13 * time.Hour),
		End:   monday.Add(13*time.Hour + 30*time.Minute),
		Label: "Mon September 07 - 1:00 PM -> 1:30 PM",
	}
}

func newTestCoordinator(fc *fakeCalendar) *Coordinator {
	return &Coordinator{
		Calendar:           fc,
		RenterCalendarID:   testRenterCal,
		LandlordCalendarID: testLandlordCal,
		RenterEmail:        "renter@example.com",
	}
}

func TestBookCommitsBothSides(t *testing.T) {
	fc := newFakeCalendar()
	c := newTestCoordinator(fc)

	result, err := c.Book(context.Background(), testSlot(), testDetails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != models.BookingCommitted {
		t.Errorf("status = %s, want %s", result.Status, models.BookingCommitted)
	}
	if result.RenterEventID == "" || result.LandlordEventID == "" {
		t.Errorf("both event ids must be set: %+v", result)
	}
	if len(fc.created) != 2 || fc.created[0] != testRenterCal || fc.created[1] != testLandlordCal {
		t.Errorf("renter calendar must be written first: %v", fc.created)
	}
}

func TestBookRenterFailureBooksNothing(t *testing.T) {
	fc := newFakeCalendar()
	fc.createErr[testRenterCal] = calendar.ErrUnavailable
	c := newTestCoordinator(fc)

	result, err := c.Book(context.Background(), testSlot(), testDetails)
	if err == nil {
		t.Fatal("expected error")
	}
	if result.Status != models.BookingFailed {
		t.Errorf("status = %s, want %s", result.Status, models.BookingFailed)
	}
	if result.RenterEventID != "" || result.LandlordEventID != "" {
		t.Errorf("no event ids on total failure: %+v", result)
	}
	if len(fc.created) != 0 {
		t.Errorf("landlord calendar must not be touched after renter failure: %v", fc.created)
	}
}

func TestBookLandlordFailureIsPartialWithoutRollback(t *testing.T) {
	fc := newFakeCalendar()
	fc.createErr[testLandlordCal] = calendar.ErrCreateRejected
	c := newTestCoordinator(fc)

	result, err := c.Book(context.Background(), testSlot(), testDetails)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsCode(err, "partialBooking") {
		t.Errorf("error should carry the partialBooking code, got %v", err)
	}
	if result.Status != models.BookingPartial {
		t.Errorf("status = %s, want %s", result.Status, models.BookingPartial)
	}
	if result.RenterEventID == "" {
		t.Error("renter event id must survive a partial booking")
	}
	if result.LandlordEventID != "" {
		t.Error("landlord event id must be empty on partial booking")
	}
	if len(fc.deleted) != 0 {
		t.Errorf("no automatic rollback: %v", fc.deleted)
	}
}

func TestBookPrefersListingAgentCalendar(t *testing.T) {
	fc := newFakeCalendar()
	c := newTestCoordinator(fc)

	details := testDetails
	details.AgentCalendarID = "agent-7@cal"
	result, err := c.Book(context.Background(), testSlot(), details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.created) != 2 || fc.created[1] != "agent-7@cal" {
		t.Errorf("landlord event should land on the agent calendar: %v", fc.created)
	}
	if result.LandlordCalendarID != "agent-7@cal" {
		t.Errorf("result should record the calendar used, got %q", result.LandlordCalendarID)
	}
}

func TestBookDefaultsToConfiguredLandlordCalendar(t *testing.T) {
	fc := newFakeCalendar()
	c := newTestCoordinator(fc)

	result, err := c.Book(context.Background(), testSlot(), testDetails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.created) != 2 || fc.created[1] != testLandlordCal {
		t.Errorf("landlord event should land on the configured calendar: %v", fc.created)
	}
	if result.LandlordCalendarID != testLandlordCal {
		t.Errorf("result should record the calendar used, got %q", result.LandlordCalendarID)
	}
}

func TestCancelSideDeletesOneEvent(t *testing.T) {
	fc := newFakeCalendar()
	c := newTestCoordinator(fc)

	if err := c.CancelSide(context.Background(), testRenterCal, "evt-9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.deleted) != 1 || fc.deleted[0] != testRenterCal+"/evt-9" {
		t.Errorf("unexpected delete calls: %v", fc.deleted)
	}
}

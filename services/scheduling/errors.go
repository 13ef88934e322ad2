package scheduling

import "fmt"

// SchedulingError carries a stable code alongside a human message.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// InvalidSelection marks an out-of-range, unparseable, or stale slot pick.
// Handled locally with a re-prompt; no external call is made.
func InvalidSelection(msg string) error {
	return &SchedulingError{Code: "invalidSelection", Message: msg}
}

// PartialBooking marks a booking committed on the renter calendar but not
// the landlord's. Surfaced explicitly, never silently swallowed.
func PartialBooking(renterEventID string, cause error) error {
	return &SchedulingError{
		Code:    "partialBooking",
		Message: fmt.Sprintf("renter event %s created, landlord event failed: %v", renterEventID, cause),
	}
}

// IsCode reports whether err is a SchedulingError with the given code.
func IsCode(err error, code string) bool {
	se, ok := err.(*SchedulingError)
	return ok && se.Code == code
}

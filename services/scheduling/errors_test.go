package scheduling

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	sel := InvalidSelection("pick 7 outside 1..5")
	if !IsCode(sel, "invalidSelection") {
		t.Errorf("InvalidSelection should carry the invalidSelection code: %v", sel)
	}

	partial := PartialBooking("evt-1", errors.New("rejected"))
	if !IsCode(partial, "partialBooking") {
		t.Errorf("PartialBooking should carry the partialBooking code: %v", partial)
	}
	if !strings.Contains(partial.Error(), "evt-1") {
		t.Errorf("partial error should name the surviving renter event: %v", partial)
	}

	if IsCode(errors.New("plain"), "invalidSelection") {
		t.Error("IsCode must not match plain errors")
	}
	if IsCode(sel, "partialBooking") {
		t.Error("IsCode must not match across codes")
	}
}

package scheduling

import (
	"testing"
	"time"

	"aptiva/models"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func utcOpts(maxSlots int) SlotOptions {
	return DefaultSlotOptions(30, 9, 17, 0, maxSlots)
}

func busy(h1, m1, h2, m2 int) models.BusyInterval {
	return models.BusyInterval{
		Start: monday.Add(time.Duration(h1)*time.Hour + time.Duration(m1)*time.Minute),
		End:   monday.Add(time.Duration(h2)*time.Hour + time.Duration(m2)*time.Minute),
	}
}

func TestMergeBusyOverlappingUnsorted(t *testing.T) {
	in := []models.BusyInterval{
		busy(13, 0, 14, 0),
		busy(9, 0, 10, 30),
		busy(10, 0, 11, 0),
		busy(14, 0, 15, 0), // adjacent to 13-14, should merge
	}
	got := MergeBusy(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 merged intervals, got %d: %+v", len(got), got)
	}
	if !got[0].Start.Equal(busy(9, 0, 11, 0).Start) || !got[0].End.Equal(busy(9, 0, 11, 0).End) {
		t.Errorf("first merged interval wrong: %+v", got[0])
	}
	if !got[1].Start.Equal(busy(13, 0, 15, 0).Start) || !got[1].End.Equal(busy(13, 0, 15, 0).End) {
		t.Errorf("second merged interval wrong: %+v", got[1])
	}
}

func TestMergeBusyDropsEmptyIntervals(t *testing.T) {
	in := []models.BusyInterval{
		busy(10, 0, 10, 0),
		busy(12, 0, 11, 0),
	}
	if got := MergeBusy(in); got != nil {
		t.Fatalf("expected nil for degenerate input, got %+v", got)
	}
}

func TestInvertBusyLeavesGaps(t *testing.T) {
	window := models.TimeWindow{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}
	free := InvertBusy(window, []models.BusyInterval{busy(10, 0, 11, 0), busy(15, 0, 16, 0)})
	want := []Interval{
		{Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)},
		{Start: monday.Add(11 * time.Hour), End: monday.Add(15 * time.Hour)},
		{Start: monday.Add(16 * time.Hour), End: monday.Add(17 * time.Hour)},
	}
	if len(free) != len(want) {
		t.Fatalf("expected %d free intervals, got %d: %+v", len(want), len(free), free)
	}
	for i := range want {
		if !free[i].Start.Equal(want[i].Start) || !free[i].End.Equal(want[i].End) {
			t.Errorf("interval %d: got %+v want %+v", i, free[i], want[i])
		}
	}
}

func TestInvertBusyFullyCoveredWindow(t *testing.T) {
	window := models.TimeWindow{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}
	free := InvertBusy(window, []models.BusyInterval{busy(8, 0, 18, 0)})
	if len(free) != 0 {
		t.Fatalf("expected no free time, got %+v", free)
	}
}

func TestInvertBusyZeroLengthWindow(t *testing.T) {
	window := models.TimeWindow{Start: monday, End: monday}
	if free := InvertBusy(window, nil); free != nil {
		t.Fatalf("expected nil for empty window, got %+v", free)
	}
}

func TestIntersectFree(t *testing.T) {
	a := []Interval{
		{Start: monday.Add(9 * time.Hour), End: monday.Add(12 * time.Hour)},
		{Start: monday.Add(14 * time.Hour), End: monday.Add(17 * time.Hour)},
	}
	b := []Interval{
		{Start: monday.Add(11 * time.Hour), End: monday.Add(15 * time.Hour)},
	}
	got := IntersectFree(a, b)
	want := []Interval{
		{Start: monday.Add(11 * time.Hour), End: monday.Add(12 * time.Hour)},
		{Start: monday.Add(14 * time.Hour), End: monday.Add(15 * time.Hour)},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d intervals, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Errorf("interval %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestIntersectFreeDisjointSets(t *testing.T) {
	a := []Interval{{Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)}}
	b := []Interval{{Start: monday.Add(11 * time.Hour), End: monday.Add(12 * time.Hour)}}
	if got := IntersectFree(a, b); len(got) != 0 {
		t.Fatalf("expected empty intersection, got %+v", got)
	}
}

func TestSliceSlotsAlignsToGrid(t *testing.T) {
	// Free time starting at 9:10 should produce slots from 9:30, not 9:10.
	free := []Interval{{Start: monday.Add(9*time.Hour + 10*time.Minute), End: monday.Add(11 * time.Hour)}}
	slots := SliceSlots(free, utcOpts(10))
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %+v", len(slots), slots)
	}
	if !slots[0].Start.Equal(monday.Add(9*time.Hour + 30*time.Minute)) {
		t.Errorf("first slot should start at 9:30, got %v", slots[0].Start)
	}
	for _, s := range slots {
		if s.End.Sub(s.Start) != 30*time.Minute {
			t.Errorf("slot has wrong duration: %+v", s)
		}
	}
}

func TestSliceSlotsClipsWeekendAndHours(t *testing.T) {
	// Saturday 2026-09-12: excluded wholesale.
	saturday := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
	free := []Interval{
		{Start: monday.Add(7 * time.Hour), End: monday.Add(10 * time.Hour)},   // partly before 9
		{Start: monday.Add(16 * time.Hour), End: monday.Add(19 * time.Hour)},  // partly after 17
		{Start: saturday, End: saturday.Add(4 * time.Hour)},                   // weekend
	}
	slots := SliceSlots(free, utcOpts(50))
	for _, s := range slots {
		if s.Start.Weekday() == time.Saturday || s.Start.Weekday() == time.Sunday {
			t.Errorf("weekend slot produced: %+v", s)
		}
		if s.Start.Hour() < 9 {
			t.Errorf("slot before business hours: %+v", s)
		}
		if s.End.Hour() > 17 || (s.End.Hour() == 17 && s.End.Minute() > 0) {
			t.Errorf("slot after business hours: %+v", s)
		}
	}
	// 9:00-10:00 gives 2, 16:00-17:00 gives 2.
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d: %+v", len(slots), slots)
	}
}

func TestSliceSlotsLastSlotMayTouchEndHour(t *testing.T) {
	free := []Interval{{Start: monday.Add(16 * time.Hour), End: monday.Add(17 * time.Hour)}}
	slots := SliceSlots(free, utcOpts(10))
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d: %+v", len(slots), slots)
	}
	if !slots[1].End.Equal(monday.Add(17 * time.Hour)) {
		t.Errorf("last slot should end exactly at 17:00, got %v", slots[1].End)
	}
}

func TestSliceSlotsMidnightEndNotTreatedAsEarly(t *testing.T) {
	// A slot ending at local midnight must not read as hour 0 and slip under
	// the end-hour cap.
	opts := utcOpts(10)
	opts.StartHour = 20
	opts.EndHour = 24
	free := []Interval{{Start: monday.Add(23 * time.Hour), End: monday.Add(25 * time.Hour)}}
	slots := SliceSlots(free, opts)
	for _, s := range slots {
		if s.End.After(monday.Add(24 * time.Hour)) {
			t.Errorf("slot crosses midnight boundary: %+v", s)
		}
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots (23:00, 23:30), got %d: %+v", len(slots), slots)
	}
}

func TestSliceSlotsRespectsMaxSlots(t *testing.T) {
	free := []Interval{{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}}
	slots := SliceSlots(free, utcOpts(10))
	if len(slots) != 10 {
		t.Fatalf("expected slots capped at 10, got %d", len(slots))
	}
	// Cap keeps the earliest slots.
	if !slots[0].Start.Equal(monday.Add(9 * time.Hour)) {
		t.Errorf("cap should keep earliest slots first, got %v", slots[0].Start)
	}
}

func TestSliceSlotsLocalTimeOffset(t *testing.T) {
	// At UTC+2, business hours 9-17 local are 7-15 UTC.
	opts := DefaultSlotOptions(30, 9, 17, 2, 50)
	free := []Interval{{Start: monday.Add(6 * time.Hour), End: monday.Add(16 * time.Hour)}}
	slots := SliceSlots(free, opts)
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	if !slots[0].Start.Equal(monday.Add(7 * time.Hour)) {
		t.Errorf("first slot should be 07:00 UTC (09:00 local), got %v", slots[0].Start)
	}
	last := slots[len(slots)-1]
	if !last.End.Equal(monday.Add(15 * time.Hour)) {
		t.Errorf("last slot should end 15:00 UTC (17:00 local), got %v", last.End)
	}
}

func TestNormalizeWindowStartPullsBackToBusinessStart(t *testing.T) {
	opts := utcOpts(10)
	w := models.TimeWindow{Start: monday.Add(14 * time.Hour), End: monday.AddDate(0, 0, 3)}
	got := NormalizeWindowStart(w, opts)
	if !got.Start.Equal(monday.Add(9 * time.Hour)) {
		t.Errorf("start should normalize to 09:00, got %v", got.Start)
	}
	if !got.End.Equal(w.End) {
		t.Errorf("end must be untouched, got %v", got.End)
	}
}

func TestNormalizeWindowStartLeavesEarlyStart(t *testing.T) {
	opts := utcOpts(10)
	w := models.TimeWindow{Start: monday.Add(7 * time.Hour), End: monday.AddDate(0, 0, 3)}
	got := NormalizeWindowStart(w, opts)
	if !got.Start.Equal(w.Start) {
		t.Errorf("early start must not change, got %v", got.Start)
	}
}

func TestCommonSlotsJointAvailability(t *testing.T) {
	window := models.TimeWindow{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}
	renterBusy := []models.BusyInterval{busy(10, 0, 11, 0)}
	landlordBusy := []models.BusyInterval{busy(13, 30, 14, 0)}

	slots := CommonSlots(window, renterBusy, landlordBusy, utcOpts(50))
	if len(slots) == 0 {
		t.Fatal("expected joint slots")
	}

	allBusy := append(append([]models.BusyInterval{}, renterBusy...), landlordBusy...)
	for _, s := range slots {
		for _, b := range allBusy {
			if s.Start.Before(b.End) && b.Start.Before(s.End) {
				t.Errorf("slot %+v overlaps busy %+v", s, b)
			}
		}
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start.Before(slots[i-1].End) {
			t.Errorf("slots overlap or are out of order: %+v then %+v", slots[i-1], slots[i])
		}
	}
}

func TestCommonSlotsDeterministic(t *testing.T) {
	window := models.TimeWindow{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}
	renterBusy := []models.BusyInterval{busy(10, 0, 11, 0), busy(9, 30, 10, 30)}
	landlordBusy := []models.BusyInterval{busy(15, 0, 16, 0)}

	first := CommonSlots(window, renterBusy, landlordBusy, utcOpts(10))
	second := CommonSlots(window, renterBusy, landlordBusy, utcOpts(10))
	if len(first) != len(second) {
		t.Fatalf("non-deterministic slot count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || !first[i].End.Equal(second[i].End) {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCommonSlotsExactSequence(t *testing.T) {
	// Renter busy 09:00-12:00 and 14:00-15:00, landlord busy 10:00-11:00
	// inside a Monday 09:00-17:00 window must yield exactly the half-hour
	// slots of 12:00-14:00 and 15:00-17:00.
	window := models.TimeWindow{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}
	renterBusy := []models.BusyInterval{busy(9, 0, 12, 0), busy(14, 0, 15, 0)}
	landlordBusy := []models.BusyInterval{busy(10, 0, 11, 0)}

	slots := CommonSlots(window, renterBusy, landlordBusy, utcOpts(10))

	wantStarts := []time.Time{
		monday.Add(12 * time.Hour),
		monday.Add(12*time.Hour + 30*time.Minute),
		monday.Add(13 * time.Hour),
		monday.Add(13*time.Hour + 30*time.Minute),
		monday.Add(15 * time.Hour),
		monday.Add(15*time.Hour + 30*time.Minute),
		monday.Add(16 * time.Hour),
		monday.Add(16*time.Hour + 30*time.Minute),
	}
	if len(slots) != len(wantStarts) {
		t.Fatalf("expected %d slots, got %d: %+v", len(wantStarts), len(slots), slots)
	}
	for i, want := range wantStarts {
		if !slots[i].Start.Equal(want) {
			t.Errorf("slot %d starts at %v, want %v", i, slots[i].Start, want)
		}
		if !slots[i].End.Equal(want.Add(30 * time.Minute)) {
			t.Errorf("slot %d ends at %v, want %v", i, slots[i].End, want.Add(30*time.Minute))
		}
	}
}

func TestCommonSlotsWeekendOnlyWindowIsEmpty(t *testing.T) {
	// 2026-09-12/13 is a weekend; both calendars fully free still yields
	// no slots, and an empty result is an answer, not an error.
	saturday := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	window := models.TimeWindow{Start: saturday, End: saturday.AddDate(0, 0, 2)}
	slots := CommonSlots(window, nil, nil, utcOpts(10))
	if len(slots) != 0 {
		t.Fatalf("expected no slots over a weekend, got %+v", slots)
	}
}

func TestCommonSlotsNoJointFreeTime(t *testing.T) {
	window := models.TimeWindow{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}
	renterBusy := []models.BusyInterval{busy(9, 0, 13, 0)}
	landlordBusy := []models.BusyInterval{busy(13, 0, 17, 0)}
	slots := CommonSlots(window, renterBusy, landlordBusy, utcOpts(10))
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %+v", slots)
	}
}

package scheduling

import (
	"sort"
	"time"

	"aptiva/models"
)

// Interval is a half-open [Start, End) time range used for free-time math.
type Interval struct {
	Start time.Time
	End   time.Time
}

// SlotOptions bounds slot generation. Weekdays nil means Mon-Fri.
type SlotOptions struct {
	Duration  time.Duration
	Weekdays  map[time.Weekday]bool
	StartHour int // local hour, inclusive
	EndHour   int // local hour, exclusive for slot starts; slot ends may touch it
	Local     *time.Location
	MaxSlots  int
}

// DefaultSlotOptions returns the standard tour policy: 30-minute slots,
// Mon-Fri 09:00-17:00 at the given fixed UTC offset, at most maxSlots.
func DefaultSlotOptions(slotMinutes, startHour, endHour, tzOffsetHours, maxSlots int) SlotOptions {
	return SlotOptions{
		Duration:  time.Duration(slotMinutes) * time.Minute,
		StartHour: startHour,
		EndHour:   endHour,
		Local:     time.FixedZone("local", tzOffsetHours*3600),
		MaxSlots:  maxSlots,
	}
}

func (o SlotOptions) weekdayAllowed(d time.Weekday) bool {
	if o.Weekdays != nil {
		return o.Weekdays[d]
	}
	return d >= time.Monday && d <= time.Friday
}

// MergeBusy sorts busy intervals by start and merges overlapping or adjacent
// ones into a minimal disjoint set. Input is never trusted to be sorted or
// disjoint. Zero- and negative-length intervals are dropped.
func MergeBusy(busy []models.BusyInterval) []models.BusyInterval {
	valid := make([]models.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.End.After(b.Start) {
			valid = append(valid, b)
		}
	}
	if len(valid) == 0 {
		return nil
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i].Start.Before(valid[j].Start) })

	merged := []models.BusyInterval{valid[0]}
	for _, b := range valid[1:] {
		last := &merged[len(merged)-1]
		if !b.Start.After(last.End) {
			if b.End.After(last.End) {
				last.End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// InvertBusy returns the free intervals inside the window once the busy set
// is removed. A busy set covering the whole window yields an empty result,
// as does a zero-length window.
func InvertBusy(window models.TimeWindow, busy []models.BusyInterval) []Interval {
	if !window.End.After(window.Start) {
		return nil
	}

	clipped := make([]models.BusyInterval, 0, len(busy))
	for _, b := range busy {
		if !b.End.After(window.Start) || !b.Start.Before(window.End) {
			continue
		}
		s, e := b.Start, b.End
		if s.Before(window.Start) {
			s = window.Start
		}
		if e.After(window.End) {
			e = window.End
		}
		clipped = append(clipped, models.BusyInterval{Start: s, End: e})
	}
	merged := MergeBusy(clipped)

	var free []Interval
	current := window.Start
	for _, b := range merged {
		if b.Start.After(current) {
			free = append(free, Interval{Start: current, End: b.Start})
		}
		if b.End.After(current) {
			current = b.End
		}
	}
	if current.Before(window.End) {
		free = append(free, Interval{Start: current, End: window.End})
	}
	return free
}

// IntersectFree intersects two sorted disjoint free-interval sets with the
// classic two-pointer walk.
func IntersectFree(a, b []Interval) []Interval {
	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].Start
		if b[j].Start.After(start) {
			start = b[j].Start
		}
		end := a[i].End
		if b[j].End.Before(end) {
			end = b[j].End
		}
		if end.After(start) {
			out = append(out, Interval{Start: start, End: end})
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}

// roundUpToSlot advances t to the next multiple of the slot duration on the
// hour grid, so proposed slots start at clean marks (9:00, 9:30, ...).
func roundUpToSlot(t time.Time, d time.Duration) time.Time {
	t = t.Truncate(time.Minute)
	mins := time.Duration(t.Minute()) * time.Minute
	rem := mins % d
	if rem == 0 {
		return t
	}
	return t.Add(d - rem)
}

// SliceSlots cuts each free interval into consecutive non-overlapping slots
// of exact duration, keeping only slots that lie entirely within the allowed
// local weekday and hour range. Remainders shorter than the duration are
// discarded. Output is chronological and truncated to MaxSlots.
func SliceSlots(free []Interval, opts SlotOptions) []models.FreeSlot {
	if opts.Duration <= 0 {
		return nil
	}

	var out []models.FreeSlot
	for _, iv := range free {
		cursor := roundUpToSlot(iv.Start, opts.Duration)
		for !cursor.Add(opts.Duration).After(iv.End) {
			slotEnd := cursor.Add(opts.Duration)

			localStart := cursor.In(opts.Local)
			localEnd := slotEnd.In(opts.Local)

			if opts.weekdayAllowed(localStart.Weekday()) {
				sh := float64(localStart.Hour()) + float64(localStart.Minute())/60.0
				eh := float64(localEnd.Hour()) + float64(localEnd.Minute())/60.0
				// A slot ending exactly at local midnight reads as hour 0;
				// treat it as 24 so it cannot sneak under the end-hour cap.
				if eh == 0 && localEnd.Day() != localStart.Day() {
					eh = 24
				}
				if sh >= float64(opts.StartHour) && eh <= float64(opts.EndHour) {
					out = append(out, models.FreeSlot{Start: cursor, End: slotEnd})
				}
			}

			cursor = slotEnd
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	if opts.MaxSlots > 0 && len(out) > opts.MaxSlots {
		out = out[:opts.MaxSlots]
	}
	return out
}

// NormalizeWindowStart pulls a same-day afternoon start back to the business
// start hour in local time so morning slots are not accidentally skipped.
func NormalizeWindowStart(window models.TimeWindow, opts SlotOptions) models.TimeWindow {
	local := window.Start.In(opts.Local)
	if local.Hour() > opts.StartHour || (local.Hour() == opts.StartHour && local.Minute() > 0) {
		normalized := time.Date(local.Year(), local.Month(), local.Day(), opts.StartHour, 0, 0, 0, opts.Local)
		window.Start = normalized.UTC()
	}
	return window
}

// CommonSlots computes the jointly free slots of two calendars inside the
// window: merge each busy set, invert both against the window, intersect,
// then slice into bounded slots. Deterministic for identical inputs; an
// empty result is a valid answer, not an error.
func CommonSlots(window models.TimeWindow, busyA, busyB []models.BusyInterval, opts SlotOptions) []models.FreeSlot {
	freeA := InvertBusy(window, busyA)
	freeB := InvertBusy(window, busyB)
	joint := IntersectFree(freeA, freeB)
	return SliceSlots(joint, opts)
}

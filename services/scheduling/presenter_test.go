package scheduling

import (
	"strings"
	"testing"
	"time"

	"aptiva/models"
)

func TestLabelFormat(t *testing.T) {
	slot := models.FreeSlot{
		Start: time.Date(2026, 11, 24, 13, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 11, 24, 13, 30, 0, 0, time.UTC),
	}
	got := Label(slot, time.UTC)
	want := "Tue November 24 - 1:00 PM -> 1:30 PM"
	if got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}

func TestLabelUsesLocalTime(t *testing.T) {
	slot := models.FreeSlot{
		Start: time.Date(2026, 9, 7, 7, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 7, 7, 30, 0, 0, time.UTC),
	}
	local := time.FixedZone("local", 2*3600)
	got := Label(slot, local)
	want := "Mon September 07 - 9:00 AM -> 9:30 AM"
	if got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
}

func TestLabelSlotsPreservesOrderAndTimes(t *testing.T) {
	slots := []models.FreeSlot{
		{Start: monday.Add(9 * time.Hour), End: monday.Add(9*time.Hour + 30*time.Minute)},
		{Start: monday.Add(10 * time.Hour), End: monday.Add(10*time.Hour + 30*time.Minute)},
	}
	labeled := LabelSlots(slots, time.UTC)
	if len(labeled) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(labeled))
	}
	for i, s := range labeled {
		if s.Label == "" {
			t.Errorf("slot %d missing label", i)
		}
		if !s.Start.Equal(slots[i].Start) || !s.End.Equal(slots[i].End) {
			t.Errorf("slot %d times changed: %+v", i, s)
		}
	}
	// Input is not mutated.
	if slots[0].Label != "" {
		t.Error("LabelSlots must not mutate its input")
	}
}

func TestRenderProposalNumbersFromOne(t *testing.T) {
	slots := LabelSlots([]models.FreeSlot{
		{Start: monday.Add(9 * time.Hour), End: monday.Add(9*time.Hour + 30*time.Minute)},
		{Start: monday.Add(10 * time.Hour), End: monday.Add(10*time.Hour + 30*time.Minute)},
		{Start: monday.Add(11 * time.Hour), End: monday.Add(11*time.Hour + 30*time.Minute)},
	}, time.UTC)

	out := RenderProposal(slots, "this week")

	if !strings.Contains(out, "this week") {
		t.Error("window label missing from rendering")
	}
	lines := strings.Split(out, "\n")
	for i, s := range slots {
		if !strings.Contains(lines[i+1], s.Label) {
			t.Errorf("line %d should carry the slot label: %q", i+1, lines[i+1])
		}
	}
	if !strings.Contains(out, "1. "+slots[0].Label) {
		t.Errorf("numbering should start at 1: %q", out)
	}
	if !strings.Contains(out, "3. "+slots[2].Label) {
		t.Errorf("numbering should be sequential: %q", out)
	}
	if !strings.Contains(out, "Reply with a number") {
		t.Errorf("instructions missing: %q", out)
	}
}

func TestRenderProposalDeterministic(t *testing.T) {
	slots := LabelSlots([]models.FreeSlot{
		{Start: monday.Add(9 * time.Hour), End: monday.Add(9*time.Hour + 30*time.Minute)},
	}, time.UTC)
	if RenderProposal(slots, "Monday") != RenderProposal(slots, "Monday") {
		t.Error("identical input must render identically")
	}
}

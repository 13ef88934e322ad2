package scheduling

import (
	"fmt"
	"strings"
	"time"

	"aptiva/models"
)

// Label formats one slot for display in local time, e.g.
// "Mon November 24 - 1:00 PM -> 1:30 PM".
func Label(slot models.FreeSlot, local *time.Location) string {
	s := slot.Start.In(local)
	e := slot.End.In(local)
	return fmt.Sprintf("%s - %s -> %s",
		s.Format("Mon January 02"),
		s.Format("3:04 PM"),
		e.Format("3:04 PM"),
	)
}

// LabelSlots fills in the Label field of each slot. Labels are computed once
// at proposal time and reused verbatim for the proposal's lifetime.
func LabelSlots(slots []models.FreeSlot, local *time.Location) []models.FreeSlot {
	out := make([]models.FreeSlot, len(slots))
	for i, s := range slots {
		s.Label = Label(s, local)
		out[i] = s
	}
	return out
}

// RenderProposal renders a stable 1-based numbered menu of slots. Pure
// formatting: identical input yields identical output. Numbering restarts
// from 1 whenever a new proposal replaces the old one.
func RenderProposal(slots []models.FreeSlot, windowLabel string) string {
	var sb strings.Builder
	if windowLabel != "" {
		fmt.Fprintf(&sb, "Here are the available tour times for %s:\n", windowLabel)
	} else {
		sb.WriteString("Here are the available tour times:\n")
	}
	for i, s := range slots {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s.Label)
	}
	sb.WriteString("Reply with a number to book, or ask for different times.")
	return sb.String()
}

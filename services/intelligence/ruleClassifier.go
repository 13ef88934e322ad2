// File: services/intelligence/ruleClassifier.go
package ai

import (
	"context"
	"strconv"
	"strings"
	"time"

	"aptiva/models"
)

// RuleClassifier is a keyword classifier used when no Gemini key is
// configured, and in tests. It covers the same intent contract as the
// model-backed classifier with deliberately simple rules.
type RuleClassifier struct {
	Local *time.Location
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

func (r *RuleClassifier) Classify(_ context.Context, text string, stage models.Stage, now time.Time) (models.ClassifiedInput, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return models.ClassifiedInput{Intent: models.IntentUnrelated}, nil
	}

	if containsAny(lower, "cancel", "stop", "forget it", "never mind", "nevermind") {
		return models.ClassifiedInput{Intent: models.IntentCancel}, nil
	}

	// A bare number while slots are on the table is a selection.
	if stage == models.StageSlotsProposed {
		if n, err := strconv.Atoi(strings.TrimSuffix(lower, ".")); err == nil {
			return models.ClassifiedInput{Intent: models.IntentSelectSlot, SlotIndex: n}, nil
		}
		if n, ok := leadingOption(lower); ok {
			return models.ClassifiedInput{Intent: models.IntentSelectSlot, SlotIndex: n}, nil
		}
		if containsAny(lower, "none", "neither", "different", "other time", "don't work", "dont work") {
			return models.ClassifiedInput{Intent: models.IntentRejectAll}, nil
		}
	}

	for name, wd := range weekdayNames {
		if strings.Contains(lower, name) {
			return models.ClassifiedInput{
				Intent: models.IntentProvideWindow,
				Window: r.weekdayWindow(now, wd, name),
			}, nil
		}
	}

	switch {
	case strings.Contains(lower, "tomorrow"):
		return models.ClassifiedInput{Intent: models.IntentProvideWindow, Window: r.dayWindow(now, 1, "tomorrow")}, nil
	case strings.Contains(lower, "today"):
		return models.ClassifiedInput{Intent: models.IntentProvideWindow, Window: r.dayWindow(now, 0, "today")}, nil
	case containsAny(lower, "next week", "this week"):
		start := now.UTC()
		return models.ClassifiedInput{Intent: models.IntentProvideWindow, Window: &models.TimeWindow{
			Start: start, End: start.AddDate(0, 0, 7), Label: "this week",
		}}, nil
	case containsAny(lower, "tour", "visit", "see the place", "see it", "schedule", "book", "viewing", "asap", "soon as possible"):
		// No explicit dates: let the engine default to "as soon as possible".
		return models.ClassifiedInput{Intent: models.IntentProvideWindow}, nil
	}

	return models.ClassifiedInput{Intent: models.IntentUnrelated}, nil
}

// weekdayWindow resolves a named weekday to its next occurrence in local
// time, spanning that whole day.
func (r *RuleClassifier) weekdayWindow(now time.Time, wd time.Weekday, label string) *models.TimeWindow {
	local := now.In(r.Local)
	daysAhead := (int(wd) - int(local.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	day := local.AddDate(0, 0, daysAhead)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, r.Local)
	return &models.TimeWindow{Start: start.UTC(), End: start.AddDate(0, 0, 1).UTC(), Label: label}
}

func (r *RuleClassifier) dayWindow(now time.Time, offsetDays int, label string) *models.TimeWindow {
	local := now.In(r.Local).AddDate(0, 0, offsetDays)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.Local)
	if offsetDays == 0 {
		start = now.In(r.Local)
	}
	return &models.TimeWindow{Start: start.UTC(), End: startOfDay(local, r.Local).AddDate(0, 0, 1).UTC(), Label: label}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// leadingOption parses picks like "option 3" or "3 please".
func leadingOption(s string) (int, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(fields) == 1 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return n, true
		}
	}
	return 0, false
}

// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aptiva/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier classifies user turns with Gemini. The model is asked
// for strict JSON; anything unparseable is reported as an error so the
// state machine re-prompts instead of guessing.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey string) *GeminiClassifier {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.ResponseMIMEType = "application/json"
	return &GeminiClassifier{model: model}
}

type geminiVerdict struct {
	Intent      string `json:"intent"`
	SlotIndex   int    `json:"slot_index"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	WindowLabel string `json:"window_label"`
}

func classifierPrompt(text string, stage models.Stage, now time.Time) string {
	return fmt.Sprintf(`You classify one message from a renter talking to an apartment tour scheduler.
Current UTC time: %s. Current scheduling stage: %q.

Respond with exactly one JSON object:
{"intent": "provide_window" | "select_slot" | "reject_all" | "cancel" | "unrelated",
 "slot_index": <1-based number, only for select_slot, else 0>,
 "window_start": "<RFC3339 UTC, only for provide_window, else empty>",
 "window_end": "<RFC3339 UTC, only for provide_window, else empty>",
 "window_label": "<short phrase like 'next Wednesday', only for provide_window, else empty>"}

Rules:
- A bare number while slots are proposed is select_slot.
- Asking to tour/visit/see the place, or naming days or times, is provide_window.
  If no dates are given, leave window_start and window_end empty.
- Refusing all offered times or asking for different ones is reject_all.
- Asking to stop or forget it is cancel.
- Everything else is unrelated.

Message: %q`, now.Format(time.RFC3339), stage, text)
}

func (g *GeminiClassifier) Classify(ctx context.Context, text string, stage models.Stage, now time.Time) (models.ClassifiedInput, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(classifierPrompt(text, stage, now)))
	if err != nil {
		return models.ClassifiedInput{}, fmt.Errorf("gemini classify error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return models.ClassifiedInput{}, fmt.Errorf("gemini classify: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	raw := strings.TrimSpace(sb.String())
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var verdict geminiVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &verdict); err != nil {
		return models.ClassifiedInput{}, fmt.Errorf("gemini classify: bad JSON: %w", err)
	}

	out := models.ClassifiedInput{Intent: models.Intent(verdict.Intent), SlotIndex: verdict.SlotIndex}
	switch out.Intent {
	case models.IntentProvideWindow, models.IntentSelectSlot, models.IntentRejectAll,
		models.IntentCancel, models.IntentUnrelated:
	default:
		return models.ClassifiedInput{}, fmt.Errorf("gemini classify: unknown intent %q", verdict.Intent)
	}

	if out.Intent == models.IntentProvideWindow && verdict.WindowStart != "" && verdict.WindowEnd != "" {
		start, err1 := time.Parse(time.RFC3339, verdict.WindowStart)
		end, err2 := time.Parse(time.RFC3339, verdict.WindowEnd)
		if err1 == nil && err2 == nil && end.After(start) {
			out.Window = &models.TimeWindow{Start: start.UTC(), End: end.UTC(), Label: verdict.WindowLabel}
		}
	}
	return out, nil
}

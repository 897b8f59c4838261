package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"smart-pto/internal/model"
	"smart-pto/pkg/gemini"
)

const truncationMarker = " ...[truncated]"

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// llmSuggestion is one element of the model's JSON array.
type llmSuggestion struct {
	WindowStart     string   `json:"window_start"`
	WindowEnd       string   `json:"window_end"`
	Reason          string   `json:"reason"`
	SourceMessageID string   `json:"source_message_id"`
	Source          string   `json:"source"`
	Confidence      *float64 `json:"confidence"`
}

// requestLLMSuggestions never fails: any problem yields an empty result so the
// caller can fall back to the rule-based pass.
func (uc *implUseCase) requestLLMSuggestions(ctx context.Context, messages []model.Message) []model.Suggestion {
	if uc.llm == nil || len(messages) == 0 {
		return nil
	}

	prompt := gemini.BuildPTOSuggestionPrompt(uc.promptMessages(messages))
	raw, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "uc.requestLLMSuggestions GenerateText: %v", err)
		return nil
	}

	items, ok := decodeSuggestions(raw)
	if !ok {
		uc.l.Warnf(ctx, "uc.requestLLMSuggestions: response is not a JSON array")
		return nil
	}
	return uc.validSuggestions(items)
}

func (uc *implUseCase) promptMessages(messages []model.Message) []gemini.PromptMessage {
	out := make([]gemini.PromptMessage, 0, len(messages))
	for _, m := range messages {
		body := m.Body
		if body == "" {
			body = m.Snippet
		}
		out = append(out, gemini.PromptMessage{
			ID:      m.ID,
			From:    m.From(),
			Subject: m.Subject(),
			Body:    truncate(body, uc.cfg.MaxBodyChars),
		})
	}
	return out
}

// truncate cuts s to max characters (runes) and appends the marker.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationMarker
}

// decodeSuggestions tries the whole text first, then the widest bracketed span.
// Elements that do not decode into the expected shape are skipped.
func decodeSuggestions(raw string) ([]llmSuggestion, bool) {
	elems, ok := decodeArray(gemini.StripCodeFence(raw))
	if !ok {
		match := jsonArrayRe.FindString(raw)
		if match == "" {
			return nil, false
		}
		if elems, ok = decodeArray(match); !ok {
			return nil, false
		}
	}

	items := make([]llmSuggestion, 0, len(elems))
	for _, elem := range elems {
		var it llmSuggestion
		if err := json.Unmarshal(elem, &it); err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, true
}

func decodeArray(text string) ([]json.RawMessage, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, false
	}
	return elems, true
}

func (uc *implUseCase) validSuggestions(items []llmSuggestion) []model.Suggestion {
	out := make([]model.Suggestion, 0, len(items))
	for _, it := range items {
		start, err := uc.parseISODate(it.WindowStart)
		if err != nil {
			continue
		}
		end, err := uc.parseISODate(it.WindowEnd)
		if err != nil {
			continue
		}
		if end.Before(start) {
			continue
		}

		sourceID := it.SourceMessageID
		if sourceID == "" {
			sourceID = it.Source
		}

		confidence := 0.0
		if it.Confidence != nil {
			confidence = clamp01(*it.Confidence)
		}

		out = append(out, model.Suggestion{
			WindowStart:     start,
			WindowEnd:       end,
			Reason:          it.Reason,
			SourceMessageID: sourceID,
			Confidence:      confidence,
		})
	}
	return out
}

// parseISODate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func (uc *implUseCase) parseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, uc.parser.Location()); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return uc.startOfDay(t), nil
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

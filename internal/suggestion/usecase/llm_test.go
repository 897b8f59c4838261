package usecase

import (
	"context"
	"strings"
	"testing"

	"smart-pto/internal/model"
)

func TestRequestLLMSuggestions(t *testing.T) {
	msgs := []model.Message{message("m1", "Trip", "going to Tokyo")}

	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "plain json array",
			text: `[{"window_start":"2025-12-20","window_end":"2025-12-27","reason":"r","source_message_id":"m1","confidence":0.9}]`,
			want: 1,
		},
		{
			name: "code fenced array",
			text: "```json\n[{\"window_start\":\"2025-12-20\",\"window_end\":\"2025-12-27\",\"reason\":\"r\",\"source_message_id\":\"m1\",\"confidence\":0.9}]\n```",
			want: 1,
		},
		{
			name: "array embedded in prose",
			text: "Here you go:\n[{\"window_start\":\"2025-12-20\",\"window_end\":\"2025-12-21\",\"reason\":\"r\",\"source_message_id\":\"m1\",\"confidence\":0.5}]\nThanks",
			want: 1,
		},
		{
			name: "garbage",
			text: "no suggestions [but with brackets",
			want: 0,
		},
		{
			name: "object instead of array",
			text: `{"window_start":"2025-12-20"}`,
			want: 0,
		},
		{
			name: "invalid dates are dropped",
			text: `[{"window_start":"soon","window_end":"2025-12-27"},{"window_start":"2025-12-20","window_end":"2025-12-22","reason":"ok"}]`,
			want: 1,
		},
		{
			name: "badly typed element is skipped",
			text: `[{"window_start":"2025-12-20","window_end":"2025-12-22","reason":"ok","confidence":0.8},{"window_start":"2026-01-05","window_end":"2026-01-06","confidence":"0.7"}]`,
			want: 1,
		},
		{
			name: "non-object element is skipped",
			text: "Result:\n[\"nothing here\", {\"window_start\":\"2025-12-20\",\"window_end\":\"2025-12-20\"}]",
			want: 1,
		},
		{
			name: "empty array",
			text: `[]`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLM{text: tt.text}
			uc := newTestUseCase(t, &mockRepo{}, llm)

			got := uc.requestLLMSuggestions(context.Background(), msgs)
			if len(got) != tt.want {
				t.Fatalf("expected %d suggestions, got %d (%+v)", tt.want, len(got), got)
			}
			if llm.calls != 1 {
				t.Errorf("expected exactly one llm call, got %d", llm.calls)
			}
		})
	}
}

func TestDecodeSuggestionsKeepsWellFormedElements(t *testing.T) {
	items, ok := decodeSuggestions(`[42, {"window_start":"2025-12-20","window_end":"2025-12-21","source_message_id":"m1"}, {"confidence":"high"}]`)
	if !ok {
		t.Fatal("expected the array to decode")
	}
	if len(items) != 1 || items[0].SourceMessageID != "m1" {
		t.Errorf("expected only the well-formed element, got %+v", items)
	}
}

func TestRequestLLMSuggestionsUnconfigured(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)
	if got := uc.requestLLMSuggestions(context.Background(), []model.Message{message("m1", "s", "b")}); len(got) != 0 {
		t.Errorf("expected no suggestions, got %+v", got)
	}
}

func TestRequestLLMSuggestionsClampsConfidence(t *testing.T) {
	llm := &mockLLM{text: `[
		{"window_start":"2025-12-20","window_end":"2025-12-20","confidence":1.7},
		{"window_start":"2025-12-21","window_end":"2025-12-21","confidence":-2},
		{"window_start":"2025-12-22","window_end":"2025-12-22","source":"legacy-id"}
	]`}
	uc := newTestUseCase(t, &mockRepo{}, llm)

	got := uc.requestLLMSuggestions(context.Background(), []model.Message{message("m1", "s", "b")})
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	if got[0].Confidence != 1 || got[1].Confidence != 0 || got[2].Confidence != 0 {
		t.Errorf("unexpected confidences: %v %v %v", got[0].Confidence, got[1].Confidence, got[2].Confidence)
	}
	if got[2].SourceMessageID != "legacy-id" {
		t.Errorf("expected source fallback, got %q", got[2].SourceMessageID)
	}
}

func TestPromptTruncatesBody(t *testing.T) {
	llm := &mockLLM{text: "[]"}
	uc := newTestUseCase(t, &mockRepo{}, llm)

	long := strings.Repeat("a", 2000)
	snippetOnly := model.Message{ID: "m2", Headers: map[string]string{"subject": "s2"}, Snippet: "from the snippet"}
	uc.requestLLMSuggestions(context.Background(), []model.Message{message("m1", "s1", long), snippetOnly})

	if !strings.Contains(llm.prompt, strings.Repeat("a", 1500)+" ...[truncated]") {
		t.Error("expected body truncated to 1500 chars with marker")
	}
	if strings.Contains(llm.prompt, strings.Repeat("a", 1501)) {
		t.Error("expected no more than 1500 body chars")
	}
	if !strings.Contains(llm.prompt, "body: from the snippet") {
		t.Error("expected snippet used when body is empty")
	}
	if !strings.Contains(llm.prompt, "id: m1\nfrom: alex@example.com\nsubject: s1\n") {
		t.Errorf("unexpected prompt layout: %q", llm.prompt[:200])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("unexpected: %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc ...[truncated]" {
		t.Errorf("unexpected: %q", got)
	}
}

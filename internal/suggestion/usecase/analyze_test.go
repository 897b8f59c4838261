package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart-pto/internal/model"
	"smart-pto/internal/suggestion"
)

func message(id, subject, body string) model.Message {
	return model.Message{
		ID:      id,
		Headers: map[string]string{"subject": subject, "from": "alex@example.com", "date": "Mon, 06 Oct 2025 10:00:00 +0000"},
		Body:    body,
	}
}

func TestAnalyze(t *testing.T) {
	const fencedJSON = "```json\n[{\"window_start\":\"2025-12-20\",\"window_end\":\"2025-12-27\",\"reason\":\"r\",\"source_message_id\":\"m1\",\"confidence\":0.9}]\n```"

	tests := []struct {
		name      string
		repo      *mockRepo
		llm       *mockLLM
		wantErr   error
		wantCount int
		check     func(t *testing.T, out suggestion.AnalyzeOutput)
	}{
		{
			name:      "zero messages without llm",
			repo:      &mockRepo{},
			wantCount: 0,
			check: func(t *testing.T, out suggestion.AnalyzeOutput) {
				if out.Suggestions == nil || len(out.Suggestions) != 0 {
					t.Errorf("expected empty non-nil suggestions, got %#v", out.Suggestions)
				}
			},
		},
		{
			name:      "zero messages with llm",
			repo:      &mockRepo{},
			llm:       &mockLLM{text: fencedJSON},
			wantCount: 0,
			check: func(t *testing.T, out suggestion.AnalyzeOutput) {
				if len(out.Suggestions) != 0 {
					t.Errorf("expected no suggestions, got %d", len(out.Suggestions))
				}
			},
		},
		{
			name: "llm wins outright",
			repo: &mockRepo{
				ids:      []string{"m1"},
				messages: map[string]model.Message{"m1": message("m1", "Trip", "trip to Japan on Oct 3")},
			},
			llm:       &mockLLM{text: fencedJSON},
			wantCount: 1,
			check: func(t *testing.T, out suggestion.AnalyzeOutput) {
				if len(out.Suggestions) != 1 {
					t.Fatalf("expected 1 llm suggestion, got %d", len(out.Suggestions))
				}
				s := out.Suggestions[0]
				if !s.WindowStart.Equal(date(2025, 12, 20)) || !s.WindowEnd.Equal(date(2025, 12, 27)) {
					t.Errorf("unexpected window: %v - %v", s.WindowStart, s.WindowEnd)
				}
				if s.Reason != "r" || s.SourceMessageID != "m1" || s.Confidence != 0.9 {
					t.Errorf("unexpected suggestion: %+v", s)
				}
			},
		},
		{
			name: "garbage llm output falls through to rules",
			repo: &mockRepo{
				ids:      []string{"m1"},
				messages: map[string]model.Message{"m1": message("m1", "Plans", "trip to Japan")},
			},
			llm:       &mockLLM{text: "I could not find anything useful, sorry!"},
			wantCount: 1,
			check: func(t *testing.T, out suggestion.AnalyzeOutput) {
				if len(out.Suggestions) == 0 {
					t.Fatal("expected rule-based suggestions")
				}
				for _, s := range out.Suggestions {
					if s.Confidence == 0.9 {
						t.Errorf("unexpected llm suggestion: %+v", s)
					}
				}
			},
		},
		{
			name: "llm error falls through to rules",
			repo: &mockRepo{
				ids:      []string{"m1"},
				messages: map[string]model.Message{"m1": message("m1", "Out of office Jan 9", "")},
			},
			llm:       &mockLLM{err: errors.New("quota")},
			wantCount: 1,
			check: func(t *testing.T, out suggestion.AnalyzeOutput) {
				if len(out.Suggestions) != 1 {
					t.Fatalf("expected 1 suggestion, got %d", len(out.Suggestions))
				}
				if !out.Suggestions[0].WindowStart.Equal(date(2025, 1, 9)) {
					t.Errorf("unexpected start: %v", out.Suggestions[0].WindowStart)
				}
			},
		},
		{
			name: "failed fetch is skipped",
			repo: &mockRepo{
				ids:      []string{"missing", "m2"},
				messages: map[string]model.Message{"m2": message("m2", "hello", "nothing here")},
			},
			wantCount: 1,
			check: func(t *testing.T, out suggestion.AnalyzeOutput) {
				if len(out.Suggestions) != 0 {
					t.Errorf("expected no suggestions, got %+v", out.Suggestions)
				}
			},
		},
		{
			name:    "listing failure is surfaced",
			repo:    &mockRepo{listErr: errBoom},
			wantErr: suggestion.ErrListMessages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.repo, nil)
			if tt.llm != nil {
				uc = newTestUseCase(t, tt.repo, tt.llm)
			}

			out, err := uc.Analyze(context.Background(), suggestion.AnalyzeInput{})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.CountMessages != tt.wantCount {
				t.Errorf("expected count %d, got %d", tt.wantCount, out.CountMessages)
			}
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

func TestAnalyzeNoRepository(t *testing.T) {
	uc := newTestUseCase(t, nil, nil)
	if _, err := uc.Analyze(context.Background(), suggestion.AnalyzeInput{}); !errors.Is(err, suggestion.ErrMailUnavailable) {
		t.Fatalf("expected ErrMailUnavailable, got %v", err)
	}
}

func TestAnalyzeSequentialFetchAndBound(t *testing.T) {
	repo := &mockRepo{
		ids: []string{"a", "b", "c"},
		messages: map[string]model.Message{
			"a": message("a", "x", ""),
			"b": message("b", "y", ""),
			"c": message("c", "z", ""),
		},
	}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.Analyze(context.Background(), suggestion.AnalyzeInput{MaxResults: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CountMessages != 2 {
		t.Errorf("expected 2 messages, got %d", out.CountMessages)
	}
	if strings.Join(repo.fetched, ",") != "a,b" {
		t.Errorf("unexpected fetch order: %v", repo.fetched)
	}
	if repo.gotOpt.MaxResults != 2 {
		t.Errorf("expected max results forwarded, got %d", repo.gotOpt.MaxResults)
	}
}

func TestMaxResultsDefaults(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, suggestion.DefaultMaxResults},
		{-3, suggestion.DefaultMaxResults},
		{10, 10},
		{5000, suggestion.MaxResultsCap},
	}
	for _, tt := range tests {
		repo := &mockRepo{}
		uc := newTestUseCase(t, repo, nil)
		if _, err := uc.Analyze(context.Background(), suggestion.AnalyzeInput{MaxResults: tt.in}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.gotOpt.MaxResults != tt.want {
			t.Errorf("MaxResults %d: expected %d, got %d", tt.in, tt.want, repo.gotOpt.MaxResults)
		}
	}
}

func TestBuildListOptions(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)
	opt := uc.buildListOptions(50)

	want := `subject:(holiday OR PTO OR "out of office" OR OOO OR trip OR travel OR vacation) OR (body:(vacation OR "going to" OR "travel to" OR "trip to" OR "time off")) newer_than:365d`
	if opt.Query != want {
		t.Errorf("unexpected query:\n got %s\nwant %s", opt.Query, want)
	}
	if !opt.Since.Equal(fixedNow.AddDate(0, 0, -365)) {
		t.Errorf("unexpected since: %v", opt.Since)
	}
}

func TestListCandidates(t *testing.T) {
	repo := &mockRepo{
		ids:      []string{"m1"},
		messages: map[string]model.Message{"m1": message("m1", "Holiday trip to Japan", "body")},
	}
	uc := newTestUseCase(t, repo, nil)

	out, err := uc.ListCandidates(context.Background(), suggestion.ListCandidatesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotOpt.MaxResults != suggestion.DefaultCandidateMaxResults {
		t.Errorf("expected default candidate max, got %d", repo.gotOpt.MaxResults)
	}
	if len(out.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out.Candidates))
	}
	c := out.Candidates[0]
	if c.Subject != "Holiday trip to Japan" || c.From != "alex@example.com" || c.Date == "" {
		t.Errorf("unexpected candidate: %+v", c)
	}
}

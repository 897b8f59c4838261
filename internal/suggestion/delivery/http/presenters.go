package http

import (
	"smart-pto/internal/model"
	"smart-pto/internal/suggestion"
	"smart-pto/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	MaxResults int `form:"max_results" binding:"omitempty,min=1,max=500"`
}

func (r analyzeReq) validate() error { return nil }

func (r analyzeReq) toInput() suggestion.AnalyzeInput {
	return suggestion.AnalyzeInput{MaxResults: r.MaxResults}
}

type candidatesReq struct {
	MaxResults int `form:"max_results" binding:"omitempty,min=1,max=500"`
}

func (r candidatesReq) validate() error { return nil }

func (r candidatesReq) toInput() suggestion.ListCandidatesInput {
	return suggestion.ListCandidatesInput{MaxResults: r.MaxResults}
}

// --- Response DTOs ---

type suggestionResp struct {
	WindowStart     response.Date `json:"window_start"`
	WindowEnd       response.Date `json:"window_end"`
	Reason          string        `json:"reason"`
	SourceMessageID string        `json:"source_message_id"`
	Confidence      float64       `json:"confidence"`
}

func newSuggestionResp(s model.Suggestion) suggestionResp {
	return suggestionResp{
		WindowStart:     response.Date(s.WindowStart),
		WindowEnd:       response.Date(s.WindowEnd),
		Reason:          s.Reason,
		SourceMessageID: s.SourceMessageID,
		Confidence:      s.Confidence,
	}
}

type analyzeResp struct {
	CountMessages int              `json:"count_messages"`
	Suggestions   []suggestionResp `json:"suggestions"`
}

func (h *handler) newAnalyzeResp(out suggestion.AnalyzeOutput) analyzeResp {
	items := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		items[i] = newSuggestionResp(s)
	}
	return analyzeResp{
		CountMessages: out.CountMessages,
		Suggestions:   items,
	}
}

type candidateResp struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
	Snippet string `json:"snippet,omitempty"`
}

type candidatesResp struct {
	Items []candidateResp `json:"items"`
}

func (h *handler) newCandidatesResp(out suggestion.ListCandidatesOutput) candidatesResp {
	items := make([]candidateResp, len(out.Candidates))
	for i, c := range out.Candidates {
		items[i] = candidateResp{
			ID:      c.ID,
			Subject: c.Subject,
			From:    c.From,
			Date:    c.Date,
			Snippet: c.Snippet,
		}
	}
	return candidatesResp{Items: items}
}

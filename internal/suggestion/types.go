package suggestion

import "smart-pto/internal/model"

const (
	DefaultMaxResults          = 50
	DefaultCandidateMaxResults = 20
	MaxResultsCap              = 500
)

// --- UseCase Inputs ---

type AnalyzeInput struct {
	MaxResults int // <=0 means DefaultMaxResults, capped at MaxResultsCap
}

type ListCandidatesInput struct {
	MaxResults int // <=0 means DefaultCandidateMaxResults, capped at MaxResultsCap
}

// --- UseCase Outputs ---

type AnalyzeOutput struct {
	CountMessages int
	Suggestions   []model.Suggestion
}

// Candidate is a matched message summarised for display.
type Candidate struct {
	ID      string
	Subject string
	From    string
	Date    string
	Snippet string
}

type ListCandidatesOutput struct {
	Candidates []Candidate
}

package usecase

import (
	"context"

	"smart-pto/internal/suggestion"
)

// ListCandidates returns the messages matched by the mailbox query, newest first.
func (uc *implUseCase) ListCandidates(ctx context.Context, input suggestion.ListCandidatesInput) (suggestion.ListCandidatesOutput, error) {
	messages, err := uc.fetchMessages(ctx, clampMaxResults(input.MaxResults, suggestion.DefaultCandidateMaxResults))
	if err != nil {
		return suggestion.ListCandidatesOutput{}, err
	}

	candidates := make([]suggestion.Candidate, 0, len(messages))
	for _, m := range messages {
		candidates = append(candidates, suggestion.Candidate{
			ID:      m.ID,
			Subject: m.Subject(),
			From:    m.From(),
			Date:    m.Header("date"),
			Snippet: m.Snippet,
		})
	}
	return suggestion.ListCandidatesOutput{Candidates: candidates}, nil
}

package usecase

import (
	"context"
	"fmt"

	"smart-pto/internal/model"
	"smart-pto/internal/suggestion"
)

const maxResultsCap = suggestion.MaxResultsCap

// Analyze lists matching messages, fetches them one by one and asks the LLM
// for suggestions. When the LLM is absent or yields nothing, the rule-based
// extractor runs instead. Only a listing failure is returned as an error.
func (uc *implUseCase) Analyze(ctx context.Context, input suggestion.AnalyzeInput) (suggestion.AnalyzeOutput, error) {
	messages, err := uc.fetchMessages(ctx, clampMaxResults(input.MaxResults, suggestion.DefaultMaxResults))
	if err != nil {
		return suggestion.AnalyzeOutput{}, err
	}
	if len(messages) == 0 {
		return suggestion.AnalyzeOutput{Suggestions: []model.Suggestion{}}, nil
	}

	suggestions := uc.requestLLMSuggestions(ctx, messages)
	if len(suggestions) > 0 {
		uc.l.Infof(ctx, "uc.Analyze: %d suggestions from %s for %d messages", len(suggestions), uc.llm.Model(), len(messages))
		return suggestion.AnalyzeOutput{
			CountMessages: len(messages),
			Suggestions:   suggestions,
		}, nil
	}

	suggestions = uc.ruleBasedSuggestions(messages)
	uc.l.Infof(ctx, "uc.Analyze: %d rule-based suggestions for %d messages", len(suggestions), len(messages))

	return suggestion.AnalyzeOutput{
		CountMessages: len(messages),
		Suggestions:   suggestions,
	}, nil
}

// fetchMessages fetches sequentially; a failed single fetch is logged and skipped.
func (uc *implUseCase) fetchMessages(ctx context.Context, maxResults int) ([]model.Message, error) {
	if uc.repo == nil {
		return nil, suggestion.ErrMailUnavailable
	}

	ids, err := uc.repo.ListMessageIDs(ctx, uc.buildListOptions(maxResults))
	if err != nil {
		uc.l.Errorf(ctx, "uc.fetchMessages ListMessageIDs: %v", err)
		return nil, fmt.Errorf("%w: %v", suggestion.ErrListMessages, err)
	}
	if len(ids) > maxResults {
		ids = ids[:maxResults]
	}

	messages := make([]model.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := uc.repo.GetMessage(ctx, id)
		if err != nil {
			uc.l.Warnf(ctx, "uc.fetchMessages GetMessage %s: %v", id, err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-pto/internal/model"
	"smart-pto/pkg/datemath"
)

const (
	phraseConfidence = 0.4
	travelConfidence = 0.6
	travelLeadDays   = 30
	travelWindowDays = 7
)

// ruleBasedSuggestions derives suggestions from date phrases and travel
// mentions in each message's body and subject.
func (uc *implUseCase) ruleBasedSuggestions(messages []model.Message) []model.Suggestion {
	now := uc.now()
	out := make([]model.Suggestion, 0)

	for _, m := range messages {
		text := m.Body + " " + m.Subject()

		for _, phrase := range datemath.ExtractPhrases(text) {
			r, ok := uc.parser.Normalize(phrase, now)
			if !ok {
				continue
			}
			out = append(out, model.Suggestion{
				WindowStart:     r.Start,
				WindowEnd:       r.End,
				Reason:          fmt.Sprintf("Found phrase `%s` in message subject/body", phrase),
				SourceMessageID: m.ID,
				Confidence:      phraseConfidence,
			})
		}

		if s, ok := uc.travelSuggestion(m.ID, text, now); ok {
			out = append(out, s)
		}
	}
	return out
}

// travelSuggestion proposes a week starting travelLeadDays from now when a
// known destination is mentioned. At most one per message.
func (uc *implUseCase) travelSuggestion(messageID, text string, now time.Time) (model.Suggestion, bool) {
	m := uc.travelRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return model.Suggestion{}, false
	}

	start := uc.startOfDay(now).AddDate(0, 0, travelLeadDays)
	return model.Suggestion{
		WindowStart:     start,
		WindowEnd:       start.AddDate(0, 0, travelWindowDays-1),
		Reason:          fmt.Sprintf("Travel mention: %s found in message", uc.titler.String(strings.ToLower(m[1]))),
		SourceMessageID: messageID,
		Confidence:      travelConfidence,
	}, true
}

package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-pto/internal/suggestion/repository"
)

var (
	subjectKeywords = []string{"holiday", "PTO", "out of office", "OOO", "trip", "travel", "vacation"}
	bodyKeywords    = []string{"vacation", "going to", "travel to", "trip to", "time off"}
)

// buildListOptions renders the mailbox search both as a Gmail query and as
// structured keywords for providers without Gmail search syntax.
func (uc *implUseCase) buildListOptions(maxResults int) repository.ListMessagesOptions {
	query := fmt.Sprintf("subject:(%s) OR (body:(%s)) newer_than:%dd",
		joinOr(subjectKeywords), joinOr(bodyKeywords), uc.cfg.LookbackDays)

	return repository.ListMessagesOptions{
		Query:           query,
		SubjectKeywords: subjectKeywords,
		BodyKeywords:    bodyKeywords,
		Since:           uc.now().AddDate(0, 0, -uc.cfg.LookbackDays),
		MaxResults:      maxResults,
	}
}

func joinOr(keywords []string) string {
	terms := make([]string, len(keywords))
	for i, kw := range keywords {
		if strings.Contains(kw, " ") {
			kw = `"` + kw + `"`
		}
		terms[i] = kw
	}
	return strings.Join(terms, " OR ")
}

// startOfDay truncates t to midnight in the parser's timezone.
func (uc *implUseCase) startOfDay(t time.Time) time.Time {
	t = t.In(uc.parser.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func clampMaxResults(n, def int) int {
	if n <= 0 {
		return def
	}
	if n > maxResultsCap {
		return maxResultsCap
	}
	return n
}

package datemath

import "time"

// Range is an inclusive calendar-date window. Start and End are midnight in
// the parser's timezone.
type Range struct {
	Start time.Time
	End   time.Time
}

// phrasePattern is one date-phrase template used by ExtractPhrases.
type phrasePattern struct {
	name  string
	regex string
}

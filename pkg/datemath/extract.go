package datemath

import "regexp"

// Order matters: matches are collected template by template, then deduplicated.
var phrasePatterns = []phrasePattern{
	{
		name:  "month_day",
		regex: `\b(?:on\s)?(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{1,2}\b`,
	},
	{
		name:  "numeric_date",
		regex: `\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
	},
	{
		name:  "relative_weekday",
		regex: `\b(?:next|this|coming)\s+(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`,
	},
	{
		name:  "n_days",
		regex: `\b(?:in\s)?\d{1,2}\s+days\b`,
	},
	{
		name:  "from_to_range",
		regex: `\bfrom\s+.+?\s+(?:to|-|through)\s+.+?\b`,
	},
	{
		name:  "travel_location",
		regex: `\b(?:going to|go to|trip to|travel to)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`,
	},
}

var compiledPhrasePatterns = compilePhrasePatterns(phrasePatterns)

func compilePhrasePatterns(patterns []phrasePattern) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p.regex)
	}
	return compiled
}

// ExtractPhrases returns the date-like phrases found in text, in first-seen
// order and without duplicates. Phrases are not validated ("Feb 30" is kept).
func ExtractPhrases(text string) []string {
	if text == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	phrases := []string{}
	for _, re := range compiledPhrasePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			phrases = append(phrases, m)
		}
	}
	return phrases
}

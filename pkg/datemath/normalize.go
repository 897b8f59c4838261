package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	leadingOnRe  = regexp.MustCompile(`(?i)^on\s+`)
	septRe       = regexp.MustCompile(`(?i)\bsept\b`)
	ordinalRe    = regexp.MustCompile(`(?i)(\d)(st|nd|rd|th)\b`)
	relWeekdayRe = regexp.MustCompile(`(?i)^(?:next|this|coming)\s+[a-z]+$`)
	rangeRe      = regexp.MustCompile(`(?i)^from\s+(.+?)\s+(?:to|-|through)\s+(.+)$`)
	nDaysRe      = regexp.MustCompile(`(?i)(\d{1,2})\s+days`)
)

// Layouts without a year; the reference year is filled in.
var monthDayLayouts = []string{
	"Jan 2",
	"January 2",
	"2 Jan",
	"2 January",
}

// Month-first before day-first: "03/04/2025" is March 4.
// Years must have 2 or 4 digits; a 3-digit year such as "1/2/202" matches no
// layout and the phrase is dropped.
var fullDateLayouts = []string{
	"2006-01-02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"1-2-06",
	"2/1/2006",
	"2/1/06",
	"2-1-2006",
	"2-1-06",
}

// Normalize resolves a date phrase against ref. It tries, in order, a general
// date parse, a "from X to Y" range and an "N days" offset. ok is false when
// nothing matched; malformed input never panics.
func (p *Parser) Normalize(phrase string, ref time.Time) (Range, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return Range{}, false
	}

	if d, ok := p.parseGeneral(phrase, ref); ok {
		return Range{Start: d, End: d}, true
	}

	if m := rangeRe.FindStringSubmatch(phrase); len(m) == 3 {
		start, okStart := p.parseGeneral(m[1], ref)
		end, okEnd := p.parseGeneral(m[2], ref)
		if okStart && okEnd {
			if end.Before(start) {
				end = start
			}
			return Range{Start: start, End: end}, true
		}
	}

	if m := nDaysRe.FindStringSubmatch(phrase); len(m) == 2 {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			d := p.startOfDay(ref).AddDate(0, 0, days)
			return Range{Start: d, End: d}, true
		}
	}

	return Range{}, false
}

// parseGeneral parses absolute dates and relative weekday/day words, using
// ref for any missing field.
func (p *Parser) parseGeneral(s string, ref time.Time) (time.Time, bool) {
	s = strings.TrimSpace(strings.Trim(s, ".,;"))
	// Hard-wrapped mail splits phrases over newlines and tabs.
	s = strings.Join(strings.Fields(s), " ")
	s = leadingOnRe.ReplaceAllString(s, "")
	s = septRe.ReplaceAllString(s, "Sep")
	s = ordinalRe.ReplaceAllString(s, "$1")
	if s == "" {
		return time.Time{}, false
	}

	lower := strings.ToLower(s)
	switch lower {
	case "today", "tomorrow", "yesterday":
		t, err := p.Parse(lower, ref)
		return t, err == nil
	}
	if relWeekdayRe.MatchString(s) || strings.HasPrefix(lower, "in ") {
		t, err := p.Parse(lower, ref)
		return t, err == nil
	}

	for _, layout := range fullDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return p.date(t.Year(), t.Month(), t.Day()), true
		}
	}

	refYear := ref.In(p.location).Year()
	for _, layout := range monthDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := p.date(refYear, t.Month(), t.Day())
			if d.Day() != t.Day() {
				// Feb 29 outside a leap year
				return time.Time{}, false
			}
			return d, true
		}
	}

	return time.Time{}, false
}

func (p *Parser) date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, p.location)
}

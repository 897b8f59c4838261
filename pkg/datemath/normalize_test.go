package datemath_test

import (
	"testing"
	"time"

	"smart-pto/pkg/datemath"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name      string
		phrase    string
		wantOK    bool
		wantStart time.Time
		wantEnd   time.Time
	}{
		{name: "n days", phrase: "5 days", wantOK: true, wantStart: utcDate(2025, 1, 6), wantEnd: utcDate(2025, 1, 6)},
		{name: "in n days", phrase: "in 10 days", wantOK: true, wantStart: utcDate(2025, 1, 11), wantEnd: utcDate(2025, 1, 11)},
		{name: "month day uses ref year", phrase: "Dec 20", wantOK: true, wantStart: utcDate(2025, 12, 20), wantEnd: utcDate(2025, 12, 20)},
		{name: "leading on", phrase: "on March 3", wantOK: true, wantStart: utcDate(2025, 3, 3), wantEnd: utcDate(2025, 3, 3)},
		{name: "lowercase month", phrase: "sept 9", wantOK: true, wantStart: utcDate(2025, 9, 9), wantEnd: utcDate(2025, 9, 9)},
		{name: "numeric month first", phrase: "12/20/2025", wantOK: true, wantStart: utcDate(2025, 12, 20), wantEnd: utcDate(2025, 12, 20)},
		{name: "numeric day first fallback", phrase: "20/12/2025", wantOK: true, wantStart: utcDate(2025, 12, 20), wantEnd: utcDate(2025, 12, 20)},
		{name: "numeric two digit year", phrase: "1-3-26", wantOK: true, wantStart: utcDate(2026, 1, 3), wantEnd: utcDate(2026, 1, 3)},
		{name: "next weekday", phrase: "next Monday", wantOK: true, wantStart: utcDate(2025, 1, 6), wantEnd: utcDate(2025, 1, 6)},
		{name: "next weekday across line break", phrase: "next\nFriday", wantOK: true, wantStart: utcDate(2025, 1, 3), wantEnd: utcDate(2025, 1, 3)},
		{name: "next weekday across tab", phrase: "next\tFriday", wantOK: true, wantStart: utcDate(2025, 1, 3), wantEnd: utcDate(2025, 1, 3)},
		{name: "month day across line break", phrase: "Dec\n20", wantOK: true, wantStart: utcDate(2025, 12, 20), wantEnd: utcDate(2025, 12, 20)},
		{name: "in n weeks", phrase: "in 2 weeks", wantOK: true, wantStart: utcDate(2025, 1, 15), wantEnd: utcDate(2025, 1, 15)},
		{name: "in n months", phrase: "in 1 month", wantOK: true, wantStart: utcDate(2025, 2, 1), wantEnd: utcDate(2025, 2, 1)},
		{name: "unknown weekday word", phrase: "next week", wantOK: false},
		{name: "three digit year", phrase: "1/2/202", wantOK: false},
		{name: "range", phrase: "from Dec 20 to Dec 27", wantOK: true, wantStart: utcDate(2025, 12, 20), wantEnd: utcDate(2025, 12, 27)},
		{name: "reversed range collapses", phrase: "from Dec 27 to Dec 20", wantOK: true, wantStart: utcDate(2025, 12, 27), wantEnd: utcDate(2025, 12, 27)},
		{name: "half range", phrase: "from Dec 20 to Dec", wantOK: false},
		{name: "impossible date", phrase: "Feb 30", wantOK: false},
		{name: "leap day outside leap year", phrase: "Feb 29", wantOK: false},
		{name: "garbage", phrase: "xyz", wantOK: false},
		{name: "travel phrase", phrase: "trip to Japan", wantOK: false},
		{name: "empty", phrase: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Normalize(tt.phrase, ref)
			if ok != tt.wantOK {
				t.Fatalf("Normalize(%q) ok = %v, want %v (got %v)", tt.phrase, ok, tt.wantOK, got)
			}
			if !ok {
				return
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Start: got %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("End: got %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestNormalizeUsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2025-01-01 20:00 UTC is already 2025-01-02 in Tokyo.
	ref := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)

	got, ok := parser.Normalize("1 days", ref)
	if !ok {
		t.Fatalf("expected a date")
	}
	if got.Start.Format("2006-01-02") != "2025-01-03" {
		t.Errorf("expected 2025-01-03, got %s", got.Start.Format("2006-01-02"))
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smart-pto/internal/pto"
)

const (
	icsDateLayout  = "20060102"
	icsStampLayout = "20060102T150405Z"
	icsFileName    = "pto.ics"
)

// ExportICS renders the window as an all-day iCalendar event. Without an
// explicit window the first recommendation with default settings is used.
func (uc *implUseCase) ExportICS(ctx context.Context, input pto.ExportICSInput) (pto.ExportICSOutput, error) {
	emp, err := uc.getEmployee(ctx, input.EmployeeID)
	if err != nil {
		return pto.ExportICSOutput{}, err
	}

	start, end := dateOf(input.WindowStart), dateOf(input.WindowEnd)
	if input.WindowStart.IsZero() {
		rec, err := uc.Recommend(ctx, pto.RecommendInput{EmployeeID: emp.ID})
		if err != nil {
			return pto.ExportICSOutput{}, err
		}
		if len(rec.Windows) == 0 {
			return pto.ExportICSOutput{}, pto.ErrNoWindowAvailable
		}
		start, end = rec.Windows[0].Start, rec.Windows[0].End
	} else if input.WindowEnd.IsZero() {
		end = start
	}
	if end.Before(start) {
		return pto.ExportICSOutput{}, pto.ErrInvalidWindow
	}

	return pto.ExportICSOutput{
		FileName: icsFileName,
		Content:  buildICS(uuid.NewString(), emp.Name, start, end, uc.now()),
	}, nil
}

// buildICS writes RFC 5545 text; DTEND of an all-day event is exclusive.
func buildICS(uid, name string, start, end, stamp time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SmartPTO//PTO Recommender//EN",
		"BEGIN:VEVENT",
		"UID:" + uid + "@smartpto",
		"DTSTAMP:" + stamp.UTC().Format(icsStampLayout),
		fmt.Sprintf("SUMMARY:PTO for %s", name),
		"DTSTART;VALUE=DATE:" + start.Format(icsDateLayout),
		"DTEND;VALUE=DATE:" + end.AddDate(0, 0, 1).Format(icsDateLayout),
		"DESCRIPTION:SmartPTO suggested leave",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

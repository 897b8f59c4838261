package gcalendar

import (
	"context"
	"strings"
	"time"

	"smart-pto/internal/model"
	"smart-pto/internal/pto/repository"
	pkgGCal "smart-pto/pkg/gcalendar"
	"smart-pto/pkg/log"
)

// Client is the subset of pkg/gcalendar used here.
type Client interface {
	ListEvents(ctx context.Context, req pkgGCal.ListEventsRequest) ([]pkgGCal.Event, error)
}

type implRepository struct {
	l          log.Logger
	base       repository.Repository
	client     Client
	calendarID string
}

// New layers a shared team calendar over base. All-day events whose summary
// contains "[team]" count as one member out for every day they span.
// Calendar failures are logged and the base absences are used alone.
func New(l log.Logger, base repository.Repository, client Client, calendarID string) repository.Repository {
	return &implRepository{
		l:          l,
		base:       base,
		client:     client,
		calendarID: calendarID,
	}
}

func (r *implRepository) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	return r.base.GetEmployee(ctx, id)
}

func (r *implRepository) CountTeamMembers(ctx context.Context, team string) (int, error) {
	return r.base.CountTeamMembers(ctx, team)
}

func (r *implRepository) ListTeamOutDates(ctx context.Context, team string, from, to time.Time) ([]time.Time, error) {
	dates, err := r.base.ListTeamOutDates(ctx, team, from, to)
	if err != nil {
		return nil, err
	}

	events, err := r.client.ListEvents(ctx, pkgGCal.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    from,
		TimeMax:    to.AddDate(0, 0, 1),
		Query:      team,
	})
	if err != nil {
		r.l.Warnf(ctx, "gcalendar.ListTeamOutDates ListEvents: %v", err)
		return dates, nil
	}

	tag := "[" + strings.ToLower(team) + "]"
	fromDay, toDay := dateOnly(from), dateOnly(to)
	for _, ev := range events {
		if !ev.AllDay || !strings.Contains(strings.ToLower(ev.Summary), tag) {
			continue
		}
		// End is exclusive for all-day events.
		for d := dateOnly(ev.StartTime); d.Before(dateOnly(ev.EndTime)); d = d.AddDate(0, 0, 1) {
			if d.Before(fromDay) || d.After(toDay) {
				continue
			}
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

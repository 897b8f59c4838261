package gcalendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-pto/internal/pto/repository/memory"
	pkgGCal "smart-pto/pkg/gcalendar"
	"smart-pto/pkg/log"
)

type mockClient struct {
	events []pkgGCal.Event
	err    error
	gotReq pkgGCal.ListEventsRequest
}

func (m *mockClient) ListEvents(ctx context.Context, req pkgGCal.ListEventsRequest) ([]pkgGCal.Event, error) {
	m.gotReq = req
	return m.events, m.err
}

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListTeamOutDates(t *testing.T) {
	from, to := day(10, 1), day(10, 31)

	t.Run("merges all-day tagged events", func(t *testing.T) {
		client := &mockClient{events: []pkgGCal.Event{
			{Summary: "[Alpha] Alex offsite", StartTime: day(10, 22), EndTime: day(10, 24), AllDay: true},
			{Summary: "[alpha] standup", StartTime: day(10, 22), EndTime: day(10, 22), AllDay: false},
			{Summary: "[beta] Priya out", StartTime: day(10, 25), EndTime: day(10, 26), AllDay: true},
		}}
		repo := New(log.NewNop(), memory.New(), client, "team@group.calendar.google.com")

		dates, err := repo.ListTeamOutDates(context.Background(), "alpha", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 10-20, 10-21 from memory + 10-22, 10-23 from the calendar
		if len(dates) != 4 {
			t.Fatalf("expected 4 dates, got %v", dates)
		}
		if !dates[3].Equal(day(10, 23)) {
			t.Errorf("expected exclusive end, got %v", dates[3])
		}
		if client.gotReq.CalendarID != "team@group.calendar.google.com" || client.gotReq.Query != "alpha" {
			t.Errorf("unexpected request: %+v", client.gotReq)
		}
	})

	t.Run("calendar failure keeps base dates", func(t *testing.T) {
		repo := New(log.NewNop(), memory.New(), &mockClient{err: errors.New("down")}, "primary")

		dates, err := repo.ListTeamOutDates(context.Background(), "alpha", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dates) != 2 {
			t.Errorf("expected base dates only, got %v", dates)
		}
	})
}

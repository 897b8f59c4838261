package memory

import (
	"context"
	"sync"
	"time"

	"smart-pto/internal/model"
	"smart-pto/internal/pto/repository"
)

const dateLayout = "2006-01-02"

type implRepository struct {
	mu        sync.RWMutex
	employees map[string]model.Employee
	teamOut   map[string][]time.Time
}

// New creates an in-memory repository seeded with the demo employees and
// known team absences.
func New() repository.Repository {
	return NewWithData(DefaultEmployees(), DefaultTeamOut())
}

// NewWithData creates an in-memory repository from the given data.
// teamOut values are YYYY-MM-DD dates; malformed ones are ignored.
func NewWithData(employees []model.Employee, teamOut map[string][]string) repository.Repository {
	r := &implRepository{
		employees: make(map[string]model.Employee, len(employees)),
		teamOut:   make(map[string][]time.Time, len(teamOut)),
	}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	for team, dates := range teamOut {
		for _, d := range dates {
			t, err := time.Parse(dateLayout, d)
			if err != nil {
				continue
			}
			r.teamOut[team] = append(r.teamOut[team], t)
		}
	}
	return r
}

// DefaultEmployees returns the demo employee records.
func DefaultEmployees() []model.Employee {
	return []model.Employee{
		{ID: "u1", Name: "Ryan", AccrualDays: 8.5, Team: "alpha"},
		{ID: "u2", Name: "Alex", AccrualDays: 12, Team: "alpha"},
		{ID: "u3", Name: "Priya", AccrualDays: 6, Team: "beta"},
	}
}

// DefaultTeamOut returns the demo team absences.
func DefaultTeamOut() map[string][]string {
	return map[string][]string{
		"alpha": {"2025-10-20", "2025-10-21"},
		"beta":  {"2025-10-15"},
	}
}

func (r *implRepository) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return model.Employee{}, repository.ErrNotFound
	}
	return e, nil
}

func (r *implRepository) CountTeamMembers(ctx context.Context, team string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, e := range r.employees {
		if e.Team == team {
			n++
		}
	}
	return n, nil
}

func (r *implRepository) ListTeamOutDates(ctx context.Context, team string, from, to time.Time) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	from = dateOnly(from)
	to = dateOnly(to)

	out := make([]time.Time, 0)
	for _, d := range r.teamOut[team] {
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// dateOnly drops the clock and zone, keeping the wall-clock date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package repository

import (
	"context"
	"time"

	"smart-pto/internal/model"
)

// Repository is the composed interface for the PTO domain data store.
type Repository interface {
	EmployeeRepository
	AbsenceRepository
}

// EmployeeRepository reads employees.
type EmployeeRepository interface {
	GetEmployee(ctx context.Context, id string) (model.Employee, error)
	CountTeamMembers(ctx context.Context, team string) (int, error)
}

// AbsenceRepository reads when team members are out.
type AbsenceRepository interface {
	// ListTeamOutDates returns one entry per member-day out in [from, to].
	// A date appearing twice means two members are out that day.
	ListTeamOutDates(ctx context.Context, team string, from, to time.Time) ([]time.Time, error)
}

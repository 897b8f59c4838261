package usecase

import (
	"context"
	"errors"
	"time"

	"smart-pto/internal/model"
	"smart-pto/internal/pto"
	"smart-pto/internal/pto/repository"
)

const dateKeyLayout = "2006-01-02"

func (uc *implUseCase) getEmployee(ctx context.Context, id string) (model.Employee, error) {
	e, err := uc.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Employee{}, pto.ErrEmployeeNotFound
		}
		uc.l.Errorf(ctx, "uc.getEmployee GetEmployee: %v", err)
		return model.Employee{}, err
	}
	return e, nil
}

// today returns the current wall-clock date in uc.loc, expressed in UTC.
func (uc *implUseCase) today() time.Time {
	return dateOf(uc.now().In(uc.loc))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

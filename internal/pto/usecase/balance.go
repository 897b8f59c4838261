package usecase

import (
	"context"

	"smart-pto/internal/pto"
)

// Balance returns the employee's accrued PTO days.
func (uc *implUseCase) Balance(ctx context.Context, employeeID string) (pto.BalanceOutput, error) {
	e, err := uc.getEmployee(ctx, employeeID)
	if err != nil {
		return pto.BalanceOutput{}, err
	}
	return pto.BalanceOutput{Employee: e}, nil
}

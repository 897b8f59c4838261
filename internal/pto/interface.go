package pto

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Balance(ctx context.Context, employeeID string) (BalanceOutput, error)
	Recommend(ctx context.Context, input RecommendInput) (RecommendOutput, error)
	ExportICS(ctx context.Context, input ExportICSInput) (ExportICSOutput, error)
}

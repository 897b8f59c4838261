package usecase

import (
	"context"
	"time"

	"smart-pto/internal/pto"
)

const lowCoverageReason = "Low team coverage impact"

// Recommend proposes back-to-back windows starting LeadDays from today whose
// worst day keeps the team's absence ratio within the allowed maximum.
func (uc *implUseCase) Recommend(ctx context.Context, input pto.RecommendInput) (pto.RecommendOutput, error) {
	input, maxCoverage, err := normalizeRecommendInput(input)
	if err != nil {
		return pto.RecommendOutput{}, err
	}

	emp, err := uc.getEmployee(ctx, input.EmployeeID)
	if err != nil {
		return pto.RecommendOutput{}, err
	}

	teamSize, err := uc.repo.CountTeamMembers(ctx, emp.Team)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recommend CountTeamMembers: %v", err)
		return pto.RecommendOutput{}, err
	}

	today := uc.today()
	horizonEnd := today.AddDate(0, 0, input.HorizonDays)

	outDates, err := uc.repo.ListTeamOutDates(ctx, emp.Team, today, horizonEnd)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recommend ListTeamOutDates: %v", err)
		return pto.RecommendOutput{}, err
	}
	outPerDay := make(map[string]int, len(outDates))
	for _, d := range outDates {
		outPerDay[d.Format(dateKeyLayout)]++
	}

	windows := make([]pto.Window, 0, input.TopK)
	for start := today.AddDate(0, 0, pto.LeadDays); len(windows) < input.TopK; start = start.AddDate(0, 0, input.DesiredLenDays) {
		end := start.AddDate(0, 0, input.DesiredLenDays-1)
		if end.After(horizonEnd) {
			break
		}

		ratio := coverageRatio(start, end, outPerDay, teamSize)
		if ratio > maxCoverage {
			continue
		}
		windows = append(windows, pto.Window{
			Start:         start,
			End:           end,
			CoverageRatio: ratio,
			Reason:        lowCoverageReason,
		})
	}

	if input.UseAI && uc.llm != nil && len(windows) > 0 {
		windows = uc.pickWithAI(ctx, emp, input, windows)
	}

	return pto.RecommendOutput{
		Employee:       emp,
		Windows:        windows,
		ExceedsBalance: float64(input.DesiredLenDays) > emp.AccrualDays,
	}, nil
}

// coverageRatio is the highest share of the team out on any day of the window.
func coverageRatio(start, end time.Time, outPerDay map[string]int, teamSize int) float64 {
	if teamSize <= 0 {
		return 0
	}
	worst := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if n := outPerDay[d.Format(dateKeyLayout)]; n > worst {
			worst = n
		}
	}
	return float64(worst) / float64(teamSize)
}

func normalizeRecommendInput(in pto.RecommendInput) (pto.RecommendInput, float64, error) {
	if in.DesiredLenDays == 0 {
		in.DesiredLenDays = pto.DefaultDesiredLenDays
	}
	if in.DesiredLenDays < pto.MinDesiredLenDays || in.DesiredLenDays > pto.MaxDesiredLenDays {
		return in, 0, pto.ErrInvalidDesiredLen
	}

	if in.HorizonDays == 0 {
		in.HorizonDays = pto.DefaultHorizonDays
	}
	if in.HorizonDays < pto.MinHorizonDays || in.HorizonDays > pto.MaxHorizonDays {
		return in, 0, pto.ErrInvalidHorizon
	}

	maxCoverage := pto.DefaultMaxCoverageRatio
	if in.MaxCoverageRatio != nil {
		maxCoverage = *in.MaxCoverageRatio
	}
	if maxCoverage < 0 || maxCoverage > 1 {
		return in, 0, pto.ErrInvalidCoverage
	}

	if in.TopK <= 0 {
		in.TopK = pto.DefaultTopK
	}
	return in, maxCoverage, nil
}

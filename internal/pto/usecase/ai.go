package usecase

import (
	"context"
	"encoding/json"

	"smart-pto/internal/model"
	"smart-pto/internal/pto"
	"smart-pto/pkg/gemini"
)

type aiPick struct {
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Reason      string `json:"reason"`
}

// pickWithAI lets the LLM choose among windows and moves its choice to the
// front. Any failure, or a pick that is not one of the candidates, keeps the
// rule-based order.
func (uc *implUseCase) pickWithAI(ctx context.Context, emp model.Employee, input pto.RecommendInput, windows []pto.Window) []pto.Window {
	candidates := make([]gemini.PromptWindow, len(windows))
	for i, w := range windows {
		candidates[i] = gemini.PromptWindow{
			WindowStart:   w.Start.Format(dateKeyLayout),
			WindowEnd:     w.End.Format(dateKeyLayout),
			CoverageRatio: w.CoverageRatio,
		}
	}

	prompt, err := gemini.BuildWindowPickPrompt(gemini.PromptEmployee{
		ID:          emp.ID,
		Name:        emp.Name,
		Team:        emp.Team,
		AccrualDays: emp.AccrualDays,
	}, input.DesiredLenDays, input.HorizonDays, candidates)
	if err != nil {
		uc.l.Warnf(ctx, "uc.pickWithAI BuildWindowPickPrompt: %v", err)
		return windows
	}

	raw, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "uc.pickWithAI GenerateText: %v", err)
		return windows
	}

	var pick aiPick
	if err := json.Unmarshal([]byte(gemini.StripCodeFence(raw)), &pick); err != nil {
		uc.l.Warnf(ctx, "uc.pickWithAI: invalid JSON from model: %v", err)
		return windows
	}

	for i, w := range windows {
		if w.Start.Format(dateKeyLayout) != pick.WindowStart || w.End.Format(dateKeyLayout) != pick.WindowEnd {
			continue
		}
		chosen := w
		chosen.AIModel = uc.llm.Model()
		if pick.Reason != "" {
			chosen.Reason = pick.Reason
		}

		out := make([]pto.Window, 0, len(windows))
		out = append(out, chosen)
		out = append(out, windows[:i]...)
		out = append(out, windows[i+1:]...)
		return out
	}

	uc.l.Warnf(ctx, "uc.pickWithAI: model picked %s..%s which is not a candidate", pick.WindowStart, pick.WindowEnd)
	return windows
}

package http

import (
	"errors"
	"time"

	"smart-pto/internal/pto"
	"smart-pto/pkg/response"
)

// --- Request DTOs ---

type balanceReq struct {
	EmployeeID string `form:"employee_id" binding:"required"`
}

func (r balanceReq) validate() error { return nil }

type recommendReq struct {
	EmployeeID       string   `form:"employee_id"        binding:"required"`
	DesiredLenDays   int      `form:"desired_len_days"   binding:"omitempty,min=1,max=14"`
	HorizonDays      int      `form:"horizon_days"       binding:"omitempty,min=7,max=90"`
	MaxCoverageRatio *float64 `form:"max_coverage_ratio" binding:"omitempty,min=0,max=1"`
	TopK             int      `form:"top_k"              binding:"omitempty,min=1,max=20"`
	UseAI            bool     `form:"use_ai"`
}

func (r recommendReq) validate() error { return nil }

func (r recommendReq) toInput() pto.RecommendInput {
	return pto.RecommendInput{
		EmployeeID:       r.EmployeeID,
		DesiredLenDays:   r.DesiredLenDays,
		HorizonDays:      r.HorizonDays,
		MaxCoverageRatio: r.MaxCoverageRatio,
		TopK:             r.TopK,
		UseAI:            r.UseAI,
	}
}

type icsReq struct {
	EmployeeID  string `form:"employee_id"  binding:"required"`
	WindowStart string `form:"window_start"`
	WindowEnd   string `form:"window_end"`

	start time.Time
	end   time.Time
}

func (r *icsReq) validate() error {
	if r.WindowStart == "" && r.WindowEnd != "" {
		return errors.New("window_start is required when window_end is set")
	}
	if r.WindowStart != "" {
		t, err := time.Parse(response.DateFormat, r.WindowStart)
		if err != nil {
			return errors.New("window_start must be YYYY-MM-DD")
		}
		r.start = t
	}
	if r.WindowEnd != "" {
		t, err := time.Parse(response.DateFormat, r.WindowEnd)
		if err != nil {
			return errors.New("window_end must be YYYY-MM-DD")
		}
		r.end = t
	}
	return nil
}

func (r icsReq) toInput() pto.ExportICSInput {
	return pto.ExportICSInput{
		EmployeeID:  r.EmployeeID,
		WindowStart: r.start,
		WindowEnd:   r.end,
	}
}

// --- Response DTOs ---

type balanceResp struct {
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	AccrualDays float64 `json:"accrual_days"`
}

func (h *handler) newBalanceResp(out pto.BalanceOutput) balanceResp {
	return balanceResp{
		EmployeeID:  out.Employee.ID,
		Name:        out.Employee.Name,
		AccrualDays: out.Employee.AccrualDays,
	}
}

type windowResp struct {
	EmployeeID    string        `json:"employee_id"`
	WindowStart   response.Date `json:"window_start"`
	WindowEnd     response.Date `json:"window_end"`
	Reason        string        `json:"reason"`
	CoverageRatio float64       `json:"coverage_ratio"`
	AIModel       string        `json:"ai_model,omitempty"`
}

type recommendResp struct {
	EmployeeID     string       `json:"employee_id"`
	ExceedsBalance bool         `json:"exceeds_balance"`
	Windows        []windowResp `json:"windows"`
}

func (h *handler) newRecommendResp(out pto.RecommendOutput) recommendResp {
	windows := make([]windowResp, len(out.Windows))
	for i, w := range out.Windows {
		windows[i] = windowResp{
			EmployeeID:    out.Employee.ID,
			WindowStart:   response.Date(w.Start),
			WindowEnd:     response.Date(w.End),
			Reason:        w.Reason,
			CoverageRatio: w.CoverageRatio,
			AIModel:       w.AIModel,
		}
	}
	return recommendResp{
		EmployeeID:     out.Employee.ID,
		ExceedsBalance: out.ExceedsBalance,
		Windows:        windows,
	}
}

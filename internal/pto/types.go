package pto

import (
	"time"

	"smart-pto/internal/model"
)

const (
	DefaultDesiredLenDays   = 3
	MinDesiredLenDays       = 1
	MaxDesiredLenDays       = 14
	DefaultHorizonDays      = 60
	MinHorizonDays          = 7
	MaxHorizonDays          = 90
	DefaultMaxCoverageRatio = 0.3
	DefaultTopK             = 5

	// LeadDays is how far from today the first candidate window starts.
	LeadDays = 7
)

// Window is a candidate PTO window. Start and End are inclusive dates.
type Window struct {
	Start         time.Time
	End           time.Time
	CoverageRatio float64
	Reason        string
	AIModel       string // Set when an LLM picked this window
}

// --- UseCase Inputs ---

// RecommendInput zero values select the defaults.
type RecommendInput struct {
	EmployeeID       string
	DesiredLenDays   int
	HorizonDays      int
	MaxCoverageRatio *float64
	TopK             int
	UseAI            bool
}

type ExportICSInput struct {
	EmployeeID  string
	WindowStart time.Time
	WindowEnd   time.Time
}

// --- UseCase Outputs ---

type BalanceOutput struct {
	Employee model.Employee
}

type RecommendOutput struct {
	Employee       model.Employee
	Windows        []Window
	ExceedsBalance bool // Desired length is above the accrued days
}

type ExportICSOutput struct {
	FileName string
	Content  string
}

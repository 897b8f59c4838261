package pto

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidDesiredLen = errors.New("desired_len_days must be between 1 and 14")
	ErrInvalidHorizon    = errors.New("horizon_days must be between 7 and 90")
	ErrInvalidCoverage   = errors.New("max_coverage_ratio must be between 0 and 1")
	ErrInvalidWindow     = errors.New("window_end must not be before window_start")
	ErrNoWindowAvailable = errors.New("no PTO window fits the coverage constraint")
)

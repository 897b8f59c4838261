package usecase

import (
	"time"

	"smart-pto/internal/pto"
	"smart-pto/internal/pto/repository"
	"smart-pto/pkg/gemini"
	"smart-pto/pkg/log"
)

// implUseCase is the private implementation of pto.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	llm  gemini.IGemini // nil disables AI window picking
	loc  *time.Location
	now  func() time.Time
}

// New creates a new PTO UseCase. loc decides what "today" is.
func New(l log.Logger, repo repository.Repository, llm gemini.IGemini, loc *time.Location) pto.UseCase {
	return newUseCase(l, repo, llm, loc, time.Now)
}

func newUseCase(l log.Logger, repo repository.Repository, llm gemini.IGemini, loc *time.Location, now func() time.Time) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		llm:  llm,
		loc:  loc,
		now:  now,
	}
}

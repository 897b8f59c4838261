package http

import (
	"smart-pto/internal/suggestion"
	"smart-pto/pkg/log"
)

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the mailbox suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

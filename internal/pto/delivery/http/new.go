package http

import (
	"smart-pto/internal/pto"
	"smart-pto/pkg/log"
)

type handler struct {
	l  log.Logger
	uc pto.UseCase
}

// New creates a new HTTP handler for the PTO domain.
func New(l log.Logger, uc pto.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

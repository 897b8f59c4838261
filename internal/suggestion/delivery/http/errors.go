package http

import (
	"errors"
	"net/http"

	"smart-pto/internal/suggestion"
	pkgErrors "smart-pto/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrMailUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, suggestion.ErrMailUnavailable.Error())
	case errors.Is(err, suggestion.ErrListMessages):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, suggestion.ErrListMessages.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"smart-pto/internal/pto"
	pkgErrors "smart-pto/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, pto.ErrEmployeeNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, pto.ErrInvalidDesiredLen),
		errors.Is(err, pto.ErrInvalidHorizon),
		errors.Is(err, pto.ErrInvalidCoverage),
		errors.Is(err, pto.ErrInvalidWindow):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, pto.ErrNoWindowAvailable):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package api

import (
	"errors"
	"net/http"

	"FinAdvisor/internal/domain/models"
	xhttp "FinAdvisor/pkg/http"
)

// toAppError maps domain failures onto HTTP application errors.
func toAppError(err error) *xhttp.AppError {
	var appErr *xhttp.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, models.ErrInvalidRange):
		return xhttp.NewAppError("ERR_INVALID_RANGE", "start", "Start date must be on or before end date.", http.StatusBadRequest).WithError(err)
	case errors.Is(err, models.ErrInsufficientHistory):
		return xhttp.NewAppError("ERR_INSUFFICIENT_HISTORY", "window", "Not enough price history for the selected moving-average window.", http.StatusUnprocessableEntity).WithError(err)
	case errors.Is(err, models.ErrDataUnavailable):
		return xhttp.NewAppError("ERR_DATA_UNAVAILABLE", "ticker", "Could not fetch data. Check the ticker symbol and date range.", http.StatusBadGateway).WithError(err)
	default:
		return xhttp.InternalError("Something went wrong").WithError(err)
	}
}

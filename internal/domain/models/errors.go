package models

import "errors"

var (
	// ErrDataUnavailable covers invalid tickers, provider/network failures and empty ranges.
	ErrDataUnavailable = errors.New("price data unavailable")
	// ErrInsufficientHistory is returned when the series is too short for the window.
	ErrInsufficientHistory = errors.New("insufficient price history")
	// ErrRateUnavailable is returned when no exchange rate could be obtained.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrInvalidRange is returned when start is after end.
	ErrInvalidRange = errors.New("invalid date range")
)

package errors

import "net/http"

var (
	ErrInvalidLocation = New(
		"INVALID_LOCATION",
		"Coordinates must be finite numbers within valid latitude/longitude ranges",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Category must be one of: Plastic, Chemical, Oil, Sewage",
		http.StatusBadRequest,
	)

	ErrMetricNotFound = New(
		"METRIC_NOT_FOUND",
		"Pollution metric not found",
		http.StatusNotFound,
	)

	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Pollution report not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

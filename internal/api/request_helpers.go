package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tradepost/market-api/internal/api/shared"
)

// getPathID extracts a positive integer ID from the URL path parameters.
// Failures are field validation errors on the parameter, reported before
// any service call is made.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, shared.NewFieldValidationError(paramName, "is required")
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.NewFieldValidationError(paramName, "must be a positive integer")
	}

	return id, nil
}

// getQueryID extracts an optional positive integer from a query parameter.
// Returns (nil, nil) when the parameter is absent.
func getQueryID(r *http.Request, paramName string) (*int64, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, shared.NewFieldValidationError(paramName, "must be a positive integer")
	}

	return &id, nil
}

// dateLayouts are the accepted wire formats for price dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate coerces a date string in RFC 3339 or calendar-date form.
func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, shared.NewFieldValidationError("date", "must be a valid date")
}

package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tradepost/market-api/internal/platform/logger"
)

// ErrorResponse defines the standard error response structure. Every error
// the API returns, including 500s, carries a stable machine-readable Code
// distinct from the human message so clients can branch without parsing
// prose.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	TraceID string `json:"trace_id,omitempty"`

	// Details lists every violating field for validation failures.
	Details []FieldViolation `json:"details,omitempty"`

	// Detail carries diagnostic error text. It is only populated for
	// internal errors when the server runs in development mode.
	Detail string `json:"detail,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
// The payload is serialized directly with no wrapper.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithNoContent writes an empty 204 response.
func RespondWithNoContent(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondWithError writes a JSON error response with the given status code,
// machine-readable code string, and message. It also sets the TraceID from
// the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	RespondWithErrorResponse(w, r, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// RespondWithErrorResponse writes a fully populated error envelope,
// filling in the trace ID and logging the response through the
// request-scoped logger. 5xx responses are logged at ERROR level,
// everything else at DEBUG.
func RespondWithErrorResponse(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	resp ErrorResponse,
) {
	resp.TraceID = GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	log := logger.FromContext(r.Context())
	log.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", status),
		slog.String("code", resp.Code),
		slog.String("message", resp.Error),
		slog.String("trace_id", resp.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, resp)
}

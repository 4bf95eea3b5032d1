package api

import (
	"errors"
	"net/http"

	"github.com/tradepost/market-api/internal/api/shared"
	"github.com/tradepost/market-api/internal/domain"
	"github.com/tradepost/market-api/internal/service"
	"github.com/tradepost/market-api/internal/store"
)

// Stable machine-readable error codes. Clients branch on these, never on
// the human message.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeValueTooLong     = "VALUE_TOO_LONG"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

// ClassifyError maps any error from the validation, service, or store
// layers onto an HTTP status, a stable code, a safe message, and, for
// validation failures, the list of field violations. Matching is ordered:
// validation failures win over store classifications, and anything
// unrecognized is an internal error.
func ClassifyError(err error) (int, shared.ErrorResponse) {
	var fieldErr *shared.FieldValidationError
	var typeErr *service.InvalidTypeIDError

	switch {
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error:   "validation failed",
			Code:    CodeValidation,
			Details: fieldErr.Violations,
		}

	case errors.As(err, &typeErr):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error: "validation failed",
			Code:  CodeValidation,
			Details: []shared.FieldViolation{
				{Field: "type", Message: typeErr.Error()},
			},
		}

	case errors.Is(err, service.ErrEmptyUpdate):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error: "at least one field must be provided for update",
			Code:  CodeValidation,
		}

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error:   "validation failed",
			Code:    CodeValidation,
			Details: domainViolations(err),
		}

	case store.IsNotFoundError(err):
		return http.StatusNotFound, shared.ErrorResponse{
			Error: notFoundMessage(err),
			Code:  CodeNotFound,
		}

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict, shared.ErrorResponse{
			Error: "resource already exists",
			Code:  CodeAlreadyExists,
		}

	case errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error: "referenced resource does not exist",
			Code:  CodeInvalidReference,
		}

	case errors.Is(err, store.ErrValueTooLong):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error: "value too long for field",
			Code:  CodeValueTooLong,
		}

	case errors.Is(err, store.ErrStoreFailure):
		return http.StatusBadRequest, shared.ErrorResponse{
			Error: "database error",
			Code:  CodeDatabaseError,
		}

	default:
		return http.StatusInternalServerError, shared.ErrorResponse{
			Error: "an unexpected error occurred",
			Code:  CodeInternal,
		}
	}
}

// domainViolations maps an entity-level validation sentinel to the wire
// field it concerns. Entity checks mirror the request-level rules, so these
// only fire on inputs the tag validation cannot see, like a date string
// that parses to the zero time.
func domainViolations(err error) []shared.FieldViolation {
	known := []struct {
		sentinel error
		field    string
		message  string
	}{
		{domain.ErrEmptyItemName, "name", "must not be empty"},
		{domain.ErrInvalidItemTypeID, "type", "must be a positive integer"},
		{domain.ErrEmptyItemTypeName, "name", "must not be empty"},
		{domain.ErrInvalidPriceItemID, "itemId", "must be a positive integer"},
		{domain.ErrNonPositivePrice, "price", "must be a positive integer"},
		{domain.ErrZeroPriceDate, "date", "must be a valid date"},
	}

	for _, k := range known {
		if errors.Is(err, k.sentinel) {
			return []shared.FieldViolation{{Field: k.field, Message: k.message}}
		}
	}
	return nil
}

// notFoundMessage names the missing entity when the error identifies it.
func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrItemNotFound):
		return "item not found"
	case errors.Is(err, store.ErrItemTypeNotFound):
		return "item type not found"
	case errors.Is(err, store.ErrItemPriceNotFound):
		return "item price not found"
	default:
		return "resource not found"
	}
}

// NotFound handles requests for paths no route matches, so unknown paths
// get the same error envelope as everything else.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, CodeNotFound, "resource not found")
}

// MethodNotAllowed handles requests using an unsupported method on a known
// route.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
}

// HandleError classifies err and writes the error envelope. When
// includeDetail is set (development mode) internal errors carry the raw
// error text in the detail field; production responses never do.
func HandleError(w http.ResponseWriter, r *http.Request, err error, includeDetail bool) {
	status, resp := ClassifyError(err)

	if status == http.StatusInternalServerError && includeDetail && err != nil {
		resp.Detail = err.Error()
	}

	shared.RespondWithErrorResponse(w, r, status, resp)
}

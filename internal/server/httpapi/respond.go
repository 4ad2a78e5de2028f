package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/mealplanner/internal/common"
	"github.com/dmitrijs2005/mealplanner/internal/logging"
)

type errorPayload struct {
	Error string `json:"error"`
}

// JSONResponse writes v as a JSON body with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// ErrorResponse maps a service error to an HTTP status and writes a JSON
// error body. The mapping lives here so every handler reports the same way:
// validation, duplicate and bad-credential errors are client faults (400),
// a bad token is 401, a missing or foreign row is 404, everything else is a
// 500 with a generic message so internals do not leak to clients.
func ErrorResponse(ctx context.Context, w http.ResponseWriter, log logging.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorInvalidCredentials):
		JSONResponse(w, http.StatusBadRequest, errorPayload{Error: err.Error()})
	case errors.Is(err, common.ErrorInvalidToken):
		JSONResponse(w, http.StatusUnauthorized, errorPayload{Error: err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		JSONResponse(w, http.StatusNotFound, errorPayload{Error: err.Error()})
	default:
		log.Error(ctx, "request failed", "error", err)
		JSONResponse(w, http.StatusInternalServerError, errorPayload{Error: "internal server error"})
	}
}

// decodeJSON parses the request body into v, reporting malformed input as a
// validation error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrorValidation
	}
	return nil
}

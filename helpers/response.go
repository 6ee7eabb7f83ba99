package helpers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"premadehub_server/services"
)

// WriteJSONResponse writes a JSON payload with the given status code
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteErrorResponse maps a service error onto an HTTP status code and
// writes it as a JSON error body. Unknown errors become 500s without
// leaking internals.
func WriteErrorResponse(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrInvitationNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrProfileNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrTeamFull),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrDuplicateRequest):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		statusCode = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrInvalidTeamType),
		errors.Is(err, services.ErrInvalidPrivacy):
		statusCode = http.StatusBadRequest
		message = err.Error()
	default:
		log.Printf("Unhandled service error: %v", err)
	}

	WriteJSONResponse(w, statusCode, map[string]string{"error": message})
}

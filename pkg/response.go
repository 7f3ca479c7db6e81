package pkg

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Fields is the body of a success envelope. Keys are merged next to
// "success", e.g. {"success": true, "projects": [...]}.
type Fields map[string]any

// JSON writes a success envelope.
func JSON(w http.ResponseWriter, status int, body Fields) {
	if body == nil {
		body = Fields{}
	}
	body["success"] = true
	write(w, status, body)
}

// Message writes a success envelope carrying only a message.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Fields{"message": message})
}

// Error writes a failure envelope for err. Domain errors keep their own
// message; anything else is logged and answered with fallback.
func Error(w http.ResponseWriter, err error, fallback string) {
	status := mapErrorToStatus(err)

	message, ok := PublicMessage(err)
	if !ok || status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
		if !ok {
			message = fallback
		}
	}

	ErrorWithMessage(w, status, message)
}

// ErrorWithMessage writes a failure envelope with an explicit status.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	write(w, status, Fields{
		"success": false,
		"message": message,
	})
}

// WriteRaw writes v as JSON without the envelope.
func WriteRaw(w http.ResponseWriter, status int, v any) {
	write(w, status, v)
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// mapErrorToStatus maps error kinds to status codes. Conflicts share 400
// with validation failures.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

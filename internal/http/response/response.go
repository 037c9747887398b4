package response

import (
	"encoding/json"
	"net/http"

	"github.com/phungtienthanh/portfolio-api/pkg/logger"
)

// Envelope is the JSON body shared by every contact API response.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes an arbitrary JSON payload with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// Success writes a 200 success envelope.
func Success(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// Error writes a failure envelope with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Envelope{Success: false, Error: message})
}

// ErrorWithDetails writes a failure envelope carrying per-field details.
func ErrorWithDetails(w http.ResponseWriter, statusCode int, message string, details map[string]string) {
	WriteJSON(w, statusCode, Envelope{Success: false, Error: message, Details: details})
}

package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response represents a standard API response
type Response struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	Data      any                 `json:"data,omitempty"`
	Error     string              `json:"error,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
}

// JSON writes a JSON response
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := Response{
		Success:   statusCode < 400,
		Data:      data,
		Timestamp: time.Now(),
	}

	json.NewEncoder(w).Encode(response)
}

// Error writes an error JSON response
func Error(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := Response{
		Success:   false,
		Error:     message,
		Timestamp: time.Now(),
	}

	json.NewEncoder(w).Encode(response)
}

// ValidationError writes a 400 response carrying field-keyed messages so the
// caller can attribute the failure to a specific input.
func ValidationError(w http.ResponseWriter, errors map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	response := Response{
		Success:   false,
		Error:     "validation failed",
		Errors:    errors,
		Timestamp: time.Now(),
	}

	json.NewEncoder(w).Encode(response)
}

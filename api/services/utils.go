package services

import (
	"encoding/json"
	"net/http"

	"github.com/twotier/twotier-services/models"
)

// WriteErrResponse writes a JSON response with a specific status code
func WriteErrResponse(w http.ResponseWriter, statusCode int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleErrResponse converts an error into the JSON error envelope
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	response := models.Response{
		Success:      0,
		ErrorDetails: err.Error(),
	}

	WriteErrResponse(w, statusCode, response)
}

func HandleSuccessResponse(w http.ResponseWriter, statusCode int, headers map[string]string, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	for key, value := range headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

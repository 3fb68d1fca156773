// Package response writes the backend's JSON wire format.
//
// Success bodies are the bare entity (or array); error bodies are
// {"message": "..."} — the shape the apparel frontend consumes.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusOK, data)
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data interface{}) {
	write(w, http.StatusCreated, data)
}

// NoContent sends a 204 with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Empty sends a 200 with no body. Used for point-lookup read misses:
// absence is data, not an error.
func Empty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

// Error sends a JSON error response with a human-readable message.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"message": message})
}

// BadRequest sends a 400 with a message.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound sends a 404 with a message.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// ValidationErrors sends a 400 with the first field-level error message.
// Field order is not deterministic; any failing rule is a valid message.
func ValidationErrors(w http.ResponseWriter, errs map[string]string) {
	for _, msg := range errs {
		BadRequest(w, msg)
		return
	}
	BadRequest(w, "validation failed")
}

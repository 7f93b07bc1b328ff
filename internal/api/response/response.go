package response

import (
	"encoding/json"
	"net/http"
)

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Message sends a `{"message": ...}` body with the given status
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// OK sends a 200 OK response with data
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Created sends a 201 Created response with data
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, data)
}

// BadRequest sends a 400 Bad Request message
func BadRequest(w http.ResponseWriter, message string) {
	Message(w, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized message
func Unauthorized(w http.ResponseWriter, message string) {
	Message(w, http.StatusUnauthorized, message)
}

// NotFound sends a 404 Not Found message
func NotFound(w http.ResponseWriter, message string) {
	Message(w, http.StatusNotFound, message)
}

// InternalError sends a 500 with a generic message; details belong in logs
func InternalError(w http.ResponseWriter) {
	Message(w, http.StatusInternalServerError, "Server error")
}

// Package httpjson writes JSON responses for the HTTP API.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the shape of every JSON error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// Write encodes v as the response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": message} with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	Write(w, status, ErrorBody{Error: message})
}

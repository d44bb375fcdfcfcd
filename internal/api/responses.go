package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Error is an error carrying the HTTP status to answer with.
type Error interface {
	error
	StatusCode() int
}

type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }
func (badRequestError) StatusCode() int { return http.StatusBadRequest }

type notFoundError struct{ msg string }

func (e notFoundError) Error() string { return e.msg }
func (notFoundError) StatusCode() int { return http.StatusNotFound }

type unavailableError struct{ msg string }

func (e unavailableError) Error() string { return e.msg }
func (unavailableError) StatusCode() int { return http.StatusServiceUnavailable }

func writeJSON(w http.ResponseWriter, code int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck // client may have gone away
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Status: "ok", Data: data})
}

// writeError answers with the status of an api Error, or 500 and a generic
// message for anything else.
func writeError(w http.ResponseWriter, err error) {
	var apiErr Error
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.StatusCode(), Envelope{Status: "error", Message: apiErr.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, Envelope{Status: "error", Message: "internal server error"})
}

// Package utils provides utility functions and helpers for the application:
// the domain error types, JSON request decoding and validation, response
// writing, and logging helpers.
//
// Responses follow a fixed contract: successful operations return a JSON
// body keyed by resource name (or no body at all), and every error response
// is {"msg": "<string>"}.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"newsboard/internal/constants"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// JSON sends a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(data)
	if err != nil {
		// If marshaling fails, log the error and send a simple error response
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		if _, err := w.Write([]byte(`{"msg":"An internal server error occurred"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// Error sends an error response with the given status code and message.
func Error(w http.ResponseWriter, statusCode int, msg string) {
	JSON(w, statusCode, ErrorResponse{Msg: msg})
}

// ErrorFromAppError sends an error response based on an AppError, logging
// the 500-class fallthrough since its cause is hidden from the client.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	if err.StatusCode >= http.StatusInternalServerError {
		log.Error().Err(err.Err).Str("message", err.Message).Msg("Internal server error")
	}
	Error(w, err.StatusCode, err.Message)
}

// NoContent sends a 204 No Content response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BadRequest sends a 400 Bad Request response with the generic message.
func BadRequest(w http.ResponseWriter) {
	Error(w, http.StatusBadRequest, constants.MsgBadRequest)
}

// NotFound sends a 404 Not Found response with the given message.
func NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = constants.MsgNotFound
	}
	Error(w, http.StatusNotFound, msg)
}

// InternalServerError sends a 500 Internal Server Error response.
// The error is logged but not exposed to the client.
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	Error(w, http.StatusInternalServerError, constants.MsgInternalServerError)
}

// Package utils provides small helpers shared by the transport layer:
// JSON request decoding, JSON response writing and trace id generation.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTrailingJSONData is returned by [DecodeJSON] when the body holds more
// than one JSON value.
var ErrTrailingJSONData = errors.New("unexpected data after JSON value")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, page, http.StatusOK)
//	WriteJSON(w, errorResponse, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes exactly one JSON value from body into dst.
func DecodeJSON(body io.Reader, dst any) error {
	if body == nil {
		return io.EOF
	}

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		return err
	}

	if decoder.More() {
		return ErrTrailingJSONData
	}
	return nil
}

package models

import "time"

// ErrorResponse is the JSON body returned by the HTTP layer for every
// failed request.
type ErrorResponse struct {
	// Timestamp is the moment the error was produced, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// Status is the HTTP status code of the response.
	Status int `json:"status"`

	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Path is the request path that failed.
	Path string `json:"path"`
}

// FieldMessage describes a single invalid input field.
type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// ValidationErrorResponse is the JSON body returned when request input
// fails validation. It lists every offending field.
type ValidationErrorResponse struct {
	ErrorResponse

	Errors []FieldMessage `json:"errors"`
}

// AddError appends a field message to the response.
func (v *ValidationErrorResponse) AddError(fieldName, message string) {
	v.Errors = append(v.Errors, FieldMessage{FieldName: fieldName, Message: message})
}

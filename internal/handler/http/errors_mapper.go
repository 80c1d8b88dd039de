package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/service"
	"github.com/MKhiriev/crud-clients/internal/store"
	"github.com/MKhiriev/crud-clients/internal/utils"
	"github.com/MKhiriev/crud-clients/internal/validators"
	"github.com/MKhiriev/crud-clients/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order with [errors.Is]; the first hit wins.
// Deadline errors come first because store errors may wrap them.
var errorStatuses = []errorStatus{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrClientNotFound, http.StatusNotFound},
	{service.ErrIntegrityViolation, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity},
	{service.ErrInvalidSortProperty, http.StatusBadRequest},

	{ErrInvalidClientID, http.StatusBadRequest},
	{ErrInvalidJSONBody, http.StatusBadRequest},
	{ErrInvalidPageParameter, http.StatusBadRequest},
	{ErrInvalidSortParameter, http.StatusBadRequest},
	{ErrRouteNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}

	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the JSON error body. Validation failures list
// every offending field; server-side failures hide the error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     err.Error(),
		Path:      r.URL.Path,
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("request failed")
		response.Error = http.StatusText(status)
	}

	var body any = response
	if status == http.StatusUnprocessableEntity {
		validationResponse := models.ValidationErrorResponse{
			ErrorResponse: response,
			Errors:        []models.FieldMessage{},
		}
		validationResponse.Error = service.ErrInvalidDataProvided.Error()
		for _, fieldErr := range validators.FieldErrors(err) {
			validationResponse.AddError(fieldErr.Field, fieldErr.Err.Error())
		}
		body = validationResponse
	}

	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Str("func", "writeError").Msg("error writing error response")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/mock"
	"github.com/MKhiriev/crud-clients/internal/service"
	"github.com/MKhiriev/crud-clients/internal/store"
	"github.com/MKhiriev/crud-clients/internal/validators"
	"github.com/MKhiriev/crud-clients/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router on top of a gomock ClientService.
func newTestRouter(t *testing.T) (http.Handler, *mock.MockClientService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockClientService(ctrl)

	h := NewHandler(&service.Services{ClientService: svc}, 0, logger.Nop())
	return h.Init(), svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ValidationErrorResponse {
	t.Helper()
	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var maria = models.ClientView{
	ID:        1,
	Name:      "Maria Silva",
	CPF:       "12345678901",
	Income:    6500.5,
	Children:  2,
	BirthDate: models.NewDate(1994, 7, 20),
}

const mariaJSON = `{"name":"Maria Silva","cpf":"12345678901","income":6500.5,"children":2,"birthDate":"1994-07-20"}`

// ─────────────────────────────────────────────
// GET /clients
// ─────────────────────────────────────────────

func TestFindAllClients_DefaultPageRequest(t *testing.T) {
	router, svc := newTestRouter(t)

	want := models.PageRequest{Page: 0, Size: 20}
	page := models.NewPage([]models.ClientView{maria}, want, 1)
	svc.EXPECT().FindAll(gomock.Any(), want).Return(page, nil)

	rec := serve(router, http.MethodGet, "/clients", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.Page[models.ClientView]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, page, got)
}

func TestFindAllClients_ParsesPagingAndSort(t *testing.T) {
	router, svc := newTestRouter(t)

	want := models.PageRequest{
		Page: 2,
		Size: 5,
		Sort: []models.SortOrder{
			{Property: "name", Direction: models.Desc},
			{Property: "birthDate", Direction: models.Asc},
		},
	}
	svc.EXPECT().FindAll(gomock.Any(), want).Return(models.NewPage[models.ClientView](nil, want, 0), nil)

	rec := serve(router, http.MethodGet, "/clients?page=2&size=5&sort=name,desc&sort=birthDate", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFindAllClients_BadQueryParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non-integer page", query: "?page=one"},
		{name: "non-integer size", query: "?size=big"},
		{name: "unknown direction", query: "?sort=name,up"},
		{name: "empty sort property", query: "?sort=,asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodGet, "/clients"+tt.query, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, http.StatusBadRequest, resp.Status)
			assert.Equal(t, "/clients", resp.Path)
		})
	}
}

func TestFindAllClients_UnknownSortProperty(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().FindAll(gomock.Any(), gomock.Any()).
		Return(models.Page[models.ClientView]{}, fmt.Errorf("%w: %w", service.ErrInvalidSortProperty, store.ErrInvalidSortProperty))

	rec := serve(router, http.MethodGet, "/clients?sort=salary", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindAllClients_StoreFailureHidesDetails(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().FindAll(gomock.Any(), gomock.Any()).
		Return(models.Page[models.ClientView]{}, fmt.Errorf("%w: connection reset", store.ErrExecutingQuery))

	rec := serve(router, http.MethodGet, "/clients", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Error)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

// ─────────────────────────────────────────────
// GET /clients/{id}
// ─────────────────────────────────────────────

func TestFindClientByID(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(svc *mock.MockClientService)
		wantStatus int
	}{
		{
			name:   "found",
			target: "/clients/1",
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(maria, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing",
			target: "/clients/99999",
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().FindByID(gomock.Any(), int64(99999)).Return(models.ClientView{}, service.ErrClientNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			target:     "/clients/abc",
			setup:      func(*mock.MockClientService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero id",
			target:     "/clients/0",
			setup:      func(*mock.MockClientService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodGet, tt.target, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got models.ClientView
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, maria, got)
				return
			}
			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.target, resp.Path)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestFindClientByID_NotFoundMessage(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.EXPECT().FindByID(gomock.Any(), int64(7)).Return(models.ClientView{}, service.ErrClientNotFound)

	rec := serve(router, http.MethodGet, "/clients/7", "")

	assert.Equal(t, service.ErrClientNotFound.Error(), decodeErrorResponse(t, rec).Error)
}

// ─────────────────────────────────────────────
// POST /clients
// ─────────────────────────────────────────────

func TestInsertClient_Created(t *testing.T) {
	router, svc := newTestRouter(t)

	input := maria
	input.ID = 0
	svc.EXPECT().Insert(gomock.Any(), input).Return(maria, nil)

	rec := serve(router, http.MethodPost, "/clients", mariaJSON)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/clients/1", rec.Header().Get("Location"))

	var got models.ClientView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, maria, got)
}

func TestInsertClient_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"name":`},
		{name: "wrong type", body: `{"children":"two"}`},
		{name: "bad date", body: `{"birthDate":"20/07/1994"}`},
		{name: "two objects", body: mariaJSON + mariaJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodPost, "/clients", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInsertClient_ValidationErrorsListEveryField(t *testing.T) {
	router, svc := newTestRouter(t)

	validationErr := errors.Join(
		&validators.FieldError{Field: validators.FieldName, Err: validators.ErrNameRequired},
		&validators.FieldError{Field: validators.FieldIncome, Err: validators.ErrNegativeIncome},
	)
	svc.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(models.ClientView{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validationErr))

	rec := serve(router, http.MethodPost, "/clients", `{"name":"","income":-1}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, service.ErrInvalidDataProvided.Error(), resp.Error)
	assert.Equal(t, []models.FieldMessage{
		{FieldName: validators.FieldName, Message: validators.ErrNameRequired.Error()},
		{FieldName: validators.FieldIncome, Message: validators.ErrNegativeIncome.Error()},
	}, resp.Errors)
}

// ─────────────────────────────────────────────
// PUT /clients/{id}
// ─────────────────────────────────────────────

func TestUpdateClient(t *testing.T) {
	input := maria
	input.ID = 0

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(svc *mock.MockClientService)
		wantStatus int
	}{
		{
			name:   "updated",
			target: "/clients/1",
			body:   mariaJSON,
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().Update(gomock.Any(), int64(1), input).Return(maria, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "missing",
			target: "/clients/99999",
			body:   mariaJSON,
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().Update(gomock.Any(), int64(99999), input).Return(models.ClientView{}, service.ErrClientNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "invalid data",
			target: "/clients/1",
			body:   mariaJSON,
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().Update(gomock.Any(), int64(1), input).Return(models.ClientView{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "bad id",
			target:     "/clients/x",
			body:       mariaJSON,
			setup:      func(*mock.MockClientService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad body",
			target:     "/clients/1",
			body:       `[]`,
			setup:      func(*mock.MockClientService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// DELETE /clients/{id}
// ─────────────────────────────────────────────

func TestDeleteClient(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(svc *mock.MockClientService)
		wantStatus int
		wantError  string
	}{
		{
			name:   "deleted",
			target: "/clients/1",
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "missing",
			target: "/clients/5",
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().Delete(gomock.Any(), int64(5)).Return(service.ErrClientNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  service.ErrClientNotFound.Error(),
		},
		{
			name:   "referenced by other rows",
			target: "/clients/1",
			setup: func(svc *mock.MockClientService) {
				svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(service.ErrIntegrityViolation)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  service.ErrIntegrityViolation.Error(),
		},
		{
			name:       "bad id",
			target:     "/clients/-3",
			setup:      func(*mock.MockClientService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidClientID.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newTestRouter(t)
			tt.setup(svc)

			rec := serve(router, http.MethodDelete, tt.target, "")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError == "" {
				assert.Empty(t, rec.Body.String())
				return
			}
			assert.Equal(t, tt.wantError, decodeErrorResponse(t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// validation decorator in front of the router
// ─────────────────────────────────────────────

// newValidatedTestRouter wraps the mock with the production validation
// decorator, so rejected input must never reach the mock.
func newValidatedTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := mock.NewMockClientService(gomock.NewController(t))

	services := &service.Services{ClientService: service.NewClientValidationService().Wrap(svc)}
	return NewHandler(services, 0, logger.Nop()).Init()
}

func TestValidatedRoutes_RejectOutOfRangeInput(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		wantField string
	}{
		{
			name:      "page whose offset overflows",
			method:    http.MethodGet,
			target:    "/clients?page=922337203685477580&size=20",
			wantField: validators.FieldPage,
		},
		{
			name:      "cpf longer than the column",
			method:    http.MethodPost,
			target:    "/clients",
			body:      `{"name":"Maria","cpf":"123456789001234","income":1,"children":0,"birthDate":"1990-01-01"}`,
			wantField: validators.FieldCPF,
		},
		{
			name:      "income with three decimals",
			method:    http.MethodPut,
			target:    "/clients/1",
			body:      `{"name":"Maria","cpf":"12345678900","income":0.125,"children":0,"birthDate":"1990-01-01"}`,
			wantField: validators.FieldIncome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newValidatedTestRouter(t)

			rec := serve(router, tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decodeErrorResponse(t, rec)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, tt.wantField, resp.Errors[0].FieldName)
		})
	}
}

func TestInsertClient_BodyTooLarge(t *testing.T) {
	oversized := `{"name":"` + strings.Repeat("a", maxRequestBodyBytes) + `"}`

	tests := []struct {
		name       string
		compressed bool
	}{
		{name: "plain body"},
		{name: "gzip body", compressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			var body io.Reader = strings.NewReader(oversized)
			if tt.compressed {
				body = gzipBytes(t, []byte(oversized))
			}
			req := httptest.NewRequest(http.MethodPost, "/clients", body)
			if tt.compressed {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
			assert.Equal(t, http.StatusRequestEntityTooLarge, decodeErrorResponse(t, rec).Status)
		})
	}
}

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/utils"
	"github.com/MKhiriev/crud-clients/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) findAllClients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	pageRequest, err := parsePageRequest(r.URL.Query())
	if err != nil {
		log.Err(err).Str("func", "*Handler.findAllClients").Msg("invalid pagination parameters")
		writeError(w, r, err)
		return
	}

	page, err := h.clientService.FindAll(r.Context(), pageRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.findAllClients").Msg("error listing clients")
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, page, http.StatusOK)
}

func (h *Handler) findClientByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := parseClientID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.findClientByID").Msg("invalid client id")
		writeError(w, r, err)
		return
	}

	view, err := h.clientService.FindByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.findClientByID").Int64("id", id).Msg("error finding client")
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, view, http.StatusOK)
}

func (h *Handler) insertClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	view, err := decodeClientView(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.insertClient").Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	created, err := h.clientService.Insert(r.Context(), view)
	if err != nil {
		log.Err(err).Str("func", "*Handler.insertClient").Msg("error inserting client")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", clientsPath+"/"+strconv.FormatInt(created.ID, 10))
	h.writeResponse(w, r, created, http.StatusCreated)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := parseClientID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Msg("invalid client id")
		writeError(w, r, err)
		return
	}

	view, err := decodeClientView(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	updated, err := h.clientService.Update(r.Context(), id, view)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Int64("id", id).Msg("error updating client")
		writeError(w, r, err)
		return
	}

	h.writeResponse(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := parseClientID(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteClient").Msg("invalid client id")
		writeError(w, r, err)
		return
	}

	if err := h.clientService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteClient").Int64("id", id).Msg("error deleting client")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeResponse").Msg("error writing response")
	}
}

// decodeClientView reads a single client JSON object of at most
// maxRequestBodyBytes from the request body.
func decodeClientView(w http.ResponseWriter, r *http.Request) (models.ClientView, error) {
	var view models.ClientView
	if err := utils.DecodeJSON(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes), &view); err != nil {
		return models.ClientView{}, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	return view, nil
}

// parseClientID reads the {id} path parameter.
func parseClientID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClientID
	}
	return id, nil
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const clientsPath = "/clients"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(clientsPath, h.findAllClients)
	router.Post(clientsPath, h.insertClient)
	router.Get(clientsPath+"/{id}", h.findClientByID)
	router.Put(clientsPath+"/{id}", h.updateClient)
	router.Delete(clientsPath+"/{id}", h.deleteClient)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}

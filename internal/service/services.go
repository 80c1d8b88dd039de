package service

import (
	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/store"
)

type Services struct {
	ClientService ClientService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	clientService := NewClientService(storages.ClientRepository, storages.Transactor, logger)

	return &Services{
		ClientService: NewClientValidationService().Wrap(clientService),
	}
}

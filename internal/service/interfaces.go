package service

import (
	"context"

	"github.com/MKhiriev/crud-clients/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/crud-clients/internal/service ClientService

// ClientService is the use-case boundary for client records. Every method
// runs in its own transaction scope and speaks [models.ClientView] only.
type ClientService interface {
	FindByID(ctx context.Context, id int64) (models.ClientView, error)
	FindAll(ctx context.Context, request models.PageRequest) (models.Page[models.ClientView], error)
	Insert(ctx context.Context, view models.ClientView) (models.ClientView, error)
	Update(ctx context.Context, id int64, view models.ClientView) (models.ClientView, error)
	Delete(ctx context.Context, id int64) error
}

// ClientServiceWrapper defines middleware composition for ClientService.
// Implementations wrap an existing ClientService to add behavior such as
// logging or validating.
type ClientServiceWrapper interface {
	Wrap(ClientService) ClientService // returns a decorated ClientService applying additional behavior
}

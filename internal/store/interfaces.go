package store

import (
	"context"

	"github.com/MKhiriev/crud-clients/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientRepository is the low-level persistence contract for client records.
// Every method runs inside the transaction carried by ctx, if any.
type ClientRepository interface {
	// FindByID returns the client with the given id, or found=false when no
	// such row exists.
	FindByID(ctx context.Context, id int64) (client models.Client, found bool, err error)

	// FindAll returns one page of clients ordered by request.Sort.
	FindAll(ctx context.Context, request models.PageRequest) (models.Page[models.Client], error)

	// Save inserts client when its ID is zero and updates the existing row
	// otherwise. The stored row is returned.
	Save(ctx context.Context, client models.Client) (models.Client, error)

	// ExistsByID reports whether a client with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID removes the client with the given id. Removing an id that
	// does not exist is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// GetReferenceByID returns a handle for the client with the given id
	// without touching the database. Existence is checked when the handle
	// is saved.
	GetReferenceByID(ctx context.Context, id int64) (*models.Client, error)
}

// Transactor runs a unit of work inside a database transaction.
type Transactor interface {
	// WithinTransaction calls fn with a context bound to a transaction
	// chosen according to opts. The transaction is committed when fn
	// returns nil and rolled back when fn returns an error or panics.
	WithinTransaction(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

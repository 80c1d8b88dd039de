package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/internal/store"
	"github.com/MKhiriev/crud-clients/models"
)

var (
	readOnlyTx  = store.TxOptions{Propagation: store.PropagationRequired, ReadOnly: true}
	readWriteTx = store.TxOptions{Propagation: store.PropagationRequired}

	// deletes join a caller's transaction but never start one
	supportsTx = store.TxOptions{Propagation: store.PropagationSupports}
)

type clientService struct {
	clientRepository store.ClientRepository
	transactor       store.Transactor

	logger *logger.Logger
}

func NewClientService(clientRepository store.ClientRepository, transactor store.Transactor, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		transactor:       transactor,
		logger:           logger,
	}
}

func (c *clientService) FindByID(ctx context.Context, id int64) (models.ClientView, error) {
	log := logger.FromContext(ctx)

	var view models.ClientView
	err := c.transactor.WithinTransaction(ctx, readOnlyTx, func(ctx context.Context) error {
		client, found, err := c.clientRepository.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error finding client: %w", err)
		}
		if !found {
			return ErrClientNotFound
		}

		view = models.NewClientView(client)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientService.FindByID").Int64("id", id).Msg("error finding client")
		return models.ClientView{}, err
	}

	return view, nil
}

func (c *clientService) FindAll(ctx context.Context, request models.PageRequest) (models.Page[models.ClientView], error) {
	log := logger.FromContext(ctx)

	var page models.Page[models.ClientView]
	err := c.transactor.WithinTransaction(ctx, readOnlyTx, func(ctx context.Context) error {
		clients, err := c.clientRepository.FindAll(ctx, request)
		if err != nil {
			if errors.Is(err, store.ErrInvalidSortProperty) || errors.Is(err, store.ErrInvalidSortDirection) {
				return fmt.Errorf("%w: %w", ErrInvalidSortProperty, err)
			}
			return fmt.Errorf("error finding clients page: %w", err)
		}

		page = models.MapPage(clients, models.NewClientView)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientService.FindAll").Msg("error finding clients page")
		return models.Page[models.ClientView]{}, err
	}

	return page, nil
}

func (c *clientService) Insert(ctx context.Context, view models.ClientView) (models.ClientView, error) {
	log := logger.FromContext(ctx)

	var saved models.ClientView
	err := c.transactor.WithinTransaction(ctx, readWriteTx, func(ctx context.Context) error {
		// the view's id is never used for a new record
		client, err := c.clientRepository.Save(ctx, view.ToClient())
		if err != nil {
			return fmt.Errorf("error saving client: %w", err)
		}

		saved = models.NewClientView(client)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientService.Insert").Msg("error inserting client")
		return models.ClientView{}, err
	}

	log.Debug().Str("func", "*clientService.Insert").Int64("id", saved.ID).Msg("client inserted")
	return saved, nil
}

func (c *clientService) Update(ctx context.Context, id int64, view models.ClientView) (models.ClientView, error) {
	log := logger.FromContext(ctx)

	var saved models.ClientView
	err := c.transactor.WithinTransaction(ctx, readWriteTx, func(ctx context.Context) error {
		exists, err := c.clientRepository.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking client existence: %w", err)
		}
		if !exists {
			return ErrClientNotFound
		}

		client, err := c.clientRepository.GetReferenceByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error getting client reference: %w", err)
		}
		view.CopyTo(client)

		updated, err := c.clientRepository.Save(ctx, *client)
		if errors.Is(err, store.ErrClientNotFound) {
			return ErrClientNotFound
		}
		if err != nil {
			return fmt.Errorf("error saving client: %w", err)
		}

		saved = models.NewClientView(updated)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientService.Update").Int64("id", id).Msg("error updating client")
		return models.ClientView{}, err
	}

	return saved, nil
}

func (c *clientService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := c.transactor.WithinTransaction(ctx, supportsTx, func(ctx context.Context) error {
		exists, err := c.clientRepository.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking client existence: %w", err)
		}
		if !exists {
			return ErrClientNotFound
		}

		err = c.clientRepository.DeleteByID(ctx, id)
		if errors.Is(err, store.ErrIntegrityViolation) {
			// the driver error is logged by the repository and not passed on
			return ErrIntegrityViolation
		}
		if err != nil {
			return fmt.Errorf("error deleting client: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*clientService.Delete").Int64("id", id).Msg("error deleting client")
		return err
	}

	return nil
}

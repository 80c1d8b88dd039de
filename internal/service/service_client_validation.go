package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/crud-clients/internal/validators"
	"github.com/MKhiriev/crud-clients/models"
)

// ClientValidationService rejects malformed client input and page requests
// before they reach the wrapped [ClientService].
type ClientValidationService struct {
	inner     ClientService
	validator validators.Validator
}

func NewClientValidationService() ClientServiceWrapper {
	return &ClientValidationService{
		validator: validators.NewClientValidator(),
	}
}

func (v *ClientValidationService) FindByID(ctx context.Context, id int64) (models.ClientView, error) {
	return v.inner.FindByID(ctx, id)
}

func (v *ClientValidationService) FindAll(ctx context.Context, request models.PageRequest) (models.Page[models.ClientView], error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Page[models.ClientView]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.FindAll(ctx, request)
}

func (v *ClientValidationService) Insert(ctx context.Context, view models.ClientView) (models.ClientView, error) {
	if err := v.validator.Validate(ctx, view); err != nil {
		return models.ClientView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Insert(ctx, view)
}

func (v *ClientValidationService) Update(ctx context.Context, id int64, view models.ClientView) (models.ClientView, error) {
	if err := v.validator.Validate(ctx, view); err != nil {
		return models.ClientView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, view)
}

func (v *ClientValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *ClientValidationService) Wrap(wrapper ClientService) ClientService {
	v.inner = wrapper
	return v
}

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired       = errors.New("name is required")
	ErrCPFRequired        = errors.New("cpf is required")
	ErrNameTooLong        = errors.New("name must be at most 255 characters")
	ErrCPFTooLong         = errors.New("cpf must be at most 14 characters")
	ErrNegativeIncome     = errors.New("income must not be negative")
	ErrIncomeTooLarge     = errors.New("income must be less than 10000000000000")
	ErrIncomeScale        = errors.New("income must have at most 2 decimal places")
	ErrNegativeChildren   = errors.New("children must not be negative")
	ErrBirthDateInFuture  = errors.New("birth date must not be in the future")
	ErrInvalidPageNumber  = errors.New("page must be between 0 and 92233720368547758")
	ErrInvalidPageSize    = errors.New("size must be between 1 and 100")
	ErrEmptySortProperty  = errors.New("sort property must not be empty")
	ErrInvalidSortOrdinal = errors.New("sort direction must be ASC or DESC")
)

// FieldError ties a validation failure to the input field that caused it.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors extracts every [FieldError] contained in err, including the
// members of an errors.Join tree.
func FieldErrors(err error) []*FieldError {
	switch e := err.(type) {
	case nil:
		return nil
	case *FieldError:
		return []*FieldError{e}
	case interface{ Unwrap() []error }:
		var result []*FieldError
		for _, inner := range e.Unwrap() {
			result = append(result, FieldErrors(inner)...)
		}
		return result
	}

	return FieldErrors(errors.Unwrap(err))
}

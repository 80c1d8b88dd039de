package validators

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/crud-clients/models"
)

// Field names reported in [FieldError] and accepted for field-level scoping.
// They match the JSON names of [models.ClientView] and [models.PageRequest].
const (
	FieldName      = "name"
	FieldCPF       = "cpf"
	FieldIncome    = "income"
	FieldChildren  = "children"
	FieldBirthDate = "birthDate"

	FieldPage = "page"
	FieldSize = "size"
	FieldSort = "sort"
)

// MaxPageSize is the largest page size a client may request.
const MaxPageSize = 100

// MaxPage is the largest page index whose offset fits in an int at any
// accepted page size.
const MaxPage = math.MaxInt / MaxPageSize

// Column limits of the clients table. name and cpf are VARCHAR(255) and
// VARCHAR(14); income is NUMERIC(15,2).
const (
	MaxNameLength = 255
	MaxCPFLength  = 14
	MaxIncome     = 1e13
)

// incomeScaleTolerance absorbs binary float noise when checking for at most
// two decimal places.
const incomeScaleTolerance = 1e-6

var defaultClientFields = []string{FieldName, FieldCPF, FieldIncome, FieldChildren, FieldBirthDate}

var defaultPageFields = []string{FieldPage, FieldSize, FieldSort}

// ClientValidator implements [Validator] for client input and page requests.
// Unlike a fail-fast validator it collects every violation and returns them
// joined, so the caller can report all offending fields at once.
type ClientValidator struct {
	now func() time.Time
}

// NewClientValidator constructs a ClientValidator that uses the wall clock
// to reject birth dates in the future.
func NewClientValidator() Validator {
	return &ClientValidator{now: time.Now}
}

// Validate dispatches on the dynamic type of obj. Supported types:
//   - models.ClientView / *models.ClientView
//   - models.Client / *models.Client
//   - models.PageRequest / *models.PageRequest
func (v *ClientValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientView:
		return v.validateClientView(ctx, value, fields...)
	case *models.ClientView:
		return v.validateClientView(ctx, *value, fields...)

	case models.Client:
		return v.validateClientView(ctx, models.NewClientView(value), fields...)
	case *models.Client:
		return v.validateClientView(ctx, models.NewClientView(*value), fields...)

	case models.PageRequest:
		return v.validatePageRequest(ctx, value, fields...)
	case *models.PageRequest:
		return v.validatePageRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClientValidator) validateClientView(_ context.Context, view models.ClientView, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultClientFields
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(view.Name) == "" {
				errs = append(errs, &FieldError{Field: FieldName, Err: ErrNameRequired})
			} else if utf8.RuneCountInString(view.Name) > MaxNameLength {
				errs = append(errs, &FieldError{Field: FieldName, Err: ErrNameTooLong})
			}
		case FieldCPF:
			if strings.TrimSpace(view.CPF) == "" {
				errs = append(errs, &FieldError{Field: FieldCPF, Err: ErrCPFRequired})
			} else if utf8.RuneCountInString(view.CPF) > MaxCPFLength {
				errs = append(errs, &FieldError{Field: FieldCPF, Err: ErrCPFTooLong})
			}
		case FieldIncome:
			switch {
			case view.Income < 0:
				errs = append(errs, &FieldError{Field: FieldIncome, Err: ErrNegativeIncome})
			case math.IsNaN(view.Income) || view.Income >= MaxIncome:
				errs = append(errs, &FieldError{Field: FieldIncome, Err: ErrIncomeTooLarge})
			case !hasAtMostTwoDecimals(view.Income):
				errs = append(errs, &FieldError{Field: FieldIncome, Err: ErrIncomeScale})
			}
		case FieldChildren:
			if view.Children < 0 {
				errs = append(errs, &FieldError{Field: FieldChildren, Err: ErrNegativeChildren})
			}
		case FieldBirthDate:
			if !view.BirthDate.IsZero() && view.BirthDate.After(models.DateOf(v.now())) {
				errs = append(errs, &FieldError{Field: FieldBirthDate, Err: ErrBirthDateInFuture})
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func (v *ClientValidator) validatePageRequest(_ context.Context, request models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultPageFields
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldPage:
			if request.Page < 0 || request.Page > MaxPage {
				errs = append(errs, &FieldError{Field: FieldPage, Err: ErrInvalidPageNumber})
			}
		case FieldSize:
			if request.Size < 1 || request.Size > MaxPageSize {
				errs = append(errs, &FieldError{Field: FieldSize, Err: ErrInvalidPageSize})
			}
		case FieldSort:
			for _, order := range request.Sort {
				if strings.TrimSpace(order.Property) == "" {
					errs = append(errs, &FieldError{Field: FieldSort, Err: ErrEmptySortProperty})
				}
				switch models.Direction(strings.ToUpper(string(order.Direction))) {
				case "", models.Asc, models.Desc:
				default:
					errs = append(errs, &FieldError{Field: FieldSort, Err: ErrInvalidSortOrdinal})
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func hasAtMostTwoDecimals(value float64) bool {
	cents := value * 100
	return math.Abs(cents-math.Round(cents)) < incomeScaleTolerance
}

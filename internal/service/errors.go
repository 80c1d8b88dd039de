package service

import "errors"

var (
	ErrClientNotFound      = errors.New("client does not exist")
	ErrIntegrityViolation  = errors.New("referential integrity failure")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidSortProperty = errors.New("unsupported sort order")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while parsing a request, before the service layer
// is called. Callers can match against them with [errors.Is].
var (
	// ErrInvalidClientID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidClientID = errors.New("client id must be a positive integer")

	// ErrInvalidJSONBody is returned when the request body is not a single
	// well-formed client JSON object.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrInvalidPageParameter is returned when the page or size query
	// parameter is not an integer.
	ErrInvalidPageParameter = errors.New("page and size must be integers")

	// ErrInvalidSortParameter is returned when a sort query parameter is not
	// of the form "property" or "property,direction".
	ErrInvalidSortParameter = errors.New("sort must be in the form property[,asc|desc]")

	// ErrRouteNotFound is reported for paths that no route serves.
	ErrRouteNotFound = errors.New("resource not found")
)

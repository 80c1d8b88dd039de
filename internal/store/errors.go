package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientNotFound is returned when an update targets a client id that
	// has no row in the clients table.
	ErrClientNotFound = errors.New("client was not found")

	// ErrIntegrityViolation is returned when the database refuses a delete
	// because other rows still reference the client.
	ErrIntegrityViolation = errors.New("integrity constraint violation")

	// ErrInvalidSortProperty is returned when a page request asks to order
	// by a property that is not a sortable client column.
	ErrInvalidSortProperty = errors.New("invalid sort property")

	// ErrInvalidSortDirection is returned when a sort direction is neither
	// ASC nor DESC.
	ErrInvalidSortDirection = errors.New("invalid sort direction")

	// ErrUnsupportedDriver is returned by [NewDB] for a driver name it
	// cannot open.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan client rows")
)

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/crud-clients/internal/logger"
)

// Propagation decides how [Transactor.WithinTransaction] treats a caller
// that may already be running inside a transaction.
type Propagation int

const (
	// PropagationRequired joins the caller's transaction or begins a new one.
	PropagationRequired Propagation = iota

	// PropagationSupports joins the caller's transaction when there is one
	// and otherwise runs without a transaction.
	PropagationSupports
)

// TxOptions configures a transaction scope.
type TxOptions struct {
	Propagation Propagation

	// ReadOnly is passed to the driver when a new transaction is begun.
	// A joined transaction keeps the mode it was begun with.
	ReadOnly bool
}

type txKey struct{}

// executor is the subset of *sql.DB and *sql.Tx used by repositories.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// InTransaction reports whether ctx carries an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}

// executor returns the transaction carried by ctx, or the pool itself.
func (db *DB) executor(ctx context.Context) executor {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return db.DB
}

type transactor struct {
	db *DB
}

// NewTransactor returns a [Transactor] that begins transactions on db.
func NewTransactor(db *DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) WithinTransaction(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) || opts.Propagation == PropagationSupports {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: opts.ReadOnly})
	if err != nil {
		log.Err(err).Str("func", "*transactor.WithinTransaction").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*transactor.WithinTransaction").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*transactor.WithinTransaction").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

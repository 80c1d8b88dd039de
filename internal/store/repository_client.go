package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/crud-clients/internal/logger"
	"github.com/MKhiriev/crud-clients/models"
)

// clientRepository is the SQL-backed implementation of [ClientRepository].
// Statements are built with the dialect's squirrel builder and executed on
// the transaction carried by ctx, falling back to the pool.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by db.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.CPF,
		&client.Income,
		&client.Children,
		&client.BirthDate,
	)
	return client, err
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (models.Client, bool, error) {
	log := logger.FromContext(ctx).With().Str("func", "*clientRepository.FindByID").Int64("id", id).Logger()

	query, args, err := buildSelectClientByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Msg("error building query")
		return models.Client{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	client, err := scanClient(r.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("classification", r.db.errorClassificator.Classify(err).String()).Msg("error selecting client")
		return models.Client{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return client, true, nil
}

func (r *clientRepository) FindAll(ctx context.Context, request models.PageRequest) (models.Page[models.Client], error) {
	log := logger.FromContext(ctx).With().Str("func", "*clientRepository.FindAll").Logger()

	pageQuery, pageArgs, err := buildSelectClientsPageQuery(r.db.builder, request)
	if err != nil {
		log.Err(err).Msg("error building page query")
		if errors.Is(err, ErrInvalidSortProperty) || errors.Is(err, ErrInvalidSortDirection) {
			return models.Page[models.Client]{}, err
		}
		return models.Page[models.Client]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	countQuery, countArgs, err := buildCountClientsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Msg("error building count query")
		return models.Page[models.Client]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	exec := r.db.executor(ctx)

	var total int64
	if err = exec.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("error counting clients")
		return models.Page[models.Client]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if request.Size <= 0 {
		return models.NewPage[models.Client](nil, request, total), nil
	}

	rows, err := exec.QueryContext(ctx, pageQuery, pageArgs...)
	if err != nil {
		log.Err(err).Msg("error selecting clients page")
		return models.Page[models.Client]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0, request.Size)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			log.Err(err).Msg("error scanning client row")
			return models.Page[models.Client]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error iterating client rows")
		return models.Page[models.Client]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.NewPage(clients, request, total), nil
}

func (r *clientRepository) Save(ctx context.Context, client models.Client) (models.Client, error) {
	if client.ID == 0 {
		return r.insert(ctx, client)
	}
	return r.update(ctx, client)
}

func (r *clientRepository) insert(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx).With().Str("func", "*clientRepository.insert").Logger()

	query, args, err := buildInsertClientQuery(r.db.builder, client)
	if err != nil {
		log.Err(err).Msg("error building insert query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanClient(r.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("classification", r.db.errorClassificator.Classify(err).String()).Msg("error inserting client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int64("id", saved.ID).Msg("client inserted")
	return saved, nil
}

func (r *clientRepository) update(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx).With().Str("func", "*clientRepository.update").Int64("id", client.ID).Logger()

	query, args, err := buildUpdateClientQuery(r.db.builder, client)
	if err != nil {
		log.Err(err).Msg("error building update query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanClient(r.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Msg("no client row to update")
		return models.Client{}, ErrClientNotFound
	}
	if err != nil {
		log.Err(err).Str("classification", r.db.errorClassificator.Classify(err).String()).Msg("error updating client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

func (r *clientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx).With().Str("func", "*clientRepository.ExistsByID").Int64("id", id).Logger()

	query, args, err := buildExistsClientQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.executor(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Msg("error checking client existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *clientRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).With().Str("func", "*clientRepository.DeleteByID").Int64("id", id).Logger()

	query, args, err := buildDeleteClientQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.executor(ctx).ExecContext(ctx, query, args...); err != nil {
		classification := r.db.errorClassificator.Classify(err)
		log.Err(err).Str("classification", classification.String()).Msg("error deleting client")
		if classification == IntegrityViolation {
			return fmt.Errorf("%w: %w", ErrIntegrityViolation, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *clientRepository) GetReferenceByID(_ context.Context, id int64) (*models.Client, error) {
	return &models.Client{ID: id}, nil
}

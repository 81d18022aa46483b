package sessions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/internal/reviews"
	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/progress"
	"github.com/studynova/ingest/pkg/query"
	"github.com/studynova/ingest/pkg/repository"
)

const sessionColumns = `id, filename, board, class, subject, chapter, status, stage,
	stage_progress, overall_progress, message, total_records, review_id, storage_key,
	created_at, updated_at`

type repo struct {
	db         *sql.DB
	reviews    ReviewCreator
	logger     *slog.Logger
	pagination pagination.Config
}

// NewStore creates a session store backed by Postgres.
func NewStore(db *sql.DB, reviews ReviewCreator, logger *slog.Logger, pagination pagination.Config) Store {
	return &repo{
		db:         db,
		reviews:    reviews,
		logger:     logger.With("system", "sessions"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Session], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Chapter")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSession)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Session, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanSession)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}

func (r *repo) Create(ctx context.Context, s Session) (*Session, error) {
	q := fmt.Sprintf(`INSERT INTO sessions(id, filename, board, class, subject, chapter, status, stage, message, storage_key)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, sessionColumns)

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Session, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			s.ID, s.Filename,
			s.Metadata.Board, s.Metadata.Class, s.Metadata.Subject, s.Metadata.Chapter,
			s.Status, s.Stage, s.Message, s.StorageKey,
		}, scanSession)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("session created", "id", created.ID, "filename", created.Filename)
	return &created, nil
}

// Progress only applies while the session is processing and overall progress
// does not regress. A write that matches neither condition affects zero rows,
// which is not an error here.
func (r *repo) Progress(ctx context.Context, id uuid.UUID, stage progress.Stage, stageProgress, overall int, message string) error {
	q := `UPDATE sessions
		SET stage = $1, stage_progress = $2, overall_progress = $3, message = $4, updated_at = NOW()
		WHERE id = $5 AND status = $6 AND overall_progress <= $3`

	if _, err := r.db.ExecContext(ctx, q, stage, stageProgress, overall, message, id, StatusProcessing); err != nil {
		return fmt.Errorf("update session progress: %w", err)
	}
	return nil
}

func (r *repo) Complete(ctx context.Context, id uuid.UUID, records []content.Record, message string) (*Session, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`UPDATE sessions
		SET status = $1, stage = $2, stage_progress = 100, overall_progress = 100,
			message = $3, total_records = $4, review_id = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7
		RETURNING %s`, sessionColumns)

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Session, error) {
		review, err := r.reviews.CreateInTx(ctx, tx, reviews.CreateCommand{
			SessionID: id,
			Filename:  current.Filename,
			Metadata:  current.Metadata,
			Records:   records,
		})
		if err != nil {
			return Session{}, fmt.Errorf("create review: %w", err)
		}

		return repository.QueryOne(ctx, tx, q, []any{
			StatusCompleted, progress.StageFormatting, message, len(records), review.ID,
			id, StatusProcessing,
		}, scanSession)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrAlreadyFinished, ErrDuplicate)
	}

	r.logger.Info("session completed", "id", s.ID, "records", s.TotalRecords, "review_id", s.ReviewID)
	return &s, nil
}

func (r *repo) Fail(ctx context.Context, id uuid.UUID, message string) (*Session, error) {
	q := fmt.Sprintf(`UPDATE sessions
		SET status = $1, stage = $2, message = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING %s`, sessionColumns)

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Session, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			StatusFailed, progress.StageError, message, id, StatusProcessing,
		}, scanSession)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrAlreadyFinished, ErrDuplicate)
	}

	r.logger.Info("session failed", "id", s.ID, "message", message)
	return &s, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM sessions WHERE id = $1`
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("session deleted", "id", id)
	return nil
}

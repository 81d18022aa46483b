package reviews

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/solutions"
	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/query"
	"github.com/studynova/ingest/pkg/repository"
)

const reviewColumns = `id, session_id, filename, board, class, subject, chapter, qa_pairs,
	total_questions, status, version, processed_at, updated_at`

type repo struct {
	db         *sql.DB
	publisher  Publisher
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a review repository. Approved reviews publish through the
// supplied publisher inside the decision transaction.
func New(db *sql.DB, publisher Publisher, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		publisher:  publisher,
		logger:     logger.With("system", "reviews"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Review], error) {
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
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanReview)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Review, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	review, err := repository.QueryOne(ctx, r.db, q, args, scanReview)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &review, nil
}

func (r *repo) CreateInTx(ctx context.Context, tx *sql.Tx, cmd CreateCommand) (*Review, error) {
	pairs, err := json.Marshal(cmd.Records)
	if err != nil {
		return nil, fmt.Errorf("encode qa_pairs: %w", err)
	}

	q := fmt.Sprintf(`INSERT INTO reviews(id, session_id, filename, board, class, subject, chapter, qa_pairs, total_questions, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, reviewColumns)

	review, err := repository.QueryOne(ctx, tx, q, []any{
		uuid.New(), cmd.SessionID, cmd.Filename,
		cmd.Metadata.Board, cmd.Metadata.Class, cmd.Metadata.Subject, cmd.Metadata.Chapter,
		pairs, len(cmd.Records), StatusPending,
	}, scanReview)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("review created", "id", review.ID, "session_id", review.SessionID, "records", review.TotalQuestions)
	return &review, nil
}

func (r *repo) UpdateRecord(ctx context.Context, id uuid.UUID, index int, cmd UpdateRecordCommand) (*Review, error) {
	review, err := r.mutate(ctx, id, func(rv *Review) error {
		return rv.UpdateRecord(index, cmd.Question, cmd.Answer)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("record updated", "id", id, "index", index)
	return review, nil
}

func (r *repo) AddRecord(ctx context.Context, id uuid.UUID) (*Review, error) {
	review, err := r.mutate(ctx, id, func(rv *Review) error {
		rv.AddRecord()
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("record added", "id", id, "records", review.TotalQuestions)
	return review, nil
}

func (r *repo) RemoveRecord(ctx context.Context, id uuid.UUID, index int) (*Review, error) {
	review, err := r.mutate(ctx, id, func(rv *Review) error {
		return rv.RemoveRecord(index)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("record removed", "id", id, "index", index, "records", review.TotalQuestions)
	return review, nil
}

func (r *repo) Decide(ctx context.Context, id uuid.UUID, cmd DecideCommand) (*Decision, error) {
	var published *solutions.Solution

	decision, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Decision, error) {
		current, err := r.lock(ctx, tx, id)
		if err != nil {
			return Decision{}, err
		}

		if current.Version != cmd.Version {
			return Decision{}, ErrVersionConflict
		}

		d := Decision{ReviewID: id, Approved: cmd.Approved}

		if cmd.Approved {
			sol, err := r.publisher.PublishInTx(ctx, tx, solutions.PublishCommand{
				Filename: current.Filename,
				Metadata: current.Metadata,
				Records:  current.Records,
			})
			if err != nil {
				return Decision{}, fmt.Errorf("publish solution: %w", err)
			}
			published = sol
			d.SolutionID = sol.ID
		}

		if err := repository.ExecExpectOne(ctx, tx, `DELETE FROM reviews WHERE id = $1`, id); err != nil {
			return Decision{}, err
		}

		return d, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	// The artifact is recoverable from the committed row, so a storage
	// failure here does not undo the decision.
	if published != nil {
		if err := r.publisher.StoreArtifact(ctx, published); err != nil {
			r.logger.Error("artifact write failed", "solution_id", published.ID, "error", err)
		}
	}

	r.logger.Info("review decided", "id", id, "approved", decision.Approved, "solution_id", decision.SolutionID)
	return &decision, nil
}

// mutate applies fn to the locked review and persists the record set,
// bumping the version. One database write per committed change.
func (r *repo) mutate(ctx context.Context, id uuid.UUID, fn func(*Review) error) (*Review, error) {
	review, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Review, error) {
		current, err := r.lock(ctx, tx, id)
		if err != nil {
			return Review{}, err
		}

		if err := fn(&current); err != nil {
			return Review{}, err
		}

		pairs, err := json.Marshal(current.Records)
		if err != nil {
			return Review{}, fmt.Errorf("encode qa_pairs: %w", err)
		}

		q := fmt.Sprintf(`UPDATE reviews
			SET qa_pairs = $1, total_questions = $2, version = version + 1, updated_at = NOW()
			WHERE id = $3
			RETURNING %s`, reviewColumns)

		return repository.QueryOne(ctx, tx, q, []any{pairs, len(current.Records), id}, scanReview)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &review, nil
}

func (r *repo) lock(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Review, error) {
	q := fmt.Sprintf(`SELECT %s FROM reviews WHERE id = $1 FOR UPDATE`, reviewColumns)
	return repository.QueryOne(ctx, tx, q, []any{id}, scanReview)
}

package solutions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/internal/storage"
	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/query"
	"github.com/studynova/ingest/pkg/repository"
)

const solutionColumns = `id, filename, board, class, subject, chapter, qa_pairs,
	total_questions, tier, storage_key, approved_at`

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a solution repository with database and blob storage integration.
func New(db *sql.DB, storage storage.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		storage:    storage,
		logger:     logger.With("system", "solutions"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Solution], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Chapter", "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count solutions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSolution)
	if err != nil {
		return nil, fmt.Errorf("query solutions: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Solution, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	sol, err := repository.QueryOne(ctx, r.db, q, args, scanSolution)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &sol, nil
}

func (r *repo) Records(ctx context.Context, id string) ([]content.Record, error) {
	sol, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return sol.Records, nil
}

func (r *repo) PublishInTx(ctx context.Context, tx *sql.Tx, cmd PublishCommand) (*Solution, error) {
	if len(cmd.Records) == 0 {
		return nil, ErrNoRecords
	}

	id := cmd.Metadata.Slug()
	storageKey := fmt.Sprintf("solutions/%s.jsonl", id)

	pairs, err := json.Marshal(cmd.Records)
	if err != nil {
		return nil, fmt.Errorf("encode qa_pairs: %w", err)
	}

	q := fmt.Sprintf(`INSERT INTO solutions(id, filename, board, class, subject, chapter, qa_pairs, total_questions, tier, storage_key)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			filename = EXCLUDED.filename,
			qa_pairs = EXCLUDED.qa_pairs,
			total_questions = EXCLUDED.total_questions,
			storage_key = EXCLUDED.storage_key,
			approved_at = NOW()
		RETURNING %s`, solutionColumns)

	sol, err := repository.QueryOne(ctx, tx, q, []any{
		id, cmd.Filename,
		cmd.Metadata.Board, cmd.Metadata.Class, cmd.Metadata.Subject, cmd.Metadata.Chapter,
		pairs, len(cmd.Records), TierPro, storageKey,
	}, scanSolution)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("solution published", "id", sol.ID, "records", sol.TotalQuestions, "storage_key", storageKey)
	return &sol, nil
}

func (r *repo) StoreArtifact(ctx context.Context, sol *Solution) error {
	artifact, err := EncodeJSONL(sol.Metadata, sol.Records)
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}

	if err := r.storage.Store(ctx, sol.StorageKey, artifact); err != nil {
		return fmt.Errorf("store artifact: %w", err)
	}

	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	sol, err := r.Find(ctx, id)
	if err != nil {
		if err == ErrNotFound {
			return nil
		}
		return err
	}

	q := `DELETE FROM solutions WHERE id = $1`
	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, sol.StorageKey); err != nil {
		r.logger.Error("storage cleanup failed", "storage_key", sol.StorageKey, "error", err)
	}

	r.logger.Info("solution deleted", "id", id)
	return nil
}

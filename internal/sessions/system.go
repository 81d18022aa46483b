package sessions

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/internal/reviews"
	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/progress"
)

// System defines the ingestion session operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Session], error)
	Find(ctx context.Context, id uuid.UUID) (*Session, error)
	Start(ctx context.Context, cmd StartCommand) (*Session, error)
	Cancel(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Wait blocks until the session's background run finishes. It is a no-op
	// when no run is active.
	Wait(id uuid.UUID)
}

// Store persists sessions. Progress and terminal writes enforce the session
// state machine at the storage layer so concurrent writers cannot regress
// progress or overwrite a terminal status.
type Store interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Session], error)
	Find(ctx context.Context, id uuid.UUID) (*Session, error)
	Create(ctx context.Context, s Session) (*Session, error)

	// Progress updates stage state while the session is processing. Writes
	// that would lower overall progress or touch a terminal session are
	// silently discarded.
	Progress(ctx context.Context, id uuid.UUID, stage progress.Stage, stageProgress, overall int, message string) error

	// Complete transitions processing -> completed and creates the pending
	// review in the same transaction. Returns ErrAlreadyFinished if the
	// session is already terminal.
	Complete(ctx context.Context, id uuid.UUID, records []content.Record, message string) (*Session, error)

	// Fail transitions processing -> failed, storing the message verbatim.
	// Returns ErrAlreadyFinished if the session is already terminal.
	Fail(ctx context.Context, id uuid.UUID, message string) (*Session, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewCreator creates the pending review when a session completes. The
// insert shares the session's completion transaction: either both rows land
// or neither does.
type ReviewCreator interface {
	CreateInTx(ctx context.Context, tx *sql.Tx, cmd reviews.CreateCommand) (*reviews.Review, error)
}

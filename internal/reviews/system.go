package reviews

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/solutions"
	"github.com/studynova/ingest/pkg/pagination"
)

// System defines the pending-review operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Review], error)
	Find(ctx context.Context, id uuid.UUID) (*Review, error)

	// CreateInTx inserts a pending review inside the caller's transaction.
	// Used by session completion so the review and the terminal session
	// state commit together.
	CreateInTx(ctx context.Context, tx *sql.Tx, cmd CreateCommand) (*Review, error)

	// UpdateRecord replaces the question and answer of one record. Inputs
	// are trimmed; empty text is rejected and the edit marker is stamped.
	UpdateRecord(ctx context.Context, id uuid.UUID, index int, cmd UpdateRecordCommand) (*Review, error)

	// AddRecord appends a placeholder record for immediate editing.
	AddRecord(ctx context.Context, id uuid.UUID) (*Review, error)

	// RemoveRecord deletes one record. Remaining records keep their
	// numbers; the total is recomputed from the array length.
	RemoveRecord(ctx context.Context, id uuid.UUID, index int) (*Review, error)

	// Decide resolves the review in a single transaction: approval
	// publishes the current records as a solution, rejection discards
	// them. Either way the review is removed; deciding again reports
	// not found.
	Decide(ctx context.Context, id uuid.UUID, cmd DecideCommand) (*Decision, error)
}

// Publisher publishes approved records. The row write shares the decision
// transaction so a publish failure leaves the review pending; the blob
// artifact is written only after that transaction commits.
type Publisher interface {
	PublishInTx(ctx context.Context, tx *sql.Tx, cmd solutions.PublishCommand) (*solutions.Solution, error)
	StoreArtifact(ctx context.Context, sol *solutions.Solution) error
}

package solutions

import (
	"context"
	"database/sql"

	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/pkg/pagination"
)

// System defines the published solution operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Solution], error)
	Find(ctx context.Context, id string) (*Solution, error)
	Records(ctx context.Context, id string) ([]content.Record, error)

	// PublishInTx writes the solution row inside the caller's transaction.
	// Republishing a chapter replaces the existing solution.
	PublishInTx(ctx context.Context, tx *sql.Tx, cmd PublishCommand) (*Solution, error)

	// StoreArtifact writes the solution's JSONL artifact to blob storage.
	// Callers invoke it after the publishing transaction commits so a
	// rollback never strands an artifact without a row.
	StoreArtifact(ctx context.Context, sol *Solution) error

	// Export renders the solution as an XLSX workbook for admin download.
	Export(ctx context.Context, id string) (filename string, data []byte, err error)

	Delete(ctx context.Context, id string) error
}

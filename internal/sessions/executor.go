package sessions

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/processor"
	"github.com/studynova/ingest/internal/storage"
	"github.com/studynova/ingest/pkg/pagination"
	"github.com/studynova/ingest/pkg/progress"
)

// CancelledMessage is stored on sessions finalized by explicit cancellation.
const CancelledMessage = "Processing cancelled"

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type executor struct {
	store        Store
	storage      storage.System
	processor    processor.System
	maxQuestions int
	logger       *slog.Logger

	mu     sync.Mutex
	active map[uuid.UUID]*run
}

// New creates the session system. Accepted uploads are processed in a
// background goroutine per session and tracked for cancellation.
func New(store Store, blobs storage.System, proc processor.System, maxQuestions int, logger *slog.Logger) System {
	return &executor{
		store:        store,
		storage:      blobs,
		processor:    proc,
		maxQuestions: maxQuestions,
		logger:       logger.With("system", "sessions"),
		active:       make(map[uuid.UUID]*run),
	}
}

func (e *executor) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Session], error) {
	return e.store.List(ctx, page, filters)
}

func (e *executor) Find(ctx context.Context, id uuid.UUID) (*Session, error) {
	return e.store.Find(ctx, id)
}

// Start validates the upload and, on acceptance, stores the original file,
// creates the session row and launches the pipeline. Validation failures
// reject before any blob or row is written.
func (e *executor) Start(ctx context.Context, cmd StartCommand) (*Session, error) {
	if len(cmd.Data) == 0 {
		return nil, ErrInvalidFile
	}

	if cmd.ContentType != "application/pdf" {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidFileType, cmd.ContentType)
	}

	if missing := cmd.Metadata.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingMetadata, strings.Join(missing, ", "))
	}

	id := uuid.New()
	storageKey := buildStorageKey(id, cmd.Filename)

	if err := e.storage.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	session, err := e.store.Create(ctx, Session{
		ID:         id,
		Filename:   cmd.Filename,
		Metadata:   cmd.Metadata,
		Status:     StatusProcessing,
		Stage:      progress.StageExtraction,
		Message:    "Starting PDF processing...",
		StorageKey: storageKey,
	})
	if err != nil {
		if delErr := e.storage.Delete(ctx, storageKey); delErr != nil {
			e.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r := &run{cancel: cancel, done: make(chan struct{})}

	e.mu.Lock()
	e.active[id] = r
	e.mu.Unlock()

	go e.process(runCtx, r, *session, cmd.Data)

	return session, nil
}

func (e *executor) process(ctx context.Context, r *run, session Session, data []byte) {
	defer close(r.done)
	defer e.release(session.ID)
	defer r.cancel()

	onProgress := func(stage progress.Stage, pct int, message string) {
		overall := progress.Overall(stage, pct)
		// Progress writes survive run cancellation; the store discards
		// anything that arrives after the terminal transition.
		if err := e.store.Progress(context.Background(), session.ID, stage, pct, overall, message); err != nil {
			e.logger.Error("progress update failed", "id", session.ID, "error", err)
		}
	}

	result, err := e.processor.Process(ctx, processor.Input{
		Data:         data,
		Filename:     session.Filename,
		Metadata:     session.Metadata,
		MaxQuestions: e.maxQuestions,
	}, onProgress)

	if err != nil {
		message := err.Error()
		if ctx.Err() != nil {
			message = CancelledMessage
		}
		if _, failErr := e.store.Fail(context.Background(), session.ID, message); failErr != nil {
			e.logger.Error("failed to finalize session", "id", session.ID, "error", failErr)
		}
		return
	}

	message := fmt.Sprintf("Generated %d Q&A pairs", len(result.Records))
	if _, err := e.store.Complete(context.Background(), session.ID, result.Records, message); err != nil {
		e.logger.Error("failed to complete session", "id", session.ID, "error", err)
	}
}

// Cancel stops a running session. The run finalizes as failed with a
// cancellation message; cancelling a terminal session is a conflict.
func (e *executor) Cancel(ctx context.Context, id uuid.UUID) (*Session, error) {
	e.mu.Lock()
	r, ok := e.active[id]
	e.mu.Unlock()

	if ok {
		r.cancel()
		<-r.done
		return e.store.Find(ctx, id)
	}

	session, err := e.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if Terminal(session.Status) {
		return nil, ErrAlreadyFinished
	}

	// No live run for a processing row: the process restarted mid-run.
	return e.store.Fail(ctx, id, CancelledMessage)
}

// Delete removes a terminal session and its stored upload.
func (e *executor) Delete(ctx context.Context, id uuid.UUID) error {
	session, err := e.store.Find(ctx, id)
	if err != nil {
		return err
	}

	if !Terminal(session.Status) {
		return ErrNotTerminal
	}

	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}

	if err := e.storage.Delete(ctx, session.StorageKey); err != nil {
		e.logger.Error("storage cleanup failed", "storage_key", session.StorageKey, "error", err)
	}

	return nil
}

func (e *executor) Wait(id uuid.UUID) {
	e.mu.Lock()
	r, ok := e.active[id]
	e.mu.Unlock()

	if ok {
		<-r.done
	}
}

func (e *executor) release(id uuid.UUID) {
	e.mu.Lock()
	delete(e.active, id)
	e.mu.Unlock()
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("sessions/%s/%s", id.String(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}

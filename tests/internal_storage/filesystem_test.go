package internal_storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/storage"
)

func newSystem(t *testing.T) (storage.System, string) {
	t.Helper()

	base := t.TempDir()
	cfg := &config.StorageConfig{BasePath: base}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := storage.New(cfg, logger)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return sys, base
}

func TestNew_RequiresBasePath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := storage.New(&config.StorageConfig{}, logger); err == nil {
		t.Error("New() with empty base_path = nil, want error")
	}
}

func TestStoreAndRetrieve(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()

	data := []byte("%PDF-1.4 test content")
	if err := sys.Store(ctx, "sessions/abc/chapter.pdf", data); err != nil {
		t.Fatalf("Store() = %v", err)
	}

	got, err := sys.Retrieve(ctx, "sessions/abc/chapter.pdf")
	if err != nil {
		t.Fatalf("Retrieve() = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Retrieve() = %q, want %q", got, data)
	}
}

func TestStore_Overwrites(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()

	sys.Store(ctx, "solutions/demo.jsonl", []byte("first"))
	if err := sys.Store(ctx, "solutions/demo.jsonl", []byte("second")); err != nil {
		t.Fatalf("Store() overwrite = %v", err)
	}

	got, _ := sys.Retrieve(ctx, "solutions/demo.jsonl")
	if string(got) != "second" {
		t.Errorf("Retrieve() = %q, want second", got)
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	sys, _ := newSystem(t)

	_, err := sys.Retrieve(context.Background(), "missing/key.pdf")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve(missing) = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()

	sys.Store(ctx, "sessions/xyz/doc.pdf", []byte("data"))

	if err := sys.Delete(ctx, "sessions/xyz/doc.pdf"); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	if err := sys.Delete(ctx, "sessions/xyz/doc.pdf"); err != nil {
		t.Errorf("second Delete() = %v, want nil", err)
	}

	exists, _ := sys.Validate(ctx, "sessions/xyz/doc.pdf")
	if exists {
		t.Error("Validate() = true after delete")
	}
}

func TestDelete_RemovesEmptyParent(t *testing.T) {
	sys, base := newSystem(t)
	ctx := context.Background()

	sys.Store(ctx, "sessions/only/file.pdf", []byte("data"))
	sys.Delete(ctx, "sessions/only/file.pdf")

	if _, err := os.Stat(filepath.Join(base, "sessions", "only")); !errors.Is(err, os.ErrNotExist) {
		t.Error("empty parent directory not cleaned up")
	}
}

func TestValidate(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()

	exists, err := sys.Validate(ctx, "nothing.pdf")
	if err != nil || exists {
		t.Errorf("Validate(missing) = (%v, %v), want (false, nil)", exists, err)
	}

	sys.Store(ctx, "present.pdf", []byte("data"))
	exists, err = sys.Validate(ctx, "present.pdf")
	if err != nil || !exists {
		t.Errorf("Validate(present) = (%v, %v), want (true, nil)", exists, err)
	}
}

func TestInvalidKeys(t *testing.T) {
	sys, _ := newSystem(t)
	ctx := context.Background()

	keys := []string{"", "../escape.pdf", "/etc/passwd", "a/../../b.pdf"}
	for _, key := range keys {
		if err := sys.Store(ctx, key, []byte("data")); !errors.Is(err, storage.ErrInvalidKey) {
			t.Errorf("Store(%q) = %v, want %v", key, err, storage.ErrInvalidKey)
		}
		if _, err := sys.Retrieve(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
			t.Errorf("Retrieve(%q) = %v, want %v", key, err, storage.ErrInvalidKey)
		}
	}
}

func TestPath(t *testing.T) {
	sys, base := newSystem(t)

	path, err := sys.Path(context.Background(), "solutions/demo.jsonl")
	if err != nil {
		t.Fatalf("Path() = %v", err)
	}

	want := filepath.Join(base, "solutions", "demo.jsonl")
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}

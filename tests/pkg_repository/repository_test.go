package pkg_repository_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/studynova/ingest/pkg/repository"
)

var (
	errNotFound  = errors.New("thing not found")
	errDuplicate = errors.New("thing already exists")
)

func TestMapError_Nil(t *testing.T) {
	if err := repository.MapError(nil, errNotFound, errDuplicate); err != nil {
		t.Errorf("MapError(nil) = %v, want nil", err)
	}
}

func TestMapError_NoRows(t *testing.T) {
	err := repository.MapError(sql.ErrNoRows, errNotFound, errDuplicate)
	if !errors.Is(err, errNotFound) {
		t.Errorf("MapError(ErrNoRows) = %v, want %v", err, errNotFound)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}

	err := repository.MapError(pgErr, errNotFound, errDuplicate)
	if !errors.Is(err, errDuplicate) {
		t.Errorf("MapError(23505) = %v, want %v", err, errDuplicate)
	}
}

func TestMapError_OtherPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503"}

	err := repository.MapError(pgErr, errNotFound, errDuplicate)
	if !errors.Is(err, pgErr) {
		t.Errorf("MapError(23503) = %v, want passthrough", err)
	}
}

func TestMapError_Passthrough(t *testing.T) {
	sentinel := errors.New("boom")

	err := repository.MapError(sentinel, errNotFound, errDuplicate)
	if !errors.Is(err, sentinel) {
		t.Errorf("MapError(boom) = %v, want passthrough", err)
	}
}

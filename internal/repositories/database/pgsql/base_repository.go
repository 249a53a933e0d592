package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker_api/internal/apperrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
	numericValueOutOfRange    = "22003"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping checks connectivity to the database.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

// isRowID reports whether id can name a row in a UUID primary key column.
// Anything else cannot exist, so lookups short-circuit to ErrNotFound.
func isRowID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// mapWriteError translates unique violations into apperrors.ErrDuplicate and
// out-of-range numerics into apperrors.ErrValidation.
func mapWriteError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrDuplicate, pgErr.ConstraintName)
		case numericValueOutOfRange:
			return fmt.Errorf("%s: %w: amount out of range", op, apperrors.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapLookupError translates "no rows" and malformed identifiers into
// apperrors.ErrNotFound.
func mapLookupError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

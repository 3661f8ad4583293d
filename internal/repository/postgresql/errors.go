package postgresql

import (
	"errors"
	"fmt"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

// executeQueryError names the violated constraint when postgres reports one.
func executeQueryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return fmt.Errorf("failed to execute query: constraint %s (sqlstate %s): %w", pgErr.ConstraintName, pgErr.Code, err)
	}

	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

func collectUploadError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrUploadNotFound
	}

	return collectRowsError(err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/EasilyAI/QuotationAssistant-sub000/internal/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	TableUploads     = "uploads"
	TableTransitions = "upload_transitions"
)

var uploadColumns = []string{
	"id",
	"file_id",
	"document_type",
	"file_name",
	"state",
	"status",
	"storage_key",
	"error_message",
	"COALESCE(summary::text, '') AS summary",
	"created_at",
	"updated_at",
}

type UploadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool *pgxpool.Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadsRepository) SaveUpload(ctx context.Context, entry *domain.UploadEntry) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUploads).
		Columns(
			"id",
			"file_id",
			"document_type",
			"file_name",
			"state",
			"status",
			"storage_key",
			"error_message",
			"summary",
			"created_at",
			"updated_at",
		).
		Values(
			entry.ID,
			entry.FileID,
			string(entry.DocumentType),
			entry.FileName,
			string(entry.State),
			entry.Status,
			entry.StorageKey,
			entry.ErrorMessage,
			nullableJSON(entry.Summary),
			entry.CreatedAt,
			entry.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			file_id = EXCLUDED.file_id,
			state = EXCLUDED.state,
			status = EXCLUDED.status,
			storage_key = EXCLUDED.storage_key,
			error_message = EXCLUDED.error_message,
			summary = EXCLUDED.summary,
			updated_at = EXCLUDED.updated_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *UploadsRepository) AddTransition(ctx context.Context, transition *domain.UploadTransition) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableTransitions).
		Columns("upload_id", "state", "status", "created_at").
		Values(transition.UploadID, string(transition.State), transition.Status, transition.CreatedAt).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("upload %s is not journaled: %w", transition.UploadID, domain.ErrUploadNotFound)
		}
		return executeQueryError(err)
	}

	return nil
}

// Uploads returns one page of the journal, newest first, along with the total number of entries.
func (r *UploadsRepository) Uploads(ctx context.Context, limit, offset uint64) ([]*domain.UploadEntry, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploads).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadEntry])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return uploads, total, nil
}

// UploadByFileID returns the latest run that uploaded fileID.
func (r *UploadsRepository) UploadByFileID(ctx context.Context, fileID string) (*domain.UploadEntry, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		Where(sq.Eq{"file_id": fileID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	upload, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadEntry])
	if err != nil {
		return nil, collectUploadError(err)
	}

	return upload, nil
}

func (r *UploadsRepository) Transitions(ctx context.Context, uploadID string) ([]*domain.UploadTransition, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("upload_id", "state", "status", "created_at").
		From(TableTransitions).
		Where(sq.Eq{"upload_id": uploadID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	transitions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadTransition])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return transitions, nil
}

// MarkInterrupted fails every run left in a non-terminal state by a previous process.
func (r *UploadsRepository) MarkInterrupted(ctx context.Context, before time.Time) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("state", string(domain.StateFailed)).
		Set("error_message", "Upload was interrupted.").
		Set("updated_at", time.Now()).
		Where(sq.NotEq{"state": []string{
			string(domain.StateComplete),
			string(domain.StateFailed),
			string(domain.StateCancelled),
		}}).
		Where(sq.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

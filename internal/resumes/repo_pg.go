package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (id, file_id, file_name, mime_type, size_bytes, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		res.ID,
		res.FileID,
		res.FileName,
		res.MimeType,
		res.SizeBytes,
		res.UploadedAt,
	)
	return err
}

// GetByFileID fetches a resume record by its stored filename.
func (r *PGRepo) GetByFileID(ctx context.Context, fileID string) (Resume, error) {
	const query = `
SELECT id, file_id, file_name, mime_type, size_bytes, uploaded_at
FROM resumes
WHERE file_id = $1
LIMIT 1`

	var res Resume
	err := r.DB.QueryRowContext(ctx, query, fileID).Scan(
		&res.ID,
		&res.FileID,
		&res.FileName,
		&res.MimeType,
		&res.SizeBytes,
		&res.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// DeleteByFileID removes a resume record by its stored filename.
func (r *PGRepo) DeleteByFileID(ctx context.Context, fileID string) error {
	const query = `DELETE FROM resumes WHERE file_id = $1`
	_, err := r.DB.ExecContext(ctx, query, fileID)
	return err
}

var _ Repo = (*PGRepo)(nil)

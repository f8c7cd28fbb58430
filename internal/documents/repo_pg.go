package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document record.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    racer_id,
    filename,
    storage_key,
    media_type,
    size_bytes,
    analysis,
    status,
    uploaded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var analysis sql.NullString
	if doc.Analysis != nil {
		analysis = sql.NullString{String: *doc.Analysis, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.RacerID,
		doc.Filename,
		doc.StorageKey,
		doc.MediaType,
		doc.SizeBytes,
		analysis,
		doc.Status,
		doc.UploadedAt,
	)
	return err
}

// GetByID fetches a document by ID.
func (r *PGRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	const query = `
SELECT id, racer_id, filename, storage_key, media_type, size_bytes, analysis, status, uploaded_at
FROM documents
WHERE id = $1
LIMIT 1`

	var doc Document
	var analysis sql.NullString
	err := r.DB.QueryRowContext(ctx, query, documentID).Scan(
		&doc.ID,
		&doc.RacerID,
		&doc.Filename,
		&doc.StorageKey,
		&doc.MediaType,
		&doc.SizeBytes,
		&analysis,
		&doc.Status,
		&doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if analysis.Valid {
		doc.Analysis = &analysis.String
	}
	return doc, nil
}

// ListByRacer returns a racer's documents, newest upload first.
func (r *PGRepo) ListByRacer(ctx context.Context, racerID string) ([]Document, error) {
	const query = `
SELECT id, racer_id, filename, storage_key, media_type, size_bytes, analysis, status, uploaded_at
FROM documents
WHERE racer_id = $1
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, racerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var doc Document
		var analysis sql.NullString
		if err := rows.Scan(
			&doc.ID,
			&doc.RacerID,
			&doc.Filename,
			&doc.StorageKey,
			&doc.MediaType,
			&doc.SizeBytes,
			&analysis,
			&doc.Status,
			&doc.UploadedAt,
		); err != nil {
			return nil, err
		}
		if analysis.Valid {
			doc.Analysis = &analysis.String
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UpdateAnalysis stores the analysis text and status for a document.
func (r *PGRepo) UpdateAnalysis(ctx context.Context, documentID, analysis, status string) error {
	const query = `
UPDATE documents
SET analysis = $2, status = $3
WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, documentID, analysis, status)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document record.
func (r *PGRepo) Delete(ctx context.Context, documentID string) error {
	const query = `DELETE FROM documents WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, documentID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ DocumentsRepo = (*PGRepo)(nil)

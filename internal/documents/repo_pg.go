package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, owner_id, title, content, file_path, file_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var content sql.NullString
	if doc.Content != "" {
		content = sql.NullString{String: doc.Content, Valid: true}
	}
	var filePath sql.NullString
	if doc.FilePath != "" {
		filePath = sql.NullString{String: doc.FilePath, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.OwnerID,
		doc.Title,
		content,
		filePath,
		string(doc.FileType),
		doc.CreatedAt,
	)
	return err
}

// GetByID fetches a document by ID for an owner.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, documentID string) (Document, error) {
	const query = `
SELECT id, owner_id, title, content, file_path, file_type, created_at
FROM documents
WHERE owner_id = $1 AND id = $2
LIMIT 1`
	var doc Document
	var content sql.NullString
	var filePath sql.NullString
	var fileType string
	err := r.DB.QueryRowContext(ctx, query, ownerID, documentID).Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Title,
		&content,
		&filePath,
		&fileType,
		&doc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if content.Valid {
		doc.Content = content.String
	}
	if filePath.Valid {
		doc.FilePath = filePath.String
	}
	doc.FileType = FileType(fileType)
	return doc, nil
}

// ListByOwner lists documents ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, owner_id, title, content, file_path, file_type, created_at
FROM documents
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		var content sql.NullString
		var filePath sql.NullString
		var fileType string
		if err := rows.Scan(
			&doc.ID,
			&doc.OwnerID,
			&doc.Title,
			&content,
			&filePath,
			&fileType,
			&doc.CreatedAt,
		); err != nil {
			return nil, err
		}
		if content.Valid {
			doc.Content = content.String
		}
		if filePath.Valid {
			doc.FilePath = filePath.String
		}
		doc.FileType = FileType(fileType)
		out = append(out, doc)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

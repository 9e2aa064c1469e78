package generations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. Content is stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new generation record.
func (r *PGRepo) Create(ctx context.Context, rec GeneratedContent) error {
	const query = `
INSERT INTO generated_content (id, document_id, owner_id, generation_type, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	payload, err := json.Marshal(rec.Content)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.DocumentID,
		rec.OwnerID,
		rec.GenerationType,
		payload,
		rec.CreatedAt,
	)
	return err
}

// GetByID fetches a generation record by ID for an owner.
func (r *PGRepo) GetByID(ctx context.Context, ownerID, generationID string) (GeneratedContent, error) {
	const query = `
SELECT id, document_id, owner_id, generation_type, content, created_at
FROM generated_content
WHERE owner_id = $1 AND id = $2
LIMIT 1`
	var rec GeneratedContent
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, ownerID, generationID).Scan(
		&rec.ID,
		&rec.DocumentID,
		&rec.OwnerID,
		&rec.GenerationType,
		&payload,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedContent{}, ErrNotFound
		}
		return GeneratedContent{}, err
	}
	if err := json.Unmarshal(payload, &rec.Content); err != nil {
		return GeneratedContent{}, err
	}
	return rec, nil
}

// ListByOwner lists generation records ordered newest-first.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]GeneratedContent, error) {
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
SELECT id, document_id, owner_id, generation_type, content, created_at
FROM generated_content
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GeneratedContent
	for rows.Next() {
		var rec GeneratedContent
		var payload []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.DocumentID,
			&rec.OwnerID,
			&rec.GenerationType,
			&payload,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &rec.Content); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

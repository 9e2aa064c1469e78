package generations

import "context"

// Repo defines persistence operations for generated content.
// Records are append-only.
type Repo interface {
	Create(ctx context.Context, rec GeneratedContent) error
	GetByID(ctx context.Context, ownerID, generationID string) (GeneratedContent, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]GeneratedContent, error)
}

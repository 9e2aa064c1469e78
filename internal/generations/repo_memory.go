package generations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]GeneratedContent // ownerID -> records
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]GeneratedContent),
	}
}

// Create stores a generation record for an owner.
func (r *MemoryRepo) Create(ctx context.Context, rec GeneratedContent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.OwnerID] = append(r.data[rec.OwnerID], rec)
	return nil
}

// GetByID returns a generation record by ID for an owner.
func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, generationID string) (GeneratedContent, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedContent{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.data[ownerID]
	for i := range recs {
		if recs[i].ID == generationID {
			return recs[i], nil
		}
	}
	return GeneratedContent{}, ErrNotFound
}

// ListByOwner returns generation records for an owner, newest first.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]GeneratedContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	ownerRecs := r.data[ownerID]
	r.mu.RUnlock()

	if len(ownerRecs) == 0 || offset >= len(ownerRecs) {
		return []GeneratedContent{}, nil
	}

	recs := make([]GeneratedContent, len(ownerRecs))
	copy(recs, ownerRecs)
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})

	end := len(recs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return recs[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)

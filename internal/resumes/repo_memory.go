package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // fileID -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
	}
}

// Create stores the metadata record keyed by its file identifier.
func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[res.FileID] = res
	return nil
}

// GetByFileID returns the record for a stored file.
func (r *MemoryRepo) GetByFileID(ctx context.Context, fileID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[fileID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return res, nil
}

// DeleteByFileID removes the record for a stored file, if present.
func (r *MemoryRepo) DeleteByFileID(ctx context.Context, fileID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, fileID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)

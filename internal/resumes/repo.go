package resumes

import "context"

// Repo defines persistence operations for resume metadata.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByFileID(ctx context.Context, fileID string) (Resume, error)
	DeleteByFileID(ctx context.Context, fileID string) error
}

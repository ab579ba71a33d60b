package resumes

import "context"

// ListFilter narrows and pages a resume listing.
type ListFilter struct {
	Name       string
	TemplateID string
	Limit      int
	Offset     int
}

// Repo defines persistence operations for resumes. Every owner-scoped
// operation treats "absent" and "not owned" identically.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Resume, int, error)
	Update(ctx context.Context, r Resume) error
	Delete(ctx context.Context, userID, resumeID string) error
	SetSharing(ctx context.Context, userID, resumeID string, isPublic bool, shareToken string) (Resume, error)
	// GetByShareToken resolves a public resume and increments its download
	// counter as a side effect.
	GetByShareToken(ctx context.Context, token string) (Resume, error)
}

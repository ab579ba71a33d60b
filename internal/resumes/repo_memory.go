package resumes

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used in dev mode and
// tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // resumeId -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Resume)}
}

// Create stores a resume.
func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[res.ID] = res
	return nil
}

// GetByID returns a resume scoped to its owner.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[resumeID]
	if !ok || res.UserID != userID {
		return Resume{}, ErrNotFound
	}
	return res, nil
}

// ListByUser lists resumes newest-updated first, honoring filters and paging.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Resume, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	var matched []Resume
	for _, res := range r.data {
		if res.UserID != userID {
			continue
		}
		if name := strings.TrimSpace(filter.Name); name != "" &&
			!strings.Contains(strings.ToLower(res.Name), strings.ToLower(name)) {
			continue
		}
		if tmpl := strings.TrimSpace(filter.TemplateID); tmpl != "" && res.TemplateID != tmpl {
			continue
		}
		matched = append(matched, res)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})

	total := len(matched)
	if offset >= total {
		return []Resume{}, total, nil
	}
	end := total
	if offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], total, nil
}

// Update overwrites a resume's mutable fields.
func (r *MemoryRepo) Update(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[res.ID]
	if !ok || existing.UserID != res.UserID {
		return ErrNotFound
	}
	existing.Name = res.Name
	existing.TemplateID = res.TemplateID
	existing.Profession = res.Profession
	existing.Document = res.Document
	existing.ATSScore = res.ATSScore
	existing.UpdatedAt = res.UpdatedAt
	r.data[res.ID] = existing
	return nil
}

// Delete removes a resume.
func (r *MemoryRepo) Delete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.data[resumeID]
	if !ok || res.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, resumeID)
	return nil
}

// SetSharing flips the public flag and share token.
func (r *MemoryRepo) SetSharing(ctx context.Context, userID, resumeID string, isPublic bool, shareToken string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.data[resumeID]
	if !ok || res.UserID != userID {
		return Resume{}, ErrNotFound
	}
	res.IsPublic = isPublic
	res.ShareToken = shareToken
	r.data[resumeID] = res
	return res, nil
}

// GetByShareToken resolves a public resume and bumps its download counter.
func (r *MemoryRepo) GetByShareToken(ctx context.Context, token string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	if strings.TrimSpace(token) == "" {
		return Resume{}, ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, res := range r.data {
		if res.IsPublic && res.ShareToken == token {
			res.Downloads++
			r.data[id] = res
			return res, nil
		}
	}
	return Resume{}, ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)

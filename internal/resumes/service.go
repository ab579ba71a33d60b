package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvbuilder-backend/internal/resume"
)

// TemplateCatalog reports whether a template id is valid.
type TemplateCatalog interface {
	Exists(id string) bool
}

// Service implements resume use cases over a Repo.
type Service struct {
	Repo      Repo
	Templates TemplateCatalog
}

// NewService constructs a Service.
func NewService(repo Repo, templates TemplateCatalog) *Service {
	return &Service{Repo: repo, Templates: templates}
}

// CreateParams carries the fields accepted on create.
type CreateParams struct {
	Name       string
	TemplateID string
	Profession string
	Document   resume.Document
}

// Create validates and persists a new resume for the owner. The document is
// normalized (entry ids assigned) and scored before it is stored.
func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return Resume{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return Resume{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	templateID := strings.TrimSpace(params.TemplateID)
	if templateID == "" {
		return Resume{}, fmt.Errorf("%w: template id is required", ErrInvalidInput)
	}
	if s.Templates != nil && !s.Templates.Exists(templateID) {
		return Resume{}, fmt.Errorf("%w: unknown template %q", ErrInvalidInput, templateID)
	}

	doc := params.Document
	if err := doc.Validate(); err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	doc.Normalize()

	now := time.Now().UTC()
	res := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       name,
		TemplateID: templateID,
		Profession: strings.TrimSpace(params.Profession),
		Document:   doc,
		ATSScore:   resume.ScoreATS(&doc).Score,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Get returns one resume scoped to its owner.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns a page of the owner's resumes plus the total match count.
func (s *Service) List(ctx context.Context, userID string, filter ListFilter) ([]Resume, int, error) {
	return s.Repo.ListByUser(ctx, userID, filter)
}

// UpdateParams carries the optional fields accepted on update. Nil means
// "leave unchanged"; provided fields replace wholesale (shallow spread, no
// merging).
type UpdateParams struct {
	Name       *string
	TemplateID *string
	Profession *string
	Document   *resume.Document
}

// Update applies a partial update with last-write-wins semantics. A changed
// document is re-validated, re-normalized and re-scored.
func (s *Service) Update(ctx context.Context, userID, resumeID string, params UpdateParams) (Resume, error) {
	existing, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return Resume{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		existing.Name = name
	}
	if params.TemplateID != nil {
		templateID := strings.TrimSpace(*params.TemplateID)
		if s.Templates != nil && !s.Templates.Exists(templateID) {
			return Resume{}, fmt.Errorf("%w: unknown template %q", ErrInvalidInput, templateID)
		}
		existing.TemplateID = templateID
	}
	if params.Profession != nil {
		existing.Profession = strings.TrimSpace(*params.Profession)
	}
	if params.Document != nil {
		doc := *params.Document
		if err := doc.Validate(); err != nil {
			return Resume{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		doc.Normalize()
		existing.Document = doc
		existing.ATSScore = resume.ScoreATS(&doc).Score
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Resume{}, err
	}
	return existing, nil
}

// Delete removes a resume permanently.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.Delete(ctx, userID, resumeID)
}

// SetSharing turns public sharing on or off. Turning it on mints a share
// token if the resume does not already carry one; turning it off clears it.
func (s *Service) SetSharing(ctx context.Context, userID, resumeID string, isPublic bool) (Resume, error) {
	existing, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	token := ""
	if isPublic {
		token = existing.ShareToken
		if token == "" {
			token = uuid.NewString()
		}
	}
	return s.Repo.SetSharing(ctx, userID, resumeID, isPublic, token)
}

// GetShared resolves a public resume by share token, counting the view.
func (s *Service) GetShared(ctx context.Context, token string) (Resume, error) {
	if strings.TrimSpace(token) == "" {
		return Resume{}, ErrNotFound
	}
	return s.Repo.GetByShareToken(ctx, token)
}

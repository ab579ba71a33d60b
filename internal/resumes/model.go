package resumes

import (
	"time"

	"cvbuilder-backend/internal/resume"
)

// Resume is a persisted resume owned by a user. The document payload is
// stored as JSONB; the scalar bookkeeping columns live alongside it.
type Resume struct {
	ID         string
	UserID     string
	Name       string
	TemplateID string
	Profession string
	Document   resume.Document
	ATSScore   int
	IsPublic   bool
	ShareToken string // present only while public
	Downloads  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package resumes

import (
	"time"

	"cvbuilder-backend/internal/resume"
)

type createRequest struct {
	Name       string          `json:"name" validate:"required"`
	TemplateID string          `json:"templateId" validate:"required"`
	Profession string          `json:"profession"`
	Document   resume.Document `json:"document"`
}

type updateRequest struct {
	Name       *string          `json:"name"`
	TemplateID *string          `json:"templateId"`
	Profession *string          `json:"profession"`
	Document   *resume.Document `json:"document"`
}

type shareRequest struct {
	IsPublic *bool `json:"isPublic" validate:"required"`
}

type resumeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	TemplateID string          `json:"templateId"`
	Profession string          `json:"profession,omitempty"`
	Document   resume.Document `json:"document"`
	ATSScore   int             `json:"atsScore"`
	IsPublic   bool            `json:"isPublic"`
	ShareToken string          `json:"shareToken,omitempty"`
	Downloads  int             `json:"downloads"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type listResponse struct {
	Resumes []resumeResponse `json:"resumes"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// publicResumeResponse omits owner-only fields for share-link viewers.
type publicResumeResponse struct {
	Name       string          `json:"name"`
	TemplateID string          `json:"templateId"`
	Profession string          `json:"profession,omitempty"`
	Document   resume.Document `json:"document"`
	Downloads  int             `json:"downloads"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func toResponse(r Resume) resumeResponse {
	return resumeResponse{
		ID:         r.ID,
		Name:       r.Name,
		TemplateID: r.TemplateID,
		Profession: r.Profession,
		Document:   r.Document,
		ATSScore:   r.ATSScore,
		IsPublic:   r.IsPublic,
		ShareToken: r.ShareToken,
		Downloads:  r.Downloads,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toPublicResponse(r Resume) publicResumeResponse {
	return publicResumeResponse{
		Name:       r.Name,
		TemplateID: r.TemplateID,
		Profession: r.Profession,
		Document:   r.Document,
		Downloads:  r.Downloads,
		UpdatedAt:  r.UpdatedAt,
	}
}

package generation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"cvbuilder-backend/internal/resume"
	"cvbuilder-backend/internal/shared/server/respond"
)

var validate = validator.New()

// Handler wires the AI endpoints to the gateway.
type Handler struct {
	Gateway *Gateway
}

// NewHandler constructs a Handler.
func NewHandler(gateway *Gateway) *Handler {
	return &Handler{Gateway: gateway}
}

// RegisterRoutes attaches the AI routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/summary", h.summary)
	ai.POST("/experience", h.experience)
	ai.POST("/cover-letter", h.coverLetter)
	ai.POST("/interview-questions", h.interviewQuestions)
	ai.POST("/ats-score", h.atsScore)
	ai.POST("/job-optimization", h.jobOptimization)
	ai.POST("/skills", h.skills)
}

type summaryRequest struct {
	PersonalInfo   resume.PersonalInfo `json:"personalInfo"`
	WorkExperience []resume.Experience `json:"workExperience"`
	Profession     string              `json:"profession" validate:"required"`
}

func (h *Handler) summary(c *gin.Context) {
	var req summaryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	text, _ := h.Gateway.GenerateSummary(c.Request.Context(), req.PersonalInfo, req.WorkExperience, req.Profession)
	respond.OK(c, "Summary generated", gin.H{"summary": text})
}

type experienceRequest struct {
	Experience resume.Experience `json:"experience" validate:"required"`
	Profession string            `json:"profession" validate:"required"`
}

func (h *Handler) experience(c *gin.Context) {
	var req experienceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	optimized, _ := h.Gateway.OptimizeExperience(c.Request.Context(), req.Experience, req.Profession)
	respond.OK(c, "Experience optimized", optimized)
}

type coverLetterRequest struct {
	Document       resume.Document `json:"document"`
	JobDescription string          `json:"jobDescription" validate:"required"`
	Profession     string          `json:"profession" validate:"required"`
}

func (h *Handler) coverLetter(c *gin.Context) {
	var req coverLetterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	letter, _ := h.Gateway.GenerateCoverLetter(c.Request.Context(), &req.Document, req.JobDescription, req.Profession)
	respond.OK(c, "Cover letter generated", gin.H{"coverLetter": letter})
}

type questionsRequest struct {
	Profession      string `json:"profession" validate:"required"`
	JobDescription  string `json:"jobDescription"`
	ExperienceLevel string `json:"experienceLevel"`
}

func (h *Handler) interviewQuestions(c *gin.Context) {
	var req questionsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	questions, _ := h.Gateway.GenerateInterviewQuestions(c.Request.Context(), req.Profession, req.JobDescription, req.ExperienceLevel)
	respond.OK(c, "Interview questions generated", gin.H{"questions": questions})
}

type atsScoreRequest struct {
	Document   resume.Document `json:"document"`
	Profession string          `json:"profession" validate:"required"`
}

func (h *Handler) atsScore(c *gin.Context) {
	var req atsScoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, _ := h.Gateway.CalculateATSScore(c.Request.Context(), &req.Document, req.Profession)
	respond.OK(c, "ATS score calculated", result)
}

type jobOptimizationRequest struct {
	Document       resume.Document `json:"document"`
	JobDescription string          `json:"jobDescription" validate:"required"`
	Profession     string          `json:"profession" validate:"required"`
}

func (h *Handler) jobOptimization(c *gin.Context) {
	var req jobOptimizationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, _ := h.Gateway.OptimizeForJob(c.Request.Context(), &req.Document, req.JobDescription, req.Profession)
	respond.OK(c, "Job optimization complete", result)
}

type skillsRequest struct {
	Profession     string              `json:"profession" validate:"required"`
	WorkExperience []resume.Experience `json:"workExperience"`
}

func (h *Handler) skills(c *gin.Context) {
	var req skillsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	skills, _ := h.Gateway.GenerateSkillSuggestions(c.Request.Context(), req.Profession, req.WorkExperience)
	respond.OK(c, "Skill suggestions generated", gin.H{"skills": skills})
}

func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation failed", validationDetails(err)...)
		return false
	}
	return true
}

func validationDetails(err error) []any {
	var details []any
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			details = append(details, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
	}
	return details
}

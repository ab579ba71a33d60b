package resumes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"cvbuilder-backend/internal/resume"
	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
)

var validate = validator.New()

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the owner-scoped resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.create)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.POST("/resumes/:id/share", h.share)
}

// RegisterPublicRoutes attaches the share-link route, which needs no auth.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/resumes/:token", h.getShared)
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation failed", validationDetails(err)...)
		return
	}
	if errs := skillEnumErrors(req.Document.Skills); len(errs) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation failed", errs...)
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), userID, CreateParams{
		Name:       req.Name,
		TemplateID: req.TemplateID,
		Profession: req.Profession,
		Document:   req.Document,
	})
	if err != nil {
		writeServiceError(c, err, "failed to create resume")
		return
	}
	respond.Created(c, "Resume created", toResponse(created))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	filter := ListFilter{
		Name:       c.Query("name"),
		TemplateID: c.Query("templateId"),
		Limit:      queryInt(c, "limit", defaultListLimit),
		Offset:     queryInt(c, "offset", 0),
	}
	if filter.Limit < 1 || filter.Limit > maxListLimit {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := h.Svc.List(c.Request.Context(), userID, filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	out := make([]resumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toResponse(r))
	}
	respond.OK(c, "Resumes fetched", listResponse{
		Resumes: out,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	found, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, "Resume fetched", toResponse(found))
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Document != nil {
		if errs := skillEnumErrors(req.Document.Skills); len(errs) > 0 {
			respond.Error(c, http.StatusBadRequest, "validation failed", errs...)
			return
		}
	}

	updated, err := h.Svc.Update(c.Request.Context(), userID, c.Param("id"), UpdateParams{
		Name:       req.Name,
		TemplateID: req.TemplateID,
		Profession: req.Profession,
		Document:   req.Document,
	})
	if err != nil {
		writeServiceError(c, err, "failed to update resume")
		return
	}
	respond.OK(c, "Resume updated", toResponse(updated))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeServiceError(c, err, "failed to delete resume")
		return
	}
	respond.OK(c, "Resume deleted", nil)
}

func (h *Handler) share(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation failed", validationDetails(err)...)
		return
	}

	updated, err := h.Svc.SetSharing(c.Request.Context(), userID, c.Param("id"), *req.IsPublic)
	if err != nil {
		writeServiceError(c, err, "failed to update sharing")
		return
	}
	respond.OK(c, "Sharing updated", toResponse(updated))
}

func (h *Handler) getShared(c *gin.Context) {
	found, err := h.Svc.GetShared(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "resume not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "failed to fetch resume")
		return
	}
	respond.OK(c, "Resume fetched", toPublicResponse(found))
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "resume not found")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, fallback)
	}
}

// skillEnumErrors checks skill level and category against the builder's
// closed sets. The document schema stores them as free text, so the check
// lives at the API boundary only.
func skillEnumErrors(skills []resume.Skill) []any {
	var errs []any
	for i, s := range skills {
		if s.Level != "" && !validLevel(s.Level) {
			errs = append(errs, gin.H{"field": fmt.Sprintf("skills[%d].level", i), "rule": "oneof"})
		}
		if s.Category != "" && !validCategory(s.Category) {
			errs = append(errs, gin.H{"field": fmt.Sprintf("skills[%d].category", i), "rule": "oneof"})
		}
	}
	return errs
}

func validLevel(level string) bool {
	switch level {
	case resume.LevelBeginner, resume.LevelIntermediate, resume.LevelAdvanced, resume.LevelExpert:
		return true
	}
	return false
}

func validCategory(category string) bool {
	switch category {
	case resume.CategoryTechnical, resume.CategorySoft, resume.CategoryLanguage, resume.CategoryOther:
		return true
	}
	return false
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

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

package templates

import (
	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/shared/server/respond"
)

// Handler serves the template gallery.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
}

func (h *Handler) list(c *gin.Context) {
	respond.OK(c, "Templates retrieved", gin.H{"templates": h.Catalog.List()})
}

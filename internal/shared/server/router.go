package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "cvbuilder-backend/internal/auth"
	"cvbuilder-backend/internal/generation"
	"cvbuilder-backend/internal/resumes"
	"cvbuilder-backend/internal/shared/auth"
	"cvbuilder-backend/internal/shared/config"
	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
	"cvbuilder-backend/internal/templates"
	"cvbuilder-backend/internal/users"
)

// Deps carries the wired handlers the router mounts. GoogleAuth may be nil
// when Google sign-in is not configured.
type Deps struct {
	Config     config.Config
	Signer     *auth.Signer
	Users      *users.Handler
	GoogleAuth *googleauth.GoogleService
	Templates  *templates.Handler
	Resumes    *resumes.Handler
	Generation *generation.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(d.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, "ok", gin.H{"status": "healthy"})
	})
	d.Users.RegisterPublicRoutes(api)
	if d.GoogleAuth != nil {
		d.GoogleAuth.RegisterRoutes(api)
	}
	d.Resumes.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.Auth(d.Signer))
	d.Users.RegisterRoutes(protected)
	d.Templates.RegisterRoutes(protected)
	d.Resumes.RegisterRoutes(protected)
	d.Generation.RegisterRoutes(protected)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "route not found")
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

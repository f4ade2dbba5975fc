package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amychanwt/apply-boost/internal/auth"
	"github.com/amychanwt/apply-boost/internal/jobs"
	"github.com/amychanwt/apply-boost/internal/resumes"
	"github.com/amychanwt/apply-boost/internal/shared/config"
	"github.com/amychanwt/apply-boost/internal/shared/server/middleware"
	"github.com/amychanwt/apply-boost/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	AuthHandler   *auth.Handler
	ResumeHandler *resumes.Handler
	JobsHandler   *jobs.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"message": "Server is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	authGroup := r.Group("/auth")
	deps.AuthHandler.RegisterRoutes(authGroup)

	api := r.Group("/api")
	if deps.Config.UploadRateLimit > 0 {
		api.Use(middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/resume/upload" {
					return "UPLOAD"
				}
				return "DEFAULT"
			},
			Rules: map[string]middleware.RateLimitRule{
				"UPLOAD": {Rate: deps.Config.UploadRateLimit, Burst: deps.Config.UploadRateBurst},
			},
		}))
	}
	deps.ResumeHandler.RegisterRoutes(api)
	deps.JobsHandler.RegisterRoutes(api)

	// Uploaded files are served statically by their generated file id.
	r.Static("/uploads", deps.Config.UploadDir)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

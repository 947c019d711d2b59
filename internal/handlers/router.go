package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/justsurfingit/Campus-Job-Board/internal/auth"
)

type RouterDeps struct {
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Auth         *AuthHandler
	Analytics    *AnalyticsHandler
	Tokens       *auth.TokenProvider
}

// NewRouter wires the handlers onto a gin engine. The API is served both at
// the root paths the web client calls and under /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config), requestID())

	r.GET("/health", HealthCheck)

	mount(r.Group("/"), deps)
	mount(r.Group("/api/v1"), deps)

	return r
}

func mount(g *gin.RouterGroup, deps RouterDeps) {
	g.GET("/jobs", deps.Jobs.ListJobs)
	g.GET("/jobs/:id", deps.Jobs.GetJob)
	g.POST("/jobs", deps.Jobs.CreateJob)

	g.POST("/applications", deps.Applications.SubmitApplication)
	g.GET("/applications", deps.Applications.ListApplications)

	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.GET("/profile", auth.Middleware(deps.Tokens), deps.Auth.Profile)
	}

	analytics := g.Group("/analytics")
	{
		analytics.GET("/dashboard", deps.Analytics.Dashboard)
		analytics.GET("/application-trends", deps.Analytics.ApplicationTrends)
		analytics.GET("/job-stats", deps.Analytics.JobStats)
	}
}

// requestID tags every response so a failed submission can be traced in the
// logs.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

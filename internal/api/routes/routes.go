package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/alumni-advisor/internal/api/handlers"
)

type Deps struct {
	Advisory *handlers.AdvisoryHandler
	Profile  *handlers.ProfileHandler
	// RateLimit guards the routes that call the LLM. Nil disables it.
	RateLimit gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Alumni advisor API is running"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	alumni := r.Group("/alumni")
	alumni.GET("/profile", d.Profile.Profile)
	alumni.GET("/collaborators", d.Profile.Collaborators)

	rec := r.Group("/recommendations")
	if d.RateLimit != nil {
		rec.Use(d.RateLimit)
	}
	rec.POST("/alumni", d.Advisory.RecommendAlumnus)
	rec.POST("/project", d.Advisory.RecommendProject)
}

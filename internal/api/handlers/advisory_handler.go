package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/alumni-advisor/internal/services"
)

type AdvisoryHandler struct {
	svc services.AdvisoryService
}

func NewAdvisoryHandler(svc services.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{svc: svc}
}

type AlumniRecommendationRequest struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	Language string `json:"language" binding:"max=64"` // id|en; anything else means id
}

type AlumniRecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

func (h *AdvisoryHandler) RecommendAlumnus(c *gin.Context) {
	var req AlumniRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError("AdvisoryHandler.RecommendAlumnus", err))
		return
	}

	out, err := h.svc.RecommendForAlumnus(c.Request.Context(), req.FullName, req.Language)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AlumniRecommendationResponse{Recommendation: out})
}

type ProjectRecommendationRequest struct {
	IdeaText string `json:"idea_text" binding:"required,max=4000"`
	Language string `json:"language" binding:"max=64"`
}

type ProjectRecommendationResponse struct {
	ProjectRecommendation string `json:"project_recommendation"`
}

func (h *AdvisoryHandler) RecommendProject(c *gin.Context) {
	var req ProjectRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError("AdvisoryHandler.RecommendProject", err))
		return
	}

	out, err := h.svc.RecommendForProject(c.Request.Context(), req.IdeaText, req.Language)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProjectRecommendationResponse{ProjectRecommendation: out})
}

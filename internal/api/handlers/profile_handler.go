package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/alumni-advisor/internal/matching"
	"github.com/yoockh/alumni-advisor/internal/services"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type ProfileQuery struct {
	FullName string `form:"full_name" binding:"required,max=200"`
}

// Profile returns the composite profile used for matching.
func (h *ProfileHandler) Profile(c *gin.Context) {
	var q ProfileQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, bindError("ProfileHandler.Profile", err))
		return
	}

	p, err := h.svc.Aggregate(c.Request.Context(), q.FullName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

type CollaboratorsResponse struct {
	FullName      string           `json:"full_name"`
	Collaborators []matching.Match `json:"collaborators"`
}

func (h *ProfileHandler) Collaborators(c *gin.Context) {
	var q ProfileQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, bindError("ProfileHandler.Collaborators", err))
		return
	}

	out, err := h.svc.Collaborators(c.Request.Context(), q.FullName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CollaboratorsResponse{FullName: q.FullName, Collaborators: out})
}

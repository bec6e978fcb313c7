package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/services"
)

type PortfolioHandler struct {
	svc services.PortfolioService
}

func NewPortfolioHandler(svc services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

func (h *PortfolioHandler) Profile(c *gin.Context) {
	p, err := h.svc.GetProfile(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// List handlers return an empty JSON array, never null, when no rows exist.

func (h *PortfolioHandler) Skills(c *gin.Context) {
	rows, err := h.svc.GetSkills(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Skill{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *PortfolioHandler) Projects(c *gin.Context) {
	rows, err := h.svc.GetProjects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Project{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *PortfolioHandler) Experience(c *gin.Context) {
	rows, err := h.svc.GetExperience(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Experience{}
	}
	c.JSON(http.StatusOK, rows)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klarsen/folio/internal/metrics"
	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/services"
	"github.com/klarsen/folio/internal/utils"
)

type ContactHandler struct {
	svc services.ContactService
}

func NewContactHandler(svc services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// SubmitContactRequest deliberately has no id or createdAt field; both are
// server-assigned on insert.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContactHandler.Submit", "invalid request body", err))
		return
	}

	row, err := h.svc.Submit(c.Request.Context(), &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.MessagesCreated.Inc()
	c.JSON(http.StatusOK, row)
}

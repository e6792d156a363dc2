package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/ginutil"
)

// ContactHandler handles contact-form submissions and the admin inbox
type ContactHandler struct {
	service service.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitMessage godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ContactRequest  true  "Message"
// @Success      201  {object}  common.APIResponse{data=domain.ContactMessage}
// @Failure      400  {object}  common.APIResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid contact form", err)
		return
	}

	message, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to submit message", err)
		return
	}

	common.CreatedResponse(c, message)
}

// ListMessages godoc
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        page  query  int  false  "Page number (1-indexed)"
// @Success      200  {object}  common.APIResponse{data=[]domain.ContactMessage}
// @Failure      401  {object}  common.APIResponse
// @Router       /admin/contact [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	page := ginutil.QueryInt(c, "page", 1)

	messages, total, err := h.service.List(page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load messages", err)
		return
	}

	common.SuccessResponse(c, messages, &common.Meta{
		Page:  page,
		Total: total,
	})
}

// MarkMessageRead godoc
// @Summary      Mark a contact message as read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Message ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /admin/contact/{id}/read [put]
func (h *ContactHandler) MarkMessageRead(c *gin.Context) {
	id, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID", err)
		return
	}

	if err := h.service.MarkRead(id); err != nil {
		if errors.Is(err, common.ErrMessageNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Message not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update message", err)
		return
	}

	common.SuccessResponse(c, gin.H{"read": true}, nil)
}

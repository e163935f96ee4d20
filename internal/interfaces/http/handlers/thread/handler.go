// Package thread exposes conversation threads over HTTP, including a
// markdown-rendered HTML view of a whole conversation.
package thread

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	app "github.com/esit-pro/service-desk/internal/application/message"
	"github.com/esit-pro/service-desk/internal/application/message/dto"
	"github.com/esit-pro/service-desk/internal/application/message/usecases"
	"github.com/esit-pro/service-desk/internal/shared/constants"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/services/markdown"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type Handler struct {
	service  *app.Service
	renderer markdown.Service
	logger   logger.Interface
}

func NewHandler(service *app.Service, renderer markdown.Service, logger logger.Interface) *Handler {
	return &Handler{service: service, renderer: renderer, logger: logger}
}

type CreateThreadBody struct {
	Sender           string   `json:"sender" binding:"required"`
	SenderName       string   `json:"sender_name" binding:"required"`
	Content          string   `json:"content" binding:"required"`
	Attachments      []string `json:"attachments,omitempty"`
	ServiceRequestID string   `json:"service_request_id,omitempty"`
}

type AddMessageBody struct {
	Sender      string   `json:"sender" binding:"required"`
	SenderName  string   `json:"sender_name" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Attachments []string `json:"attachments,omitempty"`
}

type ArchiveBody struct {
	IsArchived *bool `json:"is_archived" binding:"required"`
}

type LinkServiceBody struct {
	ServiceRequestID string `json:"service_request_id" binding:"required"`
}

// List handles GET /threads
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	result, err := h.service.ListThreads(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, pageSize)
}

// Get handles GET /threads/:id
func (h *Handler) Get(c *gin.Context) {
	result, err := h.service.GetThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("thread not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /threads
func (h *Handler) Create(c *gin.Context) {
	var body CreateThreadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn("invalid create thread body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.CreateThread(c.Request.Context(), usecases.CreateThreadCommand{
		Sender:           body.Sender,
		SenderName:       body.SenderName,
		Content:          body.Content,
		Attachments:      body.Attachments,
		ServiceRequestID: body.ServiceRequestID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Thread created successfully")
}

// AddMessage handles POST /threads/:id/messages
func (h *Handler) AddMessage(c *gin.Context) {
	var body AddMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.AddThreadMessage(c.Request.Context(), usecases.AddThreadMessageCommand{
		ThreadID:    c.Param("id"),
		Sender:      body.Sender,
		SenderName:  body.SenderName,
		Content:     body.Content,
		Attachments: body.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("thread not found"))
		return
	}

	utils.CreatedResponse(c, result, "Message added to thread")
}

// MarkMessageRead handles PATCH /threads/:id/messages/:messageId/read
func (h *Handler) MarkMessageRead(c *gin.Context) {
	found, err := h.service.MarkThreadMessageRead(c.Request.Context(), c.Param("id"), c.Param("messageId"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("thread message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message marked as read", nil)
}

// Archive handles PATCH /threads/:id/archive
func (h *Handler) Archive(c *gin.Context) {
	var body ArchiveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	found, err := h.service.SetThreadArchived(c.Request.Context(), c.Param("id"), *body.IsArchived)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("thread not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Thread archive state updated", nil)
}

// LinkService handles PATCH /threads/:id/service
func (h *Handler) LinkService(c *gin.Context) {
	var body LinkServiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	found, err := h.service.SetThreadRelatedService(c.Request.Context(), c.Param("id"), body.ServiceRequestID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("thread not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Thread linked to service request", nil)
}

// RenderHTML handles GET /threads/:id/html. Message bodies may contain
// markdown; everything goes through the sanitizer before leaving the
// server.
func (h *Handler) RenderHTML(c *gin.Context) {
	thread, err := h.service.GetThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if thread == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("thread not found"))
		return
	}

	page, err := h.renderThread(thread)
	if err != nil {
		h.logger.Error("failed to render thread", "id", thread.ID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to render thread"))
		return
	}

	c.Data(http.StatusOK, constants.ContentTypeHTML, []byte(page))
}

func (h *Handler) renderThread(thread *dto.ThreadDTO) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"></head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>Conversation %s</h1>\n", html.EscapeString(thread.ID))

	for _, msg := range thread.Messages {
		rendered, err := h.renderer.RenderSanitized(msg.Content)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "<section class=\"message message-%s\">\n", html.EscapeString(msg.Sender))
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(msg.SenderName))
		fmt.Fprintf(&b, "<time>%s</time>\n", msg.Timestamp.Format("2006-01-02 15:04"))
		b.WriteString(rendered)
		b.WriteString("\n</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

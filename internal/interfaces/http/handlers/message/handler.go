// Package message exposes the client message inbox and the triage
// operations over HTTP.
package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/esit-pro/service-desk/internal/application/message"
	"github.com/esit-pro/service-desk/internal/application/message/usecases"
	"github.com/esit-pro/service-desk/internal/application/triage"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type Handler struct {
	service *app.Service
	triage  *triage.Service
	logger  logger.Interface
}

func NewHandler(service *app.Service, triageService *triage.Service, logger logger.Interface) *Handler {
	return &Handler{service: service, triage: triageService, logger: logger}
}

// List handles GET /messages
func (h *Handler) List(c *gin.Context) {
	page, pageSize := parsePageParams(c)
	filter, err := parseFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), usecases.ListMessagesQuery{
		Page:     page,
		PageSize: pageSize,
		Filter:   filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, pageSize)
}

// Get handles GET /messages/:id
func (h *Handler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /messages
func (h *Handler) Create(c *gin.Context) {
	var body CreateMessageBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn("invalid create message body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.Create(c.Request.Context(), body.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message created successfully")
}

// MarkRead handles PATCH /messages/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	found, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message marked as read", nil)
}

// SetFlag handles PATCH /messages/:id/flag
func (h *Handler) SetFlag(c *gin.Context) {
	var body FlagBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	found, err := h.service.SetFlag(c.Request.Context(), c.Param("id"), *body.IsFlagged)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Flag updated", nil)
}

// ChangeStatus handles PATCH /messages/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	var body StatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	found, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", nil)
}

// Assign handles PATCH /messages/:id/assign
func (h *Handler) Assign(c *gin.Context) {
	var body AssignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	found, err := h.service.Assign(c.Request.Context(), c.Param("id"), body.AssignedTo)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment updated", nil)
}

// SetRelatedService handles PATCH /messages/:id/service
func (h *Handler) SetRelatedService(c *gin.Context) {
	var body RelatedServiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	found, err := h.service.SetRelatedService(c.Request.Context(), c.Param("id"), body.ServiceRequestID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !found {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Related service updated", nil)
}

// BatchUpdate handles POST /messages/batch
func (h *Handler) BatchUpdate(c *gin.Context) {
	var body BatchUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.BatchUpdate(c.Request.Context(), body.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batch update applied", result)
}

// Search handles GET /messages/search
func (h *Handler) Search(c *gin.Context) {
	page, pageSize := parsePageParams(c)

	result, err := h.service.Search(c.Request.Context(), usecases.SearchMessagesQuery{
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, pageSize)
}

// UnreadCount handles GET /messages/unread-count
func (h *Handler) UnreadCount(c *gin.Context) {
	result, err := h.service.UnreadCount(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListByRelatedService handles GET /service-requests/:id/messages
func (h *Handler) ListByRelatedService(c *gin.Context) {
	result, err := h.service.ListByRelatedService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Convert handles POST /messages/:id/convert
func (h *Handler) Convert(c *gin.Context) {
	var body ConvertBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.triage.Convert(c.Request.Context(), triage.ConvertMessageCommand{
		MessageID: c.Param("id"),
		Category:  body.Category,
		Priority:  body.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message not found"))
		return
	}

	utils.CreatedResponse(c, result, "Message converted to service request")
}

// Link handles POST /messages/:id/link
func (h *Handler) Link(c *gin.Context) {
	var body LinkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.triage.Link(c.Request.Context(), triage.LinkMessageCommand{
		MessageID: c.Param("id"),
		RequestID: body.RequestID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("message or service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message linked", result)
}

// BatchArchive handles POST /messages/archive
func (h *Handler) BatchArchive(c *gin.Context) {
	var body BatchIDsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	updated, err := h.triage.Archive(c.Request.Context(), body.MessageIDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Messages archived", gin.H{"updated_count": updated})
}

// BatchDelete handles POST /messages/delete. Deletion is a status
// change; the records remain queryable.
func (h *Handler) BatchDelete(c *gin.Context) {
	var body BatchIDsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	updated, err := h.triage.Delete(c.Request.Context(), body.MessageIDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Messages deleted", gin.H{"updated_count": updated})
}

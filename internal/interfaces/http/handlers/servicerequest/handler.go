// Package servicerequest exposes the service request operations over
// HTTP. Misses surfaced as nil results from the application layer become
// 404 responses here.
package servicerequest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/esit-pro/service-desk/internal/application/servicerequest"
	"github.com/esit-pro/service-desk/internal/shared/errors"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/utils"
)

type Handler struct {
	service *app.Service
	logger  logger.Interface
}

func NewHandler(service *app.Service, logger logger.Interface) *Handler {
	return &Handler{service: service, logger: logger}
}

// List handles GET /service-requests
func (h *Handler) List(c *gin.Context) {
	page, pageSize := parsePageParams(c)

	result, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, pageSize)
}

// Get handles GET /service-requests/:id
func (h *Handler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /service-requests
func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn("invalid create request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.Create(c.Request.Context(), body.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service request created successfully")
}

// ChangeStatus handles PATCH /service-requests/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	var body ChangeStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

// ChangePriority handles PATCH /service-requests/:id/priority
func (h *Handler) ChangePriority(c *gin.Context) {
	var body ChangePriorityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.ChangePriority(c.Request.Context(), c.Param("id"), body.Priority)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority updated", result)
}

// Assign handles PATCH /service-requests/:id/assign. An empty assignee
// clears the assignment.
func (h *Handler) Assign(c *gin.Context) {
	var body AssignBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.Assign(c.Request.Context(), c.Param("id"), body.AssignedTo)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment updated", result)
}

// LogHours handles POST /service-requests/:id/hours
func (h *Handler) LogHours(c *gin.Context) {
	var body LogHoursBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.LogHours(c.Request.Context(), c.Param("id"), body.Hours)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hours logged", result)
}

// AddNote handles POST /service-requests/:id/notes
func (h *Handler) AddNote(c *gin.Context) {
	var body AddNoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.AddNote(c.Request.Context(), c.Param("id"), body.Note)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("service request not found"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Note added", result)
}

// Regenerate handles POST /service-requests/regenerate, replacing the
// dataset with freshly generated records.
func (h *Handler) Regenerate(c *gin.Context) {
	var body RegenerateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.service.Regenerate(c.Request.Context(), body.Count)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dataset regenerated", result)
}

package servicerequest

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/esit-pro/service-desk/internal/application/servicerequest/usecases"
	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type CreateRequestBody struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=5000"`
	Category    string   `json:"category" binding:"required"`
	Priority    int      `json:"priority" binding:"required"`
	ClientID    string   `json:"client_id,omitempty"`
	ClientName  string   `json:"client_name,omitempty"`
	ClientEmail string   `json:"client_email,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (r *CreateRequestBody) ToCommand() usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		Tags:        r.Tags,
	}
}

type ChangeStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type ChangePriorityBody struct {
	Priority int `json:"priority" binding:"required"`
}

type AssignBody struct {
	AssignedTo string `json:"assigned_to"`
}

type LogHoursBody struct {
	Hours float64 `json:"hours" binding:"required"`
}

type AddNoteBody struct {
	Note string `json:"note" binding:"required,max=5000"`
}

type RegenerateBody struct {
	Count int `json:"count" binding:"required,min=1"`
}

func parsePageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	return page, pageSize
}

package dto

import (
	"time"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
)

type ServiceRequestDTO struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ClientID         string     `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name,omitempty"`
	ClientEmail      string     `json:"client_email,omitempty"`
	Category         string     `json:"category"`
	Priority         int        `json:"priority"`
	PriorityLabel    string     `json:"priority_label"`
	Status           string     `json:"status"`
	AssignedTo       string     `json:"assigned_to,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	EstimatedHours   float64    `json:"estimated_hours,omitempty"`
	ActualHours      float64    `json:"actual_hours,omitempty"`
	IsInvoiced       bool       `json:"is_invoiced,omitempty"`
	SourceMessageIDs []string   `json:"source_message_ids"`
	Tags             []string   `json:"tags,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	Attachments      []string   `json:"attachments,omitempty"`
	ImageURL         string     `json:"image_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type ListServiceRequestsResult struct {
	Items   []*ServiceRequestDTO `json:"items"`
	Total   int64                `json:"total"`
	Page    int                  `json:"page"`
	HasMore bool                 `json:"has_more"`
}

func ToServiceRequestDTO(sr *servicerequest.ServiceRequest) *ServiceRequestDTO {
	if sr == nil {
		return nil
	}
	return &ServiceRequestDTO{
		ID:               sr.ID,
		Title:            sr.Title,
		Description:      sr.Description,
		ClientID:         sr.ClientID,
		ClientName:       sr.ClientName,
		ClientEmail:      sr.ClientEmail,
		Category:         sr.Category,
		Priority:         sr.Priority.Int(),
		PriorityLabel:    sr.Priority.Label(),
		Status:           sr.Status.String(),
		AssignedTo:       sr.AssignedTo,
		DueDate:          sr.DueDate,
		EstimatedHours:   sr.EstimatedHours,
		ActualHours:      sr.ActualHours,
		IsInvoiced:       sr.IsInvoiced,
		SourceMessageIDs: sr.SourceMessageIDs,
		Tags:             sr.Tags,
		Notes:            sr.Notes,
		Attachments:      sr.Attachments,
		ImageURL:         sr.ImageURL,
		CreatedAt:        sr.CreatedAt,
		UpdatedAt:        sr.UpdatedAt,
	}
}

func ToServiceRequestDTOs(requests []*servicerequest.ServiceRequest) []*ServiceRequestDTO {
	out := make([]*ServiceRequestDTO, 0, len(requests))
	for _, sr := range requests {
		out = append(out, ToServiceRequestDTO(sr))
	}
	return out
}

package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/models"
)

// ServiceRequestMapper handles the conversion between ServiceRequest
// domain entities and persistence models.
type ServiceRequestMapper interface {
	ToModel(sr *servicerequest.ServiceRequest) (*models.ServiceRequestModel, error)
	ToDomain(model *models.ServiceRequestModel) (*servicerequest.ServiceRequest, error)
}

type ServiceRequestMapperImpl struct{}

func NewServiceRequestMapper() ServiceRequestMapper {
	return &ServiceRequestMapperImpl{}
}

func (m *ServiceRequestMapperImpl) ToModel(sr *servicerequest.ServiceRequest) (*models.ServiceRequestModel, error) {
	model := &models.ServiceRequestModel{
		ID:             sr.ID,
		Title:          sr.Title,
		Description:    sr.Description,
		ClientID:       sr.ClientID,
		ClientName:     sr.ClientName,
		ClientEmail:    sr.ClientEmail,
		Category:       sr.Category,
		Priority:       sr.Priority.Int(),
		Status:         sr.Status.String(),
		AssignedTo:     sr.AssignedTo,
		EstimatedHours: sr.EstimatedHours,
		ActualHours:    sr.ActualHours,
		IsInvoiced:     sr.IsInvoiced,
		Notes:          sr.Notes,
		ImageURL:       sr.ImageURL,
		CreatedAt:      sr.CreatedAt.UnixMilli(),
		UpdatedAt:      sr.UpdatedAt.UnixMilli(),
	}

	if sr.DueDate != nil {
		due := sr.DueDate.UnixMilli()
		model.DueDate = &due
	}

	var err error
	if model.SourceMessageIDs, err = marshalStrings(sr.SourceMessageIDs); err != nil {
		return nil, fmt.Errorf("marshal source message ids: %w", err)
	}
	if model.Tags, err = marshalStrings(sr.Tags); err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	if model.Attachments, err = marshalStrings(sr.Attachments); err != nil {
		return nil, fmt.Errorf("marshal attachments: %w", err)
	}

	return model, nil
}

func (m *ServiceRequestMapperImpl) ToDomain(model *models.ServiceRequestModel) (*servicerequest.ServiceRequest, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	sr := &servicerequest.ServiceRequest{
		ID:             model.ID,
		Title:          model.Title,
		Description:    model.Description,
		ClientID:       model.ClientID,
		ClientName:     model.ClientName,
		ClientEmail:    model.ClientEmail,
		Category:       model.Category,
		Priority:       priority,
		Status:         status,
		AssignedTo:     model.AssignedTo,
		EstimatedHours: model.EstimatedHours,
		ActualHours:    model.ActualHours,
		IsInvoiced:     model.IsInvoiced,
		Notes:          model.Notes,
		ImageURL:       model.ImageURL,
		CreatedAt:      time.UnixMilli(model.CreatedAt),
		UpdatedAt:      time.UnixMilli(model.UpdatedAt),
	}

	if model.DueDate != nil {
		due := time.UnixMilli(*model.DueDate)
		sr.DueDate = &due
	}

	if sr.SourceMessageIDs, err = unmarshalStrings(model.SourceMessageIDs); err != nil {
		return nil, fmt.Errorf("unmarshal source message ids: %w", err)
	}
	if sr.SourceMessageIDs == nil {
		sr.SourceMessageIDs = []string{}
	}
	if sr.Tags, err = unmarshalStrings(model.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if sr.Attachments, err = unmarshalStrings(model.Attachments); err != nil {
		return nil, fmt.Errorf("unmarshal attachments: %w", err)
	}

	return sr, nil
}

func marshalStrings(values []string) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}
	return json.Marshal(values)
}

func unmarshalStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

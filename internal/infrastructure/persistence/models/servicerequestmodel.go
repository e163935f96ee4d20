package models

import (
	"gorm.io/datatypes"

	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type ServiceRequestModel struct {
	ID               string `gorm:"primaryKey;size:50"`
	Title            string `gorm:"size:200;not null"`
	Description      string `gorm:"type:text;not null"`
	ClientID         string `gorm:"size:50;index"`
	ClientName       string `gorm:"size:100"`
	ClientEmail      string `gorm:"size:255"`
	Category         string `gorm:"size:50;not null;index"`
	Priority         int    `gorm:"not null;index"`
	Status           string `gorm:"size:30;not null;index"`
	AssignedTo       string `gorm:"size:100;index"`
	DueDate          *int64
	EstimatedHours   float64
	ActualHours      float64
	IsInvoiced       bool           `gorm:"not null;default:false"`
	SourceMessageIDs datatypes.JSON `gorm:"column:source_message_ids"`
	Tags             datatypes.JSON
	Notes            string `gorm:"type:text"`
	Attachments      datatypes.JSON
	ImageURL         string `gorm:"size:500"`
	CreatedAt        int64  `gorm:"not null;index"`
	UpdatedAt        int64  `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ServiceRequestModel) TableName() string {
	return constants.TableServiceRequests
}

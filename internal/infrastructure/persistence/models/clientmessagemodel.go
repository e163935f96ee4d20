package models

import (
	"gorm.io/datatypes"

	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type ClientMessageModel struct {
	ID               string `gorm:"primaryKey;size:50"`
	ClientID         string `gorm:"size:50;not null;index"`
	ClientName       string `gorm:"size:100;not null"`
	ClientEmail      string `gorm:"size:255;not null"`
	Subject          string `gorm:"size:255;not null"`
	Content          string `gorm:"type:text;not null"`
	Attachments      datatypes.JSON
	Received         int64  `gorm:"not null;index"`
	IsRead           bool   `gorm:"not null;default:false;index"`
	IsFlagged        bool   `gorm:"not null;default:false"`
	Category         string `gorm:"size:30;index"`
	Status           string `gorm:"size:30;not null;index"`
	AssignedTo       string `gorm:"size:100"`
	RelatedServiceID string `gorm:"size:50;index"`
}

func (ClientMessageModel) TableName() string {
	return constants.TableClientMessages
}

// MessageThreadModel stores a whole conversation per row. Thread messages
// are exclusively owned by their thread, so they live in a JSON column
// rather than a joined table.
type MessageThreadModel struct {
	ID               string         `gorm:"primaryKey;size:50"`
	Messages         datatypes.JSON `gorm:"not null"`
	ServiceRequestID string         `gorm:"size:50;index"`
	IsArchived       bool           `gorm:"not null;default:false"`
}

func (MessageThreadModel) TableName() string {
	return constants.TableMessageThreads
}

package models

import "github.com/incidentdesk/incidentdesk/internal/shared/constants"

// TicketModel stores timestamps as unix milliseconds.
// reference_number is deliberately not unique: admins may override it freely.
type TicketModel struct {
	ID                    uint    `gorm:"primaryKey"`
	ReferenceNumber       string  `gorm:"size:16;not null;default:'';index"`
	Title                 string  `gorm:"size:200;not null"`
	Description           string  `gorm:"type:text;not null"`
	Status                string  `gorm:"size:20;not null;index"`
	CreatorID             uint    `gorm:"not null;index"`
	ZoneID                *uint   `gorm:"index"`
	PhotoReference        *string `gorm:"size:500"`
	RejectionReason       *string `gorm:"type:text"`
	AcknowledgedByCreator bool    `gorm:"not null;default:false"`
	CreatedAt             int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt             int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID               uint   `gorm:"primaryKey"`
	TicketID         uint   `gorm:"not null;index"`
	AuthorID         uint   `gorm:"not null;index"`
	AuthorAccessCode string `gorm:"size:4;not null"`
	Text             string `gorm:"type:text;not null"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

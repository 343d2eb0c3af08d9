package models

import (
	"time"

	"github.com/incidentdesk/incidentdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID          uint   `gorm:"primarykey"`
	DisplayName string `gorm:"not null;size:100"`
	AccessCode  string `gorm:"uniqueIndex:idx_users_access_code;not null;size:4"`
	Role        string `gorm:"not null;default:user;size:10;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

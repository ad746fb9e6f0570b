package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/enums"
)

// User represents the canonical identity entity. Accounts are provisioned
// upstream; this service only reads them for access checks and profile data.
type User struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Username    string           `gorm:"column:username;not null"`
	PhoneNumber *string          `gorm:"column:phone_number"`
	Role        enums.UserRole   `gorm:"column:role;type:text;not null;default:'customer'"`
	Status      enums.UserStatus `gorm:"column:status;type:text;not null;default:'active'"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

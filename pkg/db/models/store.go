package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/types"
)

// Store represents the canonical tenant model. Each owner has at most one
// store; the unique index on owner_id enforces that.
type Store struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID           `gorm:"column:owner_id;type:uuid;not null;uniqueIndex"`
	DisplayName   string              `gorm:"column:display_name;not null"`
	Description   *string             `gorm:"column:description"`
	Email         *string             `gorm:"column:email"`
	Logo          *string             `gorm:"column:logo"`
	Contact       types.Contact       `gorm:"column:contact;type:jsonb"`
	BusinessHours types.BusinessHours `gorm:"column:business_hours;type:jsonb"`
	QuickHelp     types.QuickHelp     `gorm:"column:quick_help;type:jsonb"`
	AboutUs       types.AboutUs       `gorm:"column:about_us;type:jsonb"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

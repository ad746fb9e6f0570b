package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/types"
)

// SocialLinks holds the whole ordered link set for a store as one row.
// Saves replace the document, so there is exactly one row per store.
type SocialLinks struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID            `gorm:"column:store_id;type:uuid;not null;uniqueIndex"`
	Links     types.SocialLinkList `gorm:"column:links;type:jsonb"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (s *SocialLinks) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

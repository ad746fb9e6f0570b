package stores

import (
	"time"

	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	"github.com/storelinkhq/storelink-backend/pkg/types"
)

// WebContentDTO is the transport shape of a store's public content block.
type WebContentDTO struct {
	StoreID       uuid.UUID           `json:"storeId"`
	DisplayName   string              `json:"displayName"`
	Description   *string             `json:"description,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Logo          *string             `json:"logo,omitempty"`
	Contact       types.Contact       `json:"contact"`
	BusinessHours types.BusinessHours `json:"businessHours"`
	QuickHelp     types.QuickHelp     `json:"quickHelp"`
	AboutUs       types.AboutUs       `json:"aboutUs"`
}

// StoreBasicsDTO is the trimmed store block inside the admin basic payload.
type StoreBasicsDTO struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Description *string   `json:"description,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Logo        *string   `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StoreFullDTO is the complete store document inside the admin payload.
type StoreFullDTO struct {
	ID            uuid.UUID           `json:"id"`
	OwnerID       uuid.UUID           `json:"ownerId"`
	DisplayName   string              `json:"displayName"`
	Description   *string             `json:"description,omitempty"`
	Email         *string             `json:"email,omitempty"`
	Logo          *string             `json:"logo,omitempty"`
	Contact       types.Contact       `json:"contact"`
	BusinessHours types.BusinessHours `json:"businessHours"`
	QuickHelp     types.QuickHelp     `json:"quickHelp"`
	AboutUs       types.AboutUs       `json:"aboutUs"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// CreateContentInput carries the fields accepted when a store is first created.
type CreateContentInput struct {
	DisplayName   string               `json:"displayName"`
	Description   *string              `json:"description"`
	Email         *string              `json:"email" validate:"omitempty,email"`
	Logo          *string              `json:"logo"`
	Contact       *types.Contact       `json:"contact"`
	BusinessHours *types.BusinessHours `json:"businessHours"`
	QuickHelp     *types.QuickHelp     `json:"quickHelp"`
	AboutUs       *types.AboutUs       `json:"aboutUs"`
}

// UpdateContentInput carries the sparse update fields. Nil pointers leave the
// stored value untouched.
type UpdateContentInput struct {
	DisplayName   *string              `json:"displayName"`
	Description   *string              `json:"description"`
	Email         *string              `json:"email" validate:"omitempty,email"`
	Logo          *string              `json:"logo"`
	Contact       *types.Contact       `json:"contact"`
	BusinessHours *types.BusinessHours `json:"businessHours"`
	QuickHelp     *types.QuickHelp     `json:"quickHelp"`
	AboutUs       *types.AboutUs       `json:"aboutUs"`
}

func contentFromModel(s *models.Store) *WebContentDTO {
	if s == nil {
		return nil
	}

	return &WebContentDTO{
		StoreID:       s.ID,
		DisplayName:   s.DisplayName,
		Description:   s.Description,
		Email:         s.Email,
		Logo:          s.Logo,
		Contact:       s.Contact,
		BusinessHours: s.BusinessHours,
		QuickHelp:     s.QuickHelp,
		AboutUs:       s.AboutUs,
	}
}

func fullFromModel(s *models.Store) *StoreFullDTO {
	if s == nil {
		return nil
	}

	return &StoreFullDTO{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		DisplayName:   s.DisplayName,
		Description:   s.Description,
		Email:         s.Email,
		Logo:          s.Logo,
		Contact:       s.Contact,
		BusinessHours: s.BusinessHours,
		QuickHelp:     s.QuickHelp,
		AboutUs:       s.AboutUs,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func basicsFromModel(s *models.Store) *StoreBasicsDTO {
	if s == nil {
		return nil
	}

	return &StoreBasicsDTO{
		ID:          s.ID,
		DisplayName: s.DisplayName,
		Description: s.Description,
		Email:       s.Email,
		Logo:        s.Logo,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

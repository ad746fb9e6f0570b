package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
)

// ProfileDTO is the transport shape of an account as shown to its owner.
type ProfileDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(u *models.User) *ProfileDTO {
	if u == nil {
		return nil
	}

	return &ProfileDTO{
		ID:          u.ID,
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role.String(),
		Status:      u.Status.String(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

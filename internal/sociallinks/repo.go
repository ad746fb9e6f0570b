package sociallinks

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	"github.com/storelinkhq/storelink-backend/pkg/types"
)

// Repository handles social link persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to social link operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByStore loads the store's link document.
func (r *Repository) FindByStore(ctx context.Context, storeID uuid.UUID) (*models.SocialLinks, error) {
	var doc models.SocialLinks
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// Upsert replaces the store's whole link set, creating the row when absent.
func (r *Repository) Upsert(ctx context.Context, storeID uuid.UUID, links types.SocialLinkList) error {
	doc := &models.SocialLinks{
		StoreID: storeID,
		Links:   links,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"links", "updated_at"}),
		}).
		Create(doc).Error
}

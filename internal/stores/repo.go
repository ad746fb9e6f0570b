package stores

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
)

// Repository handles store persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to store operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new store row.
func (r *Repository) Create(ctx context.Context, store *models.Store) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	return r.db.WithContext(ctx).Create(store).Error
}

// FindByOwner loads the owner's store. Each owner has at most one.
func (r *Repository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// ResolveIDByOwner returns only the store id for an owner, the hot path
// behind every product operation.
func (r *Repository) ResolveIDByOwner(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("owner_id = ?", ownerID).
		First(&store).Error; err != nil {
		return uuid.Nil, err
	}
	return store.ID, nil
}

// Update saves the provided store.
func (r *Repository) Update(ctx context.Context, store *models.Store) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	return r.db.WithContext(ctx).Save(store).Error
}

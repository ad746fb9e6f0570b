package product

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	"github.com/storelinkhq/storelink-backend/pkg/enums"
	"github.com/storelinkhq/storelink-backend/pkg/pagination"
)

// ListFilter narrows catalog listings. Nil members leave the dimension open.
type ListFilter struct {
	Category *enums.ProductCategory
	InStock  *bool
}

// Repository handles catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindByID loads the product regardless of store or soft-delete state.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// NameExists reports whether a product with the same name already lives in
// the store. The match is case-insensitive and spans soft-deleted rows.
func (r *Repository) NameExists(ctx context.Context, storeID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("store_id = ? AND LOWER(name) = LOWER(?)", storeID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one catalog page for the store plus the total row count over
// the same filter. Soft-deleted rows never appear.
func (r *Repository) List(ctx context.Context, storeID uuid.UUID, filter ListFilter, params pagination.Params) ([]models.Product, int64, error) {
	params = params.Normalize()

	query := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("store_id = ? AND soft_delete = ?", storeID, false)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update applies the provided column set and returns the updated row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.Product, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.Product{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// IncrementViews bumps the view counter atomically in the database.
func (r *Repository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("total_views", gorm.Expr("total_views + ?", 1)).
		Error
}

// SoftDelete flips the soft-delete flag and reports whether a row matched.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("soft_delete", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

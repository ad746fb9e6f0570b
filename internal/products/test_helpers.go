package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	"github.com/storelinkhq/storelink-backend/pkg/enums"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
)

func mustCreateTestStore(t *testing.T, tx *gorm.DB, ownerID uuid.UUID) *models.Store {
	t.Helper()
	store := &models.Store{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		DisplayName: "Catalog Test Store",
	}
	if err := tx.Create(store).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, storeID uuid.UUID, name string) *models.Product {
	t.Helper()
	listing := &models.Product{
		ID:            uuid.New(),
		StoreID:       storeID,
		Name:          name,
		Category:      enums.ProductCategoryPopular,
		Images:        []string{},
		ActualPrice:   100,
		TotalQuantity: 5,
		InStock:       true,
		KeyFeatures:   []string{},
	}
	if err := tx.Create(listing).Error; err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	return listing
}

// dbStoreResolver resolves owners against the test database directly so
// service tests do not need the stores package.
type dbStoreResolver struct {
	db *gorm.DB
}

func (r *dbStoreResolver) ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).Select("id").Where("owner_id = ?", ownerID).First(&store).Error; err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found for this owner")
	}
	return store.ID, nil
}

func assertErrorCode(t *testing.T, err error, code pkgerrors.Code, message string) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != code {
		t.Fatalf("expected code %s, got %s (%v)", code, typed.Code(), err)
	}
	if message != "" && typed.Message() != message {
		t.Fatalf("expected message %q, got %q", message, typed.Message())
	}
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s%s", prefix, uuid.NewString()[:4])
}

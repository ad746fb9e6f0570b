package product

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/pkg/enums"
	"github.com/storelinkhq/storelink-backend/pkg/pagination"
)

func TestNameExists(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	store := mustCreateTestStore(t, db, uuid.New())
	other := mustCreateTestStore(t, db, uuid.New())

	mustCreateTestProduct(t, db, store.ID, "RedMug12")

	t.Run("case-insensitive match", func(t *testing.T) {
		exists, err := repo.NameExists(context.Background(), store.ID, "redmug12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Fatal("expected case-insensitive duplicate")
		}
	})

	t.Run("scoped to store", func(t *testing.T) {
		exists, err := repo.NameExists(context.Background(), other.ID, "RedMug12")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Fatal("duplicate check leaked across stores")
		}
	})

	t.Run("spans soft-deleted rows", func(t *testing.T) {
		deleted := mustCreateTestProduct(t, db, store.ID, "GoneMug99")
		if ok, err := repo.SoftDelete(context.Background(), deleted.ID); err != nil || !ok {
			t.Fatalf("soft delete: ok=%v err=%v", ok, err)
		}
		exists, err := repo.NameExists(context.Background(), store.ID, "gonemug99")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Fatal("expected soft-deleted row to count as duplicate")
		}
	})
}

func TestListFiltersAndPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	store := mustCreateTestStore(t, db, uuid.New())

	for i := 0; i < 25; i++ {
		mustCreateTestProduct(t, db, store.ID, uniqueName("PagedMug"))
	}
	limited := mustCreateTestProduct(t, db, store.ID, "ScarceMug7")
	db.Model(limited).Updates(map[string]any{"category": enums.ProductCategoryLimited, "in_stock": false})

	t.Run("pages of ten", func(t *testing.T) {
		filter := ListFilter{}
		page1, total, err := repo.List(context.Background(), store.ID, filter, pagination.Params{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("page 1: %v", err)
		}
		if total != 26 || len(page1) != 10 {
			t.Fatalf("page 1: total=%d len=%d", total, len(page1))
		}
		page3, _, err := repo.List(context.Background(), store.ID, filter, pagination.Params{Page: 3, Limit: 10})
		if err != nil {
			t.Fatalf("page 3: %v", err)
		}
		if len(page3) != 6 {
			t.Fatalf("page 3: len=%d", len(page3))
		}
		page4, _, err := repo.List(context.Background(), store.ID, filter, pagination.Params{Page: 4, Limit: 10})
		if err != nil {
			t.Fatalf("page 4: %v", err)
		}
		if len(page4) != 0 {
			t.Fatalf("expected empty page past the end, got %d rows", len(page4))
		}
	})

	t.Run("category filter", func(t *testing.T) {
		category := enums.ProductCategoryLimited
		rows, total, err := repo.List(context.Background(), store.ID, ListFilter{Category: &category}, pagination.Params{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 || len(rows) != 1 || rows[0].Name != "ScarceMug7" {
			t.Fatalf("category filter: total=%d rows=%d", total, len(rows))
		}
	})

	t.Run("in-stock filter", func(t *testing.T) {
		outOfStock := false
		rows, total, err := repo.List(context.Background(), store.ID, ListFilter{InStock: &outOfStock}, pagination.Params{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 1 || len(rows) != 1 || rows[0].InStock {
			t.Fatalf("in-stock filter: total=%d rows=%d", total, len(rows))
		}
	})

	t.Run("excludes soft-deleted", func(t *testing.T) {
		victim := mustCreateTestProduct(t, db, store.ID, "BriefMug11")
		if ok, err := repo.SoftDelete(context.Background(), victim.ID); err != nil || !ok {
			t.Fatalf("soft delete: ok=%v err=%v", ok, err)
		}
		_, total, err := repo.List(context.Background(), store.ID, ListFilter{}, pagination.Params{Limit: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 26 {
			t.Fatalf("soft-deleted row leaked into listing, total=%d", total)
		}
	})
}

func TestIncrementViews(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	store := mustCreateTestStore(t, db, uuid.New())
	listing := mustCreateTestProduct(t, db, store.ID, "ViewedMug3")

	for i := 0; i < 3; i++ {
		if err := repo.IncrementViews(context.Background(), listing.ID); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}

	reloaded, err := repo.FindByID(context.Background(), listing.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.TotalViews != 3 {
		t.Fatalf("expected 3 views, got %d", reloaded.TotalViews)
	}
}

func TestUpdateSparseFields(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	store := mustCreateTestStore(t, db, uuid.New())
	listing := mustCreateTestProduct(t, db, store.ID, "TweakMug5")

	updated, err := repo.Update(context.Background(), listing.ID, map[string]any{"actual_price": 150.0})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ActualPrice != 150 {
		t.Fatalf("price not updated: %v", updated.ActualPrice)
	}
	if updated.Name != "TweakMug5" || updated.TotalQuantity != 5 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	t.Run("empty field set reloads", func(t *testing.T) {
		same, err := repo.Update(context.Background(), listing.ID, map[string]any{})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if same.ActualPrice != 150 {
			t.Fatalf("unexpected reload %+v", same)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		if _, err := repo.Update(context.Background(), uuid.New(), map[string]any{"name": "NoSuchMug"}); err == nil {
			t.Fatal("expected error for missing row")
		}
	})
}

package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	"github.com/storelinkhq/storelink-backend/pkg/enums"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:users_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate users: %v", err)
	}
	return db
}

func mustCreateTestUser(t *testing.T, db *gorm.DB, status enums.UserStatus) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: "owner_" + uuid.NewString()[:8],
		Role:     enums.UserRoleOwner,
		Status:   status,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestEnsureActive(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewService(NewRepository(db))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	t.Run("active account passes", func(t *testing.T) {
		user := mustCreateTestUser(t, db, enums.UserStatusActive)
		if err := svc.EnsureActive(context.Background(), user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown account is forbidden", func(t *testing.T) {
		err := svc.EnsureActive(context.Background(), uuid.New())
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if typed.Message() != "User not found" {
			t.Fatalf("unexpected message %q", typed.Message())
		}
	})

	t.Run("suspended account names its status", func(t *testing.T) {
		user := mustCreateTestUser(t, db, enums.UserStatusSuspended)
		err := svc.EnsureActive(context.Background(), user.ID)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if typed.Message() != "User account is suspended" {
			t.Fatalf("unexpected message %q", typed.Message())
		}
	})
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	svc, err := NewService(NewRepository(db))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	user := mustCreateTestUser(t, db, enums.UserStatusActive)
	profile, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID != user.ID || profile.Username != user.Username {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.Role != "owner" || profile.Status != "active" {
		t.Fatalf("unexpected role/status %q/%q", profile.Role, profile.Status)
	}

	if _, err := svc.GetProfile(context.Background(), uuid.New()); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

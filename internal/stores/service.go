package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/db"
	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/redis"
)

// resolveCacheTTL bounds how long an owner to store mapping may be served
// from Redis before it is re-read from the database.
const resolveCacheTTL = time.Hour

// Service exposes store content and resolution operations.
type Service interface {
	ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error)
	CreateContent(ctx context.Context, ownerID uuid.UUID, input CreateContentInput) (*WebContentDTO, error)
	UpdateContent(ctx context.Context, ownerID uuid.UUID, input UpdateContentInput) (*WebContentDTO, error)
	GetContent(ctx context.Context, ownerID uuid.UUID) (*WebContentDTO, error)
	GetBasics(ctx context.Context, ownerID uuid.UUID) (*StoreBasicsDTO, error)
	GetFull(ctx context.Context, ownerID uuid.UUID) (*StoreFullDTO, error)
}

type service struct {
	repo  *Repository
	cache *redis.Client
}

// NewService builds a store service. The cache client may be nil; resolution
// then always hits the database.
func NewService(repo *Repository, cache *redis.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	return &service{repo: repo, cache: cache}, nil
}

// ResolveStoreID maps an owner to their store id, serving from Redis when the
// mapping is cached and falling through to the database otherwise.
func (s *service) ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	key := s.cache.StoreIDKey(ownerID.String())
	if cached, err := s.cache.Get(ctx, key); err == nil {
		if id, parseErr := uuid.Parse(cached); parseErr == nil {
			return id, nil
		}
	}

	id, err := s.repo.ResolveIDByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found for this owner")
		}
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve store")
	}

	// Best effort; a cold cache only costs an extra lookup next time.
	_ = s.cache.Set(ctx, key, id.String(), resolveCacheTTL)
	return id, nil
}

// CreateContent provisions the owner's store. Each owner gets exactly one.
func (s *service) CreateContent(ctx context.Context, ownerID uuid.UUID, input CreateContentInput) (*WebContentDTO, error) {
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Display name is required")
	}

	store := &models.Store{
		OwnerID:     ownerID,
		DisplayName: displayName,
		Description: input.Description,
		Email:       input.Email,
		Logo:        input.Logo,
	}
	if input.Contact != nil {
		store.Contact = *input.Contact
	}
	if input.BusinessHours != nil {
		store.BusinessHours = *input.BusinessHours
	}
	if input.QuickHelp != nil {
		store.QuickHelp = *input.QuickHelp
	}
	if input.AboutUs != nil {
		store.AboutUs = *input.AboutUs
	}

	if err := s.repo.Create(ctx, store); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Store already exists for this owner")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create store")
	}

	_ = s.cache.Set(ctx, s.cache.StoreIDKey(ownerID.String()), store.ID.String(), resolveCacheTTL)
	return contentFromModel(store), nil
}

// UpdateContent applies a sparse merge over the stored content block.
func (s *service) UpdateContent(ctx context.Context, ownerID uuid.UUID, input UpdateContentInput) (*WebContentDTO, error) {
	store, err := s.loadByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		trimmed := strings.TrimSpace(*input.DisplayName)
		if trimmed == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "Display name is required")
		}
		store.DisplayName = trimmed
	}
	if input.Description != nil {
		store.Description = input.Description
	}
	if input.Email != nil {
		store.Email = input.Email
	}
	if input.Logo != nil {
		store.Logo = input.Logo
	}
	if input.Contact != nil {
		store.Contact = *input.Contact
	}
	if input.BusinessHours != nil {
		store.BusinessHours = *input.BusinessHours
	}
	if input.QuickHelp != nil {
		store.QuickHelp = *input.QuickHelp
	}
	if input.AboutUs != nil {
		store.AboutUs = *input.AboutUs
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update store")
	}
	return contentFromModel(store), nil
}

// GetContent returns the owner's full content block.
func (s *service) GetContent(ctx context.Context, ownerID uuid.UUID) (*WebContentDTO, error) {
	store, err := s.loadByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return contentFromModel(store), nil
}

// GetBasics returns the trimmed store block for the admin summary.
func (s *service) GetBasics(ctx context.Context, ownerID uuid.UUID) (*StoreBasicsDTO, error) {
	store, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found for this owner")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load store")
	}
	return basicsFromModel(store), nil
}

// GetFull returns the complete store document for the admin detail view.
func (s *service) GetFull(ctx context.Context, ownerID uuid.UUID) (*StoreFullDTO, error) {
	store, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found for this owner")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load store")
	}
	return fullFromModel(store), nil
}

func (s *service) loadByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Store, error) {
	store, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load store")
	}
	return store, nil
}

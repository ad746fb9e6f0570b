package sociallinks

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/types"
)

type storeResolver interface {
	ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error)
}

// Service exposes the storefront link tree operations.
type Service interface {
	Get(ctx context.Context, ownerID uuid.UUID) ([]types.SocialLink, error)
	Replace(ctx context.Context, ownerID uuid.UUID, links *[]types.SocialLink) error
}

type service struct {
	repo   *Repository
	stores storeResolver
}

// NewService constructs a social links service instance.
func NewService(repo *Repository, stores storeResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("social links repository required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store resolver required")
	}
	return &service{repo: repo, stores: stores}, nil
}

// Get returns the owner's ordered link set. A store without a saved document
// yields an empty list, not an error.
func (s *service) Get(ctx context.Context, ownerID uuid.UUID) ([]types.SocialLink, error) {
	storeID, err := s.stores.ResolveStoreID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	doc, err := s.repo.FindByStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []types.SocialLink{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load social links")
	}
	if doc.Links == nil {
		return []types.SocialLink{}, nil
	}
	return doc.Links, nil
}

// Replace validates every entry and swaps the whole link set in one write.
// One bad entry rejects the entire batch.
func (s *service) Replace(ctx context.Context, ownerID uuid.UUID, links *[]types.SocialLink) error {
	storeID, err := s.stores.ResolveStoreID(ctx, ownerID)
	if err != nil {
		return err
	}

	if links == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "socialLinks array is required")
	}

	cleaned := make(types.SocialLinkList, 0, len(*links))
	for _, link := range *links {
		title := strings.TrimSpace(link.Title)
		rawURL := strings.TrimSpace(link.URL)
		if title == "" || rawURL == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "Each social link must have title and url")
		}
		parsed, parseErr := url.Parse(rawURL)
		if parseErr != nil || parsed.Scheme == "" || parsed.Host == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Invalid URL format: %s", link.URL))
		}
		cleaned = append(cleaned, types.SocialLink{Title: title, URL: rawURL})
	}

	if err := s.repo.Upsert(ctx, storeID, cleaned); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save social links")
	}
	return nil
}

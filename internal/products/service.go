package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
	dbtypes "github.com/storelinkhq/storelink-backend/pkg/db/types"
	"github.com/storelinkhq/storelink-backend/pkg/enums"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/pagination"
)

const (
	nameMinLen        = 5
	nameMaxLen        = 20
	descriptionMinLen = 10
	descriptionMaxLen = 200
	imagesMax         = 4
	keyFeaturesMin    = 2
	keyFeaturesMax    = 6
)

type storeResolver interface {
	ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error)
}

// Service exposes owner catalog management operations.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, input CreateInput) error
	List(ctx context.Context, ownerID uuid.UUID, input ListInput) (*ListResult, error)
	View(ctx context.Context, productID uuid.UUID) (*ProductDTO, error)
	Edit(ctx context.Context, productID uuid.UUID, input EditInput) (*ProductDTO, error)
	Delete(ctx context.Context, productID uuid.UUID) (*DeleteResult, error)
}

// CreateInput holds the catalog create payload. Zero values count as absent,
// mirroring the loose client contract.
type CreateInput struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Images            []string `json:"images"`
	ActualPrice       float64  `json:"actualPrice"`
	OfferPrice        float64  `json:"offerPrice"`
	TotalQuantity     int      `json:"totalQuantity"`
	AvailableLocation string   `json:"availableLocation"`
	InStock           *bool    `json:"inStock"`
	KeyFeatures       []string `json:"keyFeatures"`
}

// EditInput holds the sparse edit payload. Nil pointers mean the field was
// not sent and must not be touched.
type EditInput struct {
	Name              *string   `json:"name"`
	Description       *string   `json:"description"`
	Category          *string   `json:"category"`
	Images            *[]string `json:"images"`
	ActualPrice       *float64  `json:"actualPrice"`
	OfferPrice        *float64  `json:"offerPrice"`
	TotalQuantity     *int      `json:"totalQuantity"`
	AvailableLocation *string   `json:"availableLocation"`
	InStock           *bool     `json:"inStock"`
	KeyFeatures       *[]string `json:"keyFeatures"`
}

// ListInput carries the catalog listing query.
type ListInput struct {
	Page     int
	Limit    int
	Category string
	InStock  *bool
}

type service struct {
	repo   *Repository
	stores storeResolver
}

// NewService constructs a product service instance.
func NewService(repo *Repository, stores storeResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store resolver required")
	}
	return &service{repo: repo, stores: stores}, nil
}

// Create validates and persists a new listing for the owner's store.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, input CreateInput) error {
	if input.Name == "" || input.Category == "" || input.ActualPrice == 0 || input.TotalQuantity == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields: name, category, actualPrice, totalQuantity")
	}

	category, err := enums.ParseProductCategory(input.Category)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Invalid category: %s", input.Category))
	}

	storeID, err := s.stores.ResolveStoreID(ctx, ownerID)
	if err != nil {
		return err
	}

	exists, err := s.repo.NameExists(ctx, storeID, input.Name)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check duplicate name")
	}
	if exists {
		return pkgerrors.New(pkgerrors.CodeConflict, "A product with the same name already exists in this store")
	}

	if input.ActualPrice <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Actual price must be greater than 0")
	}
	if input.OfferPrice != 0 && input.OfferPrice >= input.ActualPrice {
		return pkgerrors.New(pkgerrors.CodeValidation, "Offer price must be less than actual price")
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}
	keyFeatures := input.KeyFeatures
	if keyFeatures == nil {
		keyFeatures = []string{}
	}

	listing := &models.Product{
		StoreID:           storeID,
		Name:              input.Name,
		Description:       input.Description,
		Category:          category,
		Images:            images,
		ActualPrice:       input.ActualPrice,
		OfferPrice:        input.OfferPrice,
		TotalQuantity:     input.TotalQuantity,
		AvailableLocation: input.AvailableLocation,
		InStock:           inStock,
		KeyFeatures:       keyFeatures,
	}

	if err := validateListing(listing); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return nil
}

// List returns one page of the owner's catalog, newest first.
func (s *service) List(ctx context.Context, ownerID uuid.UUID, input ListInput) (*ListResult, error) {
	storeID, err := s.stores.ResolveStoreID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	filter := ListFilter{InStock: input.InStock}
	if input.Category != "" {
		category, parseErr := enums.ParseProductCategory(input.Category)
		if parseErr != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Invalid category: %s", input.Category))
		}
		filter.Category = &category
	}

	params := pagination.Params{Page: input.Page, Limit: input.Limit}.Normalize()
	items, total, err := s.repo.List(ctx, storeID, filter, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}

	totalPages := pagination.TotalPages(total, params.Limit)
	return &ListResult{
		Products: fromModels(items),
		Pagination: PaginationDTO{
			CurrentPage:   params.Page,
			TotalPages:    totalPages,
			TotalProducts: total,
			HasNextPage:   params.Page < totalPages,
			HasPrevPage:   params.Page > 1,
		},
	}, nil
}

// View loads a listing by id and bumps its view counter. The returned record
// carries the counter value from before the bump, and soft-deleted listings
// remain viewable by direct id.
func (s *service) View(ctx context.Context, productID uuid.UUID) (*ProductDTO, error) {
	listing, err := s.loadByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, productID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment views")
	}
	return fromModel(listing), nil
}

// Edit applies a sparse update to the listing and returns the updated record.
func (s *service) Edit(ctx context.Context, productID uuid.UUID, input EditInput) (*ProductDTO, error) {
	if input.ActualPrice != nil && *input.ActualPrice <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Actual price must be greater than 0")
	}
	if input.OfferPrice != nil && input.ActualPrice != nil &&
		*input.OfferPrice != 0 && *input.ActualPrice != 0 &&
		*input.OfferPrice >= *input.ActualPrice {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Offer price must be less than actual price")
	}

	existing, err := s.loadByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	merged := *existing
	if input.Name != nil {
		fields["name"] = *input.Name
		merged.Name = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
		merged.Description = *input.Description
	}
	if input.Category != nil {
		category, parseErr := enums.ParseProductCategory(*input.Category)
		if parseErr != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("Invalid category: %s", *input.Category))
		}
		fields["category"] = category
		merged.Category = category
	}
	if input.Images != nil {
		fields["images"] = dbtypes.StringList(*input.Images)
		merged.Images = *input.Images
	}
	if input.ActualPrice != nil {
		fields["actual_price"] = *input.ActualPrice
		merged.ActualPrice = *input.ActualPrice
	}
	if input.OfferPrice != nil {
		fields["offer_price"] = *input.OfferPrice
		merged.OfferPrice = *input.OfferPrice
	}
	if input.TotalQuantity != nil {
		fields["total_quantity"] = *input.TotalQuantity
		merged.TotalQuantity = *input.TotalQuantity
	}
	if input.AvailableLocation != nil {
		fields["available_location"] = *input.AvailableLocation
		merged.AvailableLocation = *input.AvailableLocation
	}
	if input.InStock != nil {
		fields["in_stock"] = *input.InStock
		merged.InStock = *input.InStock
	}
	if input.KeyFeatures != nil {
		fields["key_features"] = dbtypes.StringList(*input.KeyFeatures)
		merged.KeyFeatures = *input.KeyFeatures
	}

	if err := validateListing(&merged); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, productID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return fromModel(updated), nil
}

// Delete flips the soft-delete flag. Ownership of the listing is not checked
// here; callers only pass ids surfaced through their own catalog.
func (s *service) Delete(ctx context.Context, productID uuid.UUID) (*DeleteResult, error) {
	listing, err := s.loadByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.SoftDelete(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "soft delete product")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}

	return &DeleteResult{ProductID: listing.ID, ProductName: listing.Name}, nil
}

func (s *service) loadByID(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	listing, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return listing, nil
}

func validateListing(p *models.Product) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(p.Name)); n < nameMinLen || n > nameMaxLen {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Name must be between %d and %d characters", nameMinLen, nameMaxLen))
	}
	if p.Description != "" {
		if n := utf8.RuneCountInString(p.Description); n < descriptionMinLen || n > descriptionMaxLen {
			return pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("Description must be between %d and %d characters", descriptionMinLen, descriptionMaxLen))
		}
	}
	if p.TotalQuantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Total quantity must be at least 1")
	}
	if len(p.Images) > imagesMax {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Images cannot have more than %d entries", imagesMax))
	}
	if n := len(p.KeyFeatures); n > 0 && (n < keyFeaturesMin || n > keyFeaturesMax) {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("Key features must have between %d and %d entries", keyFeaturesMin, keyFeaturesMax))
	}
	return nil
}

package product

import (
	"time"

	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/pkg/db/models"
)

// ProductDTO is the transport shape of a catalog listing.
type ProductDTO struct {
	ID                uuid.UUID `json:"id"`
	StoreID           uuid.UUID `json:"storeId"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Images            []string  `json:"images"`
	ActualPrice       float64   `json:"actualPrice"`
	OfferPrice        float64   `json:"offerPrice"`
	TotalQuantity     int       `json:"totalQuantity"`
	AvailableLocation string    `json:"availableLocation"`
	InStock           bool      `json:"inStock"`
	KeyFeatures       []string  `json:"keyFeatures"`
	TotalViews        int64     `json:"totalViews"`
	TotalBuys         int64     `json:"totalBuys"`
	SoftDelete        bool      `json:"softDelete"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PaginationDTO describes one catalog page.
type PaginationDTO struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	HasNextPage   bool  `json:"hasNextPage"`
	HasPrevPage   bool  `json:"hasPrevPage"`
}

// ListResult bundles one catalog page with its pagination metadata.
type ListResult struct {
	Products   []ProductDTO  `json:"products"`
	Pagination PaginationDTO `json:"pagination"`
}

// DeleteResult confirms which listing was soft-deleted.
type DeleteResult struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
}

func fromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	return &ProductDTO{
		ID:                p.ID,
		StoreID:           p.StoreID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category.String(),
		Images:            p.Images,
		ActualPrice:       p.ActualPrice,
		OfferPrice:        p.OfferPrice,
		TotalQuantity:     p.TotalQuantity,
		AvailableLocation: p.AvailableLocation,
		InStock:           p.InStock,
		KeyFeatures:       p.KeyFeatures,
		TotalViews:        p.TotalViews,
		TotalBuys:         p.TotalBuys,
		SoftDelete:        p.SoftDelete,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func fromModels(items []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *fromModel(&items[i]))
	}
	return dtos
}

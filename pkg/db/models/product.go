package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbtypes "github.com/storelinkhq/storelink-backend/pkg/db/types"
	"github.com/storelinkhq/storelink-backend/pkg/enums"
)

// Product represents a catalog listing owned by a store. Deletion is a soft
// flag so listings drop out of the catalog without losing history.
type Product struct {
	ID                uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	StoreID           uuid.UUID             `gorm:"column:store_id;type:uuid;not null;index"`
	Name              string                `gorm:"column:name;not null"`
	Description       string                `gorm:"column:description;not null;default:''"`
	Category          enums.ProductCategory `gorm:"column:category;type:text;not null"`
	Images            dbtypes.StringList    `gorm:"column:images;type:jsonb"`
	ActualPrice       float64               `gorm:"column:actual_price;not null"`
	OfferPrice        float64               `gorm:"column:offer_price;not null;default:0"`
	TotalQuantity     int                   `gorm:"column:total_quantity;not null"`
	AvailableLocation string                `gorm:"column:available_location;not null;default:''"`
	InStock           bool                  `gorm:"column:in_stock;not null;default:true"`
	KeyFeatures       dbtypes.StringList    `gorm:"column:key_features;type:jsonb"`
	TotalViews        int64                 `gorm:"column:total_views;not null;default:0"`
	TotalBuys         int64                 `gorm:"column:total_buys;not null;default:0"`
	SoftDelete        bool                  `gorm:"column:soft_delete;not null;default:false"`
	CreatedAt         time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ColProductID        = "product_id"
	ColProductCompanyID = "product_company_id"
	ColProductBranchID  = "product_branch_id"
	ColProductIsGlobal  = "product_is_global"
	ColProductDeletedAt = "product_deleted_at"
)

// ProductModel represents the `products` table. A global product is
// owned by the company and sellable at every branch; a non-global one
// belongs to exactly one branch. Global rows keep a NULL branch.
type ProductModel struct {
	ProductID        uuid.UUID  `json:"product_id" gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductCompanyID uuid.UUID  `json:"product_company_id" gorm:"column:product_company_id;type:uuid;not null;index"`
	ProductBranchID  *uuid.UUID `json:"product_branch_id,omitempty" gorm:"column:product_branch_id;type:uuid;index"`
	ProductIsGlobal  bool       `json:"product_is_global" gorm:"column:product_is_global;not null;default:false"`

	ProductName        string         `json:"product_name" gorm:"column:product_name;type:varchar(160);not null"`
	ProductDescription *string        `json:"product_description,omitempty" gorm:"column:product_description;type:text"`
	ProductCategories  pq.StringArray `json:"product_categories" gorm:"column:product_categories;type:text[]"`
	ProductImageURL    *string        `json:"product_image_url,omitempty" gorm:"column:product_image_url;type:text"`

	ProductPriceCents int64 `json:"product_price_cents" gorm:"column:product_price_cents;not null;default:0"`
	ProductStock      int   `json:"product_stock" gorm:"column:product_stock;not null;default:0"`

	ProductIsActive bool `json:"product_is_active" gorm:"column:product_is_active;not null;default:true"`

	ProductCreatedAt time.Time  `json:"product_created_at" gorm:"column:product_created_at;not null;autoCreateTime"`
	ProductUpdatedAt *time.Time `json:"product_updated_at,omitempty" gorm:"column:product_updated_at"`
	ProductDeletedAt *time.Time `json:"product_deleted_at,omitempty" gorm:"column:product_deleted_at"`
}

func (ProductModel) TableName() string {
	return "products"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColProductSaleID        = "product_sale_id"
	ColProductSaleCompanyID = "product_sale_company_id"
	ColProductSaleBranchID  = "product_sale_branch_id"
)

// ProductSaleModel represents the `product_sales` table. A sale is an
// immutable record; mistakes are corrected by a same-day void, which
// restores stock and reverses the cash movement.
type ProductSaleModel struct {
	ProductSaleID        uuid.UUID `json:"product_sale_id" gorm:"column:product_sale_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductSaleCompanyID uuid.UUID `json:"product_sale_company_id" gorm:"column:product_sale_company_id;type:uuid;not null;index"`
	ProductSaleBranchID  uuid.UUID `json:"product_sale_branch_id" gorm:"column:product_sale_branch_id;type:uuid;not null;index"`

	ProductSaleProductID uuid.UUID `json:"product_sale_product_id" gorm:"column:product_sale_product_id;type:uuid;not null;index"`
	ProductSaleUserID    uuid.UUID `json:"product_sale_user_id" gorm:"column:product_sale_user_id;type:uuid;not null"`

	ProductSaleQuantity       int   `json:"product_sale_quantity" gorm:"column:product_sale_quantity;not null"`
	ProductSaleUnitPriceCents int64 `json:"product_sale_unit_price_cents" gorm:"column:product_sale_unit_price_cents;not null"`
	ProductSaleTotalCents     int64 `json:"product_sale_total_cents" gorm:"column:product_sale_total_cents;not null"`

	ProductSaleIsVoided bool       `json:"product_sale_is_voided" gorm:"column:product_sale_is_voided;not null;default:false"`
	ProductSaleVoidedAt *time.Time `json:"product_sale_voided_at,omitempty" gorm:"column:product_sale_voided_at"`

	ProductSaleCreatedAt time.Time `json:"product_sale_created_at" gorm:"column:product_sale_created_at;not null;autoCreateTime"`
}

func (ProductSaleModel) TableName() string {
	return "product_sales"
}

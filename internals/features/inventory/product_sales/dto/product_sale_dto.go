package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/inventory/product_sales/model"
)

type CreateProductSaleRequest struct {
	ProductSaleProductID uuid.UUID `json:"product_sale_product_id" validate:"required"`
	ProductSaleQuantity  int       `json:"product_sale_quantity" validate:"required,gt=0"`
}

type ListProductSaleQuery struct {
	BranchID  *uuid.UUID `query:"branch_id"`
	ProductID *uuid.UUID `query:"product_id"`
	DateFrom  *time.Time `query:"date_from"`
	DateTo    *time.Time `query:"date_to"`
}

type ProductSaleResponse struct {
	ProductSaleID             uuid.UUID  `json:"product_sale_id"`
	ProductSaleCompanyID      uuid.UUID  `json:"product_sale_company_id"`
	ProductSaleBranchID       uuid.UUID  `json:"product_sale_branch_id"`
	ProductSaleProductID      uuid.UUID  `json:"product_sale_product_id"`
	ProductSaleUserID         uuid.UUID  `json:"product_sale_user_id"`
	ProductSaleQuantity       int        `json:"product_sale_quantity"`
	ProductSaleUnitPriceCents int64      `json:"product_sale_unit_price_cents"`
	ProductSaleTotalCents     int64      `json:"product_sale_total_cents"`
	ProductSaleIsVoided       bool       `json:"product_sale_is_voided"`
	ProductSaleVoidedAt       *time.Time `json:"product_sale_voided_at,omitempty"`
	ProductSaleCreatedAt      time.Time  `json:"product_sale_created_at"`
}

func NewProductSaleResponse(m *model.ProductSaleModel) *ProductSaleResponse {
	if m == nil {
		return nil
	}
	return &ProductSaleResponse{
		ProductSaleID:             m.ProductSaleID,
		ProductSaleCompanyID:      m.ProductSaleCompanyID,
		ProductSaleBranchID:       m.ProductSaleBranchID,
		ProductSaleProductID:      m.ProductSaleProductID,
		ProductSaleUserID:         m.ProductSaleUserID,
		ProductSaleQuantity:       m.ProductSaleQuantity,
		ProductSaleUnitPriceCents: m.ProductSaleUnitPriceCents,
		ProductSaleTotalCents:     m.ProductSaleTotalCents,
		ProductSaleIsVoided:       m.ProductSaleIsVoided,
		ProductSaleVoidedAt:       m.ProductSaleVoidedAt,
		ProductSaleCreatedAt:      m.ProductSaleCreatedAt,
	}
}

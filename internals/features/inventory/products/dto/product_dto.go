package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"edufranchise_backend/internals/features/inventory/products/model"
)

type CreateProductRequest struct {
	ProductBranchID    *uuid.UUID `json:"product_branch_id"`
	ProductIsGlobal    bool       `json:"product_is_global"`
	ProductName        string     `json:"product_name" validate:"required,min=2,max=160"`
	ProductDescription *string    `json:"product_description"`
	ProductCategories  []string   `json:"product_categories" validate:"omitempty,dive,min=1,max=40"`
	ProductPriceCents  int64      `json:"product_price_cents" validate:"gte=0"`
	ProductStock       int        `json:"product_stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	ProductName        *string  `json:"product_name" validate:"omitempty,min=2,max=160"`
	ProductDescription *string  `json:"product_description"`
	ProductCategories  []string `json:"product_categories" validate:"omitempty,dive,min=1,max=40"`
	ProductPriceCents  *int64   `json:"product_price_cents" validate:"omitempty,gte=0"`
	ProductStock       *int     `json:"product_stock" validate:"omitempty,gte=0"`
	ProductIsActive    *bool    `json:"product_is_active"`
}

type ListProductQuery struct {
	BranchID   *uuid.UUID `query:"branch_id"`
	ActiveOnly *bool      `query:"active"`
	Category   *string    `query:"category"`
	Search     *string    `query:"search"`
}

type ProductResponse struct {
	ProductID          uuid.UUID  `json:"product_id"`
	ProductCompanyID   uuid.UUID  `json:"product_company_id"`
	ProductBranchID    *uuid.UUID `json:"product_branch_id,omitempty"`
	ProductIsGlobal    bool       `json:"product_is_global"`
	ProductName        string     `json:"product_name"`
	ProductDescription *string    `json:"product_description,omitempty"`
	ProductCategories  []string   `json:"product_categories"`
	ProductImageURL    *string    `json:"product_image_url,omitempty"`
	ProductPriceCents  int64      `json:"product_price_cents"`
	ProductStock       int        `json:"product_stock"`
	ProductIsActive    bool       `json:"product_is_active"`
	ProductCreatedAt   time.Time  `json:"product_created_at"`
	ProductUpdatedAt   *time.Time `json:"product_updated_at,omitempty"`
}

func NewProductResponse(m *model.ProductModel) *ProductResponse {
	if m == nil {
		return nil
	}
	categories := []string(m.ProductCategories)
	if categories == nil {
		categories = []string{}
	}
	return &ProductResponse{
		ProductID:          m.ProductID,
		ProductCompanyID:   m.ProductCompanyID,
		ProductBranchID:    m.ProductBranchID,
		ProductIsGlobal:    m.ProductIsGlobal,
		ProductName:        m.ProductName,
		ProductDescription: m.ProductDescription,
		ProductCategories:  categories,
		ProductImageURL:    m.ProductImageURL,
		ProductPriceCents:  m.ProductPriceCents,
		ProductStock:       m.ProductStock,
		ProductIsActive:    m.ProductIsActive,
		ProductCreatedAt:   m.ProductCreatedAt,
		ProductUpdatedAt:   m.ProductUpdatedAt,
	}
}

func (r *CreateProductRequest) ToModel(companyID uuid.UUID, branchID *uuid.UUID) *model.ProductModel {
	return &model.ProductModel{
		ProductCompanyID:   companyID,
		ProductBranchID:    branchID,
		ProductIsGlobal:    r.ProductIsGlobal,
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		ProductCategories:  pq.StringArray(r.ProductCategories),
		ProductPriceCents:  r.ProductPriceCents,
		ProductStock:       r.ProductStock,
		ProductIsActive:    true,
	}
}

func (r *UpdateProductRequest) ApplyToModel(m *model.ProductModel) {
	if r.ProductName != nil {
		m.ProductName = *r.ProductName
	}
	if r.ProductDescription != nil {
		m.ProductDescription = r.ProductDescription
	}
	if r.ProductCategories != nil {
		m.ProductCategories = pq.StringArray(r.ProductCategories)
	}
	if r.ProductPriceCents != nil {
		m.ProductPriceCents = *r.ProductPriceCents
	}
	if r.ProductStock != nil {
		m.ProductStock = *r.ProductStock
	}
	if r.ProductIsActive != nil {
		m.ProductIsActive = *r.ProductIsActive
	}
	now := time.Now()
	m.ProductUpdatedAt = &now
}

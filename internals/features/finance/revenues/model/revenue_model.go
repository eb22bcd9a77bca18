package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColRevenueID        = "revenue_id"
	ColRevenueCompanyID = "revenue_company_id"
	ColRevenueBranchID  = "revenue_branch_id"
)

const (
	RevenueSourceTuition     = "tuition"
	RevenueSourceProductSale = "product_sale"
	RevenueSourceOther       = "other"
)

// RevenueModel represents the `revenues` table. Tuition and sale rows
// are inserted by the payment webhook and the sales flow; only "other"
// rows are created by hand.
type RevenueModel struct {
	RevenueID        uuid.UUID `json:"revenue_id" gorm:"column:revenue_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RevenueCompanyID uuid.UUID `json:"revenue_company_id" gorm:"column:revenue_company_id;type:uuid;not null;index"`
	RevenueBranchID  uuid.UUID `json:"revenue_branch_id" gorm:"column:revenue_branch_id;type:uuid;not null;index"`

	RevenueSource      string  `json:"revenue_source" gorm:"column:revenue_source;type:varchar(20);not null"`
	RevenueDescription *string `json:"revenue_description,omitempty" gorm:"column:revenue_description;type:text"`

	// Points back to the payment or sale that produced this row.
	RevenueReferenceID *uuid.UUID `json:"revenue_reference_id,omitempty" gorm:"column:revenue_reference_id;type:uuid;index"`

	RevenueAmountCents int64     `json:"revenue_amount_cents" gorm:"column:revenue_amount_cents;not null"`
	RevenueDate        time.Time `json:"revenue_date" gorm:"column:revenue_date;type:date;not null"`

	RevenueCreatedAt time.Time `json:"revenue_created_at" gorm:"column:revenue_created_at;not null;autoCreateTime"`
}

func (RevenueModel) TableName() string {
	return "revenues"
}

func IsValidRevenueSource(s string) bool {
	switch s {
	case RevenueSourceTuition, RevenueSourceProductSale, RevenueSourceOther:
		return true
	}
	return false
}

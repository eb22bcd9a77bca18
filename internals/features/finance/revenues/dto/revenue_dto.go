package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/finance/revenues/model"
)

type CreateRevenueRequest struct {
	RevenueBranchID    *uuid.UUID `json:"revenue_branch_id"`
	RevenueDescription *string    `json:"revenue_description"`
	RevenueAmountCents int64      `json:"revenue_amount_cents" validate:"required,gt=0"`
	RevenueDate        time.Time  `json:"revenue_date" validate:"required"`
}

type ListRevenueQuery struct {
	BranchID *uuid.UUID `query:"branch_id"`
	Source   *string    `query:"source"`
	DateFrom *time.Time `query:"date_from"`
	DateTo   *time.Time `query:"date_to"`
}

type RevenueResponse struct {
	RevenueID          uuid.UUID  `json:"revenue_id"`
	RevenueCompanyID   uuid.UUID  `json:"revenue_company_id"`
	RevenueBranchID    uuid.UUID  `json:"revenue_branch_id"`
	RevenueSource      string     `json:"revenue_source"`
	RevenueDescription *string    `json:"revenue_description,omitempty"`
	RevenueReferenceID *uuid.UUID `json:"revenue_reference_id,omitempty"`
	RevenueAmountCents int64      `json:"revenue_amount_cents"`
	RevenueDate        time.Time  `json:"revenue_date"`
	RevenueCreatedAt   time.Time  `json:"revenue_created_at"`
}

func NewRevenueResponse(m *model.RevenueModel) *RevenueResponse {
	if m == nil {
		return nil
	}
	return &RevenueResponse{
		RevenueID:          m.RevenueID,
		RevenueCompanyID:   m.RevenueCompanyID,
		RevenueBranchID:    m.RevenueBranchID,
		RevenueSource:      m.RevenueSource,
		RevenueDescription: m.RevenueDescription,
		RevenueReferenceID: m.RevenueReferenceID,
		RevenueAmountCents: m.RevenueAmountCents,
		RevenueDate:        m.RevenueDate,
		RevenueCreatedAt:   m.RevenueCreatedAt,
	}
}

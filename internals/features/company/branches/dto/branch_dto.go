package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/company/branches/model"
)

/* ========== REQUEST DTOs ========== */

type CreateBranchRequest struct {
	BranchName    string  `json:"branch_name" form:"branch_name" validate:"required,min=2,max=120"`
	BranchAddress *string `json:"branch_address" form:"branch_address"`
	BranchPhone   *string `json:"branch_phone" form:"branch_phone" validate:"omitempty,max=30"`
}

type UpdateBranchRequest struct {
	BranchName    *string `json:"branch_name" form:"branch_name" validate:"omitempty,min=2,max=120"`
	BranchAddress *string `json:"branch_address" form:"branch_address"`
	BranchPhone   *string `json:"branch_phone" form:"branch_phone" validate:"omitempty,max=30"`
	BranchIsActive *bool  `json:"branch_is_active" form:"branch_is_active"`
}

type ListBranchQuery struct {
	BranchID   *uuid.UUID `query:"branch_id"`
	ActiveOnly *bool      `query:"active"`
	Search     *string    `query:"search"`
}

/* ========== RESPONSE DTO ========== */

type BranchResponse struct {
	BranchID        uuid.UUID  `json:"branch_id"`
	BranchCompanyID uuid.UUID  `json:"branch_company_id"`
	BranchName      string     `json:"branch_name"`
	BranchAddress   *string    `json:"branch_address,omitempty"`
	BranchPhone     *string    `json:"branch_phone,omitempty"`
	BranchImageURL  *string    `json:"branch_image_url,omitempty"`
	BranchIsActive  bool       `json:"branch_is_active"`
	BranchCreatedAt time.Time  `json:"branch_created_at"`
	BranchUpdatedAt *time.Time `json:"branch_updated_at,omitempty"`
}

func NewBranchResponse(m *model.BranchModel) *BranchResponse {
	if m == nil {
		return nil
	}
	return &BranchResponse{
		BranchID:        m.BranchID,
		BranchCompanyID: m.BranchCompanyID,
		BranchName:      m.BranchName,
		BranchAddress:   m.BranchAddress,
		BranchPhone:     m.BranchPhone,
		BranchImageURL:  m.BranchImageURL,
		BranchIsActive:  m.BranchIsActive,
		BranchCreatedAt: m.BranchCreatedAt,
		BranchUpdatedAt: m.BranchUpdatedAt,
	}
}

func (r *CreateBranchRequest) ToModel(companyID uuid.UUID) *model.BranchModel {
	return &model.BranchModel{
		BranchCompanyID: companyID,
		BranchName:      r.BranchName,
		BranchAddress:   r.BranchAddress,
		BranchPhone:     r.BranchPhone,
		BranchIsActive:  true,
	}
}

func (r *UpdateBranchRequest) ApplyToModel(m *model.BranchModel) {
	if r.BranchName != nil {
		m.BranchName = *r.BranchName
	}
	if r.BranchAddress != nil {
		m.BranchAddress = r.BranchAddress
	}
	if r.BranchPhone != nil {
		m.BranchPhone = r.BranchPhone
	}
	if r.BranchIsActive != nil {
		m.BranchIsActive = *r.BranchIsActive
	}
	now := time.Now()
	m.BranchUpdatedAt = &now
}

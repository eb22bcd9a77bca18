package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/company/companies/model"
)

type UpdateCompanyRequest struct {
	CompanyName  *string `json:"company_name" validate:"omitempty,min=2,max=160"`
	CompanyEmail *string `json:"company_email" validate:"omitempty,email"`
	CompanyPhone *string `json:"company_phone" validate:"omitempty,max=30"`
}

type CompanyResponse struct {
	CompanyID        uuid.UUID  `json:"company_id"`
	CompanyName      string     `json:"company_name"`
	CompanyEmail     string     `json:"company_email"`
	CompanyPhone     *string    `json:"company_phone,omitempty"`
	CompanyIsActive  bool       `json:"company_is_active"`
	CompanyCreatedAt time.Time  `json:"company_created_at"`
	CompanyUpdatedAt *time.Time `json:"company_updated_at,omitempty"`
}

func NewCompanyResponse(m *model.CompanyModel) *CompanyResponse {
	if m == nil {
		return nil
	}
	return &CompanyResponse{
		CompanyID:        m.CompanyID,
		CompanyName:      m.CompanyName,
		CompanyEmail:     m.CompanyEmail,
		CompanyPhone:     m.CompanyPhone,
		CompanyIsActive:  m.CompanyIsActive,
		CompanyCreatedAt: m.CompanyCreatedAt,
		CompanyUpdatedAt: m.CompanyUpdatedAt,
	}
}

func (r *UpdateCompanyRequest) ApplyToModel(m *model.CompanyModel) {
	if r.CompanyName != nil {
		m.CompanyName = *r.CompanyName
	}
	if r.CompanyEmail != nil {
		m.CompanyEmail = *r.CompanyEmail
	}
	if r.CompanyPhone != nil {
		m.CompanyPhone = r.CompanyPhone
	}
	now := time.Now()
	m.CompanyUpdatedAt = &now
}

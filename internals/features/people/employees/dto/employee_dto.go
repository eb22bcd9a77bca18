package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/people/employees/model"
)

type CreateEmployeeRequest struct {
	EmployeeBranchID           *uuid.UUID `json:"employee_branch_id"` // nil = head office
	EmployeeUserID             *uuid.UUID `json:"employee_user_id"`
	EmployeeName               string     `json:"employee_name" validate:"required,min=2,max=120"`
	EmployeeEmail              *string    `json:"employee_email" validate:"omitempty,email"`
	EmployeePhone              *string    `json:"employee_phone" validate:"omitempty,max=30"`
	EmployeePosition           string     `json:"employee_position" validate:"required,min=2,max=80"`
	EmployeeMonthlySalaryCents int64      `json:"employee_monthly_salary_cents" validate:"gte=0"`
	EmployeeHireDate           *time.Time `json:"employee_hire_date"`
}

type UpdateEmployeeRequest struct {
	EmployeeName               *string    `json:"employee_name" validate:"omitempty,min=2,max=120"`
	EmployeeEmail              *string    `json:"employee_email" validate:"omitempty,email"`
	EmployeePhone              *string    `json:"employee_phone" validate:"omitempty,max=30"`
	EmployeePosition           *string    `json:"employee_position" validate:"omitempty,min=2,max=80"`
	EmployeeMonthlySalaryCents *int64     `json:"employee_monthly_salary_cents" validate:"omitempty,gte=0"`
	EmployeeHireDate           *time.Time `json:"employee_hire_date"`
	EmployeeIsActive           *bool      `json:"employee_is_active"`
}

type ListEmployeeQuery struct {
	BranchID   *uuid.UUID `query:"branch_id"`
	ActiveOnly *bool      `query:"active"`
	Search     *string    `query:"search"`
}

type EmployeeResponse struct {
	EmployeeID                 uuid.UUID  `json:"employee_id"`
	EmployeeCompanyID          uuid.UUID  `json:"employee_company_id"`
	EmployeeBranchID           *uuid.UUID `json:"employee_branch_id,omitempty"`
	EmployeeUserID             *uuid.UUID `json:"employee_user_id,omitempty"`
	EmployeeName               string     `json:"employee_name"`
	EmployeeEmail              *string    `json:"employee_email,omitempty"`
	EmployeePhone              *string    `json:"employee_phone,omitempty"`
	EmployeePosition           string     `json:"employee_position"`
	EmployeeMonthlySalaryCents int64      `json:"employee_monthly_salary_cents"`
	EmployeeHireDate           *time.Time `json:"employee_hire_date,omitempty"`
	EmployeeIsActive           bool       `json:"employee_is_active"`
	EmployeeCreatedAt          time.Time  `json:"employee_created_at"`
	EmployeeUpdatedAt          *time.Time `json:"employee_updated_at,omitempty"`
}

func NewEmployeeResponse(m *model.EmployeeModel) *EmployeeResponse {
	if m == nil {
		return nil
	}
	return &EmployeeResponse{
		EmployeeID:                 m.EmployeeID,
		EmployeeCompanyID:          m.EmployeeCompanyID,
		EmployeeBranchID:           m.EmployeeBranchID,
		EmployeeUserID:             m.EmployeeUserID,
		EmployeeName:               m.EmployeeName,
		EmployeeEmail:              m.EmployeeEmail,
		EmployeePhone:              m.EmployeePhone,
		EmployeePosition:           m.EmployeePosition,
		EmployeeMonthlySalaryCents: m.EmployeeMonthlySalaryCents,
		EmployeeHireDate:           m.EmployeeHireDate,
		EmployeeIsActive:           m.EmployeeIsActive,
		EmployeeCreatedAt:          m.EmployeeCreatedAt,
		EmployeeUpdatedAt:          m.EmployeeUpdatedAt,
	}
}

func (r *CreateEmployeeRequest) ToModel(companyID uuid.UUID) *model.EmployeeModel {
	return &model.EmployeeModel{
		EmployeeCompanyID:          companyID,
		EmployeeBranchID:           r.EmployeeBranchID,
		EmployeeUserID:             r.EmployeeUserID,
		EmployeeName:               r.EmployeeName,
		EmployeeEmail:              r.EmployeeEmail,
		EmployeePhone:              r.EmployeePhone,
		EmployeePosition:           r.EmployeePosition,
		EmployeeMonthlySalaryCents: r.EmployeeMonthlySalaryCents,
		EmployeeHireDate:           r.EmployeeHireDate,
		EmployeeIsActive:           true,
	}
}

func (r *UpdateEmployeeRequest) ApplyToModel(m *model.EmployeeModel) {
	if r.EmployeeName != nil {
		m.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeEmail != nil {
		m.EmployeeEmail = r.EmployeeEmail
	}
	if r.EmployeePhone != nil {
		m.EmployeePhone = r.EmployeePhone
	}
	if r.EmployeePosition != nil {
		m.EmployeePosition = *r.EmployeePosition
	}
	if r.EmployeeMonthlySalaryCents != nil {
		m.EmployeeMonthlySalaryCents = *r.EmployeeMonthlySalaryCents
	}
	if r.EmployeeHireDate != nil {
		m.EmployeeHireDate = r.EmployeeHireDate
	}
	if r.EmployeeIsActive != nil {
		m.EmployeeIsActive = *r.EmployeeIsActive
	}
	now := time.Now()
	m.EmployeeUpdatedAt = &now
}

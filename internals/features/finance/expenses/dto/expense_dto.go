package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/finance/expenses/model"
)

type CreateExpenseRequest struct {
	ExpenseBranchID    *uuid.UUID `json:"expense_branch_id"` // nil = shared company expense (admin only)
	ExpenseCategory    string     `json:"expense_category" validate:"required,oneof=salary rent utilities supplies marketing other"`
	ExpenseDescription *string    `json:"expense_description"`
	ExpenseAmountCents int64      `json:"expense_amount_cents" validate:"required,gt=0"`
	ExpenseDate        time.Time  `json:"expense_date" validate:"required"`
}

type UpdateExpenseRequest struct {
	ExpenseCategory    *string    `json:"expense_category" validate:"omitempty,oneof=salary rent utilities supplies marketing other"`
	ExpenseDescription *string    `json:"expense_description"`
	ExpenseAmountCents *int64     `json:"expense_amount_cents" validate:"omitempty,gt=0"`
	ExpenseDate        *time.Time `json:"expense_date"`
}

type ListExpenseQuery struct {
	BranchID *uuid.UUID `query:"branch_id"`
	Category *string    `query:"category"`
	DateFrom *time.Time `query:"date_from"`
	DateTo   *time.Time `query:"date_to"`
}

type ExpenseResponse struct {
	ExpenseID          uuid.UUID  `json:"expense_id"`
	ExpenseCompanyID   uuid.UUID  `json:"expense_company_id"`
	ExpenseBranchID    *uuid.UUID `json:"expense_branch_id,omitempty"`
	ExpenseCategory    string     `json:"expense_category"`
	ExpenseDescription *string    `json:"expense_description,omitempty"`
	ExpenseAmountCents int64      `json:"expense_amount_cents"`
	ExpenseDate        time.Time  `json:"expense_date"`
	ExpenseCreatedAt   time.Time  `json:"expense_created_at"`
	ExpenseUpdatedAt   *time.Time `json:"expense_updated_at,omitempty"`
}

func NewExpenseResponse(m *model.ExpenseModel) *ExpenseResponse {
	if m == nil {
		return nil
	}
	return &ExpenseResponse{
		ExpenseID:          m.ExpenseID,
		ExpenseCompanyID:   m.ExpenseCompanyID,
		ExpenseBranchID:    m.ExpenseBranchID,
		ExpenseCategory:    m.ExpenseCategory,
		ExpenseDescription: m.ExpenseDescription,
		ExpenseAmountCents: m.ExpenseAmountCents,
		ExpenseDate:        m.ExpenseDate,
		ExpenseCreatedAt:   m.ExpenseCreatedAt,
		ExpenseUpdatedAt:   m.ExpenseUpdatedAt,
	}
}

func (r *CreateExpenseRequest) ToModel(companyID uuid.UUID, branchID *uuid.UUID) *model.ExpenseModel {
	return &model.ExpenseModel{
		ExpenseCompanyID:   companyID,
		ExpenseBranchID:    branchID,
		ExpenseCategory:    r.ExpenseCategory,
		ExpenseDescription: r.ExpenseDescription,
		ExpenseAmountCents: r.ExpenseAmountCents,
		ExpenseDate:        r.ExpenseDate,
	}
}

func (r *UpdateExpenseRequest) ApplyToModel(m *model.ExpenseModel) {
	if r.ExpenseCategory != nil {
		m.ExpenseCategory = *r.ExpenseCategory
	}
	if r.ExpenseDescription != nil {
		m.ExpenseDescription = r.ExpenseDescription
	}
	if r.ExpenseAmountCents != nil {
		m.ExpenseAmountCents = *r.ExpenseAmountCents
	}
	if r.ExpenseDate != nil {
		m.ExpenseDate = *r.ExpenseDate
	}
	now := time.Now()
	m.ExpenseUpdatedAt = &now
}

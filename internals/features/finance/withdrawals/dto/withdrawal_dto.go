package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/finance/withdrawals/model"
)

type CreateWithdrawalRequest struct {
	WithdrawalBranchID    uuid.UUID `json:"withdrawal_branch_id" validate:"required"`
	WithdrawalAmountCents int64     `json:"withdrawal_amount_cents" validate:"required,gt=0"`
	WithdrawalNote        *string   `json:"withdrawal_note"`
}

type ListWithdrawalQuery struct {
	BranchID *uuid.UUID `query:"branch_id"`
	DateFrom *time.Time `query:"date_from"`
	DateTo   *time.Time `query:"date_to"`
}

type WithdrawalResponse struct {
	WithdrawalID          uuid.UUID `json:"withdrawal_id"`
	WithdrawalCompanyID   uuid.UUID `json:"withdrawal_company_id"`
	WithdrawalBranchID    uuid.UUID `json:"withdrawal_branch_id"`
	WithdrawalUserID      uuid.UUID `json:"withdrawal_user_id"`
	WithdrawalAmountCents int64     `json:"withdrawal_amount_cents"`
	WithdrawalNote        *string   `json:"withdrawal_note,omitempty"`
	WithdrawalCreatedAt   time.Time `json:"withdrawal_created_at"`
}

func NewWithdrawalResponse(m *model.WithdrawalModel) *WithdrawalResponse {
	if m == nil {
		return nil
	}
	return &WithdrawalResponse{
		WithdrawalID:          m.WithdrawalID,
		WithdrawalCompanyID:   m.WithdrawalCompanyID,
		WithdrawalBranchID:    m.WithdrawalBranchID,
		WithdrawalUserID:      m.WithdrawalUserID,
		WithdrawalAmountCents: m.WithdrawalAmountCents,
		WithdrawalNote:        m.WithdrawalNote,
		WithdrawalCreatedAt:   m.WithdrawalCreatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColWithdrawalID        = "withdrawal_id"
	ColWithdrawalCompanyID = "withdrawal_company_id"
	ColWithdrawalBranchID  = "withdrawal_branch_id"
)

// WithdrawalModel represents the `withdrawals` table: cash taken out of
// a branch ledger by an admin. Immutable once written.
type WithdrawalModel struct {
	WithdrawalID        uuid.UUID `json:"withdrawal_id" gorm:"column:withdrawal_id;type:uuid;default:gen_random_uuid();primaryKey"`
	WithdrawalCompanyID uuid.UUID `json:"withdrawal_company_id" gorm:"column:withdrawal_company_id;type:uuid;not null;index"`
	WithdrawalBranchID  uuid.UUID `json:"withdrawal_branch_id" gorm:"column:withdrawal_branch_id;type:uuid;not null;index"`
	WithdrawalUserID    uuid.UUID `json:"withdrawal_user_id" gorm:"column:withdrawal_user_id;type:uuid;not null"`

	WithdrawalAmountCents int64   `json:"withdrawal_amount_cents" gorm:"column:withdrawal_amount_cents;not null"`
	WithdrawalNote        *string `json:"withdrawal_note,omitempty" gorm:"column:withdrawal_note;type:text"`

	WithdrawalCreatedAt time.Time `json:"withdrawal_created_at" gorm:"column:withdrawal_created_at;not null;autoCreateTime"`
}

func (WithdrawalModel) TableName() string {
	return "withdrawals"
}

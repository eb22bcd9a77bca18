package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColCashLedgerCompanyID = "cash_ledger_company_id"
	ColCashLedgerBranchID  = "cash_ledger_branch_id"
)

// CashLedgerModel represents the `cash_ledgers` table — one row per
// branch, created together with the branch. The balance is only ever
// mutated inside the transactions of sales, payments and withdrawals.
type CashLedgerModel struct {
	CashLedgerID        uuid.UUID `json:"cash_ledger_id" gorm:"column:cash_ledger_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CashLedgerCompanyID uuid.UUID `json:"cash_ledger_company_id" gorm:"column:cash_ledger_company_id;type:uuid;not null;index"`
	CashLedgerBranchID  uuid.UUID `json:"cash_ledger_branch_id" gorm:"column:cash_ledger_branch_id;type:uuid;unique;not null"`

	CashLedgerBalanceCents int64 `json:"cash_ledger_balance_cents" gorm:"column:cash_ledger_balance_cents;not null;default:0"`

	CashLedgerCreatedAt time.Time  `json:"cash_ledger_created_at" gorm:"column:cash_ledger_created_at;not null;autoCreateTime"`
	CashLedgerUpdatedAt *time.Time `json:"cash_ledger_updated_at,omitempty" gorm:"column:cash_ledger_updated_at"`
}

func (CashLedgerModel) TableName() string {
	return "cash_ledgers"
}

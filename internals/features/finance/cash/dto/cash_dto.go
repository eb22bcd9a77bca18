package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/finance/cash/model"
)

type CashLedgerResponse struct {
	CashLedgerID           uuid.UUID  `json:"cash_ledger_id"`
	CashLedgerCompanyID    uuid.UUID  `json:"cash_ledger_company_id"`
	CashLedgerBranchID     uuid.UUID  `json:"cash_ledger_branch_id"`
	CashLedgerBalanceCents int64      `json:"cash_ledger_balance_cents"`
	CashLedgerCreatedAt    time.Time  `json:"cash_ledger_created_at"`
	CashLedgerUpdatedAt    *time.Time `json:"cash_ledger_updated_at,omitempty"`
}

type CashSummaryResponse struct {
	TotalBalanceCents int64                 `json:"total_balance_cents"`
	BranchCount       int                   `json:"branch_count"`
	Ledgers           []*CashLedgerResponse `json:"ledgers"`
}

func NewCashLedgerResponse(m *model.CashLedgerModel) *CashLedgerResponse {
	if m == nil {
		return nil
	}
	return &CashLedgerResponse{
		CashLedgerID:           m.CashLedgerID,
		CashLedgerCompanyID:    m.CashLedgerCompanyID,
		CashLedgerBranchID:     m.CashLedgerBranchID,
		CashLedgerBalanceCents: m.CashLedgerBalanceCents,
		CashLedgerCreatedAt:    m.CashLedgerCreatedAt,
		CashLedgerUpdatedAt:    m.CashLedgerUpdatedAt,
	}
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type FinancialSummaryQuery struct {
	BranchID *uuid.UUID `query:"branch_id"`
	DateFrom *time.Time `query:"date_from"`
	DateTo   *time.Time `query:"date_to"`
}

type FinancialSummaryResponse struct {
	RevenueTotalCents    int64 `json:"revenue_total_cents"`
	ExpenseTotalCents    int64 `json:"expense_total_cents"`
	SalesTotalCents      int64 `json:"sales_total_cents"`
	WithdrawalTotalCents int64 `json:"withdrawal_total_cents"`
	NetCents             int64 `json:"net_cents"`
	ActiveStudents       int64 `json:"active_students"`
}

type EnrollmentStatsQuery struct {
	BranchID *uuid.UUID `query:"branch_id"`
}

type ClassEnrollmentStat struct {
	ClassID     uuid.UUID `json:"class_id"`
	ClassName   string    `json:"class_name"`
	BranchID    uuid.UUID `json:"branch_id"`
	ActiveCount int64     `json:"active_count"`
	Capacity    int       `json:"capacity"`
}

type MonthlyFinanceQuery struct {
	BranchID *uuid.UUID `query:"branch_id"`
	Year     *int       `query:"year"`
}

type MonthlyFinanceRow struct {
	Month             string    `json:"month"` // "2026-08"
	BranchID          uuid.UUID `json:"branch_id"`
	RevenueTotalCents int64     `json:"revenue_total_cents"`
	ExpenseTotalCents int64     `json:"expense_total_cents"`
	NetCents          int64     `json:"net_cents"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColExpenseID        = "expense_id"
	ColExpenseCompanyID = "expense_company_id"
	ColExpenseBranchID  = "expense_branch_id"
	ColExpenseDeletedAt = "expense_deleted_at"
)

const (
	ExpenseCategorySalary    = "salary"
	ExpenseCategoryRent      = "rent"
	ExpenseCategoryUtilities = "utilities"
	ExpenseCategorySupplies  = "supplies"
	ExpenseCategoryMarketing = "marketing"
	ExpenseCategoryOther     = "other"
)

var ExpenseCategories = []string{
	ExpenseCategorySalary,
	ExpenseCategoryRent,
	ExpenseCategoryUtilities,
	ExpenseCategorySupplies,
	ExpenseCategoryMarketing,
	ExpenseCategoryOther,
}

// ExpenseModel represents the `expenses` table. A NULL branch marks a
// shared company expense, visible to every branch.
type ExpenseModel struct {
	ExpenseID        uuid.UUID  `json:"expense_id" gorm:"column:expense_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExpenseCompanyID uuid.UUID  `json:"expense_company_id" gorm:"column:expense_company_id;type:uuid;not null;index"`
	ExpenseBranchID  *uuid.UUID `json:"expense_branch_id,omitempty" gorm:"column:expense_branch_id;type:uuid;index"`

	ExpenseCategory    string  `json:"expense_category" gorm:"column:expense_category;type:varchar(20);not null"`
	ExpenseDescription *string `json:"expense_description,omitempty" gorm:"column:expense_description;type:text"`

	ExpenseAmountCents int64     `json:"expense_amount_cents" gorm:"column:expense_amount_cents;not null"`
	ExpenseDate        time.Time `json:"expense_date" gorm:"column:expense_date;type:date;not null"`

	ExpenseCreatedAt time.Time  `json:"expense_created_at" gorm:"column:expense_created_at;not null;autoCreateTime"`
	ExpenseUpdatedAt *time.Time `json:"expense_updated_at,omitempty" gorm:"column:expense_updated_at"`
	ExpenseDeletedAt *time.Time `json:"expense_deleted_at,omitempty" gorm:"column:expense_deleted_at"`
}

func (ExpenseModel) TableName() string {
	return "expenses"
}

func IsValidExpenseCategory(cat string) bool {
	for _, c := range ExpenseCategories {
		if c == cat {
			return true
		}
	}
	return false
}

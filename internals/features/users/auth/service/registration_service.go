package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	branchModel "edufranchise_backend/internals/features/company/branches/model"
	companyModel "edufranchise_backend/internals/features/company/companies/model"
	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	userModel "edufranchise_backend/internals/features/users/auth/model"
	"edufranchise_backend/internals/constants"
)

var (
	ErrCompanyNameTaken = errors.New("company name already registered")
	ErrEmailTaken       = errors.New("email already registered")
)

type RegisterCompanyInput struct {
	CompanyName  string
	CompanyEmail string
	CompanyPhone *string
	BranchName   string
	OwnerName    string
	OwnerEmail   string
	Password     string
}

type RegisterCompanyResult struct {
	Company *companyModel.CompanyModel
	Branch  *branchModel.BranchModel
	Owner   *userModel.UserModel
}

// RegisterCompany creates a tenant with its default branch, owning
// admin user and the branch's cash ledger in a single transaction. A
// failure at any step leaves no rows behind.
func RegisterCompany(db *gorm.DB, in RegisterCompanyInput) (*RegisterCompanyResult, error) {
	return registerCompany(db, in, nil)
}

// afterCompany is a test seam for forcing a mid-transaction failure.
func registerCompany(db *gorm.DB, in RegisterCompanyInput, afterCompany func(tx *gorm.DB) error) (*RegisterCompanyResult, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var out RegisterCompanyResult
	err = db.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&companyModel.CompanyModel{}).
			Where("lower(company_name) = lower(?)", strings.TrimSpace(in.CompanyName)).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrCompanyNameTaken
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("lower(user_email) = lower(?)", strings.TrimSpace(in.OwnerEmail)).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrEmailTaken
		}

		company := &companyModel.CompanyModel{
			CompanyName:  strings.TrimSpace(in.CompanyName),
			CompanyEmail: strings.TrimSpace(in.CompanyEmail),
			CompanyPhone: in.CompanyPhone,
		}
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		if afterCompany != nil {
			if err := afterCompany(tx); err != nil {
				return err
			}
		}

		branchName := strings.TrimSpace(in.BranchName)
		if branchName == "" {
			branchName = "Head Office"
		}
		branch := &branchModel.BranchModel{
			BranchCompanyID: company.CompanyID,
			BranchName:      branchName,
		}
		if err := tx.Create(branch).Error; err != nil {
			return err
		}

		owner := &userModel.UserModel{
			UserCompanyID: company.CompanyID,
			UserName:      strings.TrimSpace(in.OwnerName),
			UserEmail:     strings.ToLower(strings.TrimSpace(in.OwnerEmail)),
			UserPassword:  hash,
			UserRole:      constants.RoleAdmin,
		}
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		ledger := &cashModel.CashLedgerModel{
			CashLedgerCompanyID: company.CompanyID,
			CashLedgerBranchID:  branch.BranchID,
		}
		if err := tx.Create(ledger).Error; err != nil {
			return err
		}

		out = RegisterCompanyResult{Company: company, Branch: branch, Owner: owner}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

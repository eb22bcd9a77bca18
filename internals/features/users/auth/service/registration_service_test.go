package service

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	branchModel "edufranchise_backend/internals/features/company/branches/model"
	companyModel "edufranchise_backend/internals/features/company/companies/model"
	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	userModel "edufranchise_backend/internals/features/users/auth/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is required for integration tests")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&companyModel.CompanyModel{},
		&branchModel.BranchModel{},
		&userModel.UserModel{},
		&cashModel.CashLedgerModel{},
	))
	return db
}

func TestRegisterCompanyCreatesAllRows(t *testing.T) {
	db := testDB(t)

	in := RegisterCompanyInput{
		CompanyName:  "Bright Minds " + t.Name(),
		CompanyEmail: "hq@brightminds.test",
		OwnerName:    "Owner One",
		OwnerEmail:   "owner-" + t.Name() + "@brightminds.test",
		Password:     "super-secret-1",
	}
	out, err := RegisterCompany(db, in)
	require.NoError(t, err)
	require.NotNil(t, out.Company)
	require.NotNil(t, out.Branch)
	require.NotNil(t, out.Owner)

	assert.Equal(t, out.Company.CompanyID, out.Branch.BranchCompanyID)
	assert.Equal(t, out.Company.CompanyID, out.Owner.UserCompanyID)
	assert.Equal(t, "admin", out.Owner.UserRole)
	assert.Equal(t, "Head Office", out.Branch.BranchName)

	var ledger cashModel.CashLedgerModel
	require.NoError(t, db.
		Where("cash_ledger_branch_id = ?", out.Branch.BranchID).
		First(&ledger).Error)
	assert.Equal(t, out.Company.CompanyID, ledger.CashLedgerCompanyID)
	assert.Zero(t, ledger.CashLedgerBalanceCents)
}

// Forcing a failure right after the company insert must leave zero
// rows behind.
func TestRegisterCompanyRollsBackOnFailure(t *testing.T) {
	db := testDB(t)

	boom := errors.New("forced failure")
	name := "Doomed Academy " + t.Name()
	_, err := registerCompany(db, RegisterCompanyInput{
		CompanyName:  name,
		CompanyEmail: "hq@doomed.test",
		OwnerName:    "Owner Two",
		OwnerEmail:   "owner-" + t.Name() + "@doomed.test",
		Password:     "super-secret-1",
	}, func(tx *gorm.DB) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	var cnt int64
	require.NoError(t, db.Model(&companyModel.CompanyModel{}).
		Where("company_name = ?", name).
		Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestRegisterCompanyRejectsDuplicates(t *testing.T) {
	db := testDB(t)

	in := RegisterCompanyInput{
		CompanyName:  "Twice Registered " + t.Name(),
		CompanyEmail: "hq@twice.test",
		OwnerName:    "Owner Three",
		OwnerEmail:   "owner-" + t.Name() + "@twice.test",
		Password:     "super-secret-1",
	}
	_, err := RegisterCompany(db, in)
	require.NoError(t, err)

	_, err = RegisterCompany(db, in)
	assert.ErrorIs(t, err, ErrCompanyNameTaken)

	in.CompanyName = in.CompanyName + " II"
	_, err = RegisterCompany(db, in)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

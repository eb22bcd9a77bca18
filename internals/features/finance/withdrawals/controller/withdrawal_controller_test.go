package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	"edufranchise_backend/internals/features/finance/withdrawals/model"
	authhelper "edufranchise_backend/internals/helpers/auth"
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
		&cashModel.CashLedgerModel{},
		&model.WithdrawalModel{},
	))
	return db
}

func testApp(db *gorm.DB, tc authhelper.TenantContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authhelper.LocalsTenantContext, tc)
		return c.Next()
	})
	ctl := NewWithdrawalController(db)
	app.Post("/withdrawals", ctl.CreateWithdrawal)
	return app
}

func adminContext(companyID uuid.UUID) authhelper.TenantContext {
	return authhelper.TenantContext{
		UserID:    uuid.New(),
		Email:     "admin@test.local",
		Role:      "admin",
		CompanyID: companyID,
	}
}

func seedLedger(t *testing.T, db *gorm.DB, companyID uuid.UUID, balance int64) *cashModel.CashLedgerModel {
	t.Helper()
	l := &cashModel.CashLedgerModel{
		CashLedgerCompanyID:    companyID,
		CashLedgerBranchID:     uuid.New(),
		CashLedgerBalanceCents: balance,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestCreateWithdrawalDebitsLedger(t *testing.T) {
	db := testDB(t)

	companyID := uuid.New()
	ledger := seedLedger(t, db, companyID, 10_000)
	app := testApp(db, adminContext(companyID))

	body, _ := json.Marshal(fiber.Map{
		"withdrawal_branch_id":    ledger.CashLedgerBranchID,
		"withdrawal_amount_cents": 4_000,
	})
	req := httptest.NewRequest("POST", "/withdrawals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var after cashModel.CashLedgerModel
	require.NoError(t, db.
		Where("cash_ledger_branch_id = ?", ledger.CashLedgerBranchID).
		First(&after).Error)
	assert.EqualValues(t, 6_000, after.CashLedgerBalanceCents)
}

// Overdrawing must fail with 409 and leave both the ledger and the
// withdrawals table untouched.
func TestCreateWithdrawalExceedingBalanceIs409(t *testing.T) {
	db := testDB(t)

	companyID := uuid.New()
	ledger := seedLedger(t, db, companyID, 1_000)
	app := testApp(db, adminContext(companyID))

	body, _ := json.Marshal(fiber.Map{
		"withdrawal_branch_id":    ledger.CashLedgerBranchID,
		"withdrawal_amount_cents": 5_000,
	})
	req := httptest.NewRequest("POST", "/withdrawals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var after cashModel.CashLedgerModel
	require.NoError(t, db.
		Where("cash_ledger_branch_id = ?", ledger.CashLedgerBranchID).
		First(&after).Error)
	assert.EqualValues(t, 1_000, after.CashLedgerBalanceCents)

	var cnt int64
	require.NoError(t, db.Model(&model.WithdrawalModel{}).
		Where("withdrawal_branch_id = ?", ledger.CashLedgerBranchID).
		Count(&cnt).Error)
	assert.Zero(t, cnt)
}

// A ledger belonging to another company is invisible: plain 404.
func TestCreateWithdrawalOtherCompanyLedgerIs404(t *testing.T) {
	db := testDB(t)

	companyA := uuid.New()
	companyB := uuid.New()
	foreign := seedLedger(t, db, companyB, 50_000)
	app := testApp(db, adminContext(companyA))

	body, _ := json.Marshal(fiber.Map{
		"withdrawal_branch_id":    foreign.CashLedgerBranchID,
		"withdrawal_amount_cents": 1_000,
	})
	req := httptest.NewRequest("POST", "/withdrawals", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

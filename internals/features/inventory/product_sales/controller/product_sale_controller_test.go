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
	revenueModel "edufranchise_backend/internals/features/finance/revenues/model"
	"edufranchise_backend/internals/features/inventory/product_sales/model"
	productModel "edufranchise_backend/internals/features/inventory/products/model"
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
		&productModel.ProductModel{},
		&model.ProductSaleModel{},
		&revenueModel.RevenueModel{},
		&cashModel.CashLedgerModel{},
	))
	return db
}

type saleFixture struct {
	companyID uuid.UUID
	branchID  uuid.UUID
	product   *productModel.ProductModel
	app       *fiber.App
	db        *gorm.DB
}

func newSaleFixture(t *testing.T, stock int, priceCents int64) *saleFixture {
	t.Helper()
	db := testDB(t)

	companyID := uuid.New()
	branchID := uuid.New()

	product := &productModel.ProductModel{
		ProductCompanyID:  companyID,
		ProductBranchID:   &branchID,
		ProductName:       "Workbook " + uuid.NewString()[:8],
		ProductPriceCents: priceCents,
		ProductStock:      stock,
		ProductIsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)
	require.NoError(t, db.Create(&cashModel.CashLedgerModel{
		CashLedgerCompanyID: companyID,
		CashLedgerBranchID:  branchID,
	}).Error)

	tc := authhelper.TenantContext{
		UserID:    uuid.New(),
		Email:     "cashier@test.local",
		Role:      "cashier",
		CompanyID: companyID,
		BranchID:  &branchID,
	}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authhelper.LocalsTenantContext, tc)
		return c.Next()
	})
	ctl := NewProductSaleController(db)
	app.Post("/product-sales", ctl.CreateProductSale)

	return &saleFixture{
		companyID: companyID,
		branchID:  branchID,
		product:   product,
		app:       app,
		db:        db,
	}
}

func (f *saleFixture) sell(t *testing.T, quantity int) int {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{
		"product_sale_product_id": f.product.ProductID,
		"product_sale_quantity":   quantity,
	})
	req := httptest.NewRequest("POST", "/product-sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

// One sale must move three tables together: stock down, revenue in,
// ledger up.
func TestCreateProductSaleCommitsAllSideEffects(t *testing.T) {
	f := newSaleFixture(t, 10, 2_500)

	status := f.sell(t, 3)
	require.Equal(t, fiber.StatusCreated, status)

	var product productModel.ProductModel
	require.NoError(t, f.db.
		Where("product_id = ?", f.product.ProductID).
		First(&product).Error)
	assert.Equal(t, 7, product.ProductStock)

	var revenue revenueModel.RevenueModel
	require.NoError(t, f.db.
		Where("revenue_branch_id = ? AND revenue_source = ?", f.branchID, revenueModel.RevenueSourceProductSale).
		First(&revenue).Error)
	assert.EqualValues(t, 7_500, revenue.RevenueAmountCents)

	var ledger cashModel.CashLedgerModel
	require.NoError(t, f.db.
		Where("cash_ledger_branch_id = ?", f.branchID).
		First(&ledger).Error)
	assert.EqualValues(t, 7_500, ledger.CashLedgerBalanceCents)
}

// Overselling must fail with 409 and leave every table untouched.
func TestCreateProductSaleInsufficientStockIs409(t *testing.T) {
	f := newSaleFixture(t, 2, 2_500)

	status := f.sell(t, 5)
	assert.Equal(t, fiber.StatusConflict, status)

	var product productModel.ProductModel
	require.NoError(t, f.db.
		Where("product_id = ?", f.product.ProductID).
		First(&product).Error)
	assert.Equal(t, 2, product.ProductStock)

	var cnt int64
	require.NoError(t, f.db.Model(&model.ProductSaleModel{}).
		Where("product_sale_branch_id = ?", f.branchID).
		Count(&cnt).Error)
	assert.Zero(t, cnt)

	var ledger cashModel.CashLedgerModel
	require.NoError(t, f.db.
		Where("cash_ledger_branch_id = ?", f.branchID).
		First(&ledger).Error)
	assert.Zero(t, ledger.CashLedgerBalanceCents)
}

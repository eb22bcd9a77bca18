package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	revenueModel "edufranchise_backend/internals/features/finance/revenues/model"
	"edufranchise_backend/internals/features/inventory/product_sales/dto"
	"edufranchise_backend/internals/features/inventory/product_sales/model"
	productModel "edufranchise_backend/internals/features/inventory/products/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type ProductSaleController struct {
	DB *gorm.DB
}

func NewProductSaleController(db *gorm.DB) *ProductSaleController {
	return &ProductSaleController{DB: db}
}

var validate = validator.New()

var errOutOfStock = errors.New("insufficient stock")

// POST /api/a/product-sales
//
// One transaction: decrement stock (guarded against going negative),
// insert the sale, insert a revenue row, credit the branch ledger.
// The sale lands in the seller's branch; admins without a branch
// cannot sell.
func (ctl *ProductSaleController) CreateProductSale(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	if tc.BranchID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Sales must be recorded from a branch account")
	}
	branchID := *tc.BranchID

	var req dto.CreateProductSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var product productModel.ProductModel
	if err := authhelper.ForTenant(productModel.ColProductCompanyID, tc).
		WithID(productModel.ColProductID, req.ProductSaleProductID).
		Alive(productModel.ColProductDeletedAt).
		Apply(ctl.DB).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}
	if !product.ProductIsGlobal && !authhelper.CanAccessBranch(tc, product.ProductBranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This product is outside your branch")
	}
	if !product.ProductIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Product is inactive")
	}

	sale := &model.ProductSaleModel{
		ProductSaleCompanyID:      tc.CompanyID,
		ProductSaleBranchID:       branchID,
		ProductSaleProductID:      product.ProductID,
		ProductSaleUserID:         tc.UserID,
		ProductSaleQuantity:       req.ProductSaleQuantity,
		ProductSaleUnitPriceCents: product.ProductPriceCents,
		ProductSaleTotalCents:     product.ProductPriceCents * int64(req.ProductSaleQuantity),
	}

	now := time.Now()
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// guarded decrement: the WHERE clause refuses to oversell
		res := tx.Model(&productModel.ProductModel{}).
			Where(productModel.ColProductID+" = ? AND product_stock >= ?", product.ProductID, req.ProductSaleQuantity).
			Updates(map[string]any{
				"product_stock":      gorm.Expr("product_stock - ?", req.ProductSaleQuantity),
				"product_updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errOutOfStock
		}

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		desc := fmt.Sprintf("Sale of %d x %s", sale.ProductSaleQuantity, product.ProductName)
		if err := tx.Create(&revenueModel.RevenueModel{
			RevenueCompanyID:   tc.CompanyID,
			RevenueBranchID:    branchID,
			RevenueSource:      revenueModel.RevenueSourceProductSale,
			RevenueDescription: &desc,
			RevenueReferenceID: &sale.ProductSaleID,
			RevenueAmountCents: sale.ProductSaleTotalCents,
			RevenueDate:        now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&cashModel.CashLedgerModel{}).
			Where(cashModel.ColCashLedgerBranchID+" = ? AND "+cashModel.ColCashLedgerCompanyID+" = ?", branchID, tc.CompanyID).
			Updates(map[string]any{
				"cash_ledger_balance_cents": gorm.Expr("cash_ledger_balance_cents + ?", sale.ProductSaleTotalCents),
				"cash_ledger_updated_at":    now,
			}).Error
	})
	if txErr != nil {
		if errors.Is(txErr, errOutOfStock) {
			return helper.JsonError(c, fiber.StatusConflict, "Insufficient stock")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record sale")
	}

	return helper.JsonCreated(c, "Sale recorded", dto.NewProductSaleResponse(sale))
}

// GET /api/a/product-sales
func (ctl *ProductSaleController) ListProductSales(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListProductSaleQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColProductSaleCompanyID, tc).
		WithBranch(model.ColProductSaleBranchID, branchFilter)
	if q.ProductID != nil {
		sc = sc.And("product_sale_product_id = ?", *q.ProductID)
	}
	if q.DateFrom != nil {
		sc = sc.And("product_sale_created_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		sc = sc.And("product_sale_created_at <= ?", *q.DateTo)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.ProductSaleModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sales")
	}

	var rows []model.ProductSaleModel
	if err := sc.Apply(ctl.DB.Model(&model.ProductSaleModel{})).
		Order("product_sale_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sales")
	}

	items := make([]*dto.ProductSaleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewProductSaleResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/product-sales/:id
func (ctl *ProductSaleController) GetProductSaleByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	saleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sale id")
	}

	m, ferr := ctl.findScoped(c, tc, saleID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewProductSaleResponse(m))
}

// POST /api/a/product-sales/:id/void  (admin only, same day)
//
// Reverses the whole sale: restores stock, debits the ledger, and
// removes the revenue row it produced.
func (ctl *ProductSaleController) VoidProductSale(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	saleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sale id")
	}

	m, ferr := ctl.findScoped(c, tc, saleID)
	if ferr != nil {
		return ferr
	}
	if m.ProductSaleIsVoided {
		return helper.JsonError(c, fiber.StatusConflict, "Sale is already voided")
	}

	now := time.Now()
	y1, m1, d1 := m.ProductSaleCreatedAt.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return helper.JsonError(c, fiber.StatusConflict, "Sales can only be voided on the day they were made")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ProductSaleModel{}).
			Where(model.ColProductSaleID+" = ?", m.ProductSaleID).
			Updates(map[string]any{
				"product_sale_is_voided": true,
				"product_sale_voided_at": now,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&productModel.ProductModel{}).
			Where(productModel.ColProductID+" = ?", m.ProductSaleProductID).
			Updates(map[string]any{
				"product_stock":      gorm.Expr("product_stock + ?", m.ProductSaleQuantity),
				"product_updated_at": now,
			}).Error; err != nil {
			return err
		}

		if err := tx.
			Where("revenue_reference_id = ? AND revenue_source = ?", m.ProductSaleID, revenueModel.RevenueSourceProductSale).
			Delete(&revenueModel.RevenueModel{}).Error; err != nil {
			return err
		}

		return tx.Model(&cashModel.CashLedgerModel{}).
			Where(cashModel.ColCashLedgerBranchID+" = ? AND "+cashModel.ColCashLedgerCompanyID+" = ?", m.ProductSaleBranchID, tc.CompanyID).
			Updates(map[string]any{
				"cash_ledger_balance_cents": gorm.Expr("cash_ledger_balance_cents - ?", m.ProductSaleTotalCents),
				"cash_ledger_updated_at":    now,
			}).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to void sale")
	}

	m.ProductSaleIsVoided = true
	m.ProductSaleVoidedAt = &now
	return helper.JsonUpdated(c, "Sale voided", dto.NewProductSaleResponse(m))
}

func (ctl *ProductSaleController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, saleID uuid.UUID) (*model.ProductSaleModel, error) {
	var m model.ProductSaleModel
	if err := authhelper.ForTenant(model.ColProductSaleCompanyID, tc).
		WithID(model.ColProductSaleID, saleID).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Sale not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sale")
	}

	if !authhelper.CanAccessBranch(tc, &m.ProductSaleBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This sale is outside your branch")
	}
	return &m, nil
}

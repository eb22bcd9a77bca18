package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/finance/cash/dto"
	"edufranchise_backend/internals/features/finance/cash/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type CashController struct {
	DB *gorm.DB
}

func NewCashController(db *gorm.DB) *CashController {
	return &CashController{DB: db}
}

// GET /api/a/cash/branches/:branchId — one branch's ledger.
func (ctl *CashController) GetBranchLedger(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	branchID, err := uuid.Parse(strings.TrimSpace(c.Params("branchId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var m model.CashLedgerModel
	if err := authhelper.ForTenant(model.ColCashLedgerCompanyID, tc).
		And(model.ColCashLedgerBranchID+" = ?", branchID).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ledger not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledger")
	}

	if !authhelper.CanAccessBranch(tc, &m.CashLedgerBranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This ledger is outside your branch")
	}

	return helper.JsonOK(c, "", dto.NewCashLedgerResponse(&m))
}

// GET /api/a/cash/summary  (admin only, enforced on the route)
// Every branch ledger plus the company-wide total.
func (ctl *CashController) GetCompanySummary(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var rows []model.CashLedgerModel
	if err := authhelper.ForTenant(model.ColCashLedgerCompanyID, tc).
		Apply(ctl.DB.Model(&model.CashLedgerModel{})).
		Order("cash_ledger_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledgers")
	}

	out := dto.CashSummaryResponse{
		BranchCount: len(rows),
		Ledgers:     make([]*dto.CashLedgerResponse, 0, len(rows)),
	}
	for i := range rows {
		out.TotalBalanceCents += rows[i].CashLedgerBalanceCents
		out.Ledgers = append(out.Ledgers, dto.NewCashLedgerResponse(&rows[i]))
	}

	return helper.JsonOK(c, "", out)
}

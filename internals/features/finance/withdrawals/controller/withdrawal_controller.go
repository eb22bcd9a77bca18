package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	"edufranchise_backend/internals/features/finance/withdrawals/dto"
	"edufranchise_backend/internals/features/finance/withdrawals/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type WithdrawalController struct {
	DB *gorm.DB
}

func NewWithdrawalController(db *gorm.DB) *WithdrawalController {
	return &WithdrawalController{DB: db}
}

var validate = validator.New()

var errInsufficientBalance = errors.New("insufficient ledger balance")

// POST /api/a/withdrawals  (admin only, enforced on the route)
//
// The debit and the withdrawal row commit together. The guarded UPDATE
// refuses to take the balance below zero, so two concurrent
// withdrawals cannot overdraw the ledger.
func (ctl *WithdrawalController) CreateWithdrawal(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ledger cashModel.CashLedgerModel
	if err := ctl.DB.
		Where(cashModel.ColCashLedgerBranchID+" = ? AND "+cashModel.ColCashLedgerCompanyID+" = ?", req.WithdrawalBranchID, tc.CompanyID).
		First(&ledger).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch ledger not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch ledger")
	}

	m := &model.WithdrawalModel{
		WithdrawalCompanyID:   tc.CompanyID,
		WithdrawalBranchID:    req.WithdrawalBranchID,
		WithdrawalUserID:      tc.UserID,
		WithdrawalAmountCents: req.WithdrawalAmountCents,
		WithdrawalNote:        req.WithdrawalNote,
	}

	now := time.Now()
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&cashModel.CashLedgerModel{}).
			Where(cashModel.ColCashLedgerBranchID+" = ? AND "+cashModel.ColCashLedgerCompanyID+" = ? AND cash_ledger_balance_cents >= ?",
				req.WithdrawalBranchID, tc.CompanyID, req.WithdrawalAmountCents).
			Updates(map[string]any{
				"cash_ledger_balance_cents": gorm.Expr("cash_ledger_balance_cents - ?", req.WithdrawalAmountCents),
				"cash_ledger_updated_at":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errInsufficientBalance
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		if errors.Is(txErr, errInsufficientBalance) {
			return helper.JsonError(c, fiber.StatusConflict, "Withdrawal exceeds the branch cash balance")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record withdrawal")
	}

	return helper.JsonCreated(c, "Withdrawal recorded", dto.NewWithdrawalResponse(m))
}

// GET /api/a/withdrawals  (admin only, enforced on the route)
func (ctl *WithdrawalController) ListWithdrawals(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListWithdrawalQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColWithdrawalCompanyID, tc).
		WithBranch(model.ColWithdrawalBranchID, q.BranchID)
	if q.DateFrom != nil {
		sc = sc.And("withdrawal_created_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		sc = sc.And("withdrawal_created_at <= ?", *q.DateTo)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.WithdrawalModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count withdrawals")
	}

	var rows []model.WithdrawalModel
	if err := sc.Apply(ctl.DB.Model(&model.WithdrawalModel{})).
		Order("withdrawal_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch withdrawals")
	}

	items := make([]*dto.WithdrawalResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewWithdrawalResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/withdrawals/:id  (admin only, enforced on the route)
func (ctl *WithdrawalController) GetWithdrawalByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	withdrawalID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid withdrawal id")
	}

	var m model.WithdrawalModel
	if err := authhelper.ForTenant(model.ColWithdrawalCompanyID, tc).
		WithID(model.ColWithdrawalID, withdrawalID).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Withdrawal not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch withdrawal")
	}

	return helper.JsonOK(c, "", dto.NewWithdrawalResponse(&m))
}

package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/finance/expenses/dto"
	"edufranchise_backend/internals/features/finance/expenses/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

var validate = validator.New()

// POST /api/a/expenses  (admin/accountant, enforced on the route)
// A nil branch books a shared company expense; only admins may do that.
func (ctl *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var branchID *uuid.UUID
	if req.ExpenseBranchID == nil && authhelper.IsAdmin(tc) {
		branchID = nil // shared
	} else {
		target, err := authhelper.EffectiveBranchFilter(tc, req.ExpenseBranchID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only book expenses for your own branch")
		}
		if target == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "expense_branch_id is required")
		}
		branchID = target
	}

	m := req.ToModel(tc.CompanyID, branchID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}

	return helper.JsonCreated(c, "Expense created", dto.NewExpenseResponse(m))
}

// GET /api/a/expenses — branch staff see their branch plus shared rows.
func (ctl *ExpenseController) ListExpenses(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListExpenseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColExpenseCompanyID, tc).
		Alive(model.ColExpenseDeletedAt).
		WithBranchOrShared(model.ColExpenseBranchID, branchFilter)
	if q.Category != nil {
		if !model.IsValidExpenseCategory(*q.Category) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense category")
		}
		sc = sc.And("expense_category = ?", *q.Category)
	}
	if q.DateFrom != nil {
		sc = sc.And("expense_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		sc = sc.And("expense_date <= ?", *q.DateTo)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.ExpenseModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count expenses")
	}

	var rows []model.ExpenseModel
	if err := sc.Apply(ctl.DB.Model(&model.ExpenseModel{})).
		Order("expense_date DESC, expense_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expenses")
	}

	items := make([]*dto.ExpenseResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewExpenseResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/expenses/:id
func (ctl *ExpenseController) GetExpenseByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	expenseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense id")
	}

	m, ferr := ctl.findScoped(c, tc, expenseID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewExpenseResponse(m))
}

// PATCH /api/a/expenses/:id  (admin/accountant, enforced on the route)
func (ctl *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	expenseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense id")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, ferr := ctl.findScoped(c, tc, expenseID)
	if ferr != nil {
		return ferr
	}
	if m.ExpenseBranchID == nil && !authhelper.IsAdmin(tc) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may modify shared expenses")
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}

	return helper.JsonUpdated(c, "Expense updated", dto.NewExpenseResponse(m))
}

// DELETE /api/a/expenses/:id  (admin/accountant; soft delete)
func (ctl *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	expenseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense id")
	}

	m, ferr := ctl.findScoped(c, tc, expenseID)
	if ferr != nil {
		return ferr
	}
	if m.ExpenseBranchID == nil && !authhelper.IsAdmin(tc) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may modify shared expenses")
	}

	now := time.Now()
	if err := ctl.DB.Model(&model.ExpenseModel{}).
		Where(model.ColExpenseID+" = ?", m.ExpenseID).
		Updates(map[string]any{
			"expense_deleted_at": now,
			"expense_updated_at": now,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}

	return helper.JsonDeleted(c, "Expense deleted", fiber.Map{"expense_id": expenseID})
}

// findScoped fetches one expense under the caller's scope. Shared rows
// (NULL branch) are readable company-wide.
func (ctl *ExpenseController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, expenseID uuid.UUID) (*model.ExpenseModel, error) {
	var m model.ExpenseModel
	if err := authhelper.ForTenant(model.ColExpenseCompanyID, tc).
		WithID(model.ColExpenseID, expenseID).
		Alive(model.ColExpenseDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expense")
	}

	if m.ExpenseBranchID != nil && !authhelper.CanAccessBranch(tc, m.ExpenseBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This expense is outside your branch")
	}
	return &m, nil
}

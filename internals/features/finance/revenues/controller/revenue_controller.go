package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/finance/revenues/dto"
	"edufranchise_backend/internals/features/finance/revenues/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type RevenueController struct {
	DB *gorm.DB
}

func NewRevenueController(db *gorm.DB) *RevenueController {
	return &RevenueController{DB: db}
}

var validate = validator.New()

// POST /api/a/revenues  (admin/accountant, enforced on the route)
// Manual rows always carry source "other"; tuition and product_sale
// rows are written only by the payment webhook and the sales flow.
func (ctl *RevenueController) CreateRevenue(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateRevenueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	target, err := authhelper.EffectiveBranchFilter(tc, req.RevenueBranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only book revenue for your own branch")
	}
	if target == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "revenue_branch_id is required")
	}

	m := &model.RevenueModel{
		RevenueCompanyID:   tc.CompanyID,
		RevenueBranchID:    *target,
		RevenueSource:      model.RevenueSourceOther,
		RevenueDescription: req.RevenueDescription,
		RevenueAmountCents: req.RevenueAmountCents,
		RevenueDate:        req.RevenueDate,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create revenue")
	}

	return helper.JsonCreated(c, "Revenue recorded", dto.NewRevenueResponse(m))
}

// GET /api/a/revenues
func (ctl *RevenueController) ListRevenues(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListRevenueQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColRevenueCompanyID, tc).
		WithBranch(model.ColRevenueBranchID, branchFilter)
	if q.Source != nil {
		if !model.IsValidRevenueSource(*q.Source) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid revenue source")
		}
		sc = sc.And("revenue_source = ?", *q.Source)
	}
	if q.DateFrom != nil {
		sc = sc.And("revenue_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		sc = sc.And("revenue_date <= ?", *q.DateTo)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.RevenueModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count revenues")
	}

	var rows []model.RevenueModel
	if err := sc.Apply(ctl.DB.Model(&model.RevenueModel{})).
		Order("revenue_date DESC, revenue_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch revenues")
	}

	items := make([]*dto.RevenueResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewRevenueResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/revenues/:id
func (ctl *RevenueController) GetRevenueByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	revenueID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid revenue id")
	}

	var m model.RevenueModel
	if err := authhelper.ForTenant(model.ColRevenueCompanyID, tc).
		WithID(model.ColRevenueID, revenueID).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Revenue not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch revenue")
	}

	if !authhelper.CanAccessBranch(tc, &m.RevenueBranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This revenue is outside your branch")
	}

	return helper.JsonOK(c, "", dto.NewRevenueResponse(&m))
}

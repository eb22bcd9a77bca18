package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/company/branches/dto"
	"edufranchise_backend/internals/features/company/branches/model"
	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

var validate = validator.New()

// POST /api/a/branches  (admin only, enforced on the route)
func (ctl *BranchController) CreateBranch(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.BranchName = strings.TrimSpace(req.BranchName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(tc.CompanyID)

	if fh, ferr := c.FormFile("branch_image"); ferr == nil && fh != nil {
		url, upErr := helper.SaveImageAsWebP("branches", fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		m.BranchImageURL = &url
	}

	// branch and its cash ledger are born together
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Create(&cashModel.CashLedgerModel{
			CashLedgerCompanyID: tc.CompanyID,
			CashLedgerBranchID:  m.BranchID,
		}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create branch")
	}

	return helper.JsonCreated(c, "Branch created", dto.NewBranchResponse(m))
}

// GET /api/a/branches
func (ctl *BranchController) ListBranches(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListBranchQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColBranchCompanyID, tc).
		Alive(model.ColBranchDeletedAt).
		WithBranch(model.ColBranchID, branchFilter)
	if q.ActiveOnly != nil {
		sc = sc.And("branch_is_active = ?", *q.ActiveOnly)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		sc = sc.And("LOWER(branch_name) LIKE ?", s)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.BranchModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count branches")
	}

	var rows []model.BranchModel
	if err := sc.Apply(ctl.DB.Model(&model.BranchModel{})).
		Order("branch_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branches")
	}

	items := make([]*dto.BranchResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewBranchResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/branches/:id
func (ctl *BranchController) GetBranchByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	branchID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	// compound key lookup: a branch of another company is plain 404
	var m model.BranchModel
	if err := authhelper.ForTenant(model.ColBranchCompanyID, tc).
		WithID(model.ColBranchID, branchID).
		Alive(model.ColBranchDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branch")
	}

	// same company but outside the caller's branch scope
	if !authhelper.CanAccessBranch(tc, &m.BranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This branch is outside your scope")
	}

	return helper.JsonOK(c, "", dto.NewBranchResponse(&m))
}

// PATCH /api/a/branches/:id  (admin only, enforced on the route)
func (ctl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	branchID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	var req dto.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.BranchModel
	if err := authhelper.ForTenant(model.ColBranchCompanyID, tc).
		WithID(model.ColBranchID, branchID).
		Alive(model.ColBranchDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branch")
	}

	if fh, ferr := c.FormFile("branch_image"); ferr == nil && fh != nil {
		url, upErr := helper.SaveImageAsWebP("branches", fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		if m.BranchImageURL != nil {
			helper.DeleteUpload(*m.BranchImageURL)
		}
		m.BranchImageURL = &url
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update branch")
	}

	return helper.JsonUpdated(c, "Branch updated", dto.NewBranchResponse(&m))
}

// DELETE /api/a/branches/:id  (admin only; soft delete)
func (ctl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	branchID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch id")
	}

	now := time.Now()
	res := authhelper.ForTenant(model.ColBranchCompanyID, tc).
		WithID(model.ColBranchID, branchID).
		Alive(model.ColBranchDeletedAt).
		Apply(ctl.DB.Model(&model.BranchModel{})).
		Updates(map[string]any{
			"branch_deleted_at": now,
			"branch_is_active":  false,
			"branch_updated_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete branch")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
	}

	return helper.JsonDeleted(c, "Branch deactivated", fiber.Map{"branch_id": branchID})
}

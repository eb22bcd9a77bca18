package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "edufranchise_backend/internals/features/company/branches/model"
	"edufranchise_backend/internals/features/people/employees/dto"
	"edufranchise_backend/internals/features/people/employees/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type EmployeeController struct {
	DB *gorm.DB
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db}
}

var validate = validator.New()

// POST /api/a/employees  (admin only, enforced on the route)
func (ctl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.EmployeeName = strings.TrimSpace(req.EmployeeName)
	req.EmployeePosition = strings.TrimSpace(req.EmployeePosition)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.EmployeeBranchID != nil {
		var count int64
		if err := ctl.DB.Model(&branchModel.BranchModel{}).
			Where(branchModel.ColBranchID+" = ? AND "+branchModel.ColBranchCompanyID+" = ? AND "+branchModel.ColBranchDeletedAt+" IS NULL", *req.EmployeeBranchID, tc.CompanyID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify branch")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Branch not found")
		}
	}

	m := req.ToModel(tc.CompanyID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	return helper.JsonCreated(c, "Employee created", dto.NewEmployeeResponse(m))
}

// GET /api/a/employees — branch staff see their own branch plus head office.
func (ctl *EmployeeController) ListEmployees(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListEmployeeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColEmployeeCompanyID, tc).
		Alive(model.ColEmployeeDeletedAt).
		WithBranchOrShared(model.ColEmployeeBranchID, branchFilter)
	if q.ActiveOnly != nil {
		sc = sc.And("employee_is_active = ?", *q.ActiveOnly)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		sc = sc.And("(LOWER(employee_name) LIKE ? OR LOWER(employee_position) LIKE ?)", s, s)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.EmployeeModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count employees")
	}

	var rows []model.EmployeeModel
	if err := sc.Apply(ctl.DB.Model(&model.EmployeeModel{})).
		Order("employee_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	items := make([]*dto.EmployeeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewEmployeeResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/employees/:id
func (ctl *EmployeeController) GetEmployeeByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	employeeID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	m, ferr := ctl.findScoped(c, tc, employeeID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewEmployeeResponse(m))
}

// PATCH /api/a/employees/:id  (admin only, enforced on the route)
func (ctl *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	employeeID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, ferr := ctl.findScoped(c, tc, employeeID)
	if ferr != nil {
		return ferr
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}

	return helper.JsonUpdated(c, "Employee updated", dto.NewEmployeeResponse(m))
}

// DELETE /api/a/employees/:id  (admin only; soft delete)
func (ctl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	employeeID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	now := time.Now()
	res := authhelper.ForTenant(model.ColEmployeeCompanyID, tc).
		WithID(model.ColEmployeeID, employeeID).
		Alive(model.ColEmployeeDeletedAt).
		Apply(ctl.DB.Model(&model.EmployeeModel{})).
		Updates(map[string]any{
			"employee_deleted_at": now,
			"employee_is_active":  false,
			"employee_updated_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}

	return helper.JsonDeleted(c, "Employee deactivated", fiber.Map{"employee_id": employeeID})
}

// findScoped fetches one employee under the caller's scope. A NULL
// branch is head office and readable company-wide; a sibling branch's
// employee is 403.
func (ctl *EmployeeController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, employeeID uuid.UUID) (*model.EmployeeModel, error) {
	var m model.EmployeeModel
	if err := authhelper.ForTenant(model.ColEmployeeCompanyID, tc).
		WithID(model.ColEmployeeID, employeeID).
		Alive(model.ColEmployeeDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employee")
	}

	if m.EmployeeBranchID != nil && !authhelper.CanAccessBranch(tc, m.EmployeeBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This employee is outside your branch")
	}
	return &m, nil
}

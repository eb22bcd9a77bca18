package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/academics/classes/dto"
	"edufranchise_backend/internals/features/academics/classes/model"
	courseModel "edufranchise_backend/internals/features/academics/courses/model"
	employeeModel "edufranchise_backend/internals/features/people/employees/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// POST /api/a/classes  (admin or branch manager, enforced on the route)
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.ClassName = strings.TrimSpace(req.ClassName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	target, err := authhelper.EffectiveBranchFilter(tc, req.ClassBranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only manage classes of your own branch")
	}
	if target == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_branch_id is required")
	}

	// the course must exist in this company's catalog
	var courseCount int64
	if err := authhelper.ForTenant(courseModel.ColCourseCompanyID, tc).
		WithID(courseModel.ColCourseID, req.ClassCourseID).
		Alive(courseModel.ColCourseDeletedAt).
		Apply(ctl.DB.Model(&courseModel.CourseModel{})).
		Count(&courseCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify course")
	}
	if courseCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	if req.ClassTeacherID != nil {
		var teacherCount int64
		if err := authhelper.ForTenant(employeeModel.ColEmployeeCompanyID, tc).
			WithID(employeeModel.ColEmployeeID, *req.ClassTeacherID).
			Alive(employeeModel.ColEmployeeDeletedAt).
			Apply(ctl.DB.Model(&employeeModel.EmployeeModel{})).
			Count(&teacherCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify teacher")
		}
		if teacherCount == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
	}

	m := req.ToModel(tc.CompanyID, *target)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created", dto.NewClassResponse(m))
}

// GET /api/a/classes
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListClassQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColClassCompanyID, tc).
		Alive(model.ColClassDeletedAt).
		WithBranch(model.ColClassBranchID, branchFilter)
	if q.CourseID != nil {
		sc = sc.And("class_course_id = ?", *q.CourseID)
	}
	if q.ActiveOnly != nil {
		sc = sc.And("class_is_active = ?", *q.ActiveOnly)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.ClassModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []model.ClassModel
	if err := sc.Apply(ctl.DB.Model(&model.ClassModel{})).
		Order("class_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	items := make([]*dto.ClassResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewClassResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/classes/:id
func (ctl *ClassController) GetClassByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	m, ferr := ctl.findScoped(c, tc, classID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewClassResponse(m))
}

// PATCH /api/a/classes/:id  (admin or branch manager, enforced on the route)
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, ferr := ctl.findScoped(c, tc, classID)
	if ferr != nil {
		return ferr
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	return helper.JsonUpdated(c, "Class updated", dto.NewClassResponse(m))
}

// DELETE /api/a/classes/:id  (soft delete)
func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	m, ferr := ctl.findScoped(c, tc, classID)
	if ferr != nil {
		return ferr
	}

	now := time.Now()
	if err := ctl.DB.Model(&model.ClassModel{}).
		Where(model.ColClassID+" = ?", m.ClassID).
		Updates(map[string]any{
			"class_deleted_at": now,
			"class_is_active":  false,
			"class_updated_at": now,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}

	return helper.JsonDeleted(c, "Class deactivated", fiber.Map{"class_id": classID})
}

func (ctl *ClassController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, classID uuid.UUID) (*model.ClassModel, error) {
	var m model.ClassModel
	if err := authhelper.ForTenant(model.ColClassCompanyID, tc).
		WithID(model.ColClassID, classID).
		Alive(model.ColClassDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if !authhelper.CanAccessBranch(tc, &m.ClassBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This class is outside your branch")
	}
	return &m, nil
}

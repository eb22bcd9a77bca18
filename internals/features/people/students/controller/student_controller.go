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
	"edufranchise_backend/internals/features/people/students/dto"
	"edufranchise_backend/internals/features/people/students/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

// resolveTargetBranch decides which branch a write lands in. Admins may
// target any branch of their company; branch staff are pinned to their own.
func (ctl *StudentController) resolveTargetBranch(tc authhelper.TenantContext, requested *uuid.UUID) (uuid.UUID, int, string) {
	target, err := authhelper.EffectiveBranchFilter(tc, requested)
	if err != nil {
		return uuid.Nil, fiber.StatusForbidden, "You may only manage students of your own branch"
	}
	if target == nil {
		return uuid.Nil, fiber.StatusBadRequest, "student_branch_id is required"
	}

	var count int64
	if err := ctl.DB.Model(&branchModel.BranchModel{}).
		Where(branchModel.ColBranchID+" = ? AND "+branchModel.ColBranchCompanyID+" = ? AND "+branchModel.ColBranchDeletedAt+" IS NULL", *target, tc.CompanyID).
		Count(&count).Error; err != nil {
		return uuid.Nil, fiber.StatusInternalServerError, "Failed to verify branch"
	}
	if count == 0 {
		return uuid.Nil, fiber.StatusNotFound, "Branch not found"
	}
	return *target, 0, ""
}

// POST /api/a/students
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.StudentName = strings.TrimSpace(req.StudentName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	branchID, status, msg := ctl.resolveTargetBranch(tc, req.StudentBranchID)
	if status != 0 {
		return helper.JsonError(c, status, msg)
	}

	m := req.ToModel(tc.CompanyID, branchID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created", dto.NewStudentResponse(m))
}

// GET /api/a/students
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListStudentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColStudentCompanyID, tc).
		Alive(model.ColStudentDeletedAt).
		WithBranch(model.ColStudentBranchID, branchFilter)
	if q.ActiveOnly != nil {
		sc = sc.And("student_is_active = ?", *q.ActiveOnly)
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		sc = sc.And("LOWER(student_name) LIKE ?", s)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.StudentModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := sc.Apply(ctl.DB.Model(&model.StudentModel{})).
		Order("student_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	items := make([]*dto.StudentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewStudentResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/students/:id
func (ctl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	m, ferr := ctl.findScoped(c, tc, studentID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewStudentResponse(m))
}

// PATCH /api/a/students/:id
func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, ferr := ctl.findScoped(c, tc, studentID)
	if ferr != nil {
		return ferr
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated", dto.NewStudentResponse(m))
}

// DELETE /api/a/students/:id  (soft delete)
func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	m, ferr := ctl.findScoped(c, tc, studentID)
	if ferr != nil {
		return ferr
	}

	now := time.Now()
	if err := ctl.DB.Model(&model.StudentModel{}).
		Where(model.ColStudentID+" = ?", m.StudentID).
		Updates(map[string]any{
			"student_deleted_at": now,
			"student_is_active":  false,
			"student_updated_at": now,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student deactivated", fiber.Map{"student_id": studentID})
}

// findScoped fetches one student under the caller's scope: a student of
// another company is a plain 404, one of a sibling branch is 403.
func (ctl *StudentController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, studentID uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := authhelper.ForTenant(model.ColStudentCompanyID, tc).
		WithID(model.ColStudentID, studentID).
		Alive(model.ColStudentDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if !authhelper.CanAccessBranch(tc, &m.StudentBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This student is outside your branch")
	}
	return &m, nil
}

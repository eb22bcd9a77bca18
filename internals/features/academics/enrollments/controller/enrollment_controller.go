package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "edufranchise_backend/internals/features/academics/classes/model"
	"edufranchise_backend/internals/features/academics/enrollments/dto"
	"edufranchise_backend/internals/features/academics/enrollments/model"
	studentModel "edufranchise_backend/internals/features/people/students/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

// POST /api/a/enrollments
//
// Student and class are both looked up through the caller's scope, so a
// foreign id from another company comes back as 404 — the caller never
// learns whether it exists. Both rows must sit in the same branch; the
// enrollment inherits that branch.
func (ctl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student studentModel.StudentModel
	if err := authhelper.ForTenant(studentModel.ColStudentCompanyID, tc).
		WithID(studentModel.ColStudentID, req.EnrollmentStudentID).
		Alive(studentModel.ColStudentDeletedAt).
		Apply(ctl.DB).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var class classModel.ClassModel
	if err := authhelper.ForTenant(classModel.ColClassCompanyID, tc).
		WithID(classModel.ColClassID, req.EnrollmentClassID).
		Alive(classModel.ColClassDeletedAt).
		Apply(ctl.DB).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if !authhelper.CanAccessBranch(tc, &class.ClassBranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This class is outside your branch")
	}
	if student.StudentBranchID != class.ClassBranchID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student and class belong to different branches")
	}
	if !class.ClassIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "Class is not accepting enrollments")
	}

	// capacity and duplicate checks
	var activeCount int64
	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_class_id = ? AND enrollment_status = ?", class.ClassID, model.EnrollmentStatusActive).
		Count(&activeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class capacity")
	}
	if class.ClassCapacity > 0 && activeCount >= int64(class.ClassCapacity) {
		return helper.JsonError(c, fiber.StatusConflict, "Class is full")
	}

	var dup int64
	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_class_id = ? AND enrollment_status = ?",
			student.StudentID, class.ClassID, model.EnrollmentStatusActive).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student is already enrolled in this class")
	}

	m := &model.EnrollmentModel{
		EnrollmentCompanyID:               tc.CompanyID,
		EnrollmentBranchID:                class.ClassBranchID,
		EnrollmentStudentID:               student.StudentID,
		EnrollmentClassID:                 class.ClassID,
		EnrollmentStatus:                  model.EnrollmentStatusActive,
		EnrollmentMonthlyFeeCentsOverride: req.EnrollmentMonthlyFeeCentsOverride,
		EnrollmentStartDate:               req.EnrollmentStartDate,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}

	return helper.JsonCreated(c, "Enrollment created", dto.NewEnrollmentResponse(m))
}

// GET /api/a/enrollments
func (ctl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListEnrollmentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColEnrollmentCompanyID, tc).
		WithBranch(model.ColEnrollmentBranchID, branchFilter)
	if q.StudentID != nil {
		sc = sc.And("enrollment_student_id = ?", *q.StudentID)
	}
	if q.ClassID != nil {
		sc = sc.And("enrollment_class_id = ?", *q.ClassID)
	}
	if q.Status != nil {
		if !model.IsValidEnrollmentStatus(*q.Status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment status")
		}
		sc = sc.And("enrollment_status = ?", *q.Status)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.EnrollmentModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []model.EnrollmentModel
	if err := sc.Apply(ctl.DB.Model(&model.EnrollmentModel{})).
		Order("enrollment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	items := make([]*dto.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewEnrollmentResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/enrollments/:id
func (ctl *EnrollmentController) GetEnrollmentByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	enrollmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	m, ferr := ctl.findScoped(c, tc, enrollmentID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewEnrollmentResponse(m))
}

// PATCH /api/a/enrollments/:id — status changes and fee overrides.
// Cancelling is a status change; enrollments are never deleted.
func (ctl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	enrollmentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, ferr := ctl.findScoped(c, tc, enrollmentID)
	if ferr != nil {
		return ferr
	}

	if req.EnrollmentStatus != nil {
		if m.EnrollmentStatus == model.EnrollmentStatusCancelled && *req.EnrollmentStatus != model.EnrollmentStatusCancelled {
			return helper.JsonError(c, fiber.StatusConflict, "A cancelled enrollment cannot be reactivated")
		}
		m.EnrollmentStatus = *req.EnrollmentStatus
	}
	if req.EnrollmentMonthlyFeeCentsOverride != nil {
		m.EnrollmentMonthlyFeeCentsOverride = req.EnrollmentMonthlyFeeCentsOverride
	}
	now := time.Now()
	m.EnrollmentUpdatedAt = &now

	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}

	return helper.JsonUpdated(c, "Enrollment updated", dto.NewEnrollmentResponse(m))
}

func (ctl *EnrollmentController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, enrollmentID uuid.UUID) (*model.EnrollmentModel, error) {
	var m model.EnrollmentModel
	if err := authhelper.ForTenant(model.ColEnrollmentCompanyID, tc).
		WithID(model.ColEnrollmentID, enrollmentID).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	if !authhelper.CanAccessBranch(tc, &m.EnrollmentBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This enrollment is outside your branch")
	}
	return &m, nil
}

package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/academics/courses/dto"
	"edufranchise_backend/internals/features/academics/courses/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

// POST /api/a/courses  (admin only, enforced on the route)
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.CourseName = strings.TrimSpace(req.CourseName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(tc.CompanyID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course created", dto.NewCourseResponse(m))
}

// GET /api/a/courses — the catalog is company-wide, no branch filter.
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListCourseQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColCourseCompanyID, tc).
		Alive(model.ColCourseDeletedAt)
	if q.ActiveOnly != nil {
		sc = sc.And("course_is_active = ?", *q.ActiveOnly)
	}
	if q.Tag != nil && strings.TrimSpace(*q.Tag) != "" {
		sc = sc.And("? = ANY(course_tags)", strings.TrimSpace(*q.Tag))
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		sc = sc.And("LOWER(course_name) LIKE ?", s)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.CourseModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := sc.Apply(ctl.DB.Model(&model.CourseModel{})).
		Order("course_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	items := make([]*dto.CourseResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewCourseResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/courses/:id
func (ctl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var m model.CourseModel
	if err := authhelper.ForTenant(model.ColCourseCompanyID, tc).
		WithID(model.ColCourseID, courseID).
		Alive(model.ColCourseDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	return helper.JsonOK(c, "", dto.NewCourseResponse(&m))
}

// PATCH /api/a/courses/:id  (admin only, enforced on the route)
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.CourseModel
	if err := authhelper.ForTenant(model.ColCourseCompanyID, tc).
		WithID(model.ColCourseID, courseID).
		Alive(model.ColCourseDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	return helper.JsonUpdated(c, "Course updated", dto.NewCourseResponse(&m))
}

// DELETE /api/a/courses/:id  (admin only; soft delete)
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	now := time.Now()
	res := authhelper.ForTenant(model.ColCourseCompanyID, tc).
		WithID(model.ColCourseID, courseID).
		Alive(model.ColCourseDeletedAt).
		Apply(ctl.DB.Model(&model.CourseModel{})).
		Updates(map[string]any{
			"course_deleted_at": now,
			"course_is_active":  false,
			"course_updated_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	return helper.JsonDeleted(c, "Course deactivated", fiber.Map{"course_id": courseID})
}

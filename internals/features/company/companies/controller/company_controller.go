package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/company/companies/dto"
	"edufranchise_backend/internals/features/company/companies/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

var validate = validator.New()

// GET /api/a/company — the caller's own company, nothing else.
func (ctl *CompanyController) GetCompany(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var m model.CompanyModel
	if err := ctl.DB.
		Where("company_id = ?", tc.CompanyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Company not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch company")
	}

	return helper.JsonOK(c, "", dto.NewCompanyResponse(&m))
}

// PATCH /api/a/company  (admin only, enforced on the route)
func (ctl *CompanyController) UpdateCompany(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.CompanyModel
	if err := ctl.DB.
		Where("company_id = ?", tc.CompanyID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Company not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch company")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update company")
	}

	return helper.JsonUpdated(c, "Company updated", dto.NewCompanyResponse(&m))
}

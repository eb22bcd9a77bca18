package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/company/companies/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func CompanyRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCompanyController(db)

	company := api.Group("/company")
	company.Get("/", ctl.GetCompany)
	company.Patch("/", authMiddleware.OnlyRoles("Only admins may update the company profile", constants.AdminOnly...), ctl.UpdateCompany)
}

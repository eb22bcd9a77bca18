package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/finance/revenues/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func RevenueRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewRevenueController(db)

	revenues := api.Group("/revenues")
	revenues.Get("/", ctl.ListRevenues)
	revenues.Get("/:id", ctl.GetRevenueByID)

	finance := authMiddleware.OnlyRoles("Only accountants and admins may record revenue", constants.FinanceRoles...)
	revenues.Post("/", finance, ctl.CreateRevenue)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/finance/cash/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func CashRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCashController(db)

	cash := api.Group("/cash")
	cash.Get("/summary", authMiddleware.OnlyRoles("Only admins may view the company cash summary", constants.AdminOnly...), ctl.GetCompanySummary)
	cash.Get("/branches/:branchId", ctl.GetBranchLedger)
}

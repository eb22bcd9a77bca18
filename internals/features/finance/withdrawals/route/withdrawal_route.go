package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/finance/withdrawals/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func WithdrawalRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewWithdrawalController(db)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage withdrawals", constants.AdminOnly...)

	withdrawals := api.Group("/withdrawals", adminOnly)
	withdrawals.Get("/", ctl.ListWithdrawals)
	withdrawals.Get("/:id", ctl.GetWithdrawalByID)
	withdrawals.Post("/", ctl.CreateWithdrawal)
}

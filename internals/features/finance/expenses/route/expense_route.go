package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/finance/expenses/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewExpenseController(db)

	expenses := api.Group("/expenses")
	expenses.Get("/", ctl.ListExpenses)
	expenses.Get("/:id", ctl.GetExpenseByID)

	finance := authMiddleware.OnlyRoles("Only accountants and admins may manage expenses", constants.FinanceRoles...)
	expenses.Post("/", finance, ctl.CreateExpense)
	expenses.Patch("/:id", finance, ctl.UpdateExpense)
	expenses.Delete("/:id", finance, ctl.DeleteExpense)
}

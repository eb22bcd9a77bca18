package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/people/employees/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEmployeeController(db)

	employees := api.Group("/employees")
	employees.Get("/", ctl.ListEmployees)
	employees.Get("/:id", ctl.GetEmployeeByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage employees", constants.AdminOnly...)
	employees.Post("/", adminOnly, ctl.CreateEmployee)
	employees.Patch("/:id", adminOnly, ctl.UpdateEmployee)
	employees.Delete("/:id", adminOnly, ctl.DeleteEmployee)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/people/students/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctl.ListStudents)
	students.Get("/:id", ctl.GetStudentByID)

	managers := authMiddleware.OnlyRoles("Only branch managers and admins may manage students", constants.ManagerAndAbove...)
	students.Post("/", managers, ctl.CreateStudent)
	students.Patch("/:id", managers, ctl.UpdateStudent)
	students.Delete("/:id", managers, ctl.DeleteStudent)
}

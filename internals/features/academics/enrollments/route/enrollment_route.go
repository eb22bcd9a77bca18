package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/academics/enrollments/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)

	enrollments := api.Group("/enrollments")
	enrollments.Get("/", ctl.ListEnrollments)
	enrollments.Get("/:id", ctl.GetEnrollmentByID)

	managers := authMiddleware.OnlyRoles("Only branch managers and admins may manage enrollments", constants.ManagerAndAbove...)
	enrollments.Post("/", managers, ctl.CreateEnrollment)
	enrollments.Patch("/:id", managers, ctl.UpdateEnrollment)
}

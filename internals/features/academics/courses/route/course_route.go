package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/academics/courses/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctl.ListCourses)
	courses.Get("/:id", ctl.GetCourseByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage the course catalog", constants.AdminOnly...)
	courses.Post("/", adminOnly, ctl.CreateCourse)
	courses.Patch("/:id", adminOnly, ctl.UpdateCourse)
	courses.Delete("/:id", adminOnly, ctl.DeleteCourse)
}

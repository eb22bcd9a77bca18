package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/academics/classes/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", ctl.ListClasses)
	classes.Get("/:id", ctl.GetClassByID)

	managers := authMiddleware.OnlyRoles("Only branch managers and admins may manage classes", constants.ManagerAndAbove...)
	classes.Post("/", managers, ctl.CreateClass)
	classes.Patch("/:id", managers, ctl.UpdateClass)
	classes.Delete("/:id", managers, ctl.DeleteClass)
}

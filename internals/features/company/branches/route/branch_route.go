package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/company/branches/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func BranchRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewBranchController(db)

	branches := api.Group("/branches")
	branches.Get("/", ctl.ListBranches)
	branches.Get("/:id", ctl.GetBranchByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage branches", constants.AdminOnly...)
	branches.Post("/", adminOnly, ctl.CreateBranch)
	branches.Patch("/:id", adminOnly, ctl.UpdateBranch)
	branches.Delete("/:id", adminOnly, ctl.DeleteBranch)
}

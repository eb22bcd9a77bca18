package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/inventory/products/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func ProductRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewProductController(db)

	products := api.Group("/products")
	products.Get("/", ctl.ListProducts)
	products.Get("/:id", ctl.GetProductByID)

	managers := authMiddleware.OnlyRoles("Only branch managers and admins may manage products", constants.ManagerAndAbove...)
	products.Post("/", managers, ctl.CreateProduct)
	products.Patch("/:id", managers, ctl.UpdateProduct)
	products.Delete("/:id", managers, ctl.DeleteProduct)
}

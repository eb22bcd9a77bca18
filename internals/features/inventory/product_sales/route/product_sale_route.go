package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/constants"
	"edufranchise_backend/internals/features/inventory/product_sales/controller"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func ProductSaleRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewProductSaleController(db)

	sales := api.Group("/product-sales")
	sales.Get("/", ctl.ListProductSales)
	sales.Get("/:id", ctl.GetProductSaleByID)

	sellers := authMiddleware.OnlyRoles("Only cashiers, branch managers and admins may record sales", constants.SellingRoles...)
	sales.Post("/", sellers, ctl.CreateProductSale)

	adminOnly := authMiddleware.OnlyRoles("Only admins may void sales", constants.AdminOnly...)
	sales.Post("/:id/void", adminOnly, ctl.VoidProductSale)
}

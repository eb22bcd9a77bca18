package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/finance/payments/controller"
)

// PaymentRoutes mounts the authenticated payment endpoints.
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Get("/", ctl.ListPayments)
	payments.Get("/:id", ctl.GetPaymentByID)
	payments.Post("/", ctl.CreatePayment)
}

// PaymentWebhookRoutes mounts the gateway notification endpoint. It
// lives outside the authenticated group; the auth middleware also
// skips it by path so gateway retries never bounce on a 401.
func PaymentWebhookRoutes(app fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)
	app.Post("/api/payments/notification", ctl.HandleNotification)
}

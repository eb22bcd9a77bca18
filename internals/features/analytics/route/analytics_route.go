package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/analytics/controller"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnalyticsController(db)

	analytics := api.Group("/analytics")
	analytics.Get("/financial-summary", ctl.GetFinancialSummary)
	analytics.Get("/enrollment-stats", ctl.GetEnrollmentStats)

	reports := api.Group("/reports")
	reports.Get("/monthly-finance", ctl.GetMonthlyFinanceReport)
}

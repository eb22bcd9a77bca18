package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "edufranchise_backend/internals/features/academics/classes/route"
	courseRoute "edufranchise_backend/internals/features/academics/courses/route"
	enrollmentRoute "edufranchise_backend/internals/features/academics/enrollments/route"
	analyticsRoute "edufranchise_backend/internals/features/analytics/route"
	branchRoute "edufranchise_backend/internals/features/company/branches/route"
	companyRoute "edufranchise_backend/internals/features/company/companies/route"
	cashRoute "edufranchise_backend/internals/features/finance/cash/route"
	expenseRoute "edufranchise_backend/internals/features/finance/expenses/route"
	paymentRoute "edufranchise_backend/internals/features/finance/payments/route"
	revenueRoute "edufranchise_backend/internals/features/finance/revenues/route"
	withdrawalRoute "edufranchise_backend/internals/features/finance/withdrawals/route"
	productSaleRoute "edufranchise_backend/internals/features/inventory/product_sales/route"
	productRoute "edufranchise_backend/internals/features/inventory/products/route"
	studentRoute "edufranchise_backend/internals/features/people/students/route"
	employeeRoute "edufranchise_backend/internals/features/people/employees/route"
	authRoute "edufranchise_backend/internals/features/users/auth/route"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up payment webhook...")
	paymentRoute.PaymentWebhookRoutes(app, db)

	// everything below requires a resolved tenant context
	log.Println("[INFO] Setting up tenant API group...")
	api := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting company routes...")
	companyRoute.CompanyRoutes(api, db)
	branchRoute.BranchRoutes(api, db)

	log.Println("[INFO] Mounting academics routes...")
	courseRoute.CourseRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	enrollmentRoute.EnrollmentRoutes(api, db)

	log.Println("[INFO] Mounting people routes...")
	studentRoute.StudentRoutes(api, db)
	employeeRoute.EmployeeRoutes(api, db)

	log.Println("[INFO] Mounting inventory routes...")
	productRoute.ProductRoutes(api, db)
	productSaleRoute.ProductSaleRoutes(api, db)

	log.Println("[INFO] Mounting finance routes...")
	expenseRoute.ExpenseRoutes(api, db)
	revenueRoute.RevenueRoutes(api, db)
	withdrawalRoute.WithdrawalRoutes(api, db)
	cashRoute.CashRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)

	log.Println("[INFO] Mounting analytics routes...")
	analyticsRoute.AnalyticsRoutes(api, db)
}

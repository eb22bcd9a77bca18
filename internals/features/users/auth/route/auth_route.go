package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/users/auth/controller"
	"edufranchise_backend/internals/middlewares"
	authMiddleware "edufranchise_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	public := app.Group("/api/auth", middlewares.RateLimiter(20, time.Minute))
	public.Post("/register", ctl.Register)
	public.Post("/login", ctl.Login)
	public.Post("/login-google", ctl.LoginGoogle)
	public.Post("/refresh", ctl.Refresh)

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", ctl.Logout)
	private.Get("/me", ctl.Me)
}

// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "billeasy_backend/internals/features/users/auth/controller"
	"billeasy_backend/internals/middlewares"
	authMiddleware "billeasy_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	grp := app.Group("/api/auth")
	{
		grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
		grp.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
		grp.Get("/me", authMiddleware.AuthMiddleware(db), ctl.Me)
	}
}

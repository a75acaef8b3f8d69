// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditRoutes "billeasy_backend/internals/features/audit/action_logs/route"
	billingRoutes "billeasy_backend/internals/features/finance/billing/route"
	schoolRoutes "billeasy_backend/internals/features/schools/schools/route"
	authRoutes "billeasy_backend/internals/features/users/auth/route"
	authMiddleware "billeasy_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoutes.AuthRoutes(app, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + blacklist check)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	schoolRoutes.SchoolAdminRoutes(admin, db)
	billingRoutes.BillingAdminRoutes(admin, db)
	auditRoutes.ActionLogAdminRoutes(admin, db)
}

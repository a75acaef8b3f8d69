// file: internals/features/audit/action_logs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditController "billeasy_backend/internals/features/audit/action_logs/controller"
)

func ActionLogAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := auditController.NewActionLogController(db)
	r.Get("/action-logs", ctl.List)
}

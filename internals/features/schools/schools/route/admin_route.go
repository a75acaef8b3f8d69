// file: internals/features/schools/schools/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolController "billeasy_backend/internals/features/schools/schools/controller"
)

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schoolController.NewSchoolController(db)
	s := r.Group("/schools")
	{
		s.Post("/", ctl.Create)
		s.Get("/", ctl.List)
		s.Get("/:id", ctl.GetByID)
		s.Patch("/:id", ctl.Patch)
		s.Delete("/:id", ctl.Delete)
	}
}

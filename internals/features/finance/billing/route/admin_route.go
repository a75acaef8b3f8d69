// file: internals/features/finance/billing/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingController "billeasy_backend/internals/features/finance/billing/controller"
)

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billingController.NewBillingController(db)
	s := r.Group("/schools/:id")
	{
		s.Get("/billing", ctl.GetBilling)
		s.Post("/payments", ctl.RecordPayment)
		s.Get("/payments", ctl.ListPayments)
	}

	dashCtl := billingController.NewDashboardController(db)
	r.Get("/dashboard", dashCtl.Summary)
}

// file: internals/features/finance/billing/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"billeasy_backend/internals/features/finance/billing/calc"
	billingModel "billeasy_backend/internals/features/finance/billing/model"
	schoolModel "billeasy_backend/internals/features/schools/schools/model"
	helper "billeasy_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// ========== Summary ==========
// Ringkasan untuk halaman utama admin: jumlah sekolah per status,
// total advance paid, dan total sisa tagihan. Status dihitung ulang
// dari kalkulator, tidak pernah dibaca dari kolom tersimpan.
func (ctl *DashboardController) Summary(c *fiber.Ctx) error {
	var schools []schoolModel.School
	if err := schoolModel.ScopeAlive(ctl.DB).Find(&schools).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var billings []billingModel.BillingInfo
	if err := billingModel.ScopeAlive(ctl.DB).Find(&billings).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	bySchool := make(map[uuid.UUID]*billingModel.BillingInfo, len(billings))
	for i := range billings {
		bySchool[billings[i].BillingInfoSchoolID] = &billings[i]
	}

	today := helper.TruncateToDay(time.Now())

	statusCounts := map[string]int{
		calc.StatusPaid:     0,
		calc.StatusOverdue:  0,
		calc.StatusCritical: 0,
	}
	var totalAdvancePaid, totalRemainingBalance float64
	noBilling := 0

	for i := range schools {
		school := &schools[i]
		bi := bySchool[school.SchoolID]

		if bi == nil || bi.BillingInfoAdvancePaidDate == nil {
			noBilling++
			statusCounts[calc.StatusCritical]++
			continue
		}

		v, err := calc.ComputeValidity(
			school.StudentCountOrZero(),
			bi.BillingInfoQuotedPrice,
			bi.BillingInfoAdvancePaid,
			*bi.BillingInfoAdvancePaidDate,
			today,
		)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}

		statusCounts[v.Status]++
		totalAdvancePaid += bi.BillingInfoAdvancePaid
		totalRemainingBalance += calc.RemainingBalance(school.StudentCountOrZero(), bi.BillingInfoQuotedPrice, bi.BillingInfoAdvancePaid)
	}

	return helper.Success(c, "OK", fiber.Map{
		"total_schools":           len(schools),
		"schools_without_billing": noBilling,
		"status_counts":           statusCounts,
		"total_advance_paid":      totalAdvancePaid,
		"total_remaining_balance": totalRemainingBalance,
	})
}

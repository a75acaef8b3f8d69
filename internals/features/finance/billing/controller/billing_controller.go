// file: internals/features/finance/billing/controller/billing_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"billeasy_backend/internals/features/finance/billing/calc"
	dto "billeasy_backend/internals/features/finance/billing/dto"
	billingModel "billeasy_backend/internals/features/finance/billing/model"
	"billeasy_backend/internals/features/finance/billing/service"
	paymentModel "billeasy_backend/internals/features/finance/payments/model"
	schoolModel "billeasy_backend/internals/features/schools/schools/model"
	helper "billeasy_backend/internals/helpers"
)

type BillingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Payments  *service.PaymentService
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{
		DB:        db,
		Validator: validator.New(),
		Payments:  service.NewPaymentService(db),
	}
}

func actorFromLocals(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		return name
	}
	if id, ok := c.Locals("user_id").(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// ========== Get billing (info + derived validity) ==========
func (ctl *BillingController) GetBilling(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
	}

	var school schoolModel.School
	if err := schoolModel.ScopeAlive(ctl.DB).First(&school, "school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var bi billingModel.BillingInfo
	if err := billingModel.ScopeAlive(ctl.DB).
		First(&bi, "billing_info_school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// NO_BILLING: belum pernah bayar → default terdokumentasi
			return helper.Success(c, "OK", dto.NoBillingResponse(schoolID))
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if bi.BillingInfoAdvancePaidDate == nil {
		return helper.Success(c, "OK", dto.NoBillingResponse(schoolID))
	}

	today := helper.TruncateToDay(time.Now())
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

	return helper.Success(c, "OK", dto.FromModelBillingInfo(&bi, school.StudentCountOrZero(), v))
}

// ========== Record payment ==========
func (ctl *BillingController) RecordPayment(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	input := service.RecordPaymentInput{
		Amount:             req.PaymentAmount,
		PricePerStudent:    req.PaymentPricePerStudent,
		Description:        req.PaymentDescription,
		IsSpecialCase:      req.PaymentIsSpecialCase,
		ExcessStudentCount: req.ExcessStudentCountOrZero(),
		ExcessDays:         req.ExcessDaysOrZero(),
		Actor:              actorFromLocals(c),
	}
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		t, err := helper.ParseDateYMD(*req.PaymentDate)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		input.PaymentDate = t
	}

	res, err := ctl.Payments.RecordPayment(c.UserContext(), schoolID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSchoolNotFound):
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		case errors.Is(err, service.ErrConcurrentUpdate):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, calc.ErrInvalidArgument):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	var school schoolModel.School
	_ = schoolModel.ScopeAlive(ctl.DB).First(&school, "school_id = ?", schoolID).Error

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment recorded", dto.RecordPaymentResponse{
		Billing:    dto.FromModelBillingInfo(&res.BillingInfo, school.StudentCountOrZero(), res.Validity),
		PaymentLog: &res.PaymentLog,
	})
}

// ========== List payment logs (append-only, newest first) ==========
func (ctl *BillingController) ListPayments(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&paymentModel.PaymentLog{}).
		Where("payment_log_school_id = ? AND payment_log_deleted_at IS NULL", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var logs []paymentModel.PaymentLog
	if err := q.Order("payment_log_date DESC, payment_log_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"payment_logs": logs,
		"pagination":   helper.BuildPagination(paging, total, len(logs)),
	})
}

// file: internals/features/schools/schools/controller/school_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "billeasy_backend/internals/features/audit/action_logs/model"
	auditService "billeasy_backend/internals/features/audit/action_logs/service"
	"billeasy_backend/internals/features/finance/billing/calc"
	billingDto "billeasy_backend/internals/features/finance/billing/dto"
	billingModel "billeasy_backend/internals/features/finance/billing/model"
	dto "billeasy_backend/internals/features/schools/schools/dto"
	model "billeasy_backend/internals/features/schools/schools/model"
	helper "billeasy_backend/internals/helpers"
)

type SchoolController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{
		DB:        db,
		Validator: validator.New(),
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

// ========== Create ==========
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	school := req.ToModel()
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(school).Error; err != nil {
			return err
		}
		sid := school.SchoolID
		desc := fmt.Sprintf("School %q created", school.SchoolName)
		return auditService.Append(tx, auditModel.ActionTypeSchoolCreated, desc, actorFromLocals(c), &sid, nil)
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "School created", school)
}

// ========== List (paged, decorated with derived validity) ==========
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := model.ScopeAlive(ctl.DB.Model(&model.School{}))
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("school_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var schools []model.School
	if err := q.Order("school_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&schools).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	items, err := ctl.decorateWithBilling(schools)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"schools":    items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}

// ========== Get by ID ==========
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
	}

	var school model.School
	if err := model.ScopeAlive(ctl.DB).First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	items, err := ctl.decorateWithBilling([]model.School{school})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", items[0])
}

// ========== Patch ==========
func (ctl *SchoolController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
	}

	var school model.School
	if err := model.ScopeAlive(ctl.DB).First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.ApplyTo(&school); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&school).Error; err != nil {
			return err
		}
		sid := school.SchoolID
		desc := fmt.Sprintf("School %q updated", school.SchoolName)
		return auditService.Append(tx, auditModel.ActionTypeSchoolUpdated, desc, actorFromLocals(c), &sid, nil)
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "School updated", school)
}

// ========== Delete (soft delete + cascade billing & payment logs) ==========
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
	}

	var school model.School
	if err := model.ScopeAlive(ctl.DB).First(&school, "school_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		res := tx.Model(&model.School{}).
			Where("school_id = ? AND school_deleted_at IS NULL", id).
			Update("school_deleted_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// cascade: billing info + payment logs ikut terhapus (soft)
		if err := tx.Model(&billingModel.BillingInfo{}).
			Where("billing_info_school_id = ? AND billing_info_deleted_at IS NULL", id).
			Update("billing_info_deleted_at", now).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"UPDATE payment_logs SET payment_log_deleted_at = ? WHERE payment_log_school_id = ? AND payment_log_deleted_at IS NULL",
			now, id,
		).Error; err != nil {
			return err
		}

		sid := school.SchoolID
		desc := fmt.Sprintf("School %q deleted (billing & payment logs cascaded)", school.SchoolName)
		return auditService.Append(tx, auditModel.ActionTypeSchoolDeleted, desc, actorFromLocals(c), &sid, nil)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "School not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

/* =========================================================
   Derived billing decoration (status dihitung saat read)
   ========================================================= */

func (ctl *SchoolController) decorateWithBilling(schools []model.School) ([]dto.SchoolWithBillingResponse, error) {
	items := make([]dto.SchoolWithBillingResponse, 0, len(schools))
	if len(schools) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, 0, len(schools))
	for i := range schools {
		ids = append(ids, schools[i].SchoolID)
	}

	var billings []billingModel.BillingInfo
	if err := billingModel.ScopeAlive(ctl.DB).
		Where("billing_info_school_id IN ?", ids).
		Find(&billings).Error; err != nil {
		return nil, err
	}

	bySchool := make(map[uuid.UUID]*billingModel.BillingInfo, len(billings))
	for i := range billings {
		bySchool[billings[i].BillingInfoSchoolID] = &billings[i]
	}

	today := helper.TruncateToDay(time.Now())
	for i := range schools {
		school := &schools[i]
		bi := bySchool[school.SchoolID]

		if bi == nil || bi.BillingInfoAdvancePaidDate == nil {
			items = append(items, dto.SchoolWithBillingResponse{
				School:  school,
				Billing: billingDto.NoBillingResponse(school.SchoolID),
			})
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
			return nil, err
		}
		items = append(items, dto.SchoolWithBillingResponse{
			School:  school,
			Billing: billingDto.FromModelBillingInfo(bi, school.StudentCountOrZero(), v),
		})
	}

	return items, nil
}

// file: internals/features/audit/action_logs/controller/action_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "billeasy_backend/internals/features/audit/action_logs/model"
	helper "billeasy_backend/internals/helpers"
)

type ActionLogController struct {
	DB *gorm.DB
}

func NewActionLogController(db *gorm.DB) *ActionLogController {
	return &ActionLogController{DB: db}
}

// ========== List (append-only, read-only, newest first) ==========
// Filter opsional: ?school_id= & ?action_type=
func (ctl *ActionLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ActionLog{})

	if sidStr := strings.TrimSpace(c.Query("school_id")); sidStr != "" {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "school_id invalid")
		}
		q = q.Where("action_log_school_id = ?", sid)
	}
	if at := strings.TrimSpace(c.Query("action_type")); at != "" {
		q = q.Where("action_log_action_type = ?", at)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var logs []model.ActionLog
	if err := q.Order("action_log_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"action_logs": logs,
		"pagination":  helper.BuildPagination(paging, total, len(logs)),
	})
}

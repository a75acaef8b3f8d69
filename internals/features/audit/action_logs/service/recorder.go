// file: internals/features/audit/action_logs/service/recorder.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "billeasy_backend/internals/features/audit/action_logs/model"
)

// Append menulis satu entry audit (append-only). Dipakai di dalam transaksi
// yang sama dengan mutasi yang dicatat — pass tx, bukan DB global.
func Append(tx *gorm.DB, actionType, description, actor string, schoolID *uuid.UUID, meta datatypes.JSONMap) error {
	entry := model.ActionLog{
		ActionLogActionType:  actionType,
		ActionLogDescription: description,
		ActionLogActor:       actor,
		ActionLogSchoolID:    schoolID,
		ActionLogMeta:        meta,
		ActionLogCreatedAt:   time.Now(),
	}
	return tx.Create(&entry).Error
}

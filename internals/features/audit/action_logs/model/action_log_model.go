// file: internals/features/audit/action_logs/model/action_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================
   Action types
   ========================= */

const (
	ActionTypeSchoolCreated   = "school_created"
	ActionTypeSchoolUpdated   = "school_updated"
	ActionTypeSchoolDeleted   = "school_deleted"
	ActionTypePaymentRecorded = "payment_recorded"
)

/* =========================
   Model: action_logs (append-only)
   ========================= */

type ActionLog struct {
	ActionLogID uuid.UUID `json:"action_log_id" gorm:"column:action_log_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ActionLogActionType  string `json:"action_log_action_type"  gorm:"column:action_log_action_type;type:varchar(40);not null;index"`
	ActionLogDescription string `json:"action_log_description"  gorm:"column:action_log_description;type:text;not null"`
	ActionLogActor       string `json:"action_log_actor"        gorm:"column:action_log_actor;type:text;not null"`

	ActionLogSchoolID *uuid.UUID `json:"action_log_school_id,omitempty" gorm:"column:action_log_school_id;type:uuid;index"`

	ActionLogMeta datatypes.JSONMap `json:"action_log_meta,omitempty" gorm:"column:action_log_meta;type:jsonb"`

	ActionLogCreatedAt time.Time `json:"action_log_created_at" gorm:"column:action_log_created_at;type:timestamptz;not null;default:now()"`
}

func (ActionLog) TableName() string { return "action_logs" }

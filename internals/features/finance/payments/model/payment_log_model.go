// file: internals/features/finance/payments/model/payment_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: payment_logs (append-only)
   ========================= */

// PaymentLog mencatat SATU event pembayaran, immutable. amount adalah nilai
// mentah yang disetor (diawetkan verbatim untuk audit); effective_amount
// adalah nilai yang benar-benar dikreditkan ke billing_infos.advance_paid
// setelah potongan special case.
type PaymentLog struct {
	PaymentLogID uuid.UUID `json:"payment_log_id" gorm:"column:payment_log_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PaymentLogSchoolID uuid.UUID `json:"payment_log_school_id" gorm:"column:payment_log_school_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	PaymentLogAmount          float64 `json:"payment_log_amount"           gorm:"column:payment_log_amount;type:numeric(14,2);not null;check:payment_log_amount >= 0"`
	PaymentLogEffectiveAmount float64 `json:"payment_log_effective_amount" gorm:"column:payment_log_effective_amount;type:numeric(14,2);not null;check:payment_log_effective_amount >= 0"`
	PaymentLogExcessCharge    float64 `json:"payment_log_excess_charge"    gorm:"column:payment_log_excess_charge;type:numeric(14,2);not null;default:0"`

	PaymentLogDate        time.Time `json:"payment_log_date"                  gorm:"column:payment_log_date;type:date;not null"`
	PaymentLogDescription *string   `json:"payment_log_description,omitempty" gorm:"column:payment_log_description;type:text"`

	// snapshot kondisi saat bayar
	PaymentLogStudentCount    int     `json:"payment_log_student_count"     gorm:"column:payment_log_student_count;type:int;not null"`
	PaymentLogPricePerStudent float64 `json:"payment_log_price_per_student" gorm:"column:payment_log_price_per_student;type:numeric(14,2);not null"`

	// special case (potongan pro-rata kelebihan siswa)
	PaymentLogIsSpecialCase      bool `json:"payment_log_is_special_case"            gorm:"column:payment_log_is_special_case;not null;default:false"`
	PaymentLogExcessStudentCount *int `json:"payment_log_excess_student_count,omitempty" gorm:"column:payment_log_excess_student_count;type:int"`
	PaymentLogExcessDays         *int `json:"payment_log_excess_days,omitempty"          gorm:"column:payment_log_excess_days;type:int"`

	PaymentLogCreatedAt time.Time  `json:"payment_log_created_at"           gorm:"column:payment_log_created_at;type:timestamptz;not null;default:now()"`
	PaymentLogDeletedAt *time.Time `json:"payment_log_deleted_at,omitempty" gorm:"column:payment_log_deleted_at;type:timestamptz"`
}

func (PaymentLog) TableName() string { return "payment_logs" }

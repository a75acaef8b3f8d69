// file: internals/features/finance/billing/dto/billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"billeasy_backend/internals/features/finance/billing/calc"
	billingModel "billeasy_backend/internals/features/finance/billing/model"
	paymentModel "billeasy_backend/internals/features/finance/payments/model"
)

/* =========================================================
   REQUEST: Record payment
   ========================================================= */

type RecordPaymentRequest struct {
	PaymentAmount          float64 `json:"payment_amount"            validate:"min=0"`
	PaymentPricePerStudent float64 `json:"payment_price_per_student" validate:"min=0"`

	// "YYYY-MM-DD"; kosong = hari ini
	PaymentDate        *string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentDescription *string `json:"payment_description" validate:"omitempty,max=500"`

	PaymentIsSpecialCase      bool `json:"payment_is_special_case"`
	PaymentExcessStudentCount *int `json:"payment_excess_student_count" validate:"omitempty,min=0"`
	PaymentExcessDays         *int `json:"payment_excess_days"          validate:"omitempty,min=0"`
}

func (r *RecordPaymentRequest) ExcessStudentCountOrZero() int {
	if r.PaymentExcessStudentCount == nil {
		return 0
	}
	return *r.PaymentExcessStudentCount
}

func (r *RecordPaymentRequest) ExcessDaysOrZero() int {
	if r.PaymentExcessDays == nil {
		return 0
	}
	return *r.PaymentExcessDays
}

/* =========================================================
   RESPONSE: billing info + derived validity
   ========================================================= */

type BillingInfoResponse struct {
	BillingInfoID       *uuid.UUID `json:"billing_info_id,omitempty"`
	BillingInfoSchoolID uuid.UUID  `json:"billing_info_school_id"`

	BillingInfoQuotedPrice     float64    `json:"billing_info_quoted_price"`
	BillingInfoAdvancePaid     float64    `json:"billing_info_advance_paid"`
	BillingInfoAdvancePaidDate *time.Time `json:"billing_info_advance_paid_date,omitempty"`

	RemainingBalance float64       `json:"remaining_balance"`
	Validity         calc.Validity `json:"validity"`
}

// FromModelBillingInfo memetakan baris billing + validity hasil kalkulasi.
func FromModelBillingInfo(b *billingModel.BillingInfo, studentCount int, v calc.Validity) BillingInfoResponse {
	return BillingInfoResponse{
		BillingInfoID:              &b.BillingInfoID,
		BillingInfoSchoolID:        b.BillingInfoSchoolID,
		BillingInfoQuotedPrice:     b.BillingInfoQuotedPrice,
		BillingInfoAdvancePaid:     b.BillingInfoAdvancePaid,
		BillingInfoAdvancePaidDate: b.BillingInfoAdvancePaidDate,
		RemainingBalance:           calc.RemainingBalance(studentCount, b.BillingInfoQuotedPrice, b.BillingInfoAdvancePaid),
		Validity:                   v,
	}
}

// NoBillingResponse: state NO_BILLING (belum pernah bayar) dengan default
// validity yang terdokumentasi.
func NoBillingResponse(schoolID uuid.UUID) BillingInfoResponse {
	return BillingInfoResponse{
		BillingInfoSchoolID: schoolID,
		RemainingBalance:    0,
		Validity:            calc.NoPaymentValidity(),
	}
}

/* =========================================================
   RESPONSE: record payment result
   ========================================================= */

type RecordPaymentResponse struct {
	Billing    BillingInfoResponse      `json:"billing"`
	PaymentLog *paymentModel.PaymentLog `json:"payment_log"`
}

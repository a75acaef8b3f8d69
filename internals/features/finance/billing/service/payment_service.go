// file: internals/features/finance/billing/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "billeasy_backend/internals/features/audit/action_logs/model"
	auditService "billeasy_backend/internals/features/audit/action_logs/service"
	"billeasy_backend/internals/features/finance/billing/calc"
	billingModel "billeasy_backend/internals/features/finance/billing/model"
	paymentModel "billeasy_backend/internals/features/finance/payments/model"
	schoolModel "billeasy_backend/internals/features/schools/schools/model"
	helper "billeasy_backend/internals/helpers"
)

var (
	ErrSchoolNotFound   = errors.New("school not found")
	ErrConcurrentUpdate = errors.New("billing info was updated concurrently, retry the payment")
)

/* =========================================================
   PaymentService
   ========================================================= */

// PaymentService mengorkestrasi recordPayment: hitung effective amount,
// upsert billing info (CAS di kolom version), append payment log + action log,
// lalu hitung ulang validity dari record yang sudah ter-update.
type PaymentService struct {
	DB *gorm.DB

	// clock di-inject supaya "today" bisa di-mock di test
	Clock func() time.Time
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db, Clock: time.Now}
}

type RecordPaymentInput struct {
	Amount          float64
	PricePerStudent float64

	// zero value = pakai Clock()
	PaymentDate time.Time
	Description *string

	IsSpecialCase      bool
	ExcessStudentCount int
	ExcessDays         int

	Actor string
}

type RecordPaymentResult struct {
	BillingInfo  billingModel.BillingInfo
	Validity     calc.Validity
	PaymentLog   paymentModel.PaymentLog
	Effective    calc.EffectivePayment
	FirstPayment bool
}

func (s *PaymentService) RecordPayment(ctx context.Context, schoolID uuid.UUID, in RecordPaymentInput) (*RecordPaymentResult, error) {
	today := helper.TruncateToDay(s.Clock())
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = today
	}

	var school schoolModel.School
	if err := schoolModel.ScopeAlive(s.DB.WithContext(ctx)).
		First(&school, "school_id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}

	ep, err := calc.ComputeEffectivePayment(in.Amount, in.PricePerStudent, in.IsSpecialCase, in.ExcessStudentCount, in.ExcessDays)
	if err != nil {
		return nil, err
	}

	result := &RecordPaymentResult{Effective: ep}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing billingModel.BillingInfo
		findErr := billingModel.ScopeAlive(tx).
			First(&existing, "billing_info_school_id = ?", schoolID).Error

		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			// NO_BILLING → ACTIVE: baris pertama dibuat dari pembayaran ini
			created := nextBillingState(nil, schoolID, ep, in.PricePerStudent, in.IsSpecialCase, today)
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			result.BillingInfo = created
			result.FirstPayment = true

		case findErr != nil:
			return findErr

		default:
			next := nextBillingState(&existing, schoolID, ep, in.PricePerStudent, in.IsSpecialCase, today)

			// CAS di version: read-modify-write tanpa guard adalah race yang
			// ada di sistem lama; di sini update kalah → conflict, bukan lost update.
			res := tx.Model(&billingModel.BillingInfo{}).
				Where("billing_info_id = ? AND billing_info_version = ?", existing.BillingInfoID, existing.BillingInfoVersion).
				Updates(map[string]interface{}{
					"billing_info_quoted_price":      next.BillingInfoQuotedPrice,
					"billing_info_advance_paid":      next.BillingInfoAdvancePaid,
					"billing_info_advance_paid_date": next.BillingInfoAdvancePaidDate,
					"billing_info_version":           next.BillingInfoVersion,
					"billing_info_updated_at":        time.Now(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrConcurrentUpdate
			}
			result.BillingInfo = next
		}

		// Payment log: amount mentah diawetkan verbatim untuk audit.
		plog := paymentModel.PaymentLog{
			PaymentLogSchoolID:        schoolID,
			PaymentLogAmount:          in.Amount,
			PaymentLogEffectiveAmount: ep.EffectiveAmount,
			PaymentLogExcessCharge:    ep.ExcessCharge,
			PaymentLogDate:            paymentDate,
			PaymentLogDescription:     in.Description,
			PaymentLogStudentCount:    school.StudentCountOrZero(),
			PaymentLogPricePerStudent: in.PricePerStudent,
			PaymentLogIsSpecialCase:   in.IsSpecialCase,
			PaymentLogCreatedAt:       time.Now(),
		}
		if in.IsSpecialCase {
			esc := in.ExcessStudentCount
			ed := in.ExcessDays
			plog.PaymentLogExcessStudentCount = &esc
			plog.PaymentLogExcessDays = &ed
		}
		if err := tx.Create(&plog).Error; err != nil {
			return err
		}
		result.PaymentLog = plog

		sid := schoolID
		desc := fmt.Sprintf("Payment of %.2f recorded for %s (effective %.2f)", in.Amount, school.SchoolName, ep.EffectiveAmount)
		return auditService.Append(tx, auditModel.ActionTypePaymentRecorded, desc, in.Actor, &sid, datatypes.JSONMap{
			"amount":           in.Amount,
			"effective_amount": ep.EffectiveAmount,
			"excess_charge":    ep.ExcessCharge,
			"is_special_case":  in.IsSpecialCase,
		})
	})
	if err != nil {
		return nil, err
	}

	// Recompute validity dari record ter-update supaya caller tidak perlu
	// round trip kedua.
	validity := calc.NoPaymentValidity()
	if result.BillingInfo.BillingInfoAdvancePaidDate != nil {
		v, err := calc.ComputeValidity(
			school.StudentCountOrZero(),
			result.BillingInfo.BillingInfoQuotedPrice,
			result.BillingInfo.BillingInfoAdvancePaid,
			*result.BillingInfo.BillingInfoAdvancePaidDate,
			today,
		)
		if err != nil {
			return nil, err
		}
		validity = v
	}
	result.Validity = validity

	return result, nil
}

/* =========================================================
   Pure decision core (tanpa I/O, gampang dites)
   ========================================================= */

// nextBillingState menghitung baris billing hasil satu pembayaran.
// existing == nil berarti NO_BILLING (baris pertama dibuat).
// Harga quoted HANYA berubah pada special case; pembayaran biasa tidak
// pernah mengubah harga kontrak secara diam-diam.
func nextBillingState(existing *billingModel.BillingInfo, schoolID uuid.UUID, ep calc.EffectivePayment, pricePerStudent float64, isSpecialCase bool, today time.Time) billingModel.BillingInfo {
	if existing == nil {
		return billingModel.BillingInfo{
			BillingInfoSchoolID:        schoolID,
			BillingInfoQuotedPrice:     pricePerStudent,
			BillingInfoAdvancePaid:     ep.EffectiveAmount,
			BillingInfoAdvancePaidDate: &today,
			BillingInfoVersion:         1,
		}
	}

	next := *existing
	next.BillingInfoAdvancePaid = existing.BillingInfoAdvancePaid + ep.EffectiveAmount
	next.BillingInfoAdvancePaidDate = &today
	next.BillingInfoVersion = existing.BillingInfoVersion + 1
	if isSpecialCase {
		next.BillingInfoQuotedPrice = pricePerStudent
	}
	return next
}

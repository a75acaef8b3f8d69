// file: internals/features/finance/billing/calc/calc.go
package calc

import (
	"errors"
	"fmt"
	"math"
	"time"
)

/* =========================================================
   Status klasifikasi (label turunan, tidak disimpan di DB)
   ========================================================= */

const (
	StatusPaid     = "paid"
	StatusOverdue  = "overdue"
	StatusCritical = "critical"

	// Batas hari untuk klasifikasi status. Evaluasi pakai strict ">":
	// daysRemaining > 30 → paid; > 10 → overdue; sisanya critical.
	StatusThresholdPaidDays    = 30
	StatusThresholdOverdueDays = 10

	// Harga quoted adalah per siswa per tahun.
	DaysPerYear = 365
)

var ErrInvalidArgument = errors.New("invalid argument")

/* =========================================================
   Validity
   ========================================================= */

type Validity struct {
	DaysOfValidity int        `json:"days_of_validity"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	DaysRemaining  int        `json:"days_remaining"`
	Status         string     `json:"status"`
}

// NoPaymentValidity adalah state kanonik "belum ada pembayaran"
// (advance_paid_date kosong): 0 hari, critical, tanpa valid_until.
func NoPaymentValidity() Validity {
	return Validity{
		DaysOfValidity: 0,
		ValidUntil:     nil,
		DaysRemaining:  0,
		Status:         StatusCritical,
	}
}

// ComputeValidity menghitung berapa hari layanan yang dibeli oleh advance paid:
//
//	totalAnnualFees = studentCount * quotedPrice
//	pricePerDay     = totalAnnualFees / 365
//	daysOfValidity  = floor(advancePaid / pricePerDay)   (0 kalau pricePerDay == 0)
//	validUntil      = advancePaidDate + daysOfValidity hari
//	daysRemaining   = ceil((validUntil − today) / 1 hari) — boleh negatif (expired)
//
// Input negatif ditolak dengan ErrInvalidArgument; itu indikasi data korup,
// bukan state bisnis yang valid.
func ComputeValidity(studentCount int, quotedPrice, advancePaid float64, advancePaidDate, today time.Time) (Validity, error) {
	if studentCount < 0 {
		return Validity{}, fmt.Errorf("%w: studentCount %d is negative", ErrInvalidArgument, studentCount)
	}
	if quotedPrice < 0 {
		return Validity{}, fmt.Errorf("%w: quotedPrice %v is negative", ErrInvalidArgument, quotedPrice)
	}
	if advancePaid < 0 {
		return Validity{}, fmt.Errorf("%w: advancePaid %v is negative", ErrInvalidArgument, advancePaid)
	}

	totalAnnualFees := float64(studentCount) * quotedPrice
	pricePerDay := totalAnnualFees / DaysPerYear

	daysOfValidity := 0
	if pricePerDay > 0 {
		daysOfValidity = int(math.Floor(advancePaid / pricePerDay))
	}

	validUntil := advancePaidDate.AddDate(0, 0, daysOfValidity)
	daysRemaining := int(math.Ceil(validUntil.Sub(today).Hours() / 24))

	return Validity{
		DaysOfValidity: daysOfValidity,
		ValidUntil:     &validUntil,
		DaysRemaining:  daysRemaining,
		Status:         StatusForDaysRemaining(daysRemaining),
	}, nil
}

// StatusForDaysRemaining mengklasifikasikan sisa hari ke label status.
func StatusForDaysRemaining(daysRemaining int) string {
	switch {
	case daysRemaining > StatusThresholdPaidDays:
		return StatusPaid
	case daysRemaining > StatusThresholdOverdueDays:
		return StatusOverdue
	default:
		return StatusCritical
	}
}

/* =========================================================
   Effective payment ("special case" adjustment)
   ========================================================= */

type EffectivePayment struct {
	EffectiveAmount float64 `json:"effective_amount"`
	ExcessCharge    float64 `json:"excess_charge"`
}

// ComputeEffectivePayment menghitung nilai yang benar-benar dikreditkan
// ke advance paid. Kalau special case dan KEDUA excess count > 0:
//
//	excessCharge    = excessStudentCount * (pricePerStudent/365) * excessDays
//	effectiveAmount = max(0, amount − excessCharge)
//
// Selain itu passthrough: effectiveAmount == amount, excessCharge == 0.
// Raw amount tetap dicatat apa adanya di payment log untuk audit.
func ComputeEffectivePayment(amount, pricePerStudent float64, isSpecialCase bool, excessStudentCount, excessDays int) (EffectivePayment, error) {
	if amount < 0 {
		return EffectivePayment{}, fmt.Errorf("%w: amount %v is negative", ErrInvalidArgument, amount)
	}
	if pricePerStudent < 0 {
		return EffectivePayment{}, fmt.Errorf("%w: pricePerStudent %v is negative", ErrInvalidArgument, pricePerStudent)
	}
	if excessStudentCount < 0 {
		return EffectivePayment{}, fmt.Errorf("%w: excessStudentCount %d is negative", ErrInvalidArgument, excessStudentCount)
	}
	if excessDays < 0 {
		return EffectivePayment{}, fmt.Errorf("%w: excessDays %d is negative", ErrInvalidArgument, excessDays)
	}

	if !isSpecialCase || excessStudentCount == 0 || excessDays == 0 {
		return EffectivePayment{EffectiveAmount: amount, ExcessCharge: 0}, nil
	}

	pricePerStudentPerDay := pricePerStudent / DaysPerYear
	excessCharge := float64(excessStudentCount) * pricePerStudentPerDay * float64(excessDays)
	effectiveAmount := amount - excessCharge
	if effectiveAmount < 0 {
		// pembayaran tidak boleh jadi "pemasukan negatif"
		effectiveAmount = 0
	}

	return EffectivePayment{EffectiveAmount: effectiveAmount, ExcessCharge: excessCharge}, nil
}

/* =========================================================
   Remaining balance
   ========================================================= */

// RemainingBalance = max(0, studentCount*quotedPrice − advancePaid).
// Non-negatif by construction (clamped).
func RemainingBalance(studentCount int, quotedPrice, advancePaid float64) float64 {
	balance := float64(studentCount)*quotedPrice - advancePaid
	if balance < 0 {
		return 0
	}
	return balance
}

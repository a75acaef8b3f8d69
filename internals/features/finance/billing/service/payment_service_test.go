package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"billeasy_backend/internals/features/finance/billing/calc"
	billingModel "billeasy_backend/internals/features/finance/billing/model"
)

var testToday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

/* =========================================================
   nextBillingState (pure decision core)
   ========================================================= */

func TestNextBillingState_FirstPaymentCreatesRow(t *testing.T) {
	schoolID := uuid.New()
	ep := calc.EffectivePayment{EffectiveAmount: 9950, ExcessCharge: 50}

	bi := nextBillingState(nil, schoolID, ep, 365, true, testToday)

	assert.Equal(t, schoolID, bi.BillingInfoSchoolID)
	assert.Equal(t, 365.0, bi.BillingInfoQuotedPrice)
	// advance_paid baris pertama == effectiveAmount persis, bukan raw amount
	assert.Equal(t, 9950.0, bi.BillingInfoAdvancePaid)
	require.NotNil(t, bi.BillingInfoAdvancePaidDate)
	assert.Equal(t, testToday, *bi.BillingInfoAdvancePaidDate)
	assert.Equal(t, 1, bi.BillingInfoVersion)
}

func TestNextBillingState_AccumulatesAdvancePaid(t *testing.T) {
	schoolID := uuid.New()
	oldDate := testToday.AddDate(0, 0, -30)
	existing := &billingModel.BillingInfo{
		BillingInfoID:              uuid.New(),
		BillingInfoSchoolID:        schoolID,
		BillingInfoQuotedPrice:     400,
		BillingInfoAdvancePaid:     5000,
		BillingInfoAdvancePaidDate: &oldDate,
		BillingInfoVersion:         3,
	}

	next := nextBillingState(existing, schoolID, calc.EffectivePayment{EffectiveAmount: 2500}, 400, false, testToday)

	assert.Equal(t, 7500.0, next.BillingInfoAdvancePaid)
	require.NotNil(t, next.BillingInfoAdvancePaidDate)
	assert.Equal(t, testToday, *next.BillingInfoAdvancePaidDate)
	assert.Equal(t, 4, next.BillingInfoVersion)
}

func TestNextBillingState_NonSpecialCaseNeverChangesPrice(t *testing.T) {
	schoolID := uuid.New()
	existing := &billingModel.BillingInfo{
		BillingInfoID:          uuid.New(),
		BillingInfoSchoolID:    schoolID,
		BillingInfoQuotedPrice: 400,
		BillingInfoVersion:     1,
	}

	// harga di payload beda (999) tapi bukan special case → diabaikan
	next := nextBillingState(existing, schoolID, calc.EffectivePayment{EffectiveAmount: 100}, 999, false, testToday)
	assert.Equal(t, 400.0, next.BillingInfoQuotedPrice)
}

func TestNextBillingState_SpecialCaseOverwritesPrice(t *testing.T) {
	schoolID := uuid.New()
	existing := &billingModel.BillingInfo{
		BillingInfoID:          uuid.New(),
		BillingInfoSchoolID:    schoolID,
		BillingInfoQuotedPrice: 400,
		BillingInfoVersion:     1,
	}

	next := nextBillingState(existing, schoolID, calc.EffectivePayment{EffectiveAmount: 100}, 450, true, testToday)
	assert.Equal(t, 450.0, next.BillingInfoQuotedPrice)
}

/* =========================================================
   RecordPayment (sqlmock, first-payment path)
   ========================================================= */

func newMockedService(t *testing.T) (*PaymentService, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	svc := NewPaymentService(db)
	svc.Clock = func() time.Time { return testToday }
	return svc, mock
}

func TestRecordPayment_FirstPaymentCreatesBillingInfo(t *testing.T) {
	svc, mock := newMockedService(t)

	schoolID := uuid.New()
	billingID := uuid.New()
	paymentLogID := uuid.New()
	actionLogID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name", "school_student_count"}).
			AddRow(schoolID.String(), "SMA Harapan", 100))

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "billing_infos"`).
		WillReturnRows(sqlmock.NewRows([]string{"billing_info_id"})) // NO_BILLING
	mock.ExpectQuery(`INSERT INTO "billing_infos"`).
		WillReturnRows(sqlmock.NewRows([]string{"billing_info_id"}).AddRow(billingID.String()))
	mock.ExpectQuery(`INSERT INTO "payment_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"payment_log_id"}).AddRow(paymentLogID.String()))
	mock.ExpectQuery(`INSERT INTO "action_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"action_log_id"}).AddRow(actionLogID.String()))
	mock.ExpectCommit()

	res, err := svc.RecordPayment(context.Background(), schoolID, RecordPaymentInput{
		Amount:             10000,
		PricePerStudent:    365,
		IsSpecialCase:      true,
		ExcessStudentCount: 5,
		ExcessDays:         10,
		Actor:              "admin@billeasy.test",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.True(t, res.FirstPayment)
	assert.InDelta(t, 50, res.Effective.ExcessCharge, 1e-9)
	assert.InDelta(t, 9950, res.Effective.EffectiveAmount, 1e-9)

	// advance_paid == effectiveAmount persis pada baris pertama
	assert.InDelta(t, 9950, res.BillingInfo.BillingInfoAdvancePaid, 1e-9)

	// amount mentah diawetkan verbatim di payment log
	assert.Equal(t, 10000.0, res.PaymentLog.PaymentLogAmount)
	assert.Equal(t, 9950.0, res.PaymentLog.PaymentLogEffectiveAmount)

	// validity: 100 siswa x 365 → perDay 100 → floor(9950/100) = 99 hari
	assert.Equal(t, 99, res.Validity.DaysOfValidity)
	assert.Equal(t, 99, res.Validity.DaysRemaining)
	assert.Equal(t, calc.StatusPaid, res.Validity.Status)
}

func TestRecordPayment_UnknownSchool(t *testing.T) {
	svc, mock := newMockedService(t)

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	_, err := svc.RecordPayment(context.Background(), uuid.New(), RecordPaymentInput{
		Amount:          1000,
		PricePerStudent: 365,
		Actor:           "admin@billeasy.test",
	})
	assert.ErrorIs(t, err, ErrSchoolNotFound)
}

func TestRecordPayment_RejectsNegativeAmount(t *testing.T) {
	svc, mock := newMockedService(t)

	schoolID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name"}).
			AddRow(schoolID.String(), "SMA Harapan"))

	_, err := svc.RecordPayment(context.Background(), schoolID, RecordPaymentInput{
		Amount:          -5,
		PricePerStudent: 365,
		Actor:           "admin@billeasy.test",
	})
	assert.ErrorIs(t, err, calc.ErrInvalidArgument)
}

package calc

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
)

func TestComputeValidity_ProportionalFormula(t *testing.T) {
	// studentCount=100, quotedPrice=365, advancePaid=3650
	// → totalAnnualFees=36500, pricePerDay=100, daysOfValidity=36
	v, err := ComputeValidity(100, 365, 3650, testToday, testToday)
	require.NoError(t, err)

	assert.Equal(t, 36, v.DaysOfValidity)
	require.NotNil(t, v.ValidUntil)
	assert.Equal(t, testToday.AddDate(0, 0, 36), *v.ValidUntil)
	assert.Equal(t, 36, v.DaysRemaining)
	assert.Equal(t, StatusPaid, v.Status)
}

func TestComputeValidity_ZeroPaymentBuysZeroDays(t *testing.T) {
	for _, tc := range []struct {
		students int
		price    float64
	}{
		{0, 0}, {0, 500}, {120, 0}, {120, 500}, {1, 1},
	} {
		v, err := ComputeValidity(tc.students, tc.price, 0, testToday, testToday)
		require.NoError(t, err)
		assert.Equal(t, 0, v.DaysOfValidity, "students=%d price=%v", tc.students, tc.price)
		require.NotNil(t, v.ValidUntil)
		assert.Equal(t, testToday, *v.ValidUntil)
	}
}

func TestComputeValidity_ZeroPricePerDayGuard(t *testing.T) {
	// quotedPrice == 0 atau studentCount == 0 → pricePerDay == 0 → tidak ada
	// extension dan tidak boleh panic / division error.
	v, err := ComputeValidity(0, 0, 99999, testToday, testToday)
	require.NoError(t, err)
	assert.Equal(t, 0, v.DaysOfValidity)
	require.NotNil(t, v.ValidUntil)
	assert.Equal(t, testToday, *v.ValidUntil)
	assert.Equal(t, 0, v.DaysRemaining)
	assert.Equal(t, StatusCritical, v.Status)
}

func TestComputeValidity_NeverNaNOrInf(t *testing.T) {
	for _, students := range []int{0, 1, 50000} {
		for _, price := range []float64{0, 0.01, 365, 1e9} {
			for _, paid := range []float64{0, 1, 1e12} {
				v, err := ComputeValidity(students, price, paid, testToday, testToday)
				require.NoError(t, err)
				assert.False(t, math.IsNaN(float64(v.DaysOfValidity)))
				assert.False(t, math.IsInf(float64(v.DaysOfValidity), 0))
			}
		}
	}
}

func TestComputeValidity_ExpiredIsNegativeNotClamped(t *testing.T) {
	// 10 hari validity, dibayar 40 hari lalu → sisa -30, state valid (expired)
	paidDate := testToday.AddDate(0, 0, -40)
	v, err := ComputeValidity(10, 365, 100, paidDate, testToday)
	require.NoError(t, err)
	assert.Equal(t, 10, v.DaysOfValidity)
	assert.Equal(t, -30, v.DaysRemaining)
	assert.Equal(t, StatusCritical, v.Status)
}

func TestComputeValidity_FractionalDayRoundsUp(t *testing.T) {
	// today jam 18:00 → selisih 35.25 hari → ceil → 36 (bias ke "masih valid")
	todayLate := testToday.Add(18 * time.Hour)
	v, err := ComputeValidity(100, 365, 3650, testToday, todayLate)
	require.NoError(t, err)
	assert.Equal(t, 36, v.DaysRemaining)
}

func TestComputeValidity_RejectsNegativeInputs(t *testing.T) {
	_, err := ComputeValidity(-1, 365, 100, testToday, testToday)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeValidity(10, -365, 100, testToday, testToday)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeValidity(10, 365, -100, testToday, testToday)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestComputeValidity_Deterministic(t *testing.T) {
	a, err := ComputeValidity(57, 420.5, 12345.67, testToday.AddDate(0, 0, -3), testToday)
	require.NoError(t, err)
	b, err := ComputeValidity(57, 420.5, 12345.67, testToday.AddDate(0, 0, -3), testToday)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStatusForDaysRemaining_StrictBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{36, StatusPaid},
		{31, StatusPaid},
		{30, StatusOverdue}, // strict ">", bukan ">="
		{11, StatusOverdue},
		{10, StatusCritical}, // strict ">", bukan ">="
		{0, StatusCritical},
		{-5, StatusCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusForDaysRemaining(tc.days), "days=%d", tc.days)
	}
}

func TestComputeValidity_StatusBoundariesEndToEnd(t *testing.T) {
	// pricePerDay = 1 → daysOfValidity == advancePaid; advancePaidDate = today.
	cases := []struct {
		paid float64
		want string
	}{
		{31, StatusPaid},
		{30, StatusOverdue},
		{11, StatusOverdue},
		{10, StatusCritical},
	}
	for _, tc := range cases {
		v, err := ComputeValidity(1, 365, tc.paid, testToday, testToday)
		require.NoError(t, err)
		assert.Equal(t, int(tc.paid), v.DaysRemaining)
		assert.Equal(t, tc.want, v.Status, "paid=%v", tc.paid)
	}
}

func TestNoPaymentValidity_Defaults(t *testing.T) {
	v := NoPaymentValidity()
	assert.Equal(t, 0, v.DaysOfValidity)
	assert.Nil(t, v.ValidUntil)
	assert.Equal(t, 0, v.DaysRemaining)
	assert.Equal(t, StatusCritical, v.Status)
}

func TestComputeEffectivePayment_SpecialCase(t *testing.T) {
	// amount=10000, price=365, excess 5 siswa x 10 hari
	// → perDay=1, excessCharge=50, effective=9950
	ep, err := ComputeEffectivePayment(10000, 365, true, 5, 10)
	require.NoError(t, err)
	assert.InDelta(t, 50, ep.ExcessCharge, 1e-9)
	assert.InDelta(t, 9950, ep.EffectiveAmount, 1e-9)
}

func TestComputeEffectivePayment_NonSpecialCaseIsPassthrough(t *testing.T) {
	for _, tc := range []struct{ students, days int }{
		{0, 0}, {5, 10}, {1000, 365},
	} {
		ep, err := ComputeEffectivePayment(7500, 365, false, tc.students, tc.days)
		require.NoError(t, err)
		assert.Equal(t, 7500.0, ep.EffectiveAmount)
		assert.Equal(t, 0.0, ep.ExcessCharge)
	}
}

func TestComputeEffectivePayment_RequiresBothExcessPositive(t *testing.T) {
	ep, err := ComputeEffectivePayment(7500, 365, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, ep.EffectiveAmount)
	assert.Equal(t, 0.0, ep.ExcessCharge)

	ep, err = ComputeEffectivePayment(7500, 365, true, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 7500.0, ep.EffectiveAmount)
	assert.Equal(t, 0.0, ep.ExcessCharge)
}

func TestComputeEffectivePayment_ClampedToNonNegative(t *testing.T) {
	// excessCharge = 100 * 1 * 365 = 36500 > amount → effective clamp ke 0
	ep, err := ComputeEffectivePayment(1000, 365, true, 100, 365)
	require.NoError(t, err)
	assert.Greater(t, ep.ExcessCharge, 1000.0)
	assert.Equal(t, 0.0, ep.EffectiveAmount)
}

func TestComputeEffectivePayment_RejectsNegativeInputs(t *testing.T) {
	_, err := ComputeEffectivePayment(-1, 365, false, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeEffectivePayment(100, -1, false, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeEffectivePayment(100, 365, true, -1, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ComputeEffectivePayment(100, 365, true, 5, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRemainingBalance_Clamped(t *testing.T) {
	assert.Equal(t, 26500.0, RemainingBalance(100, 365, 10000))
	assert.Equal(t, 0.0, RemainingBalance(100, 365, 36500))
	assert.Equal(t, 0.0, RemainingBalance(100, 365, 99999)) // overpaid → clamp 0
	assert.Equal(t, 0.0, RemainingBalance(0, 0, 0))
}

package creditcalc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskmanagement123/creditcalc"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func assertApprox(t *testing.T, got decimal.Decimal, want, tol float64, msg string) {
	t.Helper()
	assert.True(t,
		got.Sub(dec(want)).Abs().LessThanOrEqual(dec(tol)),
		"%s: want %v +- %v, got %s", msg, want, tol, got)
}

func TestCalculateAnnuityPayment_KnownValue(t *testing.T) {
	// 1,000,000 at 10% for 60 months is the reference case: 21247.05.
	payment, err := creditcalc.CalculateAnnuityPayment(dec(1_000_000), 60, dec(10.0))
	require.NoError(t, err)
	assertApprox(t, payment, 21247.05, 0.1, "annuity payment")
}

func TestCalculateAnnuityPayment_ZeroRate(t *testing.T) {
	payment, err := creditcalc.CalculateAnnuityPayment(dec(1200), 12, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, payment.Equal(dec(100)), "zero rate should give straight-line payment, got %s", payment)
}

func TestCalculateAnnuityPayment_InvalidInput(t *testing.T) {
	_, err := creditcalc.CalculateAnnuityPayment(decimal.Zero, 60, dec(10))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)

	_, err = creditcalc.CalculateAnnuityPayment(dec(1000), 0, dec(10))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)

	_, err = creditcalc.CalculateAnnuityPayment(dec(1000), 12, dec(-1))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)
}

func TestGeneratePaymentSchedule_Totals(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(500_000), 24, dec(11.0))
	require.NoError(t, err)
	require.Equal(t, 24, schedule.Months())

	principalTotal := decimal.Zero
	for _, p := range schedule.Rows() {
		principalTotal = principalTotal.Add(p.PrincipalAmount)
		split := p.PrincipalAmount.Add(p.InterestAmount)
		assert.True(t, p.PaymentAmount.Sub(split).Abs().LessThanOrEqual(dec(0.011)),
			"row %d: principal+interest %s should match payment %s", p.Number, split, p.PaymentAmount)
	}
	assertApprox(t, principalTotal, 500_000, 1.0, "principal portions should sum to the loan amount")

	last := schedule.Row(schedule.Months() - 1)
	assert.True(t, last.RemainingPrincipal.IsZero(),
		"final remaining principal should be zero, got %s", last.RemainingPrincipal)
}

func TestGeneratePaymentSchedule_ZeroRate(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(1200), 12, decimal.Zero)
	require.NoError(t, err)
	require.Equal(t, 12, schedule.Months())
	assert.True(t, schedule.TotalInterest().IsZero(),
		"zero rate should accrue no interest, got %s", schedule.TotalInterest())
	for _, p := range schedule.Rows() {
		assert.True(t, p.PaymentAmount.Equal(dec(100)),
			"payment %d should be 100, got %s", p.Number, p.PaymentAmount)
	}
}

func TestGeneratePaymentSchedule_InterestGrowsWithRate(t *testing.T) {
	prev := decimal.Zero
	for _, rate := range []float64{5, 9, 13, 21} {
		schedule, err := creditcalc.GeneratePaymentSchedule(dec(300_000), 24, dec(rate))
		require.NoError(t, err)
		assert.True(t, schedule.TotalInterest().GreaterThan(prev),
			"total interest should grow with the rate (rate %v)", rate)
		prev = schedule.TotalInterest()
	}
}

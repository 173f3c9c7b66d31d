package creditcalc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskmanagement123/creditcalc"
)

func TestMonthlyRate_RoundTrip(t *testing.T) {
	monthly, err := creditcalc.MonthlyRate(dec(12))
	require.NoError(t, err)
	assert.True(t, monthly.Equal(dec(0.01)), "12%% annual is 1%% monthly, got %s", monthly)

	annual, err := creditcalc.AnnualFromMonthly(monthly)
	require.NoError(t, err)
	assert.True(t, annual.Equal(dec(12)), "round trip should restore the annual rate, got %s", annual)
}

func TestMonthlyRate_Negative(t *testing.T) {
	_, err := creditcalc.MonthlyRate(dec(-0.1))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)

	_, err = creditcalc.AnnualFromMonthly(dec(-0.001))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)
}

func TestRoundMoney_HalfUpBias(t *testing.T) {
	assert.True(t, creditcalc.RoundMoney(dec(1.005)).Equal(dec(1.01)),
		"midpoint rounds toward the caller")
	assert.True(t, creditcalc.RoundMoney(dec(1.004)).Equal(dec(1.00)))
	assert.True(t, creditcalc.RoundMoney(dec(21247.0451)).Equal(dec(21247.05)))
}

func TestEnsurePositive(t *testing.T) {
	assert.NoError(t, creditcalc.EnsurePositive(dec(0.01), "amount"))
	err := creditcalc.EnsurePositive(decimal.Zero, "amount")
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)
	assert.ErrorContains(t, err, "amount")
}

func TestRemainingPrincipal(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(100_000), 12, dec(10))
	require.NoError(t, err)

	assertApprox(t, creditcalc.RemainingPrincipal(schedule, 0), 100_000, 0.02,
		"before any payment the full principal is outstanding")
	assert.True(t, creditcalc.RemainingPrincipal(schedule, 12).IsZero(),
		"after the last payment nothing is outstanding")
	assert.True(t, creditcalc.RemainingPrincipal(schedule, 20).IsZero())

	after6 := creditcalc.RemainingPrincipal(schedule, 6)
	assert.True(t, after6.GreaterThan(decimal.Zero))
	assert.True(t, after6.LessThan(dec(100_000)))
}

func TestInferMonthlyRate(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(250_000), 36, dec(9))
	require.NoError(t, err)

	inferred, err := creditcalc.InferMonthlyRate(schedule)
	require.NoError(t, err)
	// 9% annual is 0.0075 monthly; inference works off the rounded first row.
	assert.True(t, inferred.Sub(dec(0.0075)).Abs().LessThan(dec(0.0001)),
		"inferred rate should match the building rate, got %s", inferred)
}

func TestInferMonthlyRate_ZeroRate(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(1200), 12, decimal.Zero)
	require.NoError(t, err)

	inferred, err := creditcalc.InferMonthlyRate(schedule)
	require.NoError(t, err)
	assert.True(t, inferred.IsZero())
}

func TestInferMonthlyRate_Empty(t *testing.T) {
	_, err := creditcalc.InferMonthlyRate(creditcalc.PaymentSchedule{})
	assert.ErrorIs(t, err, creditcalc.ErrEmptySchedule)
}

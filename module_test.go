package creditcalc_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskmanagement123/creditcalc"
)

func TestNewLoan(t *testing.T) {
	loan, err := creditcalc.NewLoan(dec(500_000), 24, dec(11.0))
	require.NoError(t, err)
	assert.Equal(t, creditcalc.PaymentTypeAnnuity, loan.PaymentType)

	_, err = creditcalc.NewLoan(decimal.Zero, 24, dec(11.0))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)

	_, err = creditcalc.NewLoan(dec(500_000), 0, dec(11.0))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)

	_, err = creditcalc.NewLoan(dec(500_000), 24, dec(-1))
	assert.ErrorIs(t, err, creditcalc.ErrInvalidParameter)
}

func TestEarlyRepaymentValidate(t *testing.T) {
	secondary := dec(10_000)
	after := 10

	simple := creditcalc.EarlyRepayment{Amount: dec(1000), Strategy: creditcalc.StrategyReduceTerm}
	assert.NoError(t, simple.Validate())

	withExtra := simple
	withExtra.SecondaryAmount = &secondary
	assert.ErrorIs(t, withExtra.Validate(), creditcalc.ErrUnexpectedSecondary)

	combined := creditcalc.EarlyRepayment{
		Amount:   dec(1000),
		Strategy: creditcalc.StrategyCombinedPaymentThenTerm,
	}
	assert.ErrorIs(t, combined.Validate(), creditcalc.ErrMissingSecondary)
	combined.SecondaryAmount = &secondary
	assert.NoError(t, combined.Validate())

	twoDates := creditcalc.EarlyRepayment{
		Amount:          dec(1000),
		Strategy:        creditcalc.StrategyCombinedTermThenPayment,
		SecondaryAmount: &secondary,
	}
	assert.ErrorIs(t, twoDates.Validate(), creditcalc.ErrMissingSecondaryDate)
	twoDates.SecondaryExecuteAfterPayments = &after
	assert.NoError(t, twoDates.Validate())

	unknown := creditcalc.EarlyRepayment{Amount: dec(1000), Strategy: "BULLET"}
	assert.ErrorIs(t, unknown.Validate(), creditcalc.ErrUnknownStrategy)
}

func TestPaymentScheduleImmutability(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(100_000), 12, dec(10.0))
	require.NoError(t, err)

	rows := schedule.Rows()
	rows[0].PaymentAmount = decimal.Zero
	assert.False(t, schedule.Row(0).PaymentAmount.IsZero(),
		"mutating the returned rows must not touch the schedule")
}

func TestPaymentScheduleWithDates(t *testing.T) {
	schedule, err := creditcalc.GeneratePaymentSchedule(dec(100_000), 12, dec(10.0))
	require.NoError(t, err)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	dated := schedule.WithDates(start)

	require.Equal(t, schedule.Months(), dated.Months())
	assert.Nil(t, schedule.Row(0).DueDate, "the source schedule stays undated")
	first := dated.Row(0)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *first.DueDate)
	last := dated.Row(11)
	require.NotNil(t, last.DueDate)
	assert.Equal(t, time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC), *last.DueDate)
}

func TestPaymentScheduleTotals(t *testing.T) {
	schedule := creditcalc.NewPaymentSchedule([]creditcalc.Payment{
		{Number: 1, PaymentAmount: dec(110), PrincipalAmount: dec(100), InterestAmount: dec(10), RemainingPrincipal: dec(100)},
		{Number: 2, PaymentAmount: dec(105), PrincipalAmount: dec(100), InterestAmount: dec(5), RemainingPrincipal: decimal.Zero},
	})

	assert.True(t, schedule.TotalPaid().Equal(dec(215)))
	assert.True(t, schedule.TotalInterest().Equal(dec(15)))
	assert.True(t, schedule.InterestThrough(1).Equal(dec(10)))
	assert.True(t, schedule.InterestThrough(5).Equal(dec(15)), "count past the end is clamped")
	assert.Equal(t, 2, schedule.Months())
}

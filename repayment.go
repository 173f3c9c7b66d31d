package creditcalc

import (
	"github.com/shopspring/decimal"
)

// 四种重算策略。每个策略接收事件发生前的剩余本金，
// 返回贷款剩余生命周期的新计划表，期数从 1 重新编号，
// 由调用方负责把它当作原计划的延续。

// reduceTerm 缩期：月供不变，余额减少后靠计划表自然收尾缩短期数
func reduceTerm(balance, repaymentAmount, monthlyRate, monthlyPayment decimal.Decimal) (PaymentSchedule, error) {
	newBalance := balance.Sub(repaymentAmount)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}
	newBalance = RoundMoney(newBalance)
	if newBalance.IsZero() {
		return PaymentSchedule{}, nil
	}
	if err := EnsurePositive(monthlyPayment, "monthly_payment"); err != nil {
		return PaymentSchedule{}, err
	}
	return BuildSchedule(newBalance, monthlyRate, monthlyPayment, 0)
}

// reducePayment 减供：期数不变，按剩余期数重新求等额本息月供
func reducePayment(balance, repaymentAmount, monthlyRate decimal.Decimal, monthsLeft int) (PaymentSchedule, error) {
	if err := EnsurePositiveInt(monthsLeft, "months_left"); err != nil {
		return PaymentSchedule{}, err
	}
	newBalance := balance.Sub(repaymentAmount)
	if newBalance.IsNegative() {
		newBalance = decimal.Zero
	}
	newBalance = RoundMoney(newBalance)
	if newBalance.IsZero() {
		return PaymentSchedule{}, nil
	}
	annualRate, err := AnnualFromMonthly(monthlyRate)
	if err != nil {
		return PaymentSchedule{}, err
	}
	newPayment, err := CalculateAnnuityPayment(newBalance, monthsLeft, annualRate)
	if err != nil {
		return PaymentSchedule{}, err
	}
	return BuildSchedule(newBalance, monthlyRate, newPayment, monthsLeft)
}

// paymentThenTerm 先减供后缩期。第二段用第一段算出的新月供和新余额，
// 两段在同一时点先后生效。
func paymentThenTerm(balance decimal.Decimal, repayment EarlyRepayment, monthlyRate decimal.Decimal, monthsLeft int) (PaymentSchedule, error) {
	if repayment.SecondaryAmount == nil || repayment.SecondaryAmount.IsZero() {
		return PaymentSchedule{}, ErrMissingSecondary
	}

	intermediate, err := reducePayment(balance, repayment.Amount, monthlyRate, monthsLeft)
	if err != nil {
		return PaymentSchedule{}, err
	}
	if intermediate.IsEmpty() {
		return PaymentSchedule{}, nil
	}
	newBalance := RemainingPrincipal(intermediate, 0)
	newPayment, err := OriginalPayment(intermediate)
	if err != nil {
		return PaymentSchedule{}, err
	}
	return reduceTerm(newBalance, *repayment.SecondaryAmount, monthlyRate, newPayment)
}

// termThenPayment 先缩期后减供，两次事件之间隔着 delta 期。
// 第二个返回值是 delta 期内按中间计划表累计的利息，这段利息
// 不属于任何一段返回的计划表，调用方必须自行并入总利息。
func termThenPayment(
	balance decimal.Decimal,
	repayment EarlyRepayment,
	monthlyRate decimal.Decimal,
	monthsLeft int,
	monthlyPayment decimal.Decimal,
	paymentsMade int,
) (PaymentSchedule, decimal.Decimal, error) {
	if repayment.SecondaryAmount == nil || repayment.SecondaryAmount.IsZero() {
		return PaymentSchedule{}, decimal.Zero, ErrMissingSecondary
	}
	if repayment.SecondaryExecuteAfterPayments == nil {
		return PaymentSchedule{}, decimal.Zero, ErrMissingSecondaryDate
	}

	afterTerm, err := reduceTerm(balance, repayment.Amount, monthlyRate, monthlyPayment)
	if err != nil {
		return PaymentSchedule{}, decimal.Zero, err
	}
	delta := *repayment.SecondaryExecuteAfterPayments - paymentsMade
	if delta < 0 {
		return PaymentSchedule{}, decimal.Zero, ErrSecondaryOutOfRange
	}
	if afterTerm.IsEmpty() {
		return PaymentSchedule{}, decimal.Zero, nil
	}
	if delta > afterTerm.Months() {
		return PaymentSchedule{}, decimal.Zero, ErrSecondaryOutOfRange
	}

	interestBetween := afterTerm.InterestThrough(delta)
	balanceAfter := RemainingPrincipal(afterTerm, delta)
	monthsAfter := afterTerm.Months() - delta
	if monthsAfter <= 0 {
		return PaymentSchedule{}, decimal.Zero, ErrNoPaymentsLeft
	}

	schedule, err := reducePayment(balanceAfter, *repayment.SecondaryAmount, monthlyRate, monthsAfter)
	if err != nil {
		return PaymentSchedule{}, decimal.Zero, err
	}
	return schedule, interestBetween, nil
}

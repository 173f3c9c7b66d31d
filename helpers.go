package creditcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EnsurePositive 检查金额类参数大于零
func EnsurePositive(value decimal.Decimal, name string) error {
	if value.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("%w: %q must be positive", ErrInvalidParameter, name)
	}
	return nil
}

// EnsurePositiveInt 检查整数类参数大于零
func EnsurePositiveInt(value int, name string) error {
	if value <= 0 {
		return fmt.Errorf("%w: %q must be positive", ErrInvalidParameter, name)
	}
	return nil
}

func negativeRateErr() error {
	return fmt.Errorf("%w: rate must not be negative", ErrInvalidParameter)
}

// MonthlyRate 年化利率（百分比）折算为月利率（小数）
func MonthlyRate(annualPercent decimal.Decimal) (decimal.Decimal, error) {
	if annualPercent.IsNegative() {
		return decimal.Zero, negativeRateErr()
	}
	return annualPercent.Div(hundred).Div(monthsInYear), nil
}

// AnnualFromMonthly 月利率（小数）还原为年化利率（百分比）
func AnnualFromMonthly(monthlyFraction decimal.Decimal) (decimal.Decimal, error) {
	if monthlyFraction.IsNegative() {
		return decimal.Zero, negativeRateErr()
	}
	return monthlyFraction.Mul(monthsInYear).Mul(hundred), nil
}

// RoundMoney 按当前配置的舍入策略处理金额，保持 2 位小数
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return cfg.RoundStrategy(d)
}

// RemainingPrincipal 已还 paymentsMade 期之后的剩余本金。
// paymentsMade <= 0 时取首期的本金+余额（即原始本金），
// 超过计划表期数时视为已结清。
func RemainingPrincipal(schedule PaymentSchedule, paymentsMade int) decimal.Decimal {
	if schedule.IsEmpty() {
		return decimal.Zero
	}
	if paymentsMade <= 0 {
		first := schedule.Row(0)
		return RoundMoney(first.PrincipalAmount.Add(first.RemainingPrincipal))
	}
	if paymentsMade >= schedule.Months() {
		return decimal.Zero
	}
	return RoundMoney(schedule.Row(paymentsMade - 1).RemainingPrincipal)
}

// OriginalPayment 从计划表取名义月供
func OriginalPayment(schedule PaymentSchedule) (decimal.Decimal, error) {
	if schedule.IsEmpty() {
		return decimal.Zero, ErrEmptySchedule
	}
	return RoundMoney(schedule.Row(0).PaymentAmount), nil
}

// InferMonthlyRate 从计划表首期反推月利率。
// 依赖首期 利息/(本金+余额) 的隐式约定，策略重算必须用与原表一致的利率，
// 因此收敛在这一个函数里，后续换成显式传递利率时只动这里。
func InferMonthlyRate(schedule PaymentSchedule) (decimal.Decimal, error) {
	if schedule.IsEmpty() {
		return decimal.Zero, ErrEmptySchedule
	}
	first := schedule.Row(0)
	base := first.PrincipalAmount.Add(first.RemainingPrincipal)
	if base.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero, fmt.Errorf("%w: cannot infer rate from schedule", ErrInvalidParameter)
	}
	if first.InterestAmount.IsZero() {
		return decimal.Zero, nil
	}
	return first.InterestAmount.Div(base), nil
}

package creditcalc

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CalculateAnnuityPayment 等额本息月供：
// payment = amount * r * (1+r)^n / ((1+r)^n - 1)，r 为月利率。
// r == 0 时退化为直线法 amount / n。
func CalculateAnnuityPayment(amount decimal.Decimal, termMonths int, annualRate decimal.Decimal) (decimal.Decimal, error) {
	if err := EnsurePositive(amount, "amount"); err != nil {
		log().Error("annuity payment rejected", zap.Error(err))
		return decimal.Zero, err
	}
	if err := EnsurePositiveInt(termMonths, "term_months"); err != nil {
		log().Error("annuity payment rejected", zap.Error(err))
		return decimal.Zero, err
	}
	rate, err := MonthlyRate(annualRate)
	if err != nil {
		log().Error("annuity payment rejected", zap.Error(err))
		return decimal.Zero, err
	}

	if rate.IsZero() {
		return RoundMoney(amount.Div(decimal.NewFromInt(int64(termMonths)))), nil
	}

	base1rn := one.Add(rate).Pow(decimal.NewFromInt(int64(termMonths)))
	numerator := amount.Mul(rate).Mul(base1rn)
	denominator := base1rn.Sub(one)
	return RoundMoney(numerator.Div(denominator)), nil
}

// GeneratePaymentSchedule 按等额本息生成全期计划表
func GeneratePaymentSchedule(amount decimal.Decimal, termMonths int, annualRate decimal.Decimal) (PaymentSchedule, error) {
	payment, err := CalculateAnnuityPayment(amount, termMonths, annualRate)
	if err != nil {
		return PaymentSchedule{}, err
	}
	rate, err := MonthlyRate(annualRate)
	if err != nil {
		return PaymentSchedule{}, err
	}
	schedule, err := BuildSchedule(amount, rate, payment, termMonths)
	if err != nil {
		log().Error("schedule generation failed", zap.Error(err))
		return PaymentSchedule{}, err
	}
	return schedule, nil
}

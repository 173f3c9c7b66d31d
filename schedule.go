package creditcalc

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BuildSchedule 以固定月供生成还款计划表。
// monthsLimit 为 0 表示不限期数；非零时要求余额恰好在限内清零。
// 末期本金钳制到剩余余额，当期月供按 本金+利息 重算，
// 即最后一笔还多少由余额决定，而不是名义月供。
func BuildSchedule(principal, monthlyRate, monthlyPayment decimal.Decimal, monthsLimit int) (PaymentSchedule, error) {
	if principal.Cmp(epsilon) <= 0 {
		return PaymentSchedule{}, nil
	}
	if err := EnsurePositive(monthlyPayment, "monthly_payment"); err != nil {
		return PaymentSchedule{}, err
	}

	var payments []Payment
	balance := principal
	month := 1

	for balance.Cmp(epsilon) > 0 {
		interest := RoundMoney(balance.Mul(monthlyRate))
		principalPart := RoundMoney(monthlyPayment.Sub(interest))
		if principalPart.Cmp(decimal.Zero) <= 0 {
			log().Error("payment does not cover accrued interest",
				zap.String("payment", monthlyPayment.String()),
				zap.String("interest", interest.String()))
			return PaymentSchedule{}, ErrPaymentTooSmall
		}

		var paymentValue decimal.Decimal
		lastByLimit := monthsLimit > 0 && month == monthsLimit && principalPart.Cmp(balance) < 0
		if principalPart.Cmp(balance) > 0 || lastByLimit {
			principalPart = balance
			paymentValue = RoundMoney(principalPart.Add(interest))
		} else {
			paymentValue = RoundMoney(monthlyPayment)
		}

		balance = RoundMoney(balance.Sub(principalPart))
		remaining := balance
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		payments = append(payments, Payment{
			Number:             month,
			PaymentAmount:      paymentValue,
			PrincipalAmount:    principalPart,
			InterestAmount:     interest,
			RemainingPrincipal: remaining,
		})
		month++
		if monthsLimit > 0 && month > monthsLimit && balance.Cmp(epsilon) > 0 {
			log().Error("loan does not close within the month limit",
				zap.Int("months_limit", monthsLimit),
				zap.String("balance", balance.String()))
			return PaymentSchedule{}, ErrTermUnreachable
		}
	}

	return PaymentSchedule{payments: payments}, nil
}

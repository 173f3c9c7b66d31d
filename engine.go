package creditcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EarlyRepaymentResult 提前还款重算结果
type EarlyRepaymentResult struct {
	Schedule       PaymentSchedule // 事件之后的新计划表
	TotalInterest  decimal.Decimal // 全生命周期利息：事件前 + 事件间 + 新表
	InterestBefore decimal.Decimal // 事件前（含两段策略的事件间）已发生利息
	Months         int             // 新表期数
	AnnualRate     decimal.Decimal // 从原表反推出的年化利率（百分比）
}

// ApplyEarlyRepayment 按策略重算提前还款后的计划。
// 利率不另行传入，而是从原计划表首期反推（InferMonthlyRate），
// 保证重算用的利率与建表时完全一致。
func ApplyEarlyRepayment(currentSchedule PaymentSchedule, repayment EarlyRepayment, paymentsMade int) (EarlyRepaymentResult, error) {
	result, err := applyEarlyRepayment(currentSchedule, repayment, paymentsMade)
	if err != nil {
		log().Error("early repayment recalculation failed",
			zap.String("strategy", string(repayment.Strategy)),
			zap.Int("payments_made", paymentsMade),
			zap.Error(err))
		return EarlyRepaymentResult{}, err
	}
	return result, nil
}

func applyEarlyRepayment(currentSchedule PaymentSchedule, repayment EarlyRepayment, paymentsMade int) (EarlyRepaymentResult, error) {
	if currentSchedule.IsEmpty() {
		return EarlyRepaymentResult{}, ErrEmptySchedule
	}
	if repayment.Amount.Cmp(decimal.Zero) <= 0 {
		return EarlyRepaymentResult{}, fmt.Errorf("%w: repayment amount must be positive", ErrInvalidParameter)
	}

	monthlyRate, err := InferMonthlyRate(currentSchedule)
	if err != nil {
		return EarlyRepaymentResult{}, err
	}
	annualRate, err := AnnualFromMonthly(monthlyRate)
	if err != nil {
		return EarlyRepaymentResult{}, err
	}

	balance := RemainingPrincipal(currentSchedule, paymentsMade)
	if balance.Cmp(decimal.Zero) <= 0 {
		return EarlyRepaymentResult{}, ErrLoanAlreadyPaid
	}
	monthlyPayment, err := OriginalPayment(currentSchedule)
	if err != nil {
		return EarlyRepaymentResult{}, err
	}
	monthsLeft := currentSchedule.Months() - paymentsMade
	if monthsLeft <= 0 {
		return EarlyRepaymentResult{}, ErrNoPaymentsLeft
	}

	if paymentsMade < 0 {
		paymentsMade = 0
	}
	interestBefore := currentSchedule.InterestThrough(paymentsMade)
	extraInterest := decimal.Zero

	var schedule PaymentSchedule
	switch repayment.Strategy {
	case StrategyReduceTerm:
		schedule, err = reduceTerm(balance, repayment.Amount, monthlyRate, monthlyPayment)
	case StrategyReducePayment:
		schedule, err = reducePayment(balance, repayment.Amount, monthlyRate, monthsLeft)
	case StrategyCombinedPaymentThenTerm:
		schedule, err = paymentThenTerm(balance, repayment, monthlyRate, monthsLeft)
	case StrategyCombinedTermThenPayment:
		schedule, extraInterest, err = termThenPayment(balance, repayment, monthlyRate, monthsLeft, monthlyPayment, paymentsMade)
	default:
		return EarlyRepaymentResult{}, ErrUnknownStrategy
	}
	if err != nil {
		return EarlyRepaymentResult{}, err
	}

	totalInterest := interestBefore.Add(extraInterest).Add(schedule.TotalInterest())
	return EarlyRepaymentResult{
		Schedule:       schedule,
		TotalInterest:  totalInterest,
		InterestBefore: interestBefore.Add(extraInterest),
		Months:         schedule.Months(),
		AnnualRate:     annualRate,
	}, nil
}

// Calculator 统一入口，组合全部计算函数，方便上层按实例注入
type Calculator struct{}

func NewCalculator() *Calculator { return &Calculator{} }

func (c *Calculator) CalculateAnnuityPayment(amount decimal.Decimal, termMonths int, annualRate decimal.Decimal) (decimal.Decimal, error) {
	return CalculateAnnuityPayment(amount, termMonths, annualRate)
}

func (c *Calculator) GeneratePaymentSchedule(amount decimal.Decimal, termMonths int, annualRate decimal.Decimal) (PaymentSchedule, error) {
	return GeneratePaymentSchedule(amount, termMonths, annualRate)
}

func (c *Calculator) ApplyEarlyRepayment(schedule PaymentSchedule, repayment EarlyRepayment, paymentsMade int) (EarlyRepaymentResult, error) {
	return ApplyEarlyRepayment(schedule, repayment, paymentsMade)
}

func (c *Calculator) FindPaymentForTargetOverpayment(amount, annualRate, targetOverpayment, tolerance decimal.Decimal) (PaymentSearchResult, error) {
	return FindPaymentForTargetOverpayment(amount, annualRate, targetOverpayment, tolerance)
}

func (c *Calculator) FindOptimalStrategyByOverpayment(amount decimal.Decimal, termMonths int, annualRate, targetOverpayment decimal.Decimal, template EarlyRepayment, tolerance decimal.Decimal) (StrategySearchResult, error) {
	return FindOptimalStrategyByOverpayment(amount, termMonths, annualRate, targetOverpayment, template, tolerance)
}

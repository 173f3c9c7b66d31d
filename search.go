package creditcalc

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentSearchResult 月供反推结果
type PaymentSearchResult struct {
	Payment     decimal.Decimal
	Overpayment decimal.Decimal
	Months      int
}

// StrategySearchResult 提前还款额反推结果
type StrategySearchResult struct {
	EarlyRepayment decimal.Decimal
	Overpayment    decimal.Decimal
	Schedule       PaymentSchedule
}

// bisectCandidate 二分过程中记录的最优候选
type bisectCandidate struct {
	x           decimal.Decimal
	overpayment decimal.Decimal
	distance    decimal.Decimal
}

// bisectByOverpayment 通用的按距离择优二分。
// sim 返回候选点对应的总超额还款；每一步都与 target 比较并记录
// 历史最优（而不是最后一个），最优距离进入 tolerance 即提前停止。
// maxIter 为 0 表示不按次数限制；minStep 非零时以区间宽度收敛。
// 结果是尽力而为：区间或步数预算不足时最优候选可能达不到 tolerance。
func bisectByOverpayment(
	low, high, target, tolerance decimal.Decimal,
	maxIter int,
	minStep decimal.Decimal,
	seed *bisectCandidate,
	sim func(x decimal.Decimal) (decimal.Decimal, error),
) (bisectCandidate, bool, error) {
	var best bisectCandidate
	found := false
	if seed != nil {
		best = *seed
		found = true
	}

	two := decimal.NewFromInt(2)
	for iter := 0; ; iter++ {
		if maxIter > 0 && iter >= maxIter {
			break
		}
		if !minStep.IsZero() && high.Sub(low).Cmp(minStep) <= 0 {
			break
		}
		if found && best.distance.Cmp(tolerance) <= 0 {
			break
		}

		mid := low.Add(high).Div(two)
		overpayment, err := sim(mid)
		if err != nil {
			return bisectCandidate{}, false, err
		}
		diff := overpayment.Sub(target)
		dist := diff.Abs()
		if !found || dist.Cmp(best.distance) < 0 {
			best = bisectCandidate{x: mid, overpayment: overpayment, distance: dist}
			found = true
		}
		if best.distance.Cmp(tolerance) <= 0 {
			break
		}
		// 超额还款高于目标说明利息偏多，需要更大的还款力度
		if diff.Sign() > 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return best, found, nil
}

// FindPaymentForTargetOverpayment 反推月供：找到使总利息落在
// 目标超额还款 tolerance 范围内的固定月供。
// 下界取 30 年期月供与「略高于纯利息」二者中的较大者，
// 上界从 max(2*low, amount) 起按 1.5 倍扩张（上限 amount*5），
// 直到模拟利息不高于目标，然后在区间内做最多 60 轮二分。
func FindPaymentForTargetOverpayment(amount, annualRate, targetOverpayment, tolerance decimal.Decimal) (PaymentSearchResult, error) {
	result, err := findPaymentForTargetOverpayment(amount, annualRate, targetOverpayment, tolerance)
	if err != nil {
		log().Error("payment search failed",
			zap.String("target_overpayment", targetOverpayment.String()),
			zap.Error(err))
		return PaymentSearchResult{}, err
	}
	return result, nil
}

func findPaymentForTargetOverpayment(amount, annualRate, targetOverpayment, tolerance decimal.Decimal) (PaymentSearchResult, error) {
	if err := EnsurePositive(amount, "amount"); err != nil {
		return PaymentSearchResult{}, err
	}
	if err := EnsurePositive(targetOverpayment, "target_overpayment"); err != nil {
		return PaymentSearchResult{}, err
	}
	if tolerance.Cmp(decimal.Zero) <= 0 {
		return PaymentSearchResult{}, fmt.Errorf("%w: tolerance must be positive", ErrInvalidParameter)
	}

	monthlyRate, err := MonthlyRate(annualRate)
	if err != nil {
		return PaymentSearchResult{}, err
	}

	simulate := func(paymentValue decimal.Decimal) (PaymentSchedule, error) {
		return BuildSchedule(amount, monthlyRate, paymentValue, 0)
	}

	// 三十年期月供作为下界基准
	basePayment, err := CalculateAnnuityPayment(amount, 360, annualRate)
	if err != nil {
		return PaymentSearchResult{}, err
	}
	interestOnly := amount.Mul(monthlyRate).Add(one)
	low := decimal.Max(basePayment, interestOnly)
	high := decimal.Max(low.Mul(decimal.NewFromInt(2)), amount)

	highSchedule, err := simulate(high)
	if err != nil {
		return PaymentSearchResult{}, err
	}
	expandCap := amount.Mul(decimal.NewFromInt(5))
	growth := decimal.NewFromFloat(1.5)
	for highSchedule.TotalInterest().Cmp(targetOverpayment) > 0 && high.Cmp(expandCap) < 0 {
		high = high.Mul(growth)
		highSchedule, err = simulate(high)
		if err != nil {
			return PaymentSearchResult{}, err
		}
	}

	seed := &bisectCandidate{
		x:           high,
		overpayment: highSchedule.TotalInterest(),
		distance:    highSchedule.TotalInterest().Sub(targetOverpayment).Abs(),
	}
	best, _, err := bisectByOverpayment(low, high, targetOverpayment, tolerance, 60, decimal.Zero, seed,
		func(x decimal.Decimal) (decimal.Decimal, error) {
			schedule, err := simulate(x)
			if err != nil {
				return decimal.Zero, err
			}
			return schedule.TotalInterest(), nil
		})
	if err != nil {
		return PaymentSearchResult{}, err
	}

	bestSchedule, err := simulate(best.x)
	if err != nil {
		return PaymentSearchResult{}, err
	}
	return PaymentSearchResult{
		Payment:     best.x,
		Overpayment: bestSchedule.TotalInterest(),
		Months:      bestSchedule.Months(),
	}, nil
}

// FindOptimalStrategyByOverpayment 反推提前还款额：按模板策略在
// [0, amount] 上二分，使重算后的总利息落入目标附近。
// 先算零提前还款的基准表，基准利息已不高于目标时直接返回。
// 收敛按区间宽度（约 1 货币单位的分辨率），不按次数限制。
func FindOptimalStrategyByOverpayment(
	amount decimal.Decimal,
	termMonths int,
	annualRate, targetOverpayment decimal.Decimal,
	template EarlyRepayment,
	tolerance decimal.Decimal,
) (StrategySearchResult, error) {
	result, err := findOptimalStrategyByOverpayment(amount, termMonths, annualRate, targetOverpayment, template, tolerance)
	if err != nil {
		log().Error("strategy search failed",
			zap.String("strategy", string(template.Strategy)),
			zap.String("target_overpayment", targetOverpayment.String()),
			zap.Error(err))
		return StrategySearchResult{}, err
	}
	return result, nil
}

func findOptimalStrategyByOverpayment(
	amount decimal.Decimal,
	termMonths int,
	annualRate, targetOverpayment decimal.Decimal,
	template EarlyRepayment,
	tolerance decimal.Decimal,
) (StrategySearchResult, error) {
	if err := EnsurePositive(targetOverpayment, "target_overpayment"); err != nil {
		return StrategySearchResult{}, err
	}
	baseSchedule, err := GeneratePaymentSchedule(amount, termMonths, annualRate)
	if err != nil {
		return StrategySearchResult{}, err
	}
	baseInterest := baseSchedule.TotalInterest()
	baseline := StrategySearchResult{
		EarlyRepayment: decimal.Zero,
		Overpayment:    baseInterest,
		Schedule:       baseSchedule,
	}
	if baseInterest.Cmp(targetOverpayment) <= 0 {
		return baseline, nil
	}

	simulate := func(mid decimal.Decimal) (EarlyRepaymentResult, error) {
		candidate := template
		candidate.Amount = mid
		return applyEarlyRepayment(baseSchedule, candidate, template.ExecuteAfterPayments)
	}

	best, found, err := bisectByOverpayment(decimal.Zero, amount, targetOverpayment, tolerance, 0, one, nil,
		func(x decimal.Decimal) (decimal.Decimal, error) {
			recalculated, err := simulate(x)
			if err != nil {
				return decimal.Zero, err
			}
			return recalculated.TotalInterest, nil
		})
	if err != nil {
		return StrategySearchResult{}, err
	}
	if !found {
		return baseline, nil
	}

	recalculated, err := simulate(best.x)
	if err != nil {
		return StrategySearchResult{}, err
	}
	return StrategySearchResult{
		EarlyRepayment: best.x,
		Overpayment:    recalculated.TotalInterest,
		Schedule:       recalculated.Schedule,
	}, nil
}

package creditcalc

import "github.com/shopspring/decimal"

// PaymentType 还款方式
type PaymentType string

// EarlyRepaymentStrategy 提前还款策略
type EarlyRepaymentStrategy string

// ------------------- 值对象 -------------------

type RoundStrategy = func(d decimal.Decimal) decimal.Decimal

const (
	PaymentTypeAnnuity        PaymentType = "ANNUITY"        // 等额本息
	PaymentTypeDifferentiated PaymentType = "DIFFERENTIATED" // 等额本金，数据模型占位，核心暂不支持
)

const (
	StrategyReduceTerm              EarlyRepaymentStrategy = "REDUCE_TERM"                // 缩期：月供不变，期数减少
	StrategyReducePayment           EarlyRepaymentStrategy = "REDUCE_PAYMENT"             // 减供：期数不变，月供降低
	StrategyCombinedPaymentThenTerm EarlyRepaymentStrategy = "COMBINED_PAYMENT_THEN_TERM" // 先减供后缩期
	StrategyCombinedTermThenPayment EarlyRepaymentStrategy = "COMBINED_TERM_THEN_PAYMENT" // 先缩期后减供（两次时点）
)

// IsCombined 判断是否为两段式组合策略
func (s EarlyRepaymentStrategy) IsCombined() bool {
	return s == StrategyCombinedPaymentThenTerm || s == StrategyCombinedTermThenPayment
}

var one = decimal.NewFromInt(1)

// epsilon 数值终止判断用的小量，同时决定 RoundMoney 的偏置方向
var epsilon = decimal.NewFromFloat(1e-9)

var (
	monthsInYear = decimal.NewFromInt(12)
	hundred      = decimal.NewFromInt(100)
)

// HalfUpRound 金额舍入：加上 epsilon 后四舍五入保留 2 位小数。
// 偏置方向固定向上（对借款人有利），保证合计与参考值一致。
var HalfUpRound = func(d decimal.Decimal) decimal.Decimal {
	return d.Add(epsilon).Round(2)
}

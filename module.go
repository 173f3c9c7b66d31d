package creditcalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan 贷款产品入参，创建后不再修改
type Loan struct {
	Amount      decimal.Decimal `db:"amount" json:"amount"`             // 合同本金
	TermMonths  int             `db:"term_months" json:"term_months"`   // 总期数（月）
	AnnualRate  decimal.Decimal `db:"annual_rate" json:"annual_rate"`   // 年化利率（百分比）
	PaymentType PaymentType     `db:"payment_type" json:"payment_type"` // 还款方式
}

// NewLoan 工厂，做一些基本校验
func NewLoan(amount decimal.Decimal, termMonths int, annualRate decimal.Decimal) (*Loan, error) {
	if err := EnsurePositive(amount, "amount"); err != nil {
		return nil, err
	}
	if err := EnsurePositiveInt(termMonths, "term_months"); err != nil {
		return nil, err
	}
	if annualRate.IsNegative() {
		return nil, negativeRateErr()
	}
	return &Loan{
		Amount:      amount,
		TermMonths:  termMonths,
		AnnualRate:  annualRate,
		PaymentType: PaymentTypeAnnuity,
	}, nil
}

// Payment 期供，一行还款计划
type Payment struct {
	Number             int             `db:"number" json:"number"`     // 第几期（从 1 开始）
	DueDate            *time.Time      `db:"due_date" json:"due_date"` // 还款日，核心计算不依赖
	PaymentAmount      decimal.Decimal `db:"payment_amount" json:"payment_amount"`
	PrincipalAmount    decimal.Decimal `db:"principal_amount" json:"principal_amount"`
	InterestAmount     decimal.Decimal `db:"interest_amount" json:"interest_amount"`
	RemainingPrincipal decimal.Decimal `db:"remaining_principal" json:"remaining_principal"`
}

// PaymentSchedule 还款计划表，生成后只读；空表表示贷款已结清
type PaymentSchedule struct {
	payments []Payment
}

// NewPaymentSchedule 工厂，拷贝入参切片以保证不可变
func NewPaymentSchedule(payments []Payment) PaymentSchedule {
	if len(payments) == 0 {
		return PaymentSchedule{}
	}
	cp := make([]Payment, len(payments))
	copy(cp, payments)
	return PaymentSchedule{payments: cp}
}

// Rows 返回计划表各行的拷贝
func (s PaymentSchedule) Rows() []Payment {
	cp := make([]Payment, len(s.payments))
	copy(cp, s.payments)
	return cp
}

// Row 返回第 i 行（从 0 开始），越界由调用方保证
func (s PaymentSchedule) Row(i int) Payment {
	return s.payments[i]
}

// Months 计划表期数
func (s PaymentSchedule) Months() int {
	return len(s.payments)
}

// IsEmpty 是否已结清
func (s PaymentSchedule) IsEmpty() bool {
	return len(s.payments) == 0
}

// TotalPaid 全部还款合计
func (s PaymentSchedule) TotalPaid() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s.payments {
		sum = sum.Add(p.PaymentAmount)
	}
	return sum
}

// TotalInterest 全部利息合计（即总超额还款）
func (s PaymentSchedule) TotalInterest() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s.payments {
		sum = sum.Add(p.InterestAmount)
	}
	return sum
}

// InterestThrough 前 n 期利息合计
func (s PaymentSchedule) InterestThrough(n int) decimal.Decimal {
	if n > len(s.payments) {
		n = len(s.payments)
	}
	sum := decimal.Zero
	for _, p := range s.payments[:n] {
		sum = sum.Add(p.InterestAmount)
	}
	return sum
}

// WithDates 返回带还款日的拷贝，从 start 起逐月顺延。
// 仅用于展示层，引擎计算不读取日期。
func (s PaymentSchedule) WithDates(start time.Time) PaymentSchedule {
	cp := make([]Payment, len(s.payments))
	copy(cp, s.payments)
	t := start
	for i := range cp {
		t = t.AddDate(0, 1, 0)
		due := t
		cp[i].DueDate = &due
	}
	return PaymentSchedule{payments: cp}
}

// Dated 同 WithDates，起点取配置时钟的当前时间
func (s PaymentSchedule) Dated() PaymentSchedule {
	return s.WithDates(cfg.Clock.Now())
}

// EarlyRepayment 一次提前还款请求。组合策略必须携带第二段参数，
// 简单策略不允许携带，Validate 负责这条约束。
type EarlyRepayment struct {
	Amount                        decimal.Decimal        `json:"amount"`
	Strategy                      EarlyRepaymentStrategy `json:"strategy"`
	ExecuteAfterPayments          int                    `json:"execute_after_payments"`
	SecondaryAmount               *decimal.Decimal       `json:"secondary_amount,omitempty"`
	SecondaryExecuteAfterPayments *int                   `json:"secondary_execute_after_payments,omitempty"`
}

// Validate 校验策略与第二段参数的组合是否合法
func (r EarlyRepayment) Validate() error {
	switch r.Strategy {
	case StrategyReduceTerm, StrategyReducePayment:
		if r.SecondaryAmount != nil || r.SecondaryExecuteAfterPayments != nil {
			return ErrUnexpectedSecondary
		}
		return nil
	case StrategyCombinedPaymentThenTerm:
		if r.SecondaryAmount == nil {
			return ErrMissingSecondary
		}
		return nil
	case StrategyCombinedTermThenPayment:
		if r.SecondaryAmount == nil {
			return ErrMissingSecondary
		}
		if r.SecondaryExecuteAfterPayments == nil {
			return ErrMissingSecondaryDate
		}
		return nil
	default:
		return ErrUnknownStrategy
	}
}

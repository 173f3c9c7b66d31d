package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/riskmanagement123/creditcalc"
)

var (
	flagAmount     float64
	flagTerm       int
	flagRate       float64
	flagTolerance  float64
	flagTarget     float64
	flagPaid       int
	flagSum        float64
	flagStrategy   string
	flagSecondSum  float64
	flagSecondPaid int
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + conf.Currency
}

// parseStrategy 与 cli 约定的简写：term / payment / combo_pt / combo_tp
func parseStrategy(s string) (creditcalc.EarlyRepaymentStrategy, error) {
	switch s {
	case "term":
		return creditcalc.StrategyReduceTerm, nil
	case "payment":
		return creditcalc.StrategyReducePayment, nil
	case "combo_pt":
		return creditcalc.StrategyCombinedPaymentThenTerm, nil
	case "combo_tp":
		return creditcalc.StrategyCombinedTermThenPayment, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want term, payment, combo_pt or combo_tp)", s)
	}
}

func buildRepayment(cmd *cobra.Command) (creditcalc.EarlyRepayment, error) {
	strategy, err := parseStrategy(flagStrategy)
	if err != nil {
		return creditcalc.EarlyRepayment{}, err
	}
	if strategy.IsCombined() && !cmd.Flags().Changed("second-sum") {
		return creditcalc.EarlyRepayment{}, fmt.Errorf("strategy %s needs --second-sum", flagStrategy)
	}
	repayment := creditcalc.EarlyRepayment{
		Amount:               decimal.NewFromFloat(flagSum),
		Strategy:             strategy,
		ExecuteAfterPayments: flagPaid,
	}
	if cmd.Flags().Changed("second-sum") {
		v := decimal.NewFromFloat(flagSecondSum)
		repayment.SecondaryAmount = &v
	}
	if cmd.Flags().Changed("second-paid") {
		v := flagSecondPaid
		repayment.SecondaryExecuteAfterPayments = &v
	}
	if err := repayment.Validate(); err != nil {
		return creditcalc.EarlyRepayment{}, err
	}
	return repayment, nil
}

func printSchedulePreview(schedule creditcalc.PaymentSchedule) {
	if schedule.IsEmpty() {
		fmt.Println("loan is fully repaid")
		return
	}
	rows := schedule.Dated().Rows()
	limit := conf.Rows
	if limit > len(rows) {
		limit = len(rows)
	}
	fmt.Println("  #  due date    payment      principal    interest     remaining")
	for _, p := range rows[:limit] {
		fmt.Printf("%3d  %s  %-11s  %-11s  %-11s  %s\n",
			p.Number, p.DueDate.Format("2006-01-02"),
			p.PaymentAmount.StringFixed(2), p.PrincipalAmount.StringFixed(2),
			p.InterestAmount.StringFixed(2), p.RemainingPrincipal.StringFixed(2))
	}
	if limit < len(rows) {
		fmt.Printf("... %d more rows\n", len(rows)-limit)
	}
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate an annuity payment schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := creditcalc.GeneratePaymentSchedule(
			decimal.NewFromFloat(flagAmount), flagTerm, decimal.NewFromFloat(flagRate))
		if err != nil {
			return err
		}
		fmt.Println("monthly payment:", money(schedule.Row(0).PaymentAmount))
		fmt.Println("total interest: ", money(schedule.TotalInterest()))
		fmt.Println("total paid:     ", money(schedule.TotalPaid()))
		fmt.Println("months:         ", schedule.Months())
		printSchedulePreview(schedule)
		return nil
	},
}

var paymentSearchCmd = &cobra.Command{
	Use:   "payment-search",
	Short: "Find the monthly payment matching a target overpayment",
	RunE: func(cmd *cobra.Command, args []string) error {
		tolerance := conf.Tolerance
		if cmd.Flags().Changed("tolerance") {
			tolerance = flagTolerance
		}
		result, err := creditcalc.FindPaymentForTargetOverpayment(
			decimal.NewFromFloat(flagAmount),
			decimal.NewFromFloat(flagRate),
			decimal.NewFromFloat(flagTarget),
			decimal.NewFromFloat(tolerance))
		if err != nil {
			return err
		}
		fmt.Println("payment:    ", money(result.Payment))
		fmt.Println("overpayment:", money(result.Overpayment))
		fmt.Println("months:     ", result.Months)
		return nil
	},
}

var earlyRepaymentCmd = &cobra.Command{
	Use:   "early-repayment",
	Short: "Recalculate a schedule after an early repayment",
	RunE: func(cmd *cobra.Command, args []string) error {
		repayment, err := buildRepayment(cmd)
		if err != nil {
			return err
		}
		schedule, err := creditcalc.GeneratePaymentSchedule(
			decimal.NewFromFloat(flagAmount), flagTerm, decimal.NewFromFloat(flagRate))
		if err != nil {
			return err
		}
		result, err := creditcalc.ApplyEarlyRepayment(schedule, repayment, flagPaid)
		if err != nil {
			return err
		}
		if !result.Schedule.IsEmpty() {
			fmt.Println("new payment:    ", money(result.Schedule.Row(0).PaymentAmount))
		}
		fmt.Println("interest before:", money(result.InterestBefore))
		fmt.Println("total interest: ", money(result.TotalInterest))
		fmt.Println("months left:    ", result.Months)
		printSchedulePreview(result.Schedule)
		return nil
	},
}

var strategySearchCmd = &cobra.Command{
	Use:   "strategy-search",
	Short: "Find the early repayment amount matching a target overpayment",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagSum = 1 // 模板金额占位，搜索过程逐次替换
		repayment, err := buildRepayment(cmd)
		if err != nil {
			return err
		}
		tolerance := conf.Tolerance
		if cmd.Flags().Changed("tolerance") {
			tolerance = flagTolerance
		}
		result, err := creditcalc.FindOptimalStrategyByOverpayment(
			decimal.NewFromFloat(flagAmount),
			flagTerm,
			decimal.NewFromFloat(flagRate),
			decimal.NewFromFloat(flagTarget),
			repayment,
			decimal.NewFromFloat(tolerance))
		if err != nil {
			return err
		}
		fmt.Println("early repayment:", money(result.EarlyRepayment))
		fmt.Println("overpayment:    ", money(result.Overpayment))
		fmt.Println("months left:    ", result.Schedule.Months())
		printSchedulePreview(result.Schedule)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{scheduleCmd, paymentSearchCmd, earlyRepaymentCmd, strategySearchCmd} {
		cmd.Flags().Float64Var(&flagAmount, "amount", 0, "loan amount")
		cmd.Flags().Float64Var(&flagRate, "rate", 0, "annual interest rate, percent")
		_ = cmd.MarkFlagRequired("amount")
		_ = cmd.MarkFlagRequired("rate")
	}
	for _, cmd := range []*cobra.Command{scheduleCmd, earlyRepaymentCmd, strategySearchCmd} {
		cmd.Flags().IntVar(&flagTerm, "term", 0, "term in months")
		_ = cmd.MarkFlagRequired("term")
	}
	for _, cmd := range []*cobra.Command{paymentSearchCmd, strategySearchCmd} {
		cmd.Flags().Float64Var(&flagTarget, "target", 0, "target overpayment")
		cmd.Flags().Float64Var(&flagTolerance, "tolerance", 0, "acceptable deviation from the target")
		_ = cmd.MarkFlagRequired("target")
	}
	for _, cmd := range []*cobra.Command{earlyRepaymentCmd, strategySearchCmd} {
		cmd.Flags().IntVar(&flagPaid, "paid", 0, "regular payments already made")
		cmd.Flags().StringVar(&flagStrategy, "strategy", "term", "term, payment, combo_pt or combo_tp")
		cmd.Flags().Float64Var(&flagSecondSum, "second-sum", 0, "secondary amount for combined strategies")
		cmd.Flags().IntVar(&flagSecondPaid, "second-paid", 0, "payments made before the secondary event")
	}
	earlyRepaymentCmd.Flags().Float64Var(&flagSum, "sum", 0, "early repayment amount")
	_ = earlyRepaymentCmd.MarkFlagRequired("sum")
}

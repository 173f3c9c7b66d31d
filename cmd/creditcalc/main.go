package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riskmanagement123/creditcalc"
)

var (
	flagConfig  string
	flagVerbose bool

	conf cliConfig
)

var rootCmd = &cobra.Command{
	Use:           "creditcalc",
	Short:         "Annuity loan calculator with early repayment planning",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		conf, err = loadCLIConfig(flagConfig)
		if err != nil {
			return err
		}
		logger := zap.NewNop()
		if flagVerbose {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
		}
		return creditcalc.Start(creditcalc.Config{Logger: logger})
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to yaml defaults file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "engine debug logging")

	rootCmd.AddCommand(scheduleCmd, paymentSearchCmd, earlyRepaymentCmd, strategySearchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"loan-strategy/config"
	"loan-strategy/domain"
	"loan-strategy/service"
)

// loanFlags are shared by every command that runs a comparison.
type loanFlags struct {
	principal float64
	rate      float64
	years     int
	months    int
	floor     float64
}

func (f *loanFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.principal, "principal", 500000, "Loan amount")
	cmd.Flags().Float64Var(&f.rate, "rate", 0.04, "Annual interest rate as a fraction (0.04 = 4%)")
	cmd.Flags().IntVar(&f.years, "years", 30, "Loan term in years")
	cmd.Flags().IntVar(&f.months, "months", 0, "Loan term in months (overrides --years)")
	cmd.Flags().Float64Var(&f.floor, "floor", service.DefaultHybridFloor, "Minimum extra payment for the hybrid strategy")
}

func (f *loanFlags) input() domain.ComparisonInput {
	months := f.months
	if months == 0 {
		months = f.years * 12
	}
	return domain.ComparisonInput{
		Principal:   f.principal,
		AnnualRate:  f.rate,
		TermMonths:  months,
		HybridFloor: f.floor,
	}
}

// NewRootCommand builds the loanstrat command tree.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "loanstrat",
		Short: "Compare mortgage acceleration strategies",
		Long: `loanstrat simulates a fixed-rate, fully amortizing loan under three
repayment plans and compares them:

  standard        - the fixed annuity payment over the full term
  interest-match  - every month, extra principal equal to that month's interest
  hybrid          - every month, extra principal of max(interest, floor)`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env", "", "Env file to load (default: ./.env)")

	loadConfig := func() config.Config {
		if envFile != "" {
			return config.Load(envFile)
		}
		return config.Load()
	}

	root.AddCommand(
		newCompareCmd(loadConfig),
		newReportCmd(loadConfig),
		newServeCmd(loadConfig),
		newVersionCmd(),
	)

	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func newInsightService(cfg config.Config) *service.InsightService {
	return service.NewInsightService(cfg.OpenAIKey, cfg.OpenAIURL, cfg.OpenAIModel)
}

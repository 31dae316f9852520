package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"loan-strategy/config"
	"loan-strategy/report"
	"loan-strategy/service"
)

func newCompareCmd(loadConfig func() config.Config) *cobra.Command {
	var (
		flags  loanFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the payoff summary for every strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			svc := service.NewComparisonService(nil, newInsightService(cfg))

			result, err := svc.Compare(cmd.Context(), flags.input())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return report.RenderSummary(out, result)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(result); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

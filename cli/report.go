package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loan-strategy/config"
	"loan-strategy/report"
	"loan-strategy/service"
)

const defaultReportFile = "mortgage_one_page_report.pdf"

func newReportCmd(loadConfig func() config.Config) *cobra.Command {
	var (
		flags   loanFlags
		outPath string
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the PDF comparison report and print the summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			svc := service.NewComparisonService(nil, newInsightService(cfg))

			result, err := svc.Compare(cmd.Context(), flags.input())
			if err != nil {
				return err
			}

			data, err := report.RenderPDF(result)
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report successfully saved to %s\n", outPath)
			if quiet {
				return nil
			}
			fmt.Fprintln(out)
			return report.RenderSummary(out, result)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", defaultReportFile, "PDF output path")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary")

	return cmd
}

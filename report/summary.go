package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"loan-strategy/domain"
	"loan-strategy/money"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	savedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

// RenderSummary writes the console payoff summary.
func RenderSummary(w io.Writer, result domain.ComparisonResult) error {
	rule := ruleStyle.Render(strings.Repeat("-", 30))

	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render("--- Mortgage Payoff Summary ---"))
	fmt.Fprintf(&b, "Initial Loan Amount: %s\n", money.FormatPlaces(result.Input.Principal, 2))
	fmt.Fprintf(&b, "Annual Interest Rate: %.2f%%\n", result.Input.AnnualRate*100)
	fmt.Fprintf(&b, "Standard Monthly Payment: %s\n", money.FormatPlaces(result.StandardPayment, 2))
	fmt.Fprintln(&b, rule)

	fmt.Fprintln(&b, labelStyle.Render("Standard Plan:"))
	fmt.Fprintf(&b, "  - Payoff Time: %s\n", formatTerm(result.Baseline.PayoffMonths))
	fmt.Fprintf(&b, "  - Total Interest: %s\n", money.FormatPlaces(result.Baseline.TotalInterest, 2))
	fmt.Fprintln(&b, rule)

	for _, s := range result.Strategies {
		fmt.Fprintln(&b, labelStyle.Render(s.Label+":"))
		fmt.Fprintf(&b, "  - Payoff Time: %d months (%.1f years)\n", s.KPIs.PayoffMonths, s.KPIs.PayoffYears)
		fmt.Fprintf(&b, "  - Total Interest: %s\n", money.FormatPlaces(s.KPIs.TotalInterest, 2))
		fmt.Fprintln(&b, savedStyle.Render(fmt.Sprintf("  - Saved: %s and %.1f years",
			money.FormatPlaces(s.KPIs.InterestSaved, 2), s.KPIs.YearsSaved)))
		fmt.Fprintln(&b, rule)
	}

	if result.Insight != "" {
		fmt.Fprintln(&b, result.Insight)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

package report

import (
	"fmt"

	"loan-strategy/domain"
	"loan-strategy/money"
)

// ComparisonTable returns the detailed comparison as rows of cells, header
// first: the standard plan then each strategy in result order.
func ComparisonTable(result domain.ComparisonResult) [][]string {
	header := []string{"Metric", "Standard Plan"}
	payoff := []string{"Payoff Time", formatTerm(result.Baseline.PayoffMonths)}
	interest := []string{"Total Interest Paid", money.Format(result.Baseline.TotalInterest)}
	paid := []string{"Total Amount Paid", money.Format(result.Baseline.TotalPaid)}
	yearsSaved := []string{"Years Saved", "N/A"}
	interestSaved := []string{"Interest Saved", "N/A"}

	for _, s := range result.Strategies {
		header = append(header, s.Label)
		payoff = append(payoff, fmt.Sprintf("%.1f years", s.KPIs.PayoffYears))
		interest = append(interest, money.Format(s.KPIs.TotalInterest))
		paid = append(paid, money.Format(s.KPIs.TotalPaid))
		yearsSaved = append(yearsSaved, fmt.Sprintf("%.1f years", s.KPIs.YearsSaved))
		interestSaved = append(interestSaved, money.Format(s.KPIs.InterestSaved))
	}

	return [][]string{header, payoff, interest, paid, yearsSaved, interestSaved}
}

func formatTerm(months int) string {
	if months%12 == 0 {
		return fmt.Sprintf("%d years", months/12)
	}
	return fmt.Sprintf("%.1f years", float64(months)/12)
}

package service

import "loan-strategy/domain"

// BaselineTotalInterest is the interest paid by the standard plan over its
// full term, derived in closed form.
func BaselineTotalInterest(terms domain.LoanTerms, standardPayment float64) float64 {
	return standardPayment*float64(terms.TermMonths) - terms.Principal
}

// Summarize reduces a simulation into its KPIs relative to the standard plan.
func Summarize(terms domain.LoanTerms, standardPayment float64, result domain.SimulationResult) domain.KPISet {
	payoffYears := float64(result.PayoffMonths) / 12
	termYears := float64(terms.TermMonths) / 12

	return domain.KPISet{
		PayoffMonths:   result.PayoffMonths,
		PayoffYears:    payoffYears,
		TotalInterest:  result.TotalInterest,
		TotalPrincipal: terms.Principal,
		TotalPaid:      terms.Principal + result.TotalInterest,
		YearsSaved:     termYears - payoffYears,
		InterestSaved:  BaselineTotalInterest(terms, standardPayment) - result.TotalInterest,
	}
}

// BaselineKPIs describes the standard plan itself, with nothing saved.
func BaselineKPIs(terms domain.LoanTerms, standardPayment float64) domain.KPISet {
	interest := BaselineTotalInterest(terms, standardPayment)

	return domain.KPISet{
		PayoffMonths:   terms.TermMonths,
		PayoffYears:    float64(terms.TermMonths) / 12,
		TotalInterest:  interest,
		TotalPrincipal: terms.Principal,
		TotalPaid:      terms.Principal + interest,
	}
}

// CumulativeSeries returns running totals for a run, starting with month 0
// before any payment.
func CumulativeSeries(terms domain.LoanTerms, result domain.SimulationResult) []domain.CumulativePoint {
	points := make([]domain.CumulativePoint, 0, len(result.Records)+1)
	points = append(points, domain.CumulativePoint{Month: 0, Balance: terms.Principal})

	var interest, paid float64
	for _, rec := range result.Records {
		interest += rec.InterestAccrued
		paid += rec.TotalPayment

		points = append(points, domain.CumulativePoint{
			Month:     rec.MonthIndex + 1,
			Balance:   rec.ClosingBalance,
			Principal: terms.Principal - rec.ClosingBalance,
			Interest:  interest,
			Paid:      paid,
		})
	}

	return points
}

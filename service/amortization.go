package service

import (
	"fmt"
	"math"

	"loan-strategy/domain"
)

const (
	// amortizationULPs is how many units in the last place of the payment the
	// first principal portion must exceed. Within that band the payment and the
	// first interest charge are the same number up to rounding.
	amortizationULPs = 4

	// settleTolerance is the residual balance, relative to the principal, that
	// counts as paid off. Repeated float subtraction leaves residues of a few
	// ulps of the principal where exact arithmetic reaches zero.
	settleTolerance = 1e-9
)

// ComputeStandardPayment returns the fixed monthly payment that fully amortizes
// the loan over its term:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// and P / n when r is zero. It does not validate terms; see ValidateTerms.
func ComputeStandardPayment(terms domain.LoanTerms) float64 {
	n := float64(terms.TermMonths)
	r := terms.MonthlyRate()

	if r == 0 {
		return terms.Principal / n
	}

	growth := math.Pow(1+r, n)
	return terms.Principal * r * growth / (growth - 1)
}

// ValidateTerms rejects terms the engine cannot simulate.
func ValidateTerms(terms domain.LoanTerms) error {
	if math.IsNaN(terms.Principal) || math.IsInf(terms.Principal, 0) || terms.Principal <= 0 {
		return fmt.Errorf("%w: principal must be a positive number", ErrInvalidLoanTerms)
	}
	if terms.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrInvalidLoanTerms, MaxLoanAmount)
	}
	if math.IsNaN(terms.AnnualRate) || math.IsInf(terms.AnnualRate, 0) || terms.AnnualRate < 0 {
		return fmt.Errorf("%w: annual rate must be zero or positive", ErrInvalidLoanTerms)
	}
	if terms.AnnualRate > MaxAnnualRate {
		return fmt.Errorf("%w: annual rate exceeds the maximum of %.2f", ErrInvalidLoanTerms, MaxAnnualRate)
	}
	if terms.TermMonths < MinTermMonths {
		return fmt.Errorf("%w: term must be at least %d month", ErrInvalidLoanTerms, MinTermMonths)
	}
	if terms.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", ErrInvalidLoanTerms, MaxTermMonths)
	}

	r := terms.MonthlyRate()
	if r == 0 {
		return nil
	}

	payment := ComputeStandardPayment(terms)
	firstInterest := terms.Principal * r
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return fmt.Errorf("%w: payment is not a finite number", ErrNonAmortizingPayment)
	}

	ulp := math.Nextafter(payment, math.Inf(1)) - payment
	if payment-firstInterest <= amortizationULPs*ulp {
		return fmt.Errorf("%w: payment %v is not above first month interest %v",
			ErrNonAmortizingPayment, payment, firstInterest)
	}

	return nil
}

// Simulate runs the month-by-month amortization loop with the extra principal
// contribution chosen by policy, until the balance is exactly zero.
func Simulate(terms domain.LoanTerms, policy StrategyPolicy) (domain.SimulationResult, error) {
	if policy == nil {
		return domain.SimulationResult{}, fmt.Errorf("%w: no policy given", ErrInvalidStrategy)
	}
	if err := ValidateTerms(terms); err != nil {
		return domain.SimulationResult{}, err
	}

	payment := ComputeStandardPayment(terms)
	rate := terms.MonthlyRate()
	maxMonths := terms.TermMonths + SimulationGraceMonths

	result := domain.SimulationResult{
		Strategy: policy.Name(),
		Records:  make([]domain.MonthRecord, 0, terms.TermMonths),
	}

	settled := terms.Principal * settleTolerance
	balance := terms.Principal
	for month := 0; balance != 0; month++ {
		if month >= maxMonths {
			return domain.SimulationResult{}, fmt.Errorf("%w: %s still owes %.2f after %d months",
				ErrSimulationDidNotConverge, policy.Name(), balance, month)
		}

		interest := balance * rate
		standardPrincipal := payment - interest

		extra := policy.ExtraPayment(interest, payment, month, balance)
		if math.IsNaN(extra) || math.IsInf(extra, 0) || extra < 0 {
			return domain.SimulationResult{}, fmt.Errorf("%w: %s returned extra payment %v in month %d",
				ErrInvalidStrategy, policy.Name(), extra, month)
		}

		reduction := standardPrincipal + extra
		closing := math.Max(0, balance-reduction)
		if closing <= settled {
			closing = 0
		}

		result.Records = append(result.Records, domain.MonthRecord{
			MonthIndex:        month,
			OpeningBalance:    balance,
			InterestAccrued:   interest,
			ExtraContribution: extra,
			TotalPayment:      payment + extra,
			ClosingBalance:    closing,
		})
		result.TotalInterest += interest

		balance = closing
	}

	result.PayoffMonths = len(result.Records)
	return result, nil
}

// StandardSchedule returns the closed-form balance curve of the standard plan
// for months 0..TermMonths together with its cumulative totals.
func StandardSchedule(terms domain.LoanTerms, payment float64) []domain.SchedulePoint {
	n := terms.TermMonths
	r := terms.MonthlyRate()
	points := make([]domain.SchedulePoint, 0, n+1)

	growthN := math.Pow(1+r, float64(n))
	for m := 0; m <= n; m++ {
		var balance float64
		if r == 0 {
			balance = terms.Principal * (1 - float64(m)/float64(n))
		} else {
			balance = terms.Principal * (growthN - math.Pow(1+r, float64(m))) / (growthN - 1)
		}
		balance = math.Max(0, balance)

		principalPaid := terms.Principal - balance
		paid := payment * float64(m)

		points = append(points, domain.SchedulePoint{
			Month:               m,
			Balance:             balance,
			CumulativePrincipal: principalPaid,
			CumulativeInterest:  paid - principalPaid,
			CumulativePaid:      paid,
		})
	}

	return points
}

package service

import "errors"

var (
	// ErrInvalidLoanTerms is returned for non-positive principal or term,
	// negative rate, non-finite values or values beyond the service limits.
	ErrInvalidLoanTerms = errors.New("invalid loan terms")

	// ErrNonAmortizingPayment is returned when the standard payment does not
	// cover the first month's interest, so the balance would never shrink.
	ErrNonAmortizingPayment = errors.New("standard payment does not amortize the loan")

	ErrInvalidStrategy = errors.New("invalid strategy")

	ErrSimulationDidNotConverge = errors.New("simulation did not converge")
)

package service

import "loan-strategy/domain"

const (
	MaxLoanAmount = 1_000_000_000.0 // one billion
	MaxAnnualRate = 10.0            // 1000% per year, as a fraction
	MaxTermMonths = 600             // 50 years
	MinTermMonths = 1

	// SimulationGraceMonths bounds how far past the contractual term a run may
	// go before it is reported as not converging.
	SimulationGraceMonths = 12

	// DefaultHybridFloor is the minimum extra payment for the hybrid strategy.
	DefaultHybridFloor = 1000.0

	StrategyInterestMatch = domain.StrategyInterestMatch
	StrategyHybridFloor   = domain.StrategyHybridFloor
	StrategyStandard      = domain.StrategyStandard
)

package service

import (
	"fmt"
	"math"
)

// StrategyPolicy decides the extra principal paid on top of the standard
// payment in a given month. Implementations must be pure and return a
// non-negative amount.
type StrategyPolicy interface {
	Name() string
	ExtraPayment(interest, standardPayment float64, month int, balance float64) float64
}

// InterestMatch pays extra principal equal to the month's interest charge.
type InterestMatch struct{}

func (InterestMatch) Name() string { return StrategyInterestMatch }

func (InterestMatch) ExtraPayment(interest, _ float64, _ int, _ float64) float64 {
	return interest
}

// HybridFloor pays the greater of the month's interest charge and Floor.
type HybridFloor struct {
	Floor float64
}

// NewHybridFloor validates floor and returns the policy.
func NewHybridFloor(floor float64) (HybridFloor, error) {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor < 0 {
		return HybridFloor{}, fmt.Errorf("%w: hybrid floor must be zero or positive", ErrInvalidStrategy)
	}
	return HybridFloor{Floor: floor}, nil
}

func (HybridFloor) Name() string { return StrategyHybridFloor }

func (h HybridFloor) ExtraPayment(interest, _ float64, _ int, _ float64) float64 {
	return math.Max(interest, h.Floor)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"loan-strategy/domain"
	"loan-strategy/money"
	"loan-strategy/repository"
)

// ComparisonService runs every repayment strategy for one loan and assembles
// the data the report layer renders.
type ComparisonService struct {
	cache   repository.CacheRepository
	insight *InsightService
}

// NewComparisonService creates a ComparisonService. cache and insight may be
// nil, in which case results are not cached and the fallback insight is used.
func NewComparisonService(
	cache repository.CacheRepository,
	insight *InsightService,
) *ComparisonService {
	return &ComparisonService{cache: cache, insight: insight}
}

// Compare validates the input, simulates the interest-match and hybrid-floor
// strategies and summarises them against the standard plan.
func (s *ComparisonService) Compare(
	ctx context.Context,
	input domain.ComparisonInput,
) (domain.ComparisonResult, error) {

	terms := input.Terms()
	if err := ValidateTerms(terms); err != nil {
		return domain.ComparisonResult{}, err
	}

	hybrid, err := NewHybridFloor(input.HybridFloor)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	key := comparisonCacheKey(input)
	if cached, ok := s.lookup(ctx, key); ok {
		return cached, nil
	}

	payment := ComputeStandardPayment(terms)

	result := domain.ComparisonResult{
		Input:           input,
		StandardPayment: payment,
		Baseline:        BaselineKPIs(terms, payment),
		StandardCurve:   StandardSchedule(terms, payment),
	}

	policies := []StrategyPolicy{InterestMatch{}, hybrid}
	for _, policy := range policies {
		run, err := Simulate(terms, policy)
		if err != nil {
			return domain.ComparisonResult{}, err
		}

		result.Strategies = append(result.Strategies, domain.StrategyOutcome{
			Name:       policy.Name(),
			Label:      StrategyLabel(policy),
			Result:     run,
			KPIs:       Summarize(terms, payment, run),
			Cumulative: CumulativeSeries(terms, run),
		})
	}

	result.Insight = s.insight.GenerateInsight(ctx, result)

	s.store(ctx, key, result)

	return result, nil
}

// StrategyLabel is the display name of a policy.
func StrategyLabel(policy StrategyPolicy) string {
	switch p := policy.(type) {
	case InterestMatch:
		return "Interest-Match"
	case HybridFloor:
		return fmt.Sprintf("Hybrid (%s floor)", money.Format(p.Floor))
	default:
		return policy.Name()
	}
}

func (s *ComparisonService) lookup(ctx context.Context, key string) (domain.ComparisonResult, bool) {
	if s.cache == nil {
		return domain.ComparisonResult{}, false
	}

	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ComparisonResult{}, false
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: discarding unreadable cached comparison %s: %v", key, err)
		return domain.ComparisonResult{}, false
	}
	return result, true
}

// store is best effort; a cache failure never fails the comparison.
func (s *ComparisonService) store(ctx context.Context, key string, result domain.ComparisonResult) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode comparison for cache: %v", err)
		return
	}

	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		log.Printf("Warning: failed to cache comparison: %v", err)
	}
}

func comparisonCacheKey(input domain.ComparisonInput) string {
	return "loan:comparison:" +
		strconv.FormatFloat(input.Principal, 'g', -1, 64) + ":" +
		strconv.FormatFloat(input.AnnualRate, 'g', -1, 64) + ":" +
		strconv.Itoa(input.TermMonths) + ":" +
		strconv.FormatFloat(input.HybridFloor, 'g', -1, 64)
}

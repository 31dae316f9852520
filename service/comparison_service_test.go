package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loan-strategy/domain"
	"loan-strategy/repository"
)

type FailingCache struct {
	GetCalled bool
	SetCalled bool
}

func (f *FailingCache) Get(_ context.Context, _ string) (string, bool) {
	f.GetCalled = true
	return "", false
}

func (f *FailingCache) Set(_ context.Context, _ string, _ string) error {
	f.SetCalled = true
	return errors.New("cache unavailable")
}

var referenceInput = domain.ComparisonInput{
	Principal:   500000,
	AnnualRate:  0.04,
	TermMonths:  360,
	HybridFloor: 1000,
}

func TestCompare_ReferenceLoan(t *testing.T) {
	cache := repository.NewMockCache()
	service := NewComparisonService(cache, NewInsightService("", "", ""))

	result, err := service.Compare(context.Background(), referenceInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertClose(t, 2387.08, result.StandardPayment, paymentTolerance, "standard payment")
	if len(result.StandardCurve) != 361 {
		t.Errorf("expected 361 curve points, got %d", len(result.StandardCurve))
	}
	if len(result.Strategies) != 2 {
		t.Fatalf("expected 2 strategies, got %d", len(result.Strategies))
	}

	match, ok := result.Strategy(StrategyInterestMatch)
	if !ok {
		t.Fatalf("missing interest-match outcome")
	}
	hybrid, ok := result.Strategy(StrategyHybridFloor)
	if !ok {
		t.Fatalf("missing hybrid outcome")
	}

	if hybrid.Label != "Hybrid ($1,000 floor)" {
		t.Errorf("unexpected hybrid label %q", hybrid.Label)
	}
	if match.KPIs.PayoffMonths != match.Result.PayoffMonths {
		t.Errorf("KPIs and result disagree on payoff")
	}
	if hybrid.KPIs.InterestSaved <= 0 || match.KPIs.InterestSaved <= 0 {
		t.Errorf("expected both strategies to save interest")
	}
	if result.Baseline.PayoffMonths != 360 {
		t.Errorf("expected baseline payoff 360, got %d", result.Baseline.PayoffMonths)
	}
	if !strings.HasPrefix(result.Insight, "Key Insight: The Hybrid strategy saves $") {
		t.Errorf("unexpected insight %q", result.Insight)
	}
	if cache.Sets != 1 {
		t.Errorf("expected result to be cached once, got %d", cache.Sets)
	}
}

func TestCompare_ZeroRateMatchesStandardPlan(t *testing.T) {
	service := NewComparisonService(nil, nil)

	result, err := service.Compare(context.Background(), domain.ComparisonInput{
		Principal:  500000,
		AnnualRate: 0,
		TermMonths: 360,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, outcome := range result.Strategies {
		if outcome.KPIs.PayoffMonths != 360 {
			t.Errorf("%s: expected payoff 360, got %d", outcome.Name, outcome.KPIs.PayoffMonths)
		}
		if outcome.KPIs.YearsSaved != 0 {
			t.Errorf("%s: expected no years saved, got %v", outcome.Name, outcome.KPIs.YearsSaved)
		}
	}
}

func TestCompare_UsesCache(t *testing.T) {
	cache := repository.NewMockCache()
	service := NewComparisonService(cache, nil)

	first, err := service.Compare(context.Background(), referenceInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := service.Compare(context.Background(), referenceInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.Sets != 1 {
		t.Errorf("expected cache hit on second call, got %d sets", cache.Sets)
	}

	a, _ := first.Strategy(StrategyHybridFloor)
	b, _ := second.Strategy(StrategyHybridFloor)
	if a.KPIs != b.KPIs {
		t.Errorf("cached KPIs differ: %+v vs %+v", a.KPIs, b.KPIs)
	}
	if len(a.Result.Records) != len(b.Result.Records) {
		t.Fatalf("cached records differ in length")
	}
	for i := range a.Result.Records {
		if a.Result.Records[i] != b.Result.Records[i] {
			t.Fatalf("cached record %d differs", i)
		}
	}
}

func TestCompare_CorruptCacheEntryIsRecomputed(t *testing.T) {
	cache := repository.NewMockCache()
	cache.Data[comparisonCacheKey(referenceInput)] = "{not json"
	service := NewComparisonService(cache, nil)

	result, err := service.Compare(context.Background(), referenceInput)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Strategies) != 2 {
		t.Errorf("expected a fresh comparison, got %d strategies", len(result.Strategies))
	}
}

func TestCompare_CacheFailureIsNotFatal(t *testing.T) {
	cache := &FailingCache{}
	service := NewComparisonService(cache, nil)

	if _, err := service.Compare(context.Background(), referenceInput); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cache.GetCalled || !cache.SetCalled {
		t.Errorf("expected cache to be consulted and written")
	}
}

func TestCompare_InvalidInput(t *testing.T) {
	cache := &FailingCache{}
	service := NewComparisonService(cache, nil)

	tests := []struct {
		name  string
		input domain.ComparisonInput
		want  error
	}{
		{"invalid principal", domain.ComparisonInput{Principal: 0, AnnualRate: 0.04, TermMonths: 360}, ErrInvalidLoanTerms},
		{"invalid term", domain.ComparisonInput{Principal: 1000, AnnualRate: 0.04, TermMonths: 0}, ErrInvalidLoanTerms},
		{"negative floor", domain.ComparisonInput{Principal: 1000, AnnualRate: 0.04, TermMonths: 12, HybridFloor: -5}, ErrInvalidStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Compare(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if cache.GetCalled || cache.SetCalled {
		t.Errorf("cache should NOT be touched for invalid input")
	}
}

func TestComparisonCacheKey(t *testing.T) {
	got := comparisonCacheKey(referenceInput)
	if got != "loan:comparison:500000:0.04:360:1000" {
		t.Errorf("unexpected key %q", got)
	}
}

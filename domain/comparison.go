package domain

// Strategy names used in ComparisonResult.Strategies.
const (
	StrategyStandard      = "standard"
	StrategyInterestMatch = "interest_match"
	StrategyHybridFloor   = "hybrid_floor"
)

type ComparisonInput struct {
	Principal   float64 `json:"principal" yaml:"principal"`
	AnnualRate  float64 `json:"annual_rate" yaml:"annual_rate"`
	TermMonths  int     `json:"term_months" yaml:"term_months"`
	HybridFloor float64 `json:"hybrid_floor" yaml:"hybrid_floor"`
}

// Terms returns the loan part of the input.
func (in ComparisonInput) Terms() LoanTerms {
	return LoanTerms{
		Principal:  in.Principal,
		AnnualRate: in.AnnualRate,
		TermMonths: in.TermMonths,
	}
}

type StrategyOutcome struct {
	Name       string            `json:"name" yaml:"name"`
	Label      string            `json:"label" yaml:"label"`
	Result     SimulationResult  `json:"result" yaml:"result"`
	KPIs       KPISet            `json:"kpis" yaml:"kpis"`
	Cumulative []CumulativePoint `json:"cumulative" yaml:"cumulative"`
}

type ComparisonResult struct {
	Input           ComparisonInput   `json:"input" yaml:"input"`
	StandardPayment float64           `json:"standard_payment" yaml:"standard_payment"`
	Baseline        KPISet            `json:"baseline" yaml:"baseline"`
	StandardCurve   []SchedulePoint   `json:"standard_curve" yaml:"standard_curve"`
	Strategies      []StrategyOutcome `json:"strategies" yaml:"strategies"`
	Insight         string            `json:"insight,omitempty" yaml:"insight,omitempty"`
}

// Strategy returns the outcome with the given name.
func (r ComparisonResult) Strategy(name string) (StrategyOutcome, bool) {
	for _, s := range r.Strategies {
		if s.Name == name {
			return s, true
		}
	}
	return StrategyOutcome{}, false
}

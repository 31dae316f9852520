package domain

// LoanTerms describes a fixed-rate, fully amortizing installment loan.
// AnnualRate is a fraction: 0.04 means 4%.
type LoanTerms struct {
	Principal  float64 `json:"principal" yaml:"principal"`
	AnnualRate float64 `json:"annual_rate" yaml:"annual_rate"`
	TermMonths int     `json:"term_months" yaml:"term_months"`
}

// MonthlyRate returns AnnualRate / 12.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRate / 12
}

type MonthRecord struct {
	MonthIndex        int     `json:"month_index" yaml:"month_index"`
	OpeningBalance    float64 `json:"opening_balance" yaml:"opening_balance"`
	InterestAccrued   float64 `json:"interest_accrued" yaml:"interest_accrued"`
	ExtraContribution float64 `json:"extra_contribution" yaml:"extra_contribution"`
	TotalPayment      float64 `json:"total_payment" yaml:"total_payment"`
	ClosingBalance    float64 `json:"closing_balance" yaml:"closing_balance"`
}

// SimulationResult is the output of one strategy run. Records are chronological.
type SimulationResult struct {
	Strategy      string        `json:"strategy" yaml:"strategy"`
	Records       []MonthRecord `json:"records" yaml:"records"`
	PayoffMonths  int           `json:"payoff_months" yaml:"payoff_months"`
	TotalInterest float64       `json:"total_interest" yaml:"total_interest"`
}

// KPISet summarises a run. YearsSaved and InterestSaved are relative to the
// standard plan over its full term.
type KPISet struct {
	PayoffMonths   int     `json:"payoff_months" yaml:"payoff_months"`
	PayoffYears    float64 `json:"payoff_years" yaml:"payoff_years"`
	TotalInterest  float64 `json:"total_interest" yaml:"total_interest"`
	TotalPrincipal float64 `json:"total_principal" yaml:"total_principal"`
	TotalPaid      float64 `json:"total_paid" yaml:"total_paid"`
	YearsSaved     float64 `json:"years_saved" yaml:"years_saved"`
	InterestSaved  float64 `json:"interest_saved" yaml:"interest_saved"`
}

// SchedulePoint is one month of the closed-form standard plan. Month 0 is the
// state before the first payment.
type SchedulePoint struct {
	Month               int     `json:"month" yaml:"month"`
	Balance             float64 `json:"balance" yaml:"balance"`
	CumulativePrincipal float64 `json:"cumulative_principal" yaml:"cumulative_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest" yaml:"cumulative_interest"`
	CumulativePaid      float64 `json:"cumulative_paid" yaml:"cumulative_paid"`
}

// CumulativePoint holds running totals for a simulated strategy.
type CumulativePoint struct {
	Month     int     `json:"month" yaml:"month"`
	Balance   float64 `json:"balance" yaml:"balance"`
	Principal float64 `json:"principal" yaml:"principal"`
	Interest  float64 `json:"interest" yaml:"interest"`
	Paid      float64 `json:"paid" yaml:"paid"`
}

package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"loan-strategy/domain"
	"loan-strategy/service"
)

func comparisonFixture(t *testing.T) domain.ComparisonResult {
	t.Helper()
	result, err := service.NewComparisonService(nil, nil).Compare(context.Background(), domain.ComparisonInput{
		Principal:   500000,
		AnnualRate:  0.04,
		TermMonths:  360,
		HybridFloor: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(comparisonFixture(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF header, got %q", data[:8])
	}
}

func TestRenderPDF_TranslatesInsightToCoreFontEncoding(t *testing.T) {
	result := comparisonFixture(t)
	result.Insight = "\u201cPay the floor\u201d \u2013 it\u2019s worth it."

	r, err := newPDFReport(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\x93Pay the floor\x94 \x96 it\x92s worth it."
	if got := r.tr(result.Insight); got != want {
		t.Errorf("expected cp1252 text %q, got %q", want, got)
	}

	data, err := RenderPDF(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF header, got %q", data[:8])
	}
}

func TestRenderPDF_MissingStrategy(t *testing.T) {
	result := comparisonFixture(t)
	result.Strategies = result.Strategies[:1]

	if _, err := RenderPDF(result); err == nil {
		t.Errorf("expected error when the hybrid outcome is missing")
	}
}

func TestComparisonTable(t *testing.T) {
	rows := ComparisonTable(comparisonFixture(t))

	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	want := []string{"Metric", "Standard Plan", "Interest-Match", "Hybrid ($1,000 floor)"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("header %d: expected %q, got %q", i, cell, rows[0][i])
		}
	}
	if rows[1][1] != "30 years" {
		t.Errorf("expected standard payoff of 30 years, got %q", rows[1][1])
	}
	if rows[4][1] != "N/A" || rows[5][1] != "N/A" {
		t.Errorf("expected N/A savings for the standard plan")
	}
	if !strings.HasPrefix(rows[2][1], "$359,3") {
		t.Errorf("unexpected standard interest %q", rows[2][1])
	}
}

func TestFormatTerm(t *testing.T) {
	if got := formatTerm(360); got != "30 years" {
		t.Errorf("unexpected %q", got)
	}
	if got := formatTerm(189); got != "15.8 years" {
		t.Errorf("unexpected %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, comparisonFixture(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Mortgage Payoff Summary",
		"Initial Loan Amount: $500,000.00",
		"Annual Interest Rate: 4.00%",
		"Interest-Match:",
		"Hybrid ($1,000 floor):",
		"Key Insight",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

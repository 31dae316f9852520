package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"loan-strategy/domain"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")

	envFile := filepath.Join(t.TempDir(), "missing.env")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--env", envFile}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCompareCommand_Text(t *testing.T) {
	out, err := runCommand(t, "compare")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Mortgage Payoff Summary", "Interest-Match:", "Hybrid ($1,000 floor):"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompareCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "compare", "--principal", "200000", "--rate", "0.04", "--years", "25", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	if result.Input.TermMonths != 300 {
		t.Errorf("expected 300 months, got %d", result.Input.TermMonths)
	}
	if result.StandardPayment < 1055 || result.StandardPayment > 1056 {
		t.Errorf("unexpected payment %.2f", result.StandardPayment)
	}
}

func TestCompareCommand_YAMLWithMonths(t *testing.T) {
	out, err := runCommand(t, "compare", "--principal", "1200", "--rate", "0", "--months", "12", "--floor", "100", "-f", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result domain.ComparisonResult
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid yaml output: %v", err)
	}
	hybrid, ok := result.Strategy(domain.StrategyHybridFloor)
	if !ok {
		t.Fatalf("missing hybrid outcome")
	}
	if hybrid.KPIs.PayoffMonths != 6 {
		t.Errorf("expected 6 months, got %d", hybrid.KPIs.PayoffMonths)
	}
}

func TestCompareCommand_Errors(t *testing.T) {
	if _, err := runCommand(t, "compare", "--format", "xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
	if _, err := runCommand(t, "compare", "--principal", "0"); err == nil {
		t.Errorf("expected error for invalid principal")
	}
	if _, err := runCommand(t, "compare", "--floor", "-10"); err == nil {
		t.Errorf("expected error for negative floor")
	}
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	out, err := runCommand(t, "report", "--out", path, "--quiet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Report successfully saved to "+path) {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected a PDF file")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "loanstrat v"+Version) {
		t.Errorf("unexpected output %q", out)
	}
}

package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"loan-strategy/domain"
	"loan-strategy/money"
)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight

	monthsPerTick = 60
)

type rgb struct{ r, g, b int }

var (
	colorTitle    = rgb{0, 51, 102}
	colorText     = rgb{50, 50, 50}
	colorMuted    = rgb{128, 128, 128}
	colorGrid     = rgb{225, 225, 225}
	colorBanner   = rgb{176, 196, 222}
	colorInsight  = rgb{245, 222, 179}
	colorYears    = rgb{46, 139, 87}
	colorInterest = rgb{65, 105, 225}

	colorStandard = rgb{135, 206, 235}
	colorMatch    = rgb{250, 128, 114}
	colorHybrid   = rgb{60, 179, 113}
)

type lineStyle int

const (
	solid lineStyle = iota
	dashed
	dotted
)

type point struct{ x, y float64 }

type series struct {
	label  string
	color  rgb
	style  lineStyle
	points []point
}

// PDFReport renders a comparison. The first page carries the headline figures
// and the balance and payment charts; a detail page adds cumulative costs and
// the comparison table.
type PDFReport struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	result domain.ComparisonResult
	match  domain.StrategyOutcome
	hybrid domain.StrategyOutcome
}

// RenderPDF builds the report and returns the PDF bytes.
func RenderPDF(result domain.ComparisonResult) ([]byte, error) {
	r, err := newPDFReport(result)
	if err != nil {
		return nil, err
	}

	r.addOverviewPage()
	r.addDetailPage()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newPDFReport(result domain.ComparisonResult) (*PDFReport, error) {
	match, ok := result.Strategy(domain.StrategyInterestMatch)
	if !ok {
		return nil, fmt.Errorf("comparison has no %s outcome", domain.StrategyInterestMatch)
	}
	hybrid, ok := result.Strategy(domain.StrategyHybridFloor)
	if !ok {
		return nil, fmt.Errorf("comparison has no %s outcome", domain.StrategyHybridFloor)
	}

	r := &PDFReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
		match:  match,
		hybrid: hybrid,
	}

	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(false, marginBottom)
	r.pdf.SetTitle("Mortgage Acceleration Strategy", true)
	// Core fonts are cp1252; insight text may arrive as arbitrary UTF-8.
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")

	return r, nil
}

func (r *PDFReport) addOverviewPage() {
	r.pdf.AddPage()

	r.setText(colorTitle)
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.CellFormat(contentWidth, 12, "Mortgage Acceleration Strategy: One-Page Report", "", 1, "C", false, 0, "")
	r.pdf.Ln(2)

	in := r.result.Input
	inputs := fmt.Sprintf("Loan Inputs: Principal: %s | Rate: %.1f%% | Term: %s | Hybrid Floor: %s",
		money.Format(in.Principal), in.AnnualRate*100, formatTerm(in.TermMonths), money.Format(in.HybridFloor))
	r.setFill(colorBanner)
	r.setText(colorText)
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(contentWidth, 9, inputs, "", 1, "C", true, 0, "")
	r.pdf.Ln(2)

	if r.result.Insight != "" {
		r.setFill(colorInsight)
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.MultiCell(contentWidth, 5, r.tr(r.result.Insight), "", "C", true)
		r.pdf.Ln(3)
	}

	boxW := contentWidth / 4
	y := r.pdf.GetY()
	boxes := []struct {
		value string
		label string
		color rgb
	}{
		{fmt.Sprintf("%.1f", r.match.KPIs.YearsSaved), "Years Saved (Interest-Match)", colorYears},
		{money.Format(r.match.KPIs.InterestSaved), "Interest Saved (Interest-Match)", colorInterest},
		{fmt.Sprintf("%.1f", r.hybrid.KPIs.YearsSaved), "Years Saved (Hybrid)", colorYears},
		{money.Format(r.hybrid.KPIs.InterestSaved), "Interest Saved (Hybrid)", colorInterest},
	}
	for i, box := range boxes {
		x := marginLeft + float64(i)*boxW
		r.setDraw(colorGrid)
		r.pdf.Rect(x+1, y, boxW-2, 24, "D")

		r.setText(box.color)
		r.pdf.SetFont("Arial", "B", 16)
		r.pdf.SetXY(x+1, y+3)
		r.pdf.CellFormat(boxW-2, 10, box.value, "", 0, "C", false, 0, "")

		r.setText(colorMuted)
		r.pdf.SetFont("Arial", "", 7)
		r.pdf.SetXY(x+1, y+15)
		r.pdf.CellFormat(boxW-2, 5, box.label, "", 0, "C", false, 0, "")
	}

	chartTop := y + 32
	r.drawChart(marginLeft, chartTop, contentWidth, 85, "Loan Balance Over Time", formatThousands,
		[]series{
			{"Standard Plan", colorStandard, solid, standardBalance(r.result.StandardCurve)},
			{"Interest-Match Strategy", colorMatch, solid, cumulativeBalance(r.match.Cumulative)},
			{"Hybrid Strategy (Floor: " + money.Format(in.HybridFloor) + ")", colorHybrid, dashed, cumulativeBalance(r.hybrid.Cumulative)},
		})

	r.drawChart(marginLeft, chartTop+100, contentWidth, 75, "Total Monthly Payment (Cash Flow)", money.Format,
		[]series{
			{"Standard", colorStandard, solid, standardPayments(r.result)},
			{"Interest-Match", colorMatch, solid, recordPayments(r.match.Result)},
			{"Hybrid", colorHybrid, dashed, recordPayments(r.hybrid.Result)},
		})
}

func (r *PDFReport) addDetailPage() {
	r.pdf.AddPage()

	curve := r.result.StandardCurve
	r.drawChart(marginLeft, marginTop+5, contentWidth, 110, "Cumulative Principal vs. Interest Paid", formatThousands,
		[]series{
			{"Principal (Standard)", colorStandard, solid, standardCumulative(curve, func(p domain.SchedulePoint) float64 { return p.CumulativePrincipal })},
			{"Interest (Standard)", rgb{255, 165, 0}, solid, standardCumulative(curve, func(p domain.SchedulePoint) float64 { return p.CumulativeInterest })},
			{"Principal (Interest-Match)", rgb{139, 0, 0}, dashed, strategyCumulative(r.match.Cumulative, func(p domain.CumulativePoint) float64 { return p.Principal })},
			{"Interest (Interest-Match)", rgb{178, 34, 34}, dashed, strategyCumulative(r.match.Cumulative, func(p domain.CumulativePoint) float64 { return p.Interest })},
			{"Principal (Hybrid)", rgb{0, 100, 0}, dotted, strategyCumulative(r.hybrid.Cumulative, func(p domain.CumulativePoint) float64 { return p.Principal })},
			{"Interest (Hybrid)", rgb{107, 142, 35}, dotted, strategyCumulative(r.hybrid.Cumulative, func(p domain.CumulativePoint) float64 { return p.Interest })},
		})

	r.pdf.SetXY(marginLeft, marginTop+135)
	r.setText(colorTitle)
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.CellFormat(contentWidth, 10, "Detailed Strategy Comparison", "", 1, "C", false, 0, "")
	r.pdf.Ln(2)

	rows := ComparisonTable(r.result)
	colW := contentWidth / float64(len(rows[0]))
	r.setDraw(colorGrid)
	for i, row := range rows {
		if i == 0 {
			r.pdf.SetFont("Arial", "B", 9)
			r.setFill(colorBanner)
		} else {
			r.pdf.SetFont("Arial", "", 9)
			r.setFill(rgb{255, 255, 255})
		}
		r.setText(colorText)
		for _, cell := range row {
			r.pdf.CellFormat(colW, 9, cell, "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
	}
}

// drawChart plots each series on shared axes. x values are months and are
// labelled in years.
func (r *PDFReport) drawChart(x, y, w, h float64, title string, yFormat func(float64) string, data []series) {
	r.setText(colorTitle)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetXY(x, y)
	r.pdf.CellFormat(w, 7, title, "", 0, "C", false, 0, "")

	const (
		axisLeft   = 20.0
		axisBottom = 10.0
		titleH     = 9.0
	)
	plotX := x + axisLeft
	plotY := y + titleH
	plotW := w - axisLeft
	plotH := h - titleH - axisBottom

	maxX, maxY := 1.0, 1.0
	for _, s := range data {
		for _, p := range s.points {
			maxX = math.Max(maxX, p.x)
			maxY = math.Max(maxY, p.y)
		}
	}
	maxY *= 1.05

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetLineWidth(0.1)
	r.setDraw(colorGrid)
	r.setText(colorMuted)
	for i := 0; i <= 4; i++ {
		v := maxY * float64(i) / 4
		gy := plotY + plotH - plotH*float64(i)/4
		r.pdf.Line(plotX, gy, plotX+plotW, gy)
		r.pdf.SetXY(x, gy-2)
		r.pdf.CellFormat(axisLeft-2, 4, yFormat(v), "", 0, "R", false, 0, "")
	}
	for m := 0; float64(m) <= maxX; m += monthsPerTick {
		gx := plotX + plotW*float64(m)/maxX
		r.pdf.Line(gx, plotY, gx, plotY+plotH)
		r.pdf.SetXY(gx-5, plotY+plotH+1)
		r.pdf.CellFormat(10, 4, fmt.Sprintf("%d", m/12), "", 0, "C", false, 0, "")
	}
	r.pdf.SetXY(plotX, plotY+plotH+5)
	r.pdf.CellFormat(plotW, 4, "Time (Years)", "", 0, "C", false, 0, "")

	r.setDraw(colorMuted)
	r.pdf.Rect(plotX, plotY, plotW, plotH, "D")

	r.pdf.SetLineWidth(0.5)
	for _, s := range data {
		r.setDraw(s.color)
		r.setDash(s.style)
		for i := 1; i < len(s.points); i++ {
			a, b := s.points[i-1], s.points[i]
			r.pdf.Line(
				plotX+plotW*a.x/maxX, plotY+plotH-plotH*a.y/maxY,
				plotX+plotW*b.x/maxX, plotY+plotH-plotH*b.y/maxY,
			)
		}
	}
	r.setDash(solid)

	legendY := plotY + 2
	r.pdf.SetFont("Arial", "", 7)
	r.setText(colorText)
	for _, s := range data {
		lx := plotX + plotW - 55
		r.setDraw(s.color)
		r.setDash(s.style)
		r.pdf.Line(lx, legendY+2, lx+8, legendY+2)
		r.setDash(solid)
		r.pdf.SetXY(lx+9, legendY)
		r.pdf.CellFormat(45, 4, s.label, "", 0, "L", false, 0, "")
		legendY += 4
	}
	r.pdf.SetLineWidth(0.2)
}

func (r *PDFReport) setDash(style lineStyle) {
	switch style {
	case dashed:
		r.pdf.SetDashPattern([]float64{2, 1.2}, 0)
	case dotted:
		r.pdf.SetDashPattern([]float64{0.5, 0.8}, 0)
	default:
		r.pdf.SetDashPattern([]float64{}, 0)
	}
}

func (r *PDFReport) setText(c rgb) { r.pdf.SetTextColor(c.r, c.g, c.b) }
func (r *PDFReport) setFill(c rgb) { r.pdf.SetFillColor(c.r, c.g, c.b) }
func (r *PDFReport) setDraw(c rgb) { r.pdf.SetDrawColor(c.r, c.g, c.b) }

func standardBalance(curve []domain.SchedulePoint) []point {
	return standardCumulative(curve, func(p domain.SchedulePoint) float64 { return p.Balance })
}

func cumulativeBalance(series []domain.CumulativePoint) []point {
	return strategyCumulative(series, func(p domain.CumulativePoint) float64 { return p.Balance })
}

func standardCumulative(curve []domain.SchedulePoint, value func(domain.SchedulePoint) float64) []point {
	points := make([]point, len(curve))
	for i, p := range curve {
		points[i] = point{float64(p.Month), value(p)}
	}
	return points
}

func strategyCumulative(cumulative []domain.CumulativePoint, value func(domain.CumulativePoint) float64) []point {
	points := make([]point, len(cumulative))
	for i, p := range cumulative {
		points[i] = point{float64(p.Month), value(p)}
	}
	return points
}

func standardPayments(result domain.ComparisonResult) []point {
	n := float64(result.Input.TermMonths)
	return []point{{1, result.StandardPayment}, {n, result.StandardPayment}}
}

func recordPayments(run domain.SimulationResult) []point {
	points := make([]point, len(run.Records))
	for i, rec := range run.Records {
		points[i] = point{float64(rec.MonthIndex + 1), rec.TotalPayment}
	}
	return points
}

func formatThousands(v float64) string {
	return fmt.Sprintf("$%.0fk", v/1000)
}

// Package cli renders IFTA reports for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/micronlogivdev/iftaway/internal/export"
	"github.com/micronlogivdev/iftaway/internal/model"
)

var (
	primaryColor = lipgloss.Color("#7D56F4")
	warnColor    = lipgloss.Color("#E5534B")
	mutedColor   = lipgloss.Color("#8B949E")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warnColor)
)

// RenderTaxReport renders the jurisdiction table with a title and fleet MPG
func RenderTaxReport(result *model.ReportResult, p export.Period) string {
	rows := make([][]string, 0, len(result.TaxReport.Rows)+1)
	var miles, fuel, cost float64
	for _, r := range result.TaxReport.Rows {
		rows = append(rows, []string{
			r.Jurisdiction,
			fmt.Sprintf("%.2f", r.TotalMiles),
			fmt.Sprintf("%.2f", r.TotalFuel),
			fmt.Sprintf("%.2f", r.TotalCost),
		})
		miles += r.TotalMiles
		fuel += r.TotalFuel
		cost += r.TotalCost
	}
	rows = append(rows, []string{
		"Total",
		fmt.Sprintf("%.2f", miles),
		fmt.Sprintf("%.2f", fuel),
		fmt.Sprintf("%.2f", cost),
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers(export.TaxReportHeader...).
		Rows(rows...)

	title := "IFTA Report"
	if p.IsQuarter() {
		title = fmt.Sprintf("IFTA Report Q%d %d", p.Quarter, p.Year)
	}
	header := titleStyle.Render(title)
	period := mutedStyle.Render(fmt.Sprintf("%s to %s",
		result.Start.Format("2006-01-02"), result.End.Format("2006-01-02")))
	mpg := fmt.Sprintf("Overall Fleet MPG: %.2f", result.TaxReport.MPG)

	return lipgloss.JoinVertical(lipgloss.Left, header, period, t.Render(), mpg)
}

// RenderInsights renders efficiency, price, anomaly and forecast sections
func RenderInsights(ins model.Insights) string {
	var sections []string

	sections = append(sections, sectionStyle.Render("Fuel efficiency"))
	if len(ins.Efficiency.Top) == 0 {
		sections = append(sections, mutedStyle.Render("  Not enough data per truck"))
	} else {
		sections = append(sections, "  Best:  "+joinTrucks(ins.Efficiency.Top))
		sections = append(sections, "  Worst: "+joinTrucks(ins.Efficiency.Bottom))
	}

	sections = append(sections, sectionStyle.Render("Fuel prices"))
	if len(ins.CostOptimization.Cheapest) == 0 {
		sections = append(sections, mutedStyle.Render("  No priced fuel purchases"))
	} else {
		sections = append(sections, "  Cheapest:       "+joinPrices(ins.CostOptimization.Cheapest))
		sections = append(sections, "  Most expensive: "+joinPrices(ins.CostOptimization.Expensive))
	}

	sections = append(sections, sectionStyle.Render("Anomalies"))
	anomalies := ins.Anomalies
	titleCase := cases.Title(language.English)
	if len(anomalies.HighCost) == 0 && len(anomalies.OffHours) == 0 && len(anomalies.OdometerRollbacks) == 0 {
		sections = append(sections, mutedStyle.Render("  None detected"))
	}
	for _, e := range anomalies.HighCost {
		sections = append(sections, warnStyle.Render(fmt.Sprintf("  High cost: truck %s $%.2f of %s on %s in %s",
			e.TruckNumber, e.Cost, titleCase.String(e.FuelLabel()), e.DateTime.Format("2006-01-02"), e.State)))
	}
	for _, e := range anomalies.OffHours {
		sections = append(sections, warnStyle.Render(fmt.Sprintf("  Off hours: truck %s at %s in %s, %s",
			e.TruckNumber, e.DateTime.Format("2006-01-02 15:04"), titleCase.String(e.City), e.State)))
	}
	for _, r := range anomalies.OdometerRollbacks {
		sections = append(sections, warnStyle.Render(fmt.Sprintf("  Odometer rollback: truck %s entries %d to %d (%.1f mi)",
			r.Vehicle, r.FromEntryID, r.ToEntryID, r.Delta)))
	}

	sections = append(sections, sectionStyle.Render("Forecast"))
	sections = append(sections, fmt.Sprintf("  Next quarter fuel cost: $%.2f", ins.Forecast))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderMonthlyCosts plots the monthly cost series as an ASCII chart
func RenderMonthlyCosts(series []model.MonthlyCost, width, height int) string {
	if len(series) == 0 {
		return mutedStyle.Render("No data available")
	}
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	data := make([]float64, len(series))
	names := make([]string, len(series))
	for i, m := range series {
		data[i] = m.Cost
		names[i] = m.Name
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("Monthly fuel cost ($): "+strings.Join(names, " ")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sectionStyle.Render("Monthly costs"), graph)
}

func joinTrucks(items []model.TruckEfficiency) string {
	parts := make([]string, len(items))
	for i, t := range items {
		label := t.Vehicle
		if t.MakeModel != "" {
			label += " (" + t.MakeModel + ")"
		}
		parts[i] = fmt.Sprintf("%s %.2f mpg", label, t.MPG)
	}
	return strings.Join(parts, ", ")
}

func joinPrices(items []model.JurisdictionPrice) string {
	parts := make([]string, len(items))
	for i, p := range items {
		parts[i] = fmt.Sprintf("%s $%.3f/gal", p.Jurisdiction, p.PricePerGallon)
	}
	return strings.Join(parts, ", ")
}

package ifta

import (
	"time"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// ReportInput is everything Generate needs. Entries is the full history; the
// window is applied here, and the forecast looks at the whole history.
type ReportInput struct {
	Entries []model.FuelEntry
	Trucks  []model.Truck
	Window  Window
	Now     time.Time
}

// Generate runs the full pipeline for one window. It returns
// ErrInsufficientData when fewer than two entries qualify.
func Generate(in ReportInput) (*model.ReportResult, error) {
	filtered := FilterEntries(in.Entries, in.Window)
	if len(filtered) < MinEntries {
		return nil, ErrInsufficientData
	}

	byTruck := SequenceByTruck(filtered)
	alloc := AllocateMileage(byTruck)
	totals := Aggregate(filtered, alloc)

	insights := BuildInsights(
		RankEfficiency(byTruck, in.Trucks),
		OptimizePrices(filtered),
		DetectAnomalies(filtered, alloc),
		ForecastNextQuarter(in.Entries, in.Now),
	)

	return &model.ReportResult{
		Start:     in.Window.Start,
		End:       in.Window.End,
		TaxReport: BuildTaxReport(totals),
		Insights:  insights,
	}, nil
}

// BuildTaxReport shapes aggregated totals into the tax report
func BuildTaxReport(t Totals) model.TaxReport {
	return model.TaxReport{
		Rows: t.Rows,
		MPG:  t.OverallMPG,
	}
}

// BuildInsights shapes the analyzer outputs into the insights report
func BuildInsights(eff model.EfficiencyInsight, cost model.CostOptimization, anomalies model.AnomalyInsight, forecast float64) model.Insights {
	return model.Insights{
		Efficiency:       eff,
		CostOptimization: cost,
		Anomalies:        anomalies,
		Forecast:         forecast,
	}
}

package ifta

import (
	"sort"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// RankSize is how many items each top/bottom/cheapest/expensive list holds
const RankSize = 3

// RankEfficiency ranks trucks with at least two entries and a positive MPG.
// Top is best first; Bottom is worst first. trucks only labels the output.
func RankEfficiency(byTruck map[string][]model.FuelEntry, trucks []model.Truck) model.EfficiencyInsight {
	labels := make(map[string]string, len(trucks))
	for _, t := range trucks {
		labels[t.Number] = t.MakeModel
	}

	ranked := make([]model.TruckEfficiency, 0, len(byTruck))
	for _, number := range truckNumbers(byTruck) {
		seq := byTruck[number]
		if len(seq) < MinEntries {
			continue
		}
		mpg := TruckMPG(seq)
		if mpg <= 0 {
			continue
		}
		ranked = append(ranked, model.TruckEfficiency{
			Vehicle:   number,
			MakeModel: labels[number],
			MPG:       mpg,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MPG > ranked[j].MPG
	})

	return model.EfficiencyInsight{
		Top:    head(ranked, RankSize),
		Bottom: tailReversed(ranked, RankSize),
	}
}

// OptimizePrices ranks jurisdictions by average price per gallon across all
// fuel types. Jurisdictions without fuel are left out.
func OptimizePrices(entries []model.FuelEntry) model.CostOptimization {
	type totals struct{ cost, gallons float64 }
	byState := make(map[string]*totals)
	for _, e := range entries {
		t, ok := byState[e.State]
		if !ok {
			t = &totals{}
			byState[e.State] = t
		}
		t.cost += e.Cost
		t.gallons += e.Amount
	}

	prices := make([]model.JurisdictionPrice, 0, len(byState))
	for state, t := range byState {
		if t.gallons == 0 {
			continue
		}
		prices = append(prices, model.JurisdictionPrice{
			Jurisdiction:   state,
			PricePerGallon: t.cost / t.gallons,
		})
	}

	sort.Slice(prices, func(i, j int) bool {
		if prices[i].PricePerGallon != prices[j].PricePerGallon {
			return prices[i].PricePerGallon < prices[j].PricePerGallon
		}
		return prices[i].Jurisdiction < prices[j].Jurisdiction
	})

	return model.CostOptimization{
		Cheapest:  head(prices, RankSize),
		Expensive: tailReversed(prices, RankSize),
	}
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

func tailReversed[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}

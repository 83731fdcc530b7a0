package ifta

import (
	"sort"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// Totals is the rolled-up view of one report window
type Totals struct {
	Rows         []model.JurisdictionRow
	TotalMiles   float64
	TaxedGallons float64
	OverallMPG   float64
	// TruckMPG holds MPG for every truck seen in the window, 0 when undefined
	TruckMPG map[string]float64
}

// jurisdictionAcc accumulates one jurisdiction's row
type jurisdictionAcc struct {
	miles, fuel, cost float64
}

// Aggregate rolls segments and entries up per jurisdiction. Miles come from
// the segments, fuel and cost from every entry on its own.
func Aggregate(entries []model.FuelEntry, alloc Allocation) Totals {
	acc := make(map[string]*jurisdictionAcc)
	get := func(code string) *jurisdictionAcc {
		a, ok := acc[code]
		if !ok {
			a = &jurisdictionAcc{}
			acc[code] = a
		}
		return a
	}

	for _, s := range alloc.Segments {
		get(s.Jurisdiction).miles += s.Miles
	}

	taxedByTruck := make(map[string]float64)
	var taxed float64
	for _, e := range entries {
		a := get(e.State)
		a.fuel += e.Amount
		a.cost += e.Cost
		var gallons float64
		if e.FuelType.IsTaxed() {
			gallons = e.Amount
		}
		taxed += gallons
		taxedByTruck[e.TruckNumber] += gallons
	}

	codes := make([]string, 0, len(acc))
	for code := range acc {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([]model.JurisdictionRow, 0, len(codes))
	for _, code := range codes {
		a := acc[code]
		rows = append(rows, model.JurisdictionRow{
			Jurisdiction: code,
			TotalMiles:   a.miles,
			TotalFuel:    a.fuel,
			TotalCost:    a.cost,
		})
	}

	milesByTruck := alloc.MilesByTruck()
	truckMPG := make(map[string]float64, len(taxedByTruck))
	for truck, gallons := range taxedByTruck {
		truckMPG[truck] = ratio(milesByTruck[truck], gallons)
	}

	return Totals{
		Rows:         rows,
		TotalMiles:   alloc.TotalMiles,
		TaxedGallons: taxed,
		OverallMPG:   ratio(alloc.TotalMiles, taxed),
		TruckMPG:     truckMPG,
	}
}

// TruckMPG computes one truck's MPG from its ordered entries
func TruckMPG(seq []model.FuelEntry) float64 {
	alloc := AllocateMileage(map[string][]model.FuelEntry{"": seq})
	var gallons float64
	for _, e := range seq {
		if e.FuelType.IsTaxed() {
			gallons += e.Amount
		}
	}
	return ratio(alloc.TotalMiles, gallons)
}

// ratio divides, resolving a zero denominator to 0
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

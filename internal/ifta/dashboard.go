package ifta

import (
	"time"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// DashboardMonths is the length of the monthly cost series
const DashboardMonths = 6

// PeriodSummary computes miles, spend, taxed gallons and MPG for the entries
// of w. Unlike Generate it never refuses small inputs.
func PeriodSummary(entries []model.FuelEntry, w Window) model.PeriodStats {
	filtered := FilterEntries(entries, w)
	alloc := AllocateMileage(SequenceByTruck(filtered))
	totals := Aggregate(filtered, alloc)

	var expenses float64
	for _, e := range filtered {
		expenses += e.Cost
	}

	return model.PeriodStats{
		Miles:    totals.TotalMiles,
		Expenses: expenses,
		MPG:      totals.OverallMPG,
		Gallons:  totals.TaxedGallons,
	}
}

// MonthlyCosts returns total non-ignored spend for each of the last n
// calendar months, oldest first, ending with the month containing now.
func MonthlyCosts(entries []model.FuelEntry, now time.Time, n int) []model.MonthlyCost {
	first := monthStart(now).AddDate(0, -(n - 1), 0)
	series := make([]model.MonthlyCost, n)
	for i := range series {
		m := first.AddDate(0, i, 0)
		series[i] = model.MonthlyCost{Month: m, Name: m.Format("Jan")}
	}

	for _, e := range entries {
		if e.IsIgnored {
			continue
		}
		for i := range series {
			y, mo, _ := e.DateTime.Date()
			if y == series[i].Month.Year() && mo == series[i].Month.Month() {
				series[i].Cost += e.Cost
				break
			}
		}
	}

	return series
}

// Dashboard compares the current month with the previous one and attaches
// the monthly cost series
func Dashboard(entries []model.FuelEntry, now time.Time) model.DashboardStats {
	curStart := monthStart(now)
	prevStart := curStart.AddDate(0, -1, 0)

	current := PeriodSummary(entries, NewWindow(curStart, now))
	previous := PeriodSummary(entries, NewWindow(prevStart, curStart.AddDate(0, 0, -1)))

	trends := make(map[string]float64)
	for name, pair := range map[string][2]float64{
		"miles":    {current.Miles, previous.Miles},
		"expenses": {current.Expenses, previous.Expenses},
		"mpg":      {current.MPG, previous.MPG},
	} {
		// no trend without a baseline
		if pair[1] == 0 {
			continue
		}
		trends[name] = (pair[0] - pair[1]) / pair[1] * 100
	}

	return model.DashboardStats{
		CurrentMonth:  current,
		PreviousMonth: previous,
		Trends:        trends,
		MonthlyCosts:  MonthlyCosts(entries, now, DashboardMonths),
	}
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

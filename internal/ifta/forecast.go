package ifta

import (
	"time"

	"github.com/micronlogivdev/iftaway/internal/model"
)

const (
	// ForecastMonths is the trailing window the forecast averages over
	ForecastMonths = 6
	// ForecastHorizon is the number of months projected (one quarter)
	ForecastHorizon = 3
)

// ForecastNextQuarter projects next quarter's fuel spend from the average
// monthly cost of the last six months. It ignores any report window.
func ForecastNextQuarter(entries []model.FuelEntry, now time.Time) float64 {
	from := now.AddDate(0, -ForecastMonths, 0)

	var total float64
	for _, e := range entries {
		if e.IsIgnored || e.DateTime.Before(from) || e.DateTime.After(now) {
			continue
		}
		total += e.Cost
	}

	return total / ForecastMonths * ForecastHorizon
}

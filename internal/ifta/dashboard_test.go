package ifta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micronlogivdev/iftaway/internal/model"
)

func TestDashboard(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)
	at := func(m time.Month, d int) time.Time { return time.Date(2025, m, d, 10, 0, 0, 0, time.UTC) }

	ignored := entry(9, "A", at(5, 10), 99999, "CA", model.FuelTypeDiesel, 500, 5000)
	ignored.IsIgnored = true
	entries := []model.FuelEntry{
		// April: 400 miles on 100 gallons
		entry(1, "A", at(4, 2), 1000, "CA", model.FuelTypeDiesel, 50, 200),
		entry(2, "A", at(4, 20), 1400, "NV", model.FuelTypeDiesel, 50, 200),
		// May: 600 miles on 100 gallons
		entry(3, "A", at(5, 1), 2000, "NV", model.FuelTypeDiesel, 50, 250),
		entry(4, "A", at(5, 15), 2600, "AZ", model.FuelTypeDiesel, 50, 250),
		entry(5, "B", at(5, 16), 7000, "AZ", model.FuelTypeDEF, 10, 50),
		// November falls outside the six-month series
		entry(6, "A", time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC), 100, "CA", model.FuelTypeDiesel, 10, 70),
		ignored,
	}

	stats := Dashboard(entries, now)

	assert.InDelta(t, 600, stats.CurrentMonth.Miles, 1e-9)
	assert.InDelta(t, 550, stats.CurrentMonth.Expenses, 1e-9)
	assert.InDelta(t, 100, stats.CurrentMonth.Gallons, 1e-9)
	assert.InDelta(t, 6.0, stats.CurrentMonth.MPG, 1e-9)

	assert.InDelta(t, 400, stats.PreviousMonth.Miles, 1e-9)
	assert.InDelta(t, 400, stats.PreviousMonth.Expenses, 1e-9)
	assert.InDelta(t, 4.0, stats.PreviousMonth.MPG, 1e-9)

	assert.InDelta(t, 50, stats.Trends["miles"], 1e-9)
	assert.InDelta(t, 37.5, stats.Trends["expenses"], 1e-9)
	assert.InDelta(t, 50, stats.Trends["mpg"], 1e-9)

	require.Len(t, stats.MonthlyCosts, DashboardMonths)
	assert.Equal(t, "Dec", stats.MonthlyCosts[0].Name)
	assert.Equal(t, "May", stats.MonthlyCosts[5].Name)
	assert.InDelta(t, 400, stats.MonthlyCosts[4].Cost, 1e-9)
	assert.InDelta(t, 550, stats.MonthlyCosts[5].Cost, 1e-9)
	assert.Zero(t, stats.MonthlyCosts[0].Cost)
}

func TestDashboard_NoBaselineNoTrend(t *testing.T) {
	now := time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC)
	entries := []model.FuelEntry{
		entry(1, "A", time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC), 1000, "CA", model.FuelTypeDiesel, 50, 200),
	}

	stats := Dashboard(entries, now)

	assert.Empty(t, stats.Trends)
	assert.Zero(t, stats.CurrentMonth.Miles)
	assert.InDelta(t, 200, stats.CurrentMonth.Expenses, 1e-9)
}

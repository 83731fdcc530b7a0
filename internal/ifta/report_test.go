package ifta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micronlogivdev/iftaway/internal/model"
)

var q1 = NewWindow(
	time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
)

func day(month time.Month, d, hour int) time.Time {
	return time.Date(2025, month, d, hour, 0, 0, 0, time.UTC)
}

func entry(id int, truck string, at time.Time, odo float64, state string, fuel model.FuelType, gallons, cost float64) model.FuelEntry {
	return model.FuelEntry{
		ID:          id,
		TruckNumber: truck,
		DateTime:    at,
		Odometer:    odo,
		State:       state,
		FuelType:    fuel,
		Amount:      gallons,
		Cost:        cost,
	}
}

func rowFor(t *testing.T, report model.TaxReport, code string) model.JurisdictionRow {
	t.Helper()
	for _, r := range report.Rows {
		if r.Jurisdiction == code {
			return r
		}
	}
	t.Fatalf("no row for jurisdiction %s", code)
	return model.JurisdictionRow{}
}

func TestGenerate_SingleJurisdictionTrip(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "V1", day(1, 10, 8), 100000, "CA", model.FuelTypeDiesel, 50, 200),
		entry(2, "V1", day(1, 12, 8), 100500, "CA", model.FuelTypeDiesel, 50, 210),
	}

	res, err := Generate(ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)})
	require.NoError(t, err)

	require.Len(t, res.TaxReport.Rows, 1)
	ca := rowFor(t, res.TaxReport, "CA")
	assert.InDelta(t, 500, ca.TotalMiles, 1e-9)
	assert.InDelta(t, 100, ca.TotalFuel, 1e-9)
	assert.InDelta(t, 410, ca.TotalCost, 1e-9)
	assert.InDelta(t, 5.0, res.TaxReport.MPG, 1e-9)
}

func TestGenerate_OdometerDecreaseIsZeroMilesAndFlagged(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "V1", day(2, 1, 9), 100500, "TX", model.FuelTypeDiesel, 40, 150),
		entry(2, "V1", day(2, 3, 9), 100200, "OK", model.FuelTypeDiesel, 40, 150),
	}

	res, err := Generate(ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)})
	require.NoError(t, err)

	assert.Zero(t, rowFor(t, res.TaxReport, "TX").TotalMiles)
	assert.Zero(t, rowFor(t, res.TaxReport, "OK").TotalMiles)
	assert.Zero(t, res.TaxReport.MPG)

	require.Len(t, res.Insights.Anomalies.OdometerRollbacks, 1)
	rb := res.Insights.Anomalies.OdometerRollbacks[0]
	assert.Equal(t, "V1", rb.Vehicle)
	assert.Equal(t, 1, rb.FromEntryID)
	assert.Equal(t, 2, rb.ToEntryID)
	assert.InDelta(t, -300, rb.Delta, 1e-9)
}

func TestGenerate_InsufficientData(t *testing.T) {
	t.Run("single qualifying entry", func(t *testing.T) {
		entries := []model.FuelEntry{
			entry(1, "V1", day(1, 10, 8), 1000, "CA", model.FuelTypeDiesel, 50, 200),
			entry(2, "V1", day(6, 10, 8), 2000, "CA", model.FuelTypeDiesel, 50, 200),
		}
		res, err := Generate(ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)})
		assert.ErrorIs(t, err, ErrInsufficientData)
		assert.Nil(t, res)
	})

	t.Run("ignored entries do not count", func(t *testing.T) {
		ignored := entry(2, "V1", day(1, 11, 8), 2000, "CA", model.FuelTypeDiesel, 50, 200)
		ignored.IsIgnored = true
		entries := []model.FuelEntry{
			entry(1, "V1", day(1, 10, 8), 1000, "CA", model.FuelTypeDiesel, 50, 200),
			ignored,
		}
		_, err := Generate(ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)})
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("empty history", func(t *testing.T) {
		_, err := Generate(ReportInput{Window: q1, Now: day(3, 31, 12)})
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestGenerate_MilesMatchClampedDeltas(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "A", day(1, 2, 10), 1000, "CA", model.FuelTypeDiesel, 100, 400),
		entry(2, "A", day(1, 5, 10), 1600, "NV", model.FuelTypeDiesel, 90, 380),
		entry(3, "A", day(1, 9, 10), 1500, "UT", model.FuelTypeDiesel, 80, 300),
		entry(4, "A", day(1, 12, 10), 2300, "CO", model.FuelTypeDEF, 5, 20),
		entry(5, "B", day(1, 3, 10), 50000, "TX", model.FuelTypeDiesel, 120, 420),
		entry(6, "B", day(1, 8, 10), 50750, "NM", model.FuelTypeDiesel, 110, 410),
		entry(7, "C", day(2, 1, 10), 9000, "AZ", model.FuelTypeDiesel, 60, 250),
	}

	res, err := Generate(ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)})
	require.NoError(t, err)

	// A: 600 + 0 + 800, B: 750, C: single entry
	var total float64
	for _, r := range res.TaxReport.Rows {
		assert.GreaterOrEqual(t, r.TotalMiles, 0.0)
		total += r.TotalMiles
	}
	assert.InDelta(t, 2150, total, 1e-9)

	assert.InDelta(t, 600, rowFor(t, res.TaxReport, "CA").TotalMiles, 1e-9)
	assert.InDelta(t, 0, rowFor(t, res.TaxReport, "NV").TotalMiles, 1e-9)
	assert.InDelta(t, 800, rowFor(t, res.TaxReport, "UT").TotalMiles, 1e-9)
	assert.InDelta(t, 750, rowFor(t, res.TaxReport, "TX").TotalMiles, 1e-9)

	az := rowFor(t, res.TaxReport, "AZ")
	assert.Zero(t, az.TotalMiles)
	assert.InDelta(t, 60, az.TotalFuel, 1e-9)
	assert.InDelta(t, 250, az.TotalCost, 1e-9)

	// DEF gallons show in the row but not in MPG
	co := rowFor(t, res.TaxReport, "CO")
	assert.InDelta(t, 5, co.TotalFuel, 1e-9)
	assert.InDelta(t, 2150.0/560.0, res.TaxReport.MPG, 1e-9)

	codes := make([]string, 0, len(res.TaxReport.Rows))
	for _, r := range res.TaxReport.Rows {
		codes = append(codes, r.Jurisdiction)
	}
	assert.IsIncreasing(t, codes)
}

func TestGenerate_OnlyDEFHasNoFleetMPG(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "A", day(1, 4, 10), 1000, "CA", model.FuelTypeDEF, 5, 20),
		entry(2, "A", day(1, 8, 10), 1400, "NV", model.FuelTypeDEF, 4, 18),
		entry(3, "A", day(1, 15, 10), 1900, "UT", model.FuelTypeDEF, 6, 25),
	}

	seq := SequenceByTruck(entries)
	totals := Aggregate(entries, AllocateMileage(seq))
	assert.InDelta(t, 900, totals.TotalMiles, 1e-9)
	assert.Zero(t, totals.TaxedGallons)
	assert.Zero(t, totals.OverallMPG)
	assert.Zero(t, totals.TruckMPG["A"])

	res, err := Generate(ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)})
	require.NoError(t, err)
	assert.Zero(t, res.TaxReport.MPG)
	assert.InDelta(t, 400, rowFor(t, res.TaxReport, "CA").TotalMiles, 1e-9)
	assert.InDelta(t, 500, rowFor(t, res.TaxReport, "NV").TotalMiles, 1e-9)
	assert.InDelta(t, 5, rowFor(t, res.TaxReport, "CA").TotalFuel, 1e-9)
}

func TestGenerate_Deterministic(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "A", day(1, 2, 10), 1000, "CA", model.FuelTypeDiesel, 100, 400),
		entry(2, "B", day(1, 3, 1), 5000, "NV", model.FuelTypeDiesel, 90, 380),
		entry(3, "A", day(1, 9, 10), 1500, "UT", model.FuelTypeDiesel, 80, 300),
		entry(4, "B", day(1, 12, 10), 5300, "CO", model.FuelTypeDiesel, 5, 20),
	}
	in := ReportInput{Entries: entries, Window: q1, Now: day(3, 31, 12)}

	first, err := Generate(in)
	require.NoError(t, err)
	second, err := Generate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_ForecastUsesWholeHistory(t *testing.T) {
	now := day(3, 31, 12)
	entries := []model.FuelEntry{
		entry(1, "A", day(1, 2, 10), 1000, "CA", model.FuelTypeDiesel, 100, 300),
		entry(2, "A", day(1, 9, 10), 1500, "CA", model.FuelTypeDiesel, 80, 300),
		// outside the report window but inside the trailing six months
		entry(3, "A", time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC), 500, "CA", model.FuelTypeDiesel, 50, 600),
	}

	res, err := Generate(ReportInput{Entries: entries, Window: q1, Now: now})
	require.NoError(t, err)
	assert.InDelta(t, 1200.0/6*3, res.Insights.Forecast, 1e-9)
}

func TestBuildTaxReport_PreservesPrecision(t *testing.T) {
	totals := Totals{
		Rows:       []model.JurisdictionRow{{Jurisdiction: "CA", TotalMiles: 1.0 / 3, TotalFuel: 2.0 / 3, TotalCost: 0.1 + 0.2}},
		OverallMPG: 1.0 / 7,
	}
	report := BuildTaxReport(totals)
	assert.Equal(t, totals.Rows, report.Rows)
	assert.Equal(t, 1.0/7, report.MPG)
}

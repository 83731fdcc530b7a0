package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micronlogivdev/iftaway/internal/model"
)

const sampleCSV = "truckNumber,dateTime,odometer,city,state,fuelType,amount,cost\n" +
	"101,2025-01-05T08:00:00Z,1000,Sacramento,CA,diesel,100,400\n" +
	"101,2025-02-10T09:00:00Z,1500,Reno,NV,diesel,50,200\n" +
	"101,2025-03-01T10:00:00Z,1800,Elko,NV,def,5,20\n"

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_QuarterFromNewestEntry(t *testing.T) {
	path := writeSample(t, sampleCSV)
	csvPath := filepath.Join(t.TempDir(), "report.csv")

	var out bytes.Buffer
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	err := Run([]string{"-file", path, "-csv", csvPath, "-chart=false"}, &out, now)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "IFTA Report Q1 2025")
	assert.Contains(t, text, "2025-01-01 to 2025-03-31")
	assert.Contains(t, text, "CA")
	assert.Contains(t, text, "NV")
	assert.Contains(t, text, "Overall Fleet MPG")
	assert.Contains(t, text, "Wrote "+csvPath)
	assert.NotContains(t, text, "Monthly costs")

	written, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), "IFTA Report\nQuarter,Q1\nYear,2025\n"))
}

func TestRun_CustomRangeHasNoQuarterLabel(t *testing.T) {
	path := writeSample(t, sampleCSV)
	csvPath := filepath.Join(t.TempDir(), "report.csv")

	var out bytes.Buffer
	err := Run([]string{"-file", path, "-start", "2025-01-01", "-end", "2025-04-15", "-csv", csvPath, "-chart=false"}, &out, time.Now())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "IFTA Report")
	assert.NotContains(t, text, "IFTA Report Q")
	assert.Contains(t, text, "2025-01-01 to 2025-04-15")

	written, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), "IFTA Report\nFrom,2025-01-01\nTo,2025-04-15\n"))
	assert.NotContains(t, string(written), "Quarter,")
}

func TestRun_InsufficientData(t *testing.T) {
	path := writeSample(t, "truckNumber,dateTime,odometer,city,state,fuelType,amount,cost\n"+
		"101,2025-01-05T08:00:00Z,1000,Sacramento,CA,diesel,100,400\n")

	var out bytes.Buffer
	err := Run([]string{"-file", path}, &out, time.Now())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not enough data")
}

func TestRun_Errors(t *testing.T) {
	path := writeSample(t, sampleCSV)

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file flag", args: nil},
		{name: "file not found", args: []string{"-file", filepath.Join(t.TempDir(), "nope.csv")}},
		{name: "bad quarter", args: []string{"-file", path, "-year", "2025", "-quarter", "5"}},
		{name: "bad start", args: []string{"-file", path, "-start", "yesterday", "-end", "2025-03-31"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, Run(tt.args, &out, time.Now()))
		})
	}
}

func TestRenderMonthlyCosts(t *testing.T) {
	assert.Contains(t, RenderMonthlyCosts(nil, 40, 5), "No data available")

	series := []model.MonthlyCost{
		{Name: "Jan", Cost: 400},
		{Name: "Feb", Cost: 200},
		{Name: "Mar", Cost: 20},
	}
	chart := RenderMonthlyCosts(series, 40, 5)
	assert.Contains(t, chart, "Monthly costs")
	assert.Contains(t, chart, "Jan Feb Mar")
}

func TestRenderInsights_Anomalies(t *testing.T) {
	text := RenderInsights(model.Insights{
		Anomalies: model.AnomalyInsight{
			HighCost: []model.FuelEntry{{
				TruckNumber: "101", Cost: 900, FuelType: model.FuelTypeDiesel,
				DateTime: time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC), State: "CA",
			}},
			OffHours: []model.FuelEntry{{
				TruckNumber: "102", City: "el paso", State: "TX",
				DateTime: time.Date(2025, 1, 6, 2, 30, 0, 0, time.UTC),
			}},
			OdometerRollbacks: []model.OdometerRollback{{Vehicle: "103", FromEntryID: 4, ToEntryID: 5, Delta: -120}},
		},
	})

	assert.Contains(t, text, "High cost: truck 101 $900.00 of Diesel on 2025-01-05 in CA")
	assert.Contains(t, text, "Off hours: truck 102 at 2025-01-06 02:30 in El Paso, TX")
	assert.Contains(t, text, "Odometer rollback: truck 103 entries 4 to 5 (-120.0 mi)")
	assert.NotContains(t, text, "None detected")
}

func TestRenderInsights_Empty(t *testing.T) {
	text := RenderInsights(model.Insights{})
	assert.Contains(t, text, "Not enough data per truck")
	assert.Contains(t, text, "No priced fuel purchases")
	assert.Contains(t, text, "None detected")
	assert.Contains(t, text, "Next quarter fuel cost: $0.00")
}

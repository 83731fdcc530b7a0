package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micronlogivdev/iftaway/internal/ifta"
	"github.com/micronlogivdev/iftaway/internal/model"
)

func fleetHistory() []model.FuelEntry {
	return []model.FuelEntry{
		entryAt(1, "101", 5, 10, 1000, "CA", model.FuelTypeDiesel, 100, 400),
		entryAt(2, "101", 10, 10, 1500, "NV", model.FuelTypeDiesel, 80, 300),
		entryAt(3, "101", 15, 10, 1800, "CA", model.FuelTypeDiesel, 60, 250),
	}
}

func TestReportService_GetQuarterReport(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	events := &recordingPublisher{}
	svc := NewReportService(mockStore, events)
	svc.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }

	mockStore.EXPECT().ListEntries(ctx, 1).Return(fleetHistory(), nil)
	mockStore.EXPECT().ListTrucks(ctx, 1).Return([]model.Truck{{Number: "101", MakeModel: "Kenworth T680"}}, nil)

	result, err := svc.GetQuarterReport(ctx, 1, 2025, 1)
	require.NoError(t, err)

	require.Len(t, result.TaxReport.Rows, 2)
	assert.Equal(t, "CA", result.TaxReport.Rows[0].Jurisdiction)
	assert.Equal(t, 500.0, result.TaxReport.Rows[0].TotalMiles)
	assert.Equal(t, 300.0, result.TaxReport.Rows[1].TotalMiles)
	assert.InDelta(t, 800.0/240.0, result.TaxReport.MPG, 1e-9)
	assert.Equal(t, "Kenworth T680", result.Insights.Efficiency.Top[0].MakeModel)

	require.Len(t, events.events, 1)
	assert.Equal(t, EventReportGenerated, events.events[0].Type)
	summary, ok := events.events[0].Data.(reportSummary)
	require.True(t, ok)
	assert.Equal(t, 800.0, summary.TotalMiles)
}

func TestReportService_InsufficientData(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	events := &recordingPublisher{}
	svc := NewReportService(mockStore, events)

	mockStore.EXPECT().ListEntries(ctx, 1).Return(fleetHistory()[:1], nil)
	mockStore.EXPECT().ListTrucks(ctx, 1).Return(nil, nil)

	_, err := svc.GetQuarterReport(ctx, 1, 2025, 1)
	assert.ErrorIs(t, err, ifta.ErrInsufficientData)
	assert.Empty(t, events.events)
}

func TestReportService_InvalidPeriod(t *testing.T) {
	svc := NewReportService(newMockStore(t), nil)
	ctx := context.Background()

	_, err := svc.GetQuarterReport(ctx, 1, 2025, 5)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.GetTaxReport(ctx, 1, ifta.Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestReportService_GetTransactions(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	svc := NewReportService(mockStore, nil)

	history := fleetHistory()
	history[1].IsIgnored = true
	// newest first, as the store returns them
	mockStore.EXPECT().ListEntries(ctx, 1).Return([]model.FuelEntry{history[2], history[1], history[0]}, nil)

	got, err := svc.GetTransactions(ctx, 1, ifta.NewWindow(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestReportService_CurrentQuarterAndDashboard(t *testing.T) {
	ctx := context.Background()
	mockStore := newMockStore(t)
	svc := NewReportService(mockStore, nil)
	svc.now = func() time.Time { return time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC) }

	year, quarter := svc.CurrentQuarter()
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, quarter)

	mockStore.EXPECT().ListEntries(ctx, 1).Return(fleetHistory(), nil)

	stats, err := svc.GetDashboardStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 800.0, stats.CurrentMonth.Miles)
	assert.Equal(t, 950.0, stats.CurrentMonth.Expenses)
	assert.Len(t, stats.MonthlyCosts, 6)
}

package ifta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/micronlogivdev/iftaway/internal/model"
)

func TestCostOutliers(t *testing.T) {
	var entries []model.FuelEntry
	for i := 0; i < 18; i++ {
		entries = append(entries, entry(i+1, "A", day(1, i+1, 10), 0, "CA", model.FuelTypeDiesel, 100, 400))
	}
	entries = append(entries,
		entry(100, "A", day(2, 1, 10), 0, "CA", model.FuelTypeDiesel, 100, 480),
		entry(101, "A", day(2, 2, 10), 0, "CA", model.FuelTypeDiesel, 100, 600),
	)

	// mean 414, sigma ~46.1, threshold ~506.2
	flagged := CostOutliers(entries)

	require.Len(t, flagged, 1)
	assert.Equal(t, 101, flagged[0].ID)
}

func TestCostOutliers_NeedsTwoEntries(t *testing.T) {
	one := []model.FuelEntry{entry(1, "A", day(1, 1, 10), 0, "CA", model.FuelTypeDiesel, 100, 99999)}
	assert.Empty(t, CostOutliers(one))
	assert.Empty(t, CostOutliers(nil))
}

func TestCostOutliers_UniformCostsFlagNothing(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "A", day(1, 1, 10), 0, "CA", model.FuelTypeDiesel, 100, 300),
		entry(2, "A", day(1, 2, 10), 0, "CA", model.FuelTypeDiesel, 100, 300),
		entry(3, "A", day(1, 3, 10), 0, "CA", model.FuelTypeDiesel, 100, 300),
	}
	assert.Empty(t, CostOutliers(entries))
}

func TestOffHours(t *testing.T) {
	entries := []model.FuelEntry{
		entry(1, "A", day(1, 1, 0), 0, "CA", model.FuelTypeDiesel, 1, 1),
		entry(2, "A", day(1, 1, 3), 0, "CA", model.FuelTypeDiesel, 1, 1),
		entry(3, "A", day(1, 1, 4), 0, "CA", model.FuelTypeDiesel, 1, 1),
		entry(4, "A", day(1, 1, 23), 0, "CA", model.FuelTypeDiesel, 1, 1),
	}

	flagged := OffHours(entries)

	require.Len(t, flagged, 2)
	assert.Equal(t, 1, flagged[0].ID)
	assert.Equal(t, 2, flagged[1].ID)
}

func TestDetectAnomalies_ListsOverlapAndAreIdempotent(t *testing.T) {
	var entries []model.FuelEntry
	for i := 0; i < 10; i++ {
		entries = append(entries, entry(i+1, "A", day(1, i+1, 12), float64(1000+i*100), "CA", model.FuelTypeDiesel, 100, 300))
	}
	// expensive, at 2am and with a rolled-back odometer
	entries = append(entries, entry(50, "A", day(1, 20, 2), 500, "CA", model.FuelTypeDiesel, 100, 1500))

	alloc := AllocateMileage(SequenceByTruck(entries))
	first := DetectAnomalies(entries, alloc)
	second := DetectAnomalies(entries, alloc)

	assert.Equal(t, first, second)
	require.Len(t, first.HighCost, 1)
	require.Len(t, first.OffHours, 1)
	require.Len(t, first.OdometerRollbacks, 1)
	assert.Equal(t, 50, first.HighCost[0].ID)
	assert.Equal(t, 50, first.OffHours[0].ID)
	assert.Equal(t, 50, first.OdometerRollbacks[0].ToEntryID)
}

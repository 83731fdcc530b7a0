package ifta

import (
	"math"

	"github.com/micronlogivdev/iftaway/internal/model"
)

const (
	// OutlierSigmas is how many standard deviations above the mean a cost
	// must be to count as an outlier
	OutlierSigmas = 2.0
	// OffHoursEnd is the first hour of the day that is no longer off-hours
	OffHoursEnd = 4
)

// DetectAnomalies flags cost outliers, off-hours purchases and odometer
// rollbacks. The lists are independent; an entry may appear in more than one.
func DetectAnomalies(entries []model.FuelEntry, alloc Allocation) model.AnomalyInsight {
	return model.AnomalyInsight{
		HighCost:          CostOutliers(entries),
		OffHours:          OffHours(entries),
		OdometerRollbacks: Rollbacks(alloc),
	}
}

// CostOutliers returns entries costing more than mean + 2σ (population σ)
func CostOutliers(entries []model.FuelEntry) []model.FuelEntry {
	flagged := []model.FuelEntry{}
	if len(entries) < MinEntries {
		return flagged
	}

	var sum float64
	for _, e := range entries {
		sum += e.Cost
	}
	mean := sum / float64(len(entries))

	var sq float64
	for _, e := range entries {
		d := e.Cost - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(len(entries)))

	threshold := mean + OutlierSigmas*stddev
	for _, e := range entries {
		if e.Cost > threshold {
			flagged = append(flagged, e)
		}
	}
	return flagged
}

// OffHours returns entries recorded between midnight and 04:00 local time
func OffHours(entries []model.FuelEntry) []model.FuelEntry {
	flagged := []model.FuelEntry{}
	for _, e := range entries {
		if e.DateTime.Hour() < OffHoursEnd {
			flagged = append(flagged, e)
		}
	}
	return flagged
}

// Rollbacks returns every segment whose odometer decreased
func Rollbacks(alloc Allocation) []model.OdometerRollback {
	rollbacks := []model.OdometerRollback{}
	for _, s := range alloc.Segments {
		if s.Delta >= 0 {
			continue
		}
		rollbacks = append(rollbacks, model.OdometerRollback{
			Vehicle:     s.TruckNumber,
			FromEntryID: s.FromEntryID,
			ToEntryID:   s.ToEntryID,
			Delta:       s.Delta,
		})
	}
	return rollbacks
}

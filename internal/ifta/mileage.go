package ifta

import (
	"github.com/micronlogivdev/iftaway/internal/model"
)

// Segment is the distance driven between two consecutive fill-ups of a truck
type Segment struct {
	TruckNumber  string
	Jurisdiction string
	FromEntryID  int
	ToEntryID    int
	// Delta is the raw odometer difference, negative on a rollback
	Delta float64
	// Miles is Delta clamped at zero
	Miles float64
}

// Allocation is the output of AllocateMileage
type Allocation struct {
	Segments   []Segment
	TotalMiles float64
}

// AllocateMileage turns each truck's ordered fill-ups into segments.
// Miles are credited to the jurisdiction the truck departed from, and an
// odometer that went backwards contributes zero miles.
func AllocateMileage(byTruck map[string][]model.FuelEntry) Allocation {
	var alloc Allocation

	for _, truck := range truckNumbers(byTruck) {
		seq := byTruck[truck]
		for i := 0; i+1 < len(seq); i++ {
			from, to := seq[i], seq[i+1]
			delta := to.Odometer - from.Odometer
			miles := delta
			if miles < 0 {
				miles = 0
			}

			alloc.Segments = append(alloc.Segments, Segment{
				TruckNumber:  truck,
				Jurisdiction: from.State,
				FromEntryID:  from.ID,
				ToEntryID:    to.ID,
				Delta:        delta,
				Miles:        miles,
			})
			alloc.TotalMiles += miles
		}
	}

	return alloc
}

// MilesByTruck sums segment miles per truck
func (a Allocation) MilesByTruck() map[string]float64 {
	miles := make(map[string]float64)
	for _, s := range a.Segments {
		miles[s.TruckNumber] += s.Miles
	}
	return miles
}

package ifta

import (
	"sort"

	"github.com/micronlogivdev/iftaway/internal/model"
)

// SequenceByTruck groups entries by truck number, each group in
// chronological order. Equal timestamps keep their input order.
func SequenceByTruck(entries []model.FuelEntry) map[string][]model.FuelEntry {
	byTruck := make(map[string][]model.FuelEntry)
	for _, e := range entries {
		byTruck[e.TruckNumber] = append(byTruck[e.TruckNumber], e)
	}

	for _, seq := range byTruck {
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].DateTime.Before(seq[j].DateTime)
		})
	}

	return byTruck
}

// truckNumbers returns the keys of a sequence map in sorted order
func truckNumbers(byTruck map[string][]model.FuelEntry) []string {
	numbers := make([]string, 0, len(byTruck))
	for n := range byTruck {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}

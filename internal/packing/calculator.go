package packing

import (
	"fmt"
	"math"
)

type tripCalculator struct{}

// New creates a Calculator using the fixed split thresholds and rounding rule
// declared in this package.
func New() Calculator {
	return &tripCalculator{}
}

func (c *tripCalculator) Calculate(trip TripConfig) (PackingList, error) {
	if err := validateTrip(trip); err != nil {
		return PackingList{}, err
	}

	effective := effectiveDays(trip.Days, trip.LaundryEveryNDays)
	clothing := make(map[OutputClothingCategory]int, len(AllOutputCategories()))

	for _, def := range categoryDefinitions {
		total, err := count(trip.Clothing[def.Category], effective)
		if err != nil {
			return PackingList{}, fmt.Errorf("%s: %w", def.Category, err)
		}

		switch def.Category {
		case CategoryBottoms:
			shorts, trousers := bottomsSplit.split(total, trip.Temperature)
			clothing[OutputShorts] = shorts
			clothing[OutputTrousers] = trousers
		case CategoryJumper:
			thin, thick := jumperSplit.split(total, trip.Temperature)
			clothing[OutputThinJumper] = thin
			clothing[OutputThickJumper] = thick
		default:
			clothing[def.Outputs[0]] = total
		}
	}

	return PackingList{
		Clothing:    clothing,
		Accessories: accessoriesFor(trip.Temperature, trip.Weather),
	}, nil
}

// validateTrip rejects input the count policy cannot handle. Tag validation
// belongs to the callers that parse raw input.
func validateTrip(trip TripConfig) error {
	if trip.Days <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidDays, trip.Days)
	}
	if !finite(trip.Temperature) {
		return ErrInvalidTemperature
	}
	if l := trip.LaundryEveryNDays; l != nil && (!finite(*l) || *l <= 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidLaundry, *l)
	}
	for _, def := range categoryDefinitions {
		rate := trip.Clothing[def.Category]
		if rate == nil {
			continue
		}
		if !finite(rate.EveryNDays) || rate.EveryNDays <= 0 {
			return fmt.Errorf("%w: %s got %v", ErrInvalidRate, def.Category, rate.EveryNDays)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

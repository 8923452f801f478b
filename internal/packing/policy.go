package packing

import (
	"fmt"
	"math"
	"slices"
)

// Split thresholds in °C. At or below the low threshold everything is the
// heavy variant; at or above the high threshold everything is the light one.
const (
	ShortsLowC      = 13.0
	ShortsHighC     = 25.0
	ThinJumperLowC  = 10.0
	ThinJumperHighC = 20.0
)

// Accessory thresholds in °C.
const (
	LightJacketMinC = 12.0
	ColdBelowC      = 8.0
	ThermalsBelowC  = 7.0
)

// maxItemsPerCategory bounds a single count so the float to int conversion
// stays well defined.
const maxItemsPerCategory = 1_000_000

// roundCount is the rounding rule for every count: nearest integer, halves
// rounded up.
func roundCount(x float64) int {
	return int(math.Round(x))
}

// effectiveDays caps the trip length at the laundry interval.
func effectiveDays(days int, laundryEveryNDays *float64) float64 {
	d := float64(days)
	if laundryEveryNDays != nil {
		return math.Min(d, *laundryEveryNDays)
	}
	return d
}

// count returns how many items of a category to pack. A nil rate is not packed.
func count(rate *ClothingRate, effective float64) (int, error) {
	if rate == nil {
		return 0, nil
	}
	raw := effective / rate.EveryNDays
	if raw > maxItemsPerCategory {
		return 0, fmt.Errorf("%w: every %v days yields more than %d items", ErrTooManyItems, rate.EveryNDays, maxItemsPerCategory)
	}
	return roundCount(raw), nil
}

type splitPolicy struct {
	lowC  float64
	highC float64
	// keepOneHeavy leaves a single heavy item once the high threshold is
	// reached, provided there is more than one item.
	keepOneHeavy bool
}

var (
	bottomsSplit = splitPolicy{lowC: ShortsLowC, highC: ShortsHighC, keepOneHeavy: true}
	jumperSplit  = splitPolicy{lowC: ThinJumperLowC, highC: ThinJumperHighC}
)

// fraction is the share of items that should be the light variant.
func (s splitPolicy) fraction(temperature float64) float64 {
	if temperature <= s.lowC {
		return 0
	}
	if temperature >= s.highC {
		return 1
	}
	return (temperature - s.lowC) / (s.highC - s.lowC)
}

// split partitions total into light and heavy variants. The heavy count is
// always derived from the light one so the two sum to total.
func (s splitPolicy) split(total int, temperature float64) (light, heavy int) {
	f := s.fraction(temperature)
	light = roundCount(float64(total) * f)
	if f >= 1 {
		light = total
		if s.keepOneHeavy && total > 1 {
			light = total - 1
		}
	}
	return light, total - light
}

func accessoriesFor(temperature float64, weather []WeatherCondition) Accessories {
	has := func(w WeatherCondition) bool {
		return slices.Contains(weather, w)
	}
	cold := temperature < ColdBelowC

	return Accessories{
		Sunglasses:  has(WeatherSun),
		LightJacket: temperature >= LightJacketMinC,
		WarmJacket:  temperature < LightJacketMinC,
		Waterproof:  has(WeatherRain),
		Hat:         cold || has(WeatherSnow),
		Gloves:      cold || has(WeatherSnow),
		Gaitor:      has(WeatherWind) || has(WeatherSnow),
		Thermals:    temperature < ThermalsBelowC,
	}
}

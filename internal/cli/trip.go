package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eugenenazirov/packing-list/internal/catalog"
	"github.com/eugenenazirov/packing-list/internal/packing"
)

// tripFlags holds the raw calculate flags before they are parsed into a
// TripConfig.
type tripFlags struct {
	days        int
	temperature float64
	weather     []string
	laundry     float64
	laundrySet  bool
	preset      string
	rates       map[string]string
}

// build resolves the preset, applies per-category rate overrides and parses
// the weather tags. A rate of "none" removes the category.
func (f tripFlags) build(store catalog.Store) (packing.TripConfig, catalog.Preset, error) {
	var preset catalog.Preset
	clothing := make(map[packing.ClothingCategory]*packing.ClothingRate, len(packing.AllClothingCategories()))
	for _, category := range packing.AllClothingCategories() {
		clothing[category] = nil
	}

	if name := strings.TrimSpace(f.preset); name != "" {
		p, err := store.GetPreset(name)
		if err != nil {
			return packing.TripConfig{}, catalog.Preset{}, err
		}
		preset = p
		clothing = p.TripClothing()
	}

	for raw, value := range f.rates {
		category, err := packing.ParseClothingCategory(raw)
		if err != nil {
			return packing.TripConfig{}, catalog.Preset{}, err
		}
		rate, err := parseRate(value)
		if err != nil {
			return packing.TripConfig{}, catalog.Preset{}, fmt.Errorf("rate for %s: %w", category, err)
		}
		clothing[category] = rate
	}

	weather, err := parseWeather(f.weather)
	if err != nil {
		return packing.TripConfig{}, catalog.Preset{}, err
	}

	trip := packing.TripConfig{
		Days:        f.days,
		Temperature: f.temperature,
		Weather:     weather,
		Clothing:    clothing,
	}
	if f.laundrySet {
		laundry := f.laundry
		trip.LaundryEveryNDays = &laundry
	}
	return trip, preset, nil
}

func parseRate(value string) (*packing.ClothingRate, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return nil, nil
	}
	days, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", packing.ErrInvalidRate, value)
	}
	return packing.Every(days), nil
}

// parseWeather accepts repeated flags as well as comma separated lists and
// drops duplicates.
func parseWeather(raw []string) ([]packing.WeatherCondition, error) {
	var out []packing.WeatherCondition
	seen := make(map[packing.WeatherCondition]bool)
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			w, err := packing.ParseWeatherCondition(part)
			if err != nil {
				return nil, err
			}
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out, nil
}

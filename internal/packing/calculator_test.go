package packing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
)

func laundry(days float64) *float64 {
	return &days
}

func baseTrip() TripConfig {
	return TripConfig{
		Days:        10,
		Temperature: 20,
		Weather:     []WeatherCondition{WeatherSun},
		Clothing: map[ClothingCategory]*ClothingRate{
			CategoryUnderwear: Every(1),
			CategorySocks:     Every(1),
			CategoryBottoms:   Every(3),
			CategoryTees:      Every(2),
			CategoryShirts:    nil,
			CategoryJumper:    Every(5),
			CategoryBras:      nil,
			CategoryDresses:   nil,
			CategorySkirts:    nil,
		},
	}
}

func TestCalculateEndToEnd(t *testing.T) {
	t.Parallel()

	got, err := New().Calculate(baseTrip())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[OutputClothingCategory]int{
		OutputUnderwear:   10,
		OutputSocks:       10,
		OutputTrousers:    1,
		OutputShorts:      2,
		OutputTees:        5,
		OutputShirts:      0,
		OutputThinJumper:  2,
		OutputThickJumper: 0,
		OutputBras:        0,
		OutputDresses:     0,
		OutputSkirts:      0,
	}
	if !equalClothing(got.Clothing, want) {
		t.Fatalf("unexpected clothing: got %v want %v", got.Clothing, want)
	}

	wantAccessories := Accessories{Sunglasses: true, LightJacket: true}
	if got.Accessories != wantAccessories {
		t.Fatalf("unexpected accessories: got %+v want %+v", got.Accessories, wantAccessories)
	}
}

func TestCalculateClothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		days        int
		temperature float64
		laundry     *float64
		clothing    map[ClothingCategory]*ClothingRate
		want        map[OutputClothingCategory]int
	}{
		{
			name:        "LaundryCapsEffectiveDays",
			days:        14,
			temperature: 10,
			laundry:     laundry(7),
			clothing:    map[ClothingCategory]*ClothingRate{CategorySocks: Every(1)},
			want:        map[OutputClothingCategory]int{OutputSocks: 7},
		},
		{
			name:        "LaundryLongerThanTrip",
			days:        3,
			temperature: 10,
			laundry:     laundry(10),
			clothing:    map[ClothingCategory]*ClothingRate{CategorySocks: Every(1)},
			want:        map[OutputClothingCategory]int{OutputSocks: 3},
		},
		{
			name:        "HalfRoundsUp",
			days:        5,
			temperature: 10,
			clothing:    map[ClothingCategory]*ClothingRate{CategoryTees: Every(2)},
			want:        map[OutputClothingCategory]int{OutputTees: 3},
		},
		{
			name:        "FractionalRateRoundsToNearest",
			days:        7,
			temperature: 10,
			clothing:    map[ClothingCategory]*ClothingRate{CategoryUnderwear: Every(2.5)},
			want:        map[OutputClothingCategory]int{OutputUnderwear: 3},
		},
		{
			name:        "VeryLargeRateYieldsZero",
			days:        10,
			temperature: 10,
			clothing:    map[ClothingCategory]*ClothingRate{CategoryShirts: Every(100)},
			want:        map[OutputClothingCategory]int{OutputShirts: 0},
		},
		{
			name:        "HotWeatherKeepsOnePairOfTrousers",
			days:        5,
			temperature: 30,
			clothing:    map[ClothingCategory]*ClothingRate{CategoryBottoms: Every(1)},
			want:        map[OutputClothingCategory]int{OutputTrousers: 1, OutputShorts: 4},
		},
		{
			name:        "HotWeatherSingleBottomIsShorts",
			days:        1,
			temperature: 30,
			clothing:    map[ClothingCategory]*ClothingRate{CategoryBottoms: Every(1)},
			want:        map[OutputClothingCategory]int{OutputTrousers: 0, OutputShorts: 1},
		},
		{
			name:        "ColdWeatherAllTrousersAndThickJumpers",
			days:        6,
			temperature: 5,
			clothing: map[ClothingCategory]*ClothingRate{
				CategoryBottoms: Every(2),
				CategoryJumper:  Every(2),
			},
			want: map[OutputClothingCategory]int{
				OutputTrousers:    3,
				OutputShorts:      0,
				OutputThinJumper:  0,
				OutputThickJumper: 3,
			},
		},
		{
			name:        "MildWeatherInterpolates",
			days:        12,
			temperature: 15,
			clothing: map[ClothingCategory]*ClothingRate{
				CategoryBottoms: Every(3),
				CategoryJumper:  Every(4),
			},
			want: map[OutputClothingCategory]int{
				OutputShorts:      1,
				OutputTrousers:    3,
				OutputThinJumper:  2,
				OutputThickJumper: 1,
			},
		},
		{
			name:        "HotWeatherAllThinJumpers",
			days:        9,
			temperature: 28,
			clothing:    map[ClothingCategory]*ClothingRate{CategoryJumper: Every(3)},
			want:        map[OutputClothingCategory]int{OutputThinJumper: 3, OutputThickJumper: 0},
		},
		{
			name:        "OptionalCategoriesPassThrough",
			days:        4,
			temperature: 18,
			clothing: map[ClothingCategory]*ClothingRate{
				CategoryBras:    Every(2),
				CategoryDresses: Every(4),
				CategorySkirts:  Every(1),
			},
			want: map[OutputClothingCategory]int{OutputBras: 2, OutputDresses: 1, OutputSkirts: 4},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := New().Calculate(TripConfig{
				Days:              tc.days,
				Temperature:       tc.temperature,
				LaundryEveryNDays: tc.laundry,
				Clothing:          tc.clothing,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got.Clothing) != len(AllOutputCategories()) {
				t.Fatalf("expected every output category, got %v", got.Clothing)
			}
			for category, want := range tc.want {
				if got.Clothing[category] != want {
					t.Fatalf("%s: got %d want %d (full %v)", category, got.Clothing[category], want, got.Clothing)
				}
			}
		})
	}
}

func TestCalculateAccessories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		temperature float64
		weather     []WeatherCondition
		want        Accessories
	}{
		{
			name:        "WarmAndSunny",
			temperature: 24,
			weather:     []WeatherCondition{WeatherSun},
			want:        Accessories{Sunglasses: true, LightJacket: true},
		},
		{
			name:        "LightJacketThreshold",
			temperature: LightJacketMinC,
			want:        Accessories{LightJacket: true},
		},
		{
			name:        "JustBelowLightJacketThreshold",
			temperature: 11.9,
			want:        Accessories{WarmJacket: true},
		},
		{
			name:        "ColdThresholdIsExclusive",
			temperature: ColdBelowC,
			want:        Accessories{WarmJacket: true},
		},
		{
			name:        "ColdWithoutThermals",
			temperature: 7,
			want:        Accessories{WarmJacket: true, Hat: true, Gloves: true},
		},
		{
			name:        "Freezing",
			temperature: -3,
			want:        Accessories{WarmJacket: true, Hat: true, Gloves: true, Thermals: true},
		},
		{
			name:        "SnowInMildWeather",
			temperature: 14,
			weather:     []WeatherCondition{WeatherSnow},
			want:        Accessories{LightJacket: true, Hat: true, Gloves: true, Gaitor: true},
		},
		{
			name:        "WindAndRain",
			temperature: 16,
			weather:     []WeatherCondition{WeatherWind, WeatherRain},
			want:        Accessories{LightJacket: true, Waterproof: true, Gaitor: true},
		},
		{
			name:        "StormAndCloudAddNothing",
			temperature: 16,
			weather:     []WeatherCondition{WeatherStorm, WeatherCloud},
			want:        Accessories{LightJacket: true},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := New().Calculate(TripConfig{Days: 1, Temperature: tc.temperature, Weather: tc.weather})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Accessories != tc.want {
				t.Fatalf("got %+v want %+v", got.Accessories, tc.want)
			}
		})
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*TripConfig)
		wantErr error
	}{
		{name: "ZeroDays", mutate: func(c *TripConfig) { c.Days = 0 }, wantErr: ErrInvalidDays},
		{name: "NegativeDays", mutate: func(c *TripConfig) { c.Days = -2 }, wantErr: ErrInvalidDays},
		{name: "NaNTemperature", mutate: func(c *TripConfig) { c.Temperature = math.NaN() }, wantErr: ErrInvalidTemperature},
		{name: "InfiniteTemperature", mutate: func(c *TripConfig) { c.Temperature = math.Inf(1) }, wantErr: ErrInvalidTemperature},
		{name: "ZeroRate", mutate: func(c *TripConfig) { c.Clothing[CategorySocks] = Every(0) }, wantErr: ErrInvalidRate},
		{name: "NegativeRate", mutate: func(c *TripConfig) { c.Clothing[CategoryTees] = Every(-1) }, wantErr: ErrInvalidRate},
		{name: "NaNRate", mutate: func(c *TripConfig) { c.Clothing[CategoryJumper] = Every(math.NaN()) }, wantErr: ErrInvalidRate},
		{name: "InfiniteRate", mutate: func(c *TripConfig) { c.Clothing[CategoryBottoms] = Every(math.Inf(1)) }, wantErr: ErrInvalidRate},
		{name: "TinyRateOverflows", mutate: func(c *TripConfig) { c.Clothing[CategorySocks] = Every(1e-300) }, wantErr: ErrTooManyItems},
		{name: "LongTripOverflows", mutate: func(c *TripConfig) { c.Days = 2_000_000 }, wantErr: ErrTooManyItems},
		{name: "ZeroLaundry", mutate: func(c *TripConfig) { c.LaundryEveryNDays = laundry(0) }, wantErr: ErrInvalidLaundry},
		{name: "NaNLaundry", mutate: func(c *TripConfig) { c.LaundryEveryNDays = laundry(math.NaN()) }, wantErr: ErrInvalidLaundry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			trip := baseTrip()
			tc.mutate(&trip)
			got, err := New().Calculate(trip)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got.Clothing != nil {
				t.Fatalf("expected no partial result, got %v", got.Clothing)
			}
		})
	}
}

func TestCalculateIgnoresMissingAndUnknownCategories(t *testing.T) {
	t.Parallel()

	got, err := New().Calculate(TripConfig{
		Days:        3,
		Temperature: 10,
		Clothing: map[ClothingCategory]*ClothingRate{
			CategorySocks:            Every(1),
			ClothingCategory("hats"): Every(1),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Clothing[OutputSocks] != 3 {
		t.Fatalf("expected 3 socks, got %d", got.Clothing[OutputSocks])
	}
	if got.TotalItems() != 3 {
		t.Fatalf("expected only socks to be packed, got %v", got.Clothing)
	}
}

func TestCountIsMonotonic(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{0.5, 1, 1.5, 2.5, 3, 7} {
		prev := 0
		for days := 1; days <= 60; days++ {
			got, err := count(Every(rate), effectiveDays(days, nil))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got < prev {
				t.Fatalf("count decreased for rate %v at %d days: %d < %d", rate, days, got, prev)
			}
			prev = got
		}
	}

	for _, l := range []float64{1, 3.5, 7} {
		for _, rate := range []float64{0.5, 1, 2.5} {
			prev := 0
			for days := 1; days <= 30; days++ {
				got, err := count(Every(rate), effectiveDays(days, laundry(l)))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got < prev {
					t.Fatalf("count decreased for rate %v with laundry %v at %d days: %d < %d", rate, l, days, got, prev)
				}
				prev = got
			}
		}
	}

	for _, days := range []int{1, 4, 10, 31} {
		prev := math.MaxInt
		for rate := 0.25; rate <= 40; rate += 0.25 {
			got, err := count(Every(rate), effectiveDays(days, nil))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got > prev {
				t.Fatalf("count increased for %d days at rate %v: %d > %d", days, rate, got, prev)
			}
			prev = got
		}
	}
}

func TestEffectiveDaysRespectsLaundryCap(t *testing.T) {
	t.Parallel()

	for days := 1; days <= 30; days++ {
		for _, l := range []float64{0.5, 1, 3, 7, 14, 45} {
			got := effectiveDays(days, laundry(l))
			if got > float64(days) || got > l {
				t.Fatalf("effective days %v exceeds days %d or laundry %v", got, days, l)
			}
		}
		if got := effectiveDays(days, nil); got != float64(days) {
			t.Fatalf("expected %d effective days without laundry, got %v", days, got)
		}
	}
}

func TestSplitConservesTotal(t *testing.T) {
	t.Parallel()

	for _, policy := range []splitPolicy{bottomsSplit, jumperSplit} {
		for total := 0; total <= 25; total++ {
			for temp := -20.0; temp <= 40; temp += 0.5 {
				light, heavy := policy.split(total, temp)
				if light+heavy != total {
					t.Fatalf("split %d at %v into %d+%d", total, temp, light, heavy)
				}
				if light < 0 || heavy < 0 {
					t.Fatalf("negative split %d+%d for %d at %v", light, heavy, total, temp)
				}
			}
		}
	}
}

func TestFractionBoundaries(t *testing.T) {
	t.Parallel()

	for _, policy := range []splitPolicy{bottomsSplit, jumperSplit} {
		if got := policy.fraction(policy.lowC); got != 0 {
			t.Fatalf("fraction at low threshold: got %v", got)
		}
		if got := policy.fraction(policy.highC); got != 1 {
			t.Fatalf("fraction at high threshold: got %v", got)
		}
		prev := -1.0
		for temp := policy.lowC; temp <= policy.highC; temp += 0.1 {
			f := policy.fraction(temp)
			if f < prev {
				t.Fatalf("fraction decreased at %v: %v < %v", temp, f, prev)
			}
			prev = f
		}
	}
}

func TestJacketsAreExclusive(t *testing.T) {
	t.Parallel()

	for temp := -30.0; temp <= 45; temp += 0.25 {
		a := accessoriesFor(temp, nil)
		if a.LightJacket == a.WarmJacket {
			t.Fatalf("expected exactly one jacket at %v, got %+v", temp, a)
		}
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	t.Parallel()

	first := baseTrip()
	first.Weather = []WeatherCondition{WeatherSun, WeatherWind, WeatherRain}
	second := baseTrip()
	second.Weather = []WeatherCondition{WeatherRain, WeatherSun, WeatherWind, WeatherSun}

	calc := New()
	a, err := calc.Calculate(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := calc.Calculate(second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encodedA, _ := json.Marshal(a)
	encodedB, _ := json.Marshal(b)
	if !bytes.Equal(encodedA, encodedB) {
		t.Fatalf("expected identical output:\n%s\n%s", encodedA, encodedB)
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	if got, err := ParseWeatherCondition(" Rain "); err != nil || got != WeatherRain {
		t.Fatalf("expected rain, got %q (%v)", got, err)
	}
	if _, err := ParseWeatherCondition("hail"); !errors.Is(err, ErrUnknownWeather) {
		t.Fatalf("expected ErrUnknownWeather, got %v", err)
	}
	if got, err := ParseClothingCategory("jumper"); err != nil || got != CategoryJumper {
		t.Fatalf("expected jumper, got %q (%v)", got, err)
	}
	if _, err := ParseClothingCategory("pants"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCategoryDefinitions(t *testing.T) {
	t.Parallel()

	outputs := make(map[OutputClothingCategory]bool)
	for _, def := range CategoryDefinitions() {
		for _, out := range def.Outputs {
			if outputs[out] {
				t.Fatalf("output %s produced twice", out)
			}
			outputs[out] = true
		}
		if def.HasTag(TagFemale) && !def.HasTag(TagOptional) {
			t.Fatalf("%s is female-specific but not optional", def.Category)
		}
	}
	if len(outputs) != len(AllOutputCategories()) {
		t.Fatalf("definitions cover %d outputs, want %d", len(outputs), len(AllOutputCategories()))
	}

	bottoms, ok := CategoryBottoms.Definition()
	if !ok || !bottoms.Split() {
		t.Fatalf("expected bottoms to be a split category")
	}
	if _, ok := ClothingCategory("hats").Definition(); ok {
		t.Fatalf("expected no definition for unknown category")
	}
	for _, out := range AllOutputCategories() {
		if out.Label() == string(out) {
			t.Fatalf("expected a display label for %s", out)
		}
	}
}

func TestCategoryCatalogueIsNotShared(t *testing.T) {
	defs := CategoryDefinitions()
	for i := range defs {
		for j := range defs[i].Outputs {
			defs[i].Outputs[j] = OutputShirts
		}
		for j := range defs[i].Tags {
			defs[i].Tags[j] = CategoryTag("mutated")
		}
	}
	socks, _ := CategorySocks.Definition()
	socks.Outputs[0] = OutputShirts
	weather := AllWeatherConditions()
	weather[0] = WeatherCondition("hail")

	got, err := New().Calculate(TripConfig{
		Days:        4,
		Temperature: 15,
		Clothing:    map[ClothingCategory]*ClothingRate{CategorySocks: Every(1)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Clothing) != len(AllOutputCategories()) {
		t.Fatalf("expected %d output categories, got %v", len(AllOutputCategories()), got.Clothing)
	}
	if got.Clothing[OutputSocks] != 4 || got.Clothing[OutputShirts] != 0 {
		t.Fatalf("expected 4 socks and no shirts, got %v", got.Clothing)
	}

	fresh, _ := CategorySocks.Definition()
	if fresh.Outputs[0] != OutputSocks {
		t.Fatalf("expected socks definition to be unchanged, got %v", fresh.Outputs)
	}
	bras, _ := CategoryBras.Definition()
	if !bras.HasTag(TagFemale) {
		t.Fatalf("expected bras to keep its tags, got %v", bras.Tags)
	}
	if AllWeatherConditions()[0] != WeatherSun {
		t.Fatalf("expected weather list to be unchanged")
	}
}

func equalClothing(got, want map[OutputClothingCategory]int) bool {
	if len(got) != len(want) {
		return false
	}
	for k, wantVal := range want {
		if gotVal, ok := got[k]; !ok || gotVal != wantVal {
			return false
		}
	}
	return true
}

func BenchmarkCalculate(b *testing.B) {
	calc := New()
	trip := baseTrip()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate(trip); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func ExampleCalculator_Calculate() {
	list, err := New().Calculate(TripConfig{
		Days:        10,
		Temperature: 20,
		Weather:     []WeatherCondition{WeatherSun},
		Clothing: map[ClothingCategory]*ClothingRate{
			CategoryBottoms: Every(3),
			CategoryJumper:  Every(5),
		},
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(list.Clothing[OutputShorts], list.Clothing[OutputTrousers], list.Clothing[OutputThinJumper], list.Accessories.Sunglasses)
	// Output: 2 1 2 true
}

package packing

import (
	"fmt"
	"slices"
	"strings"
)

// WeatherCondition is a weather tag expected during a trip.
type WeatherCondition string

const (
	WeatherSun   WeatherCondition = "sun"
	WeatherCloud WeatherCondition = "cloud"
	WeatherRain  WeatherCondition = "rain"
	WeatherStorm WeatherCondition = "storm"
	WeatherSnow  WeatherCondition = "snow"
	WeatherWind  WeatherCondition = "wind"
)

// AllWeatherConditions lists every recognised weather tag.
func AllWeatherConditions() []WeatherCondition {
	return []WeatherCondition{
		WeatherSun,
		WeatherCloud,
		WeatherRain,
		WeatherStorm,
		WeatherSnow,
		WeatherWind,
	}
}

// Valid reports whether w is a recognised weather tag.
func (w WeatherCondition) Valid() bool {
	switch w {
	case WeatherSun, WeatherCloud, WeatherRain, WeatherStorm, WeatherSnow, WeatherWind:
		return true
	}
	return false
}

// ParseWeatherCondition converts a raw tag, case-insensitively.
func ParseWeatherCondition(raw string) (WeatherCondition, error) {
	w := WeatherCondition(strings.ToLower(strings.TrimSpace(raw)))
	if !w.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownWeather, raw)
	}
	return w, nil
}

// ClothingCategory is a category the traveller declares a wear rate for.
type ClothingCategory string

const (
	CategoryUnderwear ClothingCategory = "underwear"
	CategorySocks     ClothingCategory = "socks"
	CategoryBottoms   ClothingCategory = "bottoms"
	CategoryTees      ClothingCategory = "tees"
	CategoryShirts    ClothingCategory = "shirts"
	CategoryJumper    ClothingCategory = "jumper"
	CategoryBras      ClothingCategory = "bras"
	CategoryDresses   ClothingCategory = "dresses"
	CategorySkirts    ClothingCategory = "skirts"
)

// Valid reports whether c is a recognised input category.
func (c ClothingCategory) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

// Definition returns the catalogue entry for c.
func (c ClothingCategory) Definition() (CategoryDefinition, bool) {
	idx, ok := categoryIndex[c]
	if !ok {
		return CategoryDefinition{}, false
	}
	return categoryDefinitions[idx].clone(), true
}

// ParseClothingCategory converts a raw category key. Keys are case-sensitive
// to match the JSON and YAML representations.
func ParseClothingCategory(raw string) (ClothingCategory, error) {
	c := ClothingCategory(strings.TrimSpace(raw))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}

// OutputClothingCategory is a category that appears in a PackingList.
type OutputClothingCategory string

const (
	OutputUnderwear   OutputClothingCategory = "underwear"
	OutputSocks       OutputClothingCategory = "socks"
	OutputTrousers    OutputClothingCategory = "trousers"
	OutputShorts      OutputClothingCategory = "shorts"
	OutputTees        OutputClothingCategory = "tees"
	OutputShirts      OutputClothingCategory = "shirts"
	OutputThinJumper  OutputClothingCategory = "thinJumper"
	OutputThickJumper OutputClothingCategory = "thickJumper"
	OutputBras        OutputClothingCategory = "bras"
	OutputDresses     OutputClothingCategory = "dresses"
	OutputSkirts      OutputClothingCategory = "skirts"
)

var outputLabels = map[OutputClothingCategory]string{
	OutputUnderwear:   "Underwear",
	OutputSocks:       "Socks",
	OutputTrousers:    "Trousers",
	OutputShorts:      "Shorts",
	OutputTees:        "T-Shirts",
	OutputShirts:      "Shirts",
	OutputThinJumper:  "Thin Jumper",
	OutputThickJumper: "Thick Jumper",
	OutputBras:        "Bras",
	OutputDresses:     "Dresses",
	OutputSkirts:      "Skirts",
}

// Label returns the display label for o, or the key itself when unknown.
func (o OutputClothingCategory) Label() string {
	if label, ok := outputLabels[o]; ok {
		return label
	}
	return string(o)
}

// CategoryTag classifies a category definition.
type CategoryTag string

const (
	// TagOptional marks categories that presets commonly leave unset.
	TagOptional CategoryTag = "optional"
	// TagFemale marks categories that are typically female-specific.
	TagFemale CategoryTag = "female"
)

// CategoryDefinition describes one input category and the output categories
// it produces. Split categories produce two outputs, light variant first.
type CategoryDefinition struct {
	Category ClothingCategory
	Label    string
	Outputs  []OutputClothingCategory
	Tags     []CategoryTag
}

// HasTag reports whether the definition carries tag.
func (d CategoryDefinition) HasTag(tag CategoryTag) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Split reports whether the category is partitioned into two variants.
func (d CategoryDefinition) Split() bool {
	return len(d.Outputs) == 2
}

func (d CategoryDefinition) clone() CategoryDefinition {
	d.Outputs = slices.Clone(d.Outputs)
	d.Tags = slices.Clone(d.Tags)
	return d
}

var categoryDefinitions = []CategoryDefinition{
	{Category: CategoryUnderwear, Label: "Underwear", Outputs: []OutputClothingCategory{OutputUnderwear}},
	{Category: CategorySocks, Label: "Socks", Outputs: []OutputClothingCategory{OutputSocks}},
	{Category: CategoryBottoms, Label: "Bottoms", Outputs: []OutputClothingCategory{OutputShorts, OutputTrousers}},
	{Category: CategoryTees, Label: "T-Shirts", Outputs: []OutputClothingCategory{OutputTees}},
	{Category: CategoryShirts, Label: "Shirts", Outputs: []OutputClothingCategory{OutputShirts}},
	{Category: CategoryJumper, Label: "Jumpers", Outputs: []OutputClothingCategory{OutputThinJumper, OutputThickJumper}},
	{Category: CategoryBras, Label: "Bras", Outputs: []OutputClothingCategory{OutputBras}, Tags: []CategoryTag{TagOptional, TagFemale}},
	{Category: CategoryDresses, Label: "Dresses", Outputs: []OutputClothingCategory{OutputDresses}, Tags: []CategoryTag{TagOptional, TagFemale}},
	{Category: CategorySkirts, Label: "Skirts", Outputs: []OutputClothingCategory{OutputSkirts}, Tags: []CategoryTag{TagOptional, TagFemale}},
}

var categoryIndex = func() map[ClothingCategory]int {
	idx := make(map[ClothingCategory]int, len(categoryDefinitions))
	for i, def := range categoryDefinitions {
		idx[def.Category] = i
	}
	return idx
}()

// CategoryDefinitions returns a deep copy of the category catalogue in
// display order.
func CategoryDefinitions() []CategoryDefinition {
	out := make([]CategoryDefinition, 0, len(categoryDefinitions))
	for _, def := range categoryDefinitions {
		out = append(out, def.clone())
	}
	return out
}

// AllClothingCategories lists every input category in display order.
func AllClothingCategories() []ClothingCategory {
	out := make([]ClothingCategory, 0, len(categoryDefinitions))
	for _, def := range categoryDefinitions {
		out = append(out, def.Category)
	}
	return out
}

// AllOutputCategories lists every output category in display order.
func AllOutputCategories() []OutputClothingCategory {
	return []OutputClothingCategory{
		OutputUnderwear,
		OutputSocks,
		OutputTrousers,
		OutputShorts,
		OutputTees,
		OutputShirts,
		OutputThinJumper,
		OutputThickJumper,
		OutputBras,
		OutputDresses,
		OutputSkirts,
	}
}

// ClothingRate means one fresh item is needed every EveryNDays days.
type ClothingRate struct {
	EveryNDays float64 `json:"everyNDays" yaml:"every_n_days"`
}

// Every is shorthand for a rate pointer.
func Every(days float64) *ClothingRate {
	return &ClothingRate{EveryNDays: days}
}

// TripConfig is the full description of a trip.
// A nil LaundryEveryNDays means no laundry access; a nil rate means the
// category is not packed.
type TripConfig struct {
	Days              int                                `json:"days"`
	Temperature       float64                            `json:"temperature"`
	Weather           []WeatherCondition                 `json:"weather"`
	LaundryEveryNDays *float64                           `json:"laundryEveryNDays"`
	Clothing          map[ClothingCategory]*ClothingRate `json:"clothing"`
}

// Accessories holds the accessory recommendations for a trip.
type Accessories struct {
	Sunglasses  bool `json:"sunglasses"`
	LightJacket bool `json:"lightJacket"`
	WarmJacket  bool `json:"warmJacket"`
	Waterproof  bool `json:"waterproof"`
	Hat         bool `json:"hat"`
	Gloves      bool `json:"gloves"`
	Gaitor      bool `json:"gaitor"`
	Thermals    bool `json:"thermals"`
}

// AccessoryFlag pairs an accessory key with its value for ordered rendering.
type AccessoryFlag struct {
	Name  string
	Label string
	On    bool
}

// Flags returns the accessories in display order.
func (a Accessories) Flags() []AccessoryFlag {
	return []AccessoryFlag{
		{Name: "sunglasses", Label: "Sunglasses", On: a.Sunglasses},
		{Name: "lightJacket", Label: "Light Jacket", On: a.LightJacket},
		{Name: "warmJacket", Label: "Warm Jacket", On: a.WarmJacket},
		{Name: "waterproof", Label: "Waterproof", On: a.Waterproof},
		{Name: "hat", Label: "Hat", On: a.Hat},
		{Name: "gloves", Label: "Gloves", On: a.Gloves},
		{Name: "gaitor", Label: "Gaitor", On: a.Gaitor},
		{Name: "thermals", Label: "Thermals", On: a.Thermals},
	}
}

// PackingList is the result of a calculation. Clothing always contains every
// output category; unpacked categories have a count of zero.
type PackingList struct {
	Clothing    map[OutputClothingCategory]int `json:"clothing"`
	Accessories Accessories                    `json:"accessories"`
}

// TotalItems sums the clothing counts.
func (p PackingList) TotalItems() int {
	total := 0
	for _, n := range p.Clothing {
		total += n
	}
	return total
}

// Calculator describes the behaviour required from a packing calculator.
type Calculator interface {
	Calculate(trip TripConfig) (PackingList, error)
}

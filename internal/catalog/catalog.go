package catalog

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/packing-list/internal/packing"
)

var (
	// ErrInvalidCatalog indicates the catalog violates validation rules.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrPresetNotFound is returned when no preset matches the requested name.
	ErrPresetNotFound = errors.New("preset not found")
)

// ExtraItem is a non-clothing item in the extras checklist. Count is set
// only for items packed in multiples.
type ExtraItem struct {
	Key     string `json:"key" yaml:"key"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Count   *int   `json:"count,omitempty" yaml:"count,omitempty"`
}

// ExtrasGroup is a labelled group of extra items.
type ExtrasGroup struct {
	Label string      `json:"label" yaml:"label"`
	Items []ExtraItem `json:"items" yaml:"items"`
}

// Preset is a named set of wear rates and extras selections.
type Preset struct {
	Name     string                                             `json:"name" yaml:"name"`
	Clothing map[packing.ClothingCategory]*packing.ClothingRate `json:"clothing" yaml:"clothing"`
	Extras   []ExtrasGroup                                      `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// TripClothing returns the preset rates keyed by every recognised category,
// with nil for categories the preset does not pack.
func (p Preset) TripClothing() map[packing.ClothingCategory]*packing.ClothingRate {
	out := make(map[packing.ClothingCategory]*packing.ClothingRate, len(p.Clothing))
	for _, category := range packing.AllClothingCategories() {
		out[category] = nil
		if rate := p.Clothing[category]; rate != nil {
			r := *rate
			out[category] = &r
		}
	}
	return out
}

// Catalog is the static configuration supplied to callers of the calculator.
type Catalog struct {
	Presets []Preset          `json:"presets" yaml:"presets"`
	Extras  []ExtrasGroup     `json:"extras" yaml:"extras"`
	Labels  map[string]string `json:"labels" yaml:"labels"`
}

// Label returns the display label for an extra item, falling back to the key.
func (c Catalog) Label(key string) string {
	if label, ok := c.Labels[key]; ok && label != "" {
		return label
	}
	return key
}

// LoadFile reads a YAML catalog. Sections missing from the file keep the
// defaults.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var fromFile Catalog
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog YAML: %w", err)
	}

	cat := Default()
	if len(fromFile.Presets) > 0 {
		cat.Presets = fromFile.Presets
	}
	if len(fromFile.Extras) > 0 {
		cat.Extras = fromFile.Extras
	}
	for key, label := range fromFile.Labels {
		cat.Labels[key] = label
	}

	if err := Validate(cat); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks preset names and rates and the extras groups.
func Validate(c Catalog) error {
	seen := make(map[string]struct{}, len(c.Presets))
	for _, p := range c.Presets {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			return fmt.Errorf("%w: preset name is empty", ErrInvalidCatalog)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalidCatalog, p.Name)
		}
		seen[name] = struct{}{}

		for category, rate := range p.Clothing {
			if !category.Valid() {
				return fmt.Errorf("%w: preset %q: %w %q", ErrInvalidCatalog, p.Name, packing.ErrUnknownCategory, string(category))
			}
			if rate != nil && (rate.EveryNDays <= 0 || math.IsNaN(rate.EveryNDays) || math.IsInf(rate.EveryNDays, 0)) {
				return fmt.Errorf("%w: preset %q: %s: %w", ErrInvalidCatalog, p.Name, category, packing.ErrInvalidRate)
			}
		}
		if err := validateExtras(p.Extras); err != nil {
			return fmt.Errorf("%w: preset %q: %v", ErrInvalidCatalog, p.Name, err)
		}
	}

	if err := validateExtras(c.Extras); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return nil
}

func validateExtras(groups []ExtrasGroup) error {
	for _, g := range groups {
		if strings.TrimSpace(g.Label) == "" {
			return errors.New("extras group label is empty")
		}
		keys := make(map[string]struct{}, len(g.Items))
		for _, item := range g.Items {
			if item.Key == "" {
				return fmt.Errorf("group %q has an item without a key", g.Label)
			}
			if _, dup := keys[item.Key]; dup {
				return fmt.Errorf("group %q lists %q twice", g.Label, item.Key)
			}
			keys[item.Key] = struct{}{}
			if item.Count != nil && *item.Count < 0 {
				return fmt.Errorf("item %q has a negative count", item.Key)
			}
		}
	}
	return nil
}

func (c Catalog) clone() Catalog {
	out := Catalog{
		Presets: make([]Preset, 0, len(c.Presets)),
		Extras:  cloneExtras(c.Extras),
		Labels:  make(map[string]string, len(c.Labels)),
	}
	for _, p := range c.Presets {
		out.Presets = append(out.Presets, p.clone())
	}
	for k, v := range c.Labels {
		out.Labels[k] = v
	}
	return out
}

func (p Preset) clone() Preset {
	out := Preset{
		Name:     p.Name,
		Clothing: make(map[packing.ClothingCategory]*packing.ClothingRate, len(p.Clothing)),
		Extras:   cloneExtras(p.Extras),
	}
	for category, rate := range p.Clothing {
		if rate == nil {
			out.Clothing[category] = nil
			continue
		}
		r := *rate
		out.Clothing[category] = &r
	}
	return out
}

func cloneExtras(groups []ExtrasGroup) []ExtrasGroup {
	if groups == nil {
		return nil
	}
	out := make([]ExtrasGroup, len(groups))
	for i, g := range groups {
		items := make([]ExtraItem, len(g.Items))
		for j, item := range g.Items {
			items[j] = item
			if item.Count != nil {
				n := *item.Count
				items[j].Count = &n
			}
		}
		out[i] = ExtrasGroup{Label: g.Label, Items: items}
	}
	return out
}

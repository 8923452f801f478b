package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/eugenenazirov/packing-list/internal/catalog"
	"github.com/eugenenazirov/packing-list/internal/packing"
)

var (
	headerColor  = color.New(color.FgBlue, color.Bold)
	sectionColor = color.New(color.FgCyan, color.Bold)
	countColor   = color.New(color.FgGreen, color.Bold)
	checkColor   = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

type renderer struct {
	w io.Writer
}

func (r renderer) header(format string, args ...any) {
	_, _ = headerColor.Fprintf(r.w, "▸ "+format+"\n", args...)
}

func (r renderer) section(title string) {
	_, _ = fmt.Fprintln(r.w)
	_, _ = sectionColor.Fprintln(r.w, title)
}

func (r renderer) check(indent int, on bool, label string) {
	pad := strings.Repeat("  ", indent)
	if on {
		_, _ = checkColor.Fprintf(r.w, "%s✓ %s\n", pad, label)
		return
	}
	_, _ = dimColor.Fprintf(r.w, "%s- %s\n", pad, label)
}

// packingResult is the JSON shape printed by `calculate --json`.
type packingResult struct {
	Trip        packing.TripConfig                     `json:"trip"`
	Preset      string                                 `json:"preset,omitempty"`
	Clothing    map[packing.OutputClothingCategory]int `json:"clothing"`
	Accessories packing.Accessories                    `json:"accessories"`
	TotalItems  int                                    `json:"totalItems"`
	Extras      []catalog.ExtrasGroup                  `json:"extras,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r renderer) packingList(trip packing.TripConfig, preset catalog.Preset, list packing.PackingList, cat catalog.Catalog) {
	r.header("%d days at %s°C%s", trip.Days, formatNumber(trip.Temperature), weatherSuffix(trip.Weather))
	if preset.Name != "" {
		_, _ = dimColor.Fprintf(r.w, "  preset %s\n", preset.Name)
	}
	if trip.LaundryEveryNDays != nil {
		_, _ = dimColor.Fprintf(r.w, "  laundry every %s days\n", formatNumber(*trip.LaundryEveryNDays))
	}

	r.section("Clothing")
	packed := 0
	for _, out := range packing.AllOutputCategories() {
		n := list.Clothing[out]
		if n == 0 {
			continue
		}
		packed++
		_, _ = fmt.Fprintf(r.w, "  %-14s", out.Label())
		_, _ = countColor.Fprintf(r.w, "%3d\n", n)
	}
	if packed == 0 {
		_, _ = dimColor.Fprintln(r.w, "  nothing to pack")
	}

	r.section("Accessories")
	for _, flag := range list.Accessories.Flags() {
		if flag.On {
			r.check(1, true, flag.Label)
		}
	}

	if len(preset.Extras) > 0 {
		r.section("Extras")
		r.extras(preset.Extras, cat, true)
	}

	_, _ = fmt.Fprintln(r.w)
	_, _ = headerColor.Fprintf(r.w, "Total clothing items: %d\n", list.TotalItems())
}

func (r renderer) extras(groups []catalog.ExtrasGroup, cat catalog.Catalog, enabledOnly bool) {
	for _, g := range groups {
		var lines []catalog.ExtraItem
		for _, item := range g.Items {
			if item.Enabled || !enabledOnly {
				lines = append(lines, item)
			}
		}
		if len(lines) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(r.w, "  %s\n", g.Label)
		for _, item := range lines {
			label := cat.Label(item.Key)
			if item.Count != nil && *item.Count > 1 {
				label = fmt.Sprintf("%s x%d", label, *item.Count)
			}
			r.check(2, item.Enabled, label)
		}
	}
}

func (r renderer) presets(presets []catalog.Preset) {
	for i, p := range presets {
		if i > 0 {
			_, _ = fmt.Fprintln(r.w)
		}
		r.header("%s", p.Name)
		for _, def := range packing.CategoryDefinitions() {
			rate := p.Clothing[def.Category]
			if rate == nil {
				_, _ = dimColor.Fprintf(r.w, "  %-10s not packed\n", def.Label)
				continue
			}
			_, _ = fmt.Fprintf(r.w, "  %-10s every %s days\n", def.Label, formatNumber(rate.EveryNDays))
		}
	}
}

func weatherSuffix(weather []packing.WeatherCondition) string {
	if len(weather) == 0 {
		return ""
	}
	tags := make([]string, 0, len(weather))
	for _, w := range weather {
		tags = append(tags, string(w))
	}
	return ", " + strings.Join(tags, ", ")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

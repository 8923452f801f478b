package catalog

import "github.com/eugenenazirov/packing-list/internal/packing"

// Default returns a fresh copy of the built-in catalog.
func Default() Catalog {
	return Catalog{
		Presets: []Preset{benPreset(), naeemPreset()},
		Extras:  DefaultExtras(),
		Labels:  DefaultLabels(),
	}
}

// DefaultExtras returns the built-in extras checklist with the usual
// essentials switched on.
func DefaultExtras() []ExtrasGroup {
	return extras(map[string]bool{
		"passport": true,
		"wallet":   true,
		"phone":    true,
	}, map[string]int{})
}

// DefaultLabels returns display labels for the built-in extra items.
func DefaultLabels() map[string]string {
	return map[string]string{
		"passport":        "Passport",
		"wallet":          "Wallet",
		"medication":      "Medication",
		"phone":           "Phone",
		"laptop":          "Laptop",
		"tablet":          "Tablet",
		"kindle":          "Kindle",
		"gameConsole":     "Game Console",
		"usbCCable":       "USB-C Cable",
		"lightningCable":  "Lightning Cable",
		"microUsbCable":   "Micro-USB Cable",
		"powerAdapter":    "Power Adapter",
		"euAdapter":       "Regional Adapter",
		"powerBank":       "Power Bank",
		"toothpasteBrush": "Toothpaste/Brush",
		"shampoo":         "Shampoo",
		"conditioner":     "Conditioner",
		"soap":            "Soap",
		"lipBalm":         "Lip Balm",
		"moisturiser":     "Moisturiser",
		"handWarmers":     "Hand Warmers",
		"towel":           "Towel",
		"earplugs":        "Earplugs",
		"bumbag":          "Bumbag",
		"dayBag":          "Day Bag",
		"book":            "Book",
	}
}

var extrasLayout = []struct {
	label string
	keys  []string
}{
	{label: "Essentials", keys: []string{"passport", "wallet", "medication"}},
	{label: "Electronics", keys: []string{"phone", "laptop", "tablet", "kindle", "gameConsole"}},
	{label: "Power", keys: []string{"usbCCable", "lightningCable", "microUsbCable", "powerAdapter", "euAdapter", "powerBank"}},
	{label: "Toiletries", keys: []string{"toothpasteBrush", "shampoo", "conditioner", "soap", "lipBalm", "moisturiser"}},
	{label: "Miscellaneous", keys: []string{"handWarmers", "towel", "earplugs", "bumbag", "dayBag", "book"}},
}

// countable items default to one when no count is given.
var countable = map[string]bool{
	"usbCCable":      true,
	"lightningCable": true,
	"microUsbCable":  true,
	"book":           true,
}

func extras(enabled map[string]bool, counts map[string]int) []ExtrasGroup {
	groups := make([]ExtrasGroup, 0, len(extrasLayout))
	for _, layout := range extrasLayout {
		items := make([]ExtraItem, 0, len(layout.keys))
		for _, key := range layout.keys {
			item := ExtraItem{Key: key, Enabled: enabled[key]}
			if countable[key] {
				n := 1
				if c, ok := counts[key]; ok {
					n = c
				}
				item.Count = &n
			}
			items = append(items, item)
		}
		groups = append(groups, ExtrasGroup{Label: layout.label, Items: items})
	}
	return groups
}

func benPreset() Preset {
	return Preset{
		Name: "Ben",
		Clothing: map[packing.ClothingCategory]*packing.ClothingRate{
			packing.CategoryUnderwear: packing.Every(2.5),
			packing.CategorySocks:     packing.Every(2.5),
			packing.CategoryBottoms:   packing.Every(4),
			packing.CategoryTees:      packing.Every(2.5),
			packing.CategoryJumper:    packing.Every(7),
			packing.CategoryShirts:    packing.Every(7),
			packing.CategoryBras:      nil,
			packing.CategoryDresses:   nil,
			packing.CategorySkirts:    nil,
		},
		Extras: extras(map[string]bool{
			"passport": true, "wallet": true, "medication": true,
			"phone": true, "laptop": true, "kindle": true,
			"usbCCable": true, "lightningCable": true, "powerAdapter": true, "euAdapter": true, "powerBank": true,
			"toothpasteBrush": true, "lipBalm": true,
			"towel": true, "earplugs": true, "bumbag": true, "dayBag": true,
		}, map[string]int{}),
	}
}

func naeemPreset() Preset {
	return Preset{
		Name: "Naeem",
		Clothing: map[packing.ClothingCategory]*packing.ClothingRate{
			packing.CategoryUnderwear: packing.Every(2),
			packing.CategorySocks:     packing.Every(2),
			packing.CategoryBottoms:   packing.Every(3),
			packing.CategoryTees:      packing.Every(2),
			packing.CategoryJumper:    packing.Every(4),
			packing.CategoryShirts:    packing.Every(7),
			packing.CategoryBras:      nil,
			packing.CategoryDresses:   nil,
			packing.CategorySkirts:    nil,
		},
		Extras: extras(map[string]bool{
			"passport": true, "wallet": true, "medication": true,
			"phone": true, "laptop": true, "kindle": true,
			"usbCCable": true, "powerAdapter": true, "euAdapter": true, "powerBank": true,
			"toothpasteBrush": true, "shampoo": true, "conditioner": true, "soap": true, "lipBalm": true,
			"handWarmers": true, "earplugs": true, "bumbag": true,
		}, map[string]int{"usbCCable": 2}),
	}
}

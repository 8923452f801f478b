// Package cli implements the packlist command line tool: it works out a
// packing list for a trip and browses the preset catalog.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/eugenenazirov/packing-list/internal/catalog"
	"github.com/eugenenazirov/packing-list/internal/packing"
)

// Run parses args and executes the selected command, writing results to
// stdout and usage errors to stderr.
func Run(args []string, stdout, stderr io.Writer) error {
	app := kingpin.New("packlist", "Works out what to pack for a trip.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')

	catalogFile := app.Flag("catalog", "Path to a YAML catalog of presets and extras").Envar("CATALOG_FILE").String()
	asJSON := app.Flag("json", "Print machine readable JSON").Bool()
	noColor := app.Flag("no-color", "Disable coloured output").Bool()

	calculate := app.Command("calculate", "Calculate a packing list").Default()
	trip := tripFlags{rates: map[string]string{}}
	calculate.Flag("days", "Trip length in days").Short('d').Required().IntVar(&trip.days)
	calculate.Flag("temperature", "Expected temperature in °C").Short('t').Required().Float64Var(&trip.temperature)
	calculate.Flag("weather", "Weather tag (sun, cloud, rain, storm, snow, wind); repeat or comma separate").Short('w').StringsVar(&trip.weather)
	calculate.Flag("laundry", "Days between laundry").IsSetByUser(&trip.laundrySet).Float64Var(&trip.laundry)
	calculate.Flag("preset", "Preset to start from").Short('p').StringVar(&trip.preset)
	calculate.Flag("rate", "Override a wear rate, e.g. bottoms=3 or bras=none").StringMapVar(&trip.rates)

	presets := app.Command("presets", "List the presets in the catalog")

	extras := app.Command("extras", "Show the extras checklist")
	extrasPreset := extras.Flag("preset", "Show the selection of this preset").String()

	command, err := app.Parse(args)
	if err != nil {
		return err
	}
	if *noColor {
		color.NoColor = true
	}

	store, err := catalog.OpenStore(*catalogFile)
	if err != nil {
		return err
	}

	switch command {
	case calculate.FullCommand():
		return runCalculate(stdout, store, trip, *asJSON)
	case presets.FullCommand():
		return runPresets(stdout, store, *asJSON)
	case extras.FullCommand():
		return runExtras(stdout, store, *extrasPreset, *asJSON)
	}
	return fmt.Errorf("unknown command %q", command)
}

func runCalculate(w io.Writer, store catalog.Store, flags tripFlags, asJSON bool) error {
	trip, preset, err := flags.build(store)
	if err != nil {
		return err
	}

	list, err := packing.New().Calculate(trip)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(w, packingResult{
			Trip:        trip,
			Preset:      preset.Name,
			Clothing:    list.Clothing,
			Accessories: list.Accessories,
			TotalItems:  list.TotalItems(),
			Extras:      preset.Extras,
		})
	}

	cat, err := store.Catalog()
	if err != nil {
		return err
	}
	renderer{w: w}.packingList(trip, preset, list, cat)
	return nil
}

func runPresets(w io.Writer, store catalog.Store, asJSON bool) error {
	presets, err := store.ListPresets()
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, presets)
	}
	renderer{w: w}.presets(presets)
	return nil
}

func runExtras(w io.Writer, store catalog.Store, presetName string, asJSON bool) error {
	cat, err := store.Catalog()
	if err != nil {
		return err
	}

	groups := cat.Extras
	title := "Default extras"
	if name := strings.TrimSpace(presetName); name != "" {
		preset, err := store.GetPreset(name)
		if err != nil {
			return err
		}
		groups = preset.Extras
		title = preset.Name + " extras"
	}

	if asJSON {
		return writeJSON(w, groups)
	}
	r := renderer{w: w}
	r.header("%s", title)
	r.extras(groups, cat, false)
	return nil
}

package config

import (
	"sort"

	"github.com/san-kum/sortsim/internal/layout"
	"github.com/san-kum/sortsim/internal/sorting"
)

// Presets holds partial configs keyed by algorithm name then preset name.
// Zero fields leave the base config alone when applied.
var Presets = map[string]map[string]*Config{
	"bogo": {
		"tiny":    {Algorithm: "bogo", Quantity: 5, TickMs: 50},
		"patient": {Algorithm: "bogo", Quantity: 7, TickMs: 10, FinalDelayMs: 10000},
	},
	"bubble": {
		"slow":  {Algorithm: "bubble", Quantity: 20, TickMs: 250},
		"small": {Algorithm: "bubble", Quantity: 10, TickMs: 150},
	},
	"insertion": {
		"slow":  {Algorithm: "insertion", Quantity: 20, TickMs: 250},
		"quick": {Algorithm: "insertion", Quantity: 60, TickMs: 20},
	},
	"merge": {
		"wide":   {Algorithm: "merge", Quantity: 120, TickMs: 15, Bars: layout.Limits{MinWidth: 1, MaxWidth: 1, MaxGap: 1}},
		"chunky": {Algorithm: "merge", Quantity: 16, TickMs: 120, Bars: layout.Limits{MinWidth: 2, MaxWidth: 6, MaxGap: 2}},
	},
	"quick": {
		"dense": {Algorithm: "quick", Quantity: 150, TickMs: 10, Bars: layout.Limits{MinWidth: 1, MaxWidth: 1, MaxGap: 0}},
		"slow":  {Algorithm: "quick", Quantity: 30, TickMs: 200},
	},
}

// GetPreset looks the preset up by any spelling ParseAlgorithm accepts.
func GetPreset(algorithm, preset string) *Config {
	algo, err := sorting.ParseAlgorithm(algorithm)
	if err != nil {
		return nil
	}
	algoPresets, ok := Presets[algo.Name()]
	if !ok {
		return nil
	}
	cfg, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(algorithm string) []string {
	algo, err := sorting.ParseAlgorithm(algorithm)
	if err != nil {
		return nil
	}
	algoPresets, ok := Presets[algo.Name()]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the non-zero fields of p onto c.
func (c *Config) ApplyPreset(p *Config) {
	if p == nil {
		return
	}
	if p.Algorithm != "" {
		c.Algorithm = p.Algorithm
	}
	if p.Quantity != 0 {
		c.Quantity = p.Quantity
	}
	if p.TickMs != 0 {
		c.TickMs = p.TickMs
	}
	if p.FinalDelayMs != 0 {
		c.FinalDelayMs = p.FinalDelayMs
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
	if p.Bars != (layout.Limits{}) {
		c.Bars = p.Bars
	}
	if p.ChromeWidth != 0 {
		c.ChromeWidth = p.ChromeWidth
	}
}

package config

import "sort"

// Preset is a starting number worth looking at.
type Preset struct {
	Start int64
	Note  string
}

var Presets = map[string]Preset{
	"classic":  {Start: 27, Note: "111 steps, peaks at 9232"},
	"97":       {Start: 97, Note: "longest below 100, 118 steps"},
	"871":      {Start: 871, Note: "longest below 1000, 178 steps"},
	"6171":     {Start: 6171, Note: "longest below 10^4, 261 steps"},
	"77031":    {Start: 77031, Note: "longest below 10^5, 350 steps"},
	"837799":   {Start: 837799, Note: "longest below 10^6, 524 steps"},
	"63728127": {Start: 63728127, Note: "longest below 10^8, 949 steps"},
	"power2":   {Start: 1 << 20, Note: "straight halving, 20 steps"},
	"one":      {Start: 1, Note: "already at the fixed point"},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names ordered by start value.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].Start < Presets[names[j]].Start
	})
	return names
}

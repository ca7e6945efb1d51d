package config

import "sort"

// Presets are named starting views for common layouts.
var Presets = map[string]*ViewConfig{
	"default": {Zoom: 1, Width: 804, Stride: 1, Scheme: "colorful"},
	"overview": {
		Zoom: 1, Width: 1024, Stride: 1, Scheme: "category",
	},
	"text": {
		Zoom: 4, Width: 80, Stride: 1, Scheme: "category",
	},
	"closeup": {
		Zoom: 8, Width: 64, Stride: 1, Scheme: "grayscale",
	},
	"words": {
		Zoom: 2, Width: 256, Stride: 2, Scheme: "viridis",
	},
	"dwords": {
		Zoom: 2, Width: 256, Stride: 4, Scheme: "magma",
	},
	"rgb": {
		Zoom: 1, Width: 640, Stride: 3, Scheme: "grayscale",
	},
	"entropy": {
		Zoom: 1, Width: 512, Stride: 1, Scheme: "plasma",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *ViewConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

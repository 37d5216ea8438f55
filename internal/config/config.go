// Package config holds the host-editable rendering options. Options
// parameterize the renderer only; they never change the join,
// classification, or binding behavior.
package config

import (
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Background variant names and their colors.
var variantColors = map[string]string{
	"blue":  "#0B1C33",
	"black": "#000000",
	"grey":  "#1C1F24",
}

const (
	defaultVariant     = "blue"
	minAltitude        = 0.0
	maxAltitude        = 0.2
	defaultAltitude    = 0.01
	defaultLegendSteps = 5
)

// Options is the recognized configuration surface.
type Options struct {
	Background      string  `yaml:"background"`       // named variant: blue | black | grey
	BackgroundColor string  `yaml:"background_color"` // hex string, overrides the variant
	NightSky        bool    `yaml:"night_sky"`
	PolygonAltitude float64 `yaml:"polygon_altitude"` // clamped to [0, 0.2]
	Debug           bool    `yaml:"debug"`
	LegendSteps     int     `yaml:"legend_steps"`
}

// Default returns the options used when no file is supplied.
func Default() Options {
	return Options{
		Background:      defaultVariant,
		NightSky:        true,
		PolygonAltitude: defaultAltitude,
		LegendSteps:     defaultLegendSteps,
	}
}

// Load reads YAML options from path, filling defaults and clamping
// out-of-range values. Unknown keys are ignored.
func Load(path string) (Options, error) {
	o := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, err
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Default(), err
	}
	o.clamp()
	return o, nil
}

func (o *Options) clamp() {
	if _, ok := variantColors[o.Background]; !ok {
		o.Background = defaultVariant
	}
	if o.PolygonAltitude < minAltitude {
		o.PolygonAltitude = minAltitude
	}
	if o.PolygonAltitude > maxAltitude {
		o.PolygonAltitude = maxAltitude
	}
	if o.LegendSteps < 2 {
		o.LegendSteps = defaultLegendSteps
	}
}

// BackgroundHex resolves the effective background color: the explicit
// hex when it parses, else the named variant's color.
func (o Options) BackgroundHex() string {
	if o.BackgroundColor != "" {
		if _, err := colorful.Hex(o.BackgroundColor); err == nil {
			return o.BackgroundColor
		}
	}
	return variantColors[o.Background]
}

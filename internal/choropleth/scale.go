package choropleth

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ScaleKind discriminates the three scale variants.
type ScaleKind int

const (
	ScaleNeutral ScaleKind = iota
	ScaleContinuous
	ScaleDiscrete
)

// Domain records the input space a scale was built over. Min/Max are
// set for continuous scales, Values (first-seen order) for discrete.
type Domain struct {
	Kind   ScaleKind
	Min    float64
	Max    float64
	Values []string
}

// Scale maps a color value to a display color. One Scale instance per
// cycle is shared by the binder and the legend so they never diverge.
type Scale interface {
	Kind() ScaleKind
	Color(v ColorValue) colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad palette hex: " + s)
	}
	return c
}

// Continuous anchors: pale to saturated blue, blended in Lab space.
var (
	continuousLo = mustHex("#DCE9F9")
	continuousHi = mustHex("#1F4E9C")
	neutralColor = mustHex("#5B8DB8")
	highlightHex = "#FFA500"
)

// discretePalette is the fixed categorical palette; assignment cycles
// when the domain outgrows it.
var discretePalette = []colorful.Color{
	mustHex("#4E79A7"),
	mustHex("#F28E2B"),
	mustHex("#E15759"),
	mustHex("#76B7B2"),
	mustHex("#59A14F"),
	mustHex("#EDC948"),
	mustHex("#B07AA1"),
	mustHex("#FF9DA7"),
	mustHex("#9C755F"),
	mustHex("#BAB0AC"),
}

type neutralScale struct{}

func (neutralScale) Kind() ScaleKind                 { return ScaleNeutral }
func (neutralScale) Color(ColorValue) colorful.Color { return neutralColor }

type continuousScale struct {
	min, max float64
}

func (continuousScale) Kind() ScaleKind { return ScaleContinuous }

func (s continuousScale) Color(v ColorValue) colorful.Color {
	if s.max <= s.min {
		// degenerate domain renders flat
		return continuousHi
	}
	t := (v.Num - s.min) / (s.max - s.min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return continuousLo.BlendLab(continuousHi, t).Clamped()
}

type discreteScale struct {
	index map[string]int
}

func (discreteScale) Kind() ScaleKind { return ScaleDiscrete }

func (s discreteScale) Color(v ColorValue) colorful.Color {
	i, ok := s.index[v.Raw]
	if !ok {
		return neutralColor
	}
	return discretePalette[i%len(discretePalette)]
}

// Classify inspects the cycle's color values and builds the matching
// scale. The numeric-vs-categorical branch is decided from element 0
// only; later elements are not re-validated, so a mixed column follows
// whatever the first value looked like.
func Classify(values []ColorValue) (Scale, Domain) {
	if len(values) == 0 {
		return neutralScale{}, Domain{Kind: ScaleNeutral}
	}
	if values[0].IsNum {
		min, max := values[0].Num, values[0].Num
		for _, v := range values[1:] {
			if v.Num < min {
				min = v.Num
			}
			if v.Num > max {
				max = v.Num
			}
		}
		return continuousScale{min: min, max: max},
			Domain{Kind: ScaleContinuous, Min: min, Max: max}
	}
	idx := make(map[string]int)
	var order []string
	for _, v := range values {
		if _, seen := idx[v.Raw]; !seen {
			idx[v.Raw] = len(order)
			order = append(order, v.Raw)
		}
	}
	return discreteScale{index: idx}, Domain{Kind: ScaleDiscrete, Values: order}
}

// HighlightColor is the hover variant color shared with the renderer.
func HighlightColor() string { return highlightHex }

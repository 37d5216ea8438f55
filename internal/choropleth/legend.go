package choropleth

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultLegendSteps is the sample count for continuous legends.
const DefaultLegendSteps = 5

// LegendEntry is one swatch in the legend.
type LegendEntry struct {
	Color colorful.Color
	Label string
}

// BuildLegend derives legend entries from the cycle's scale and domain.
// It must receive the same Scale instance the binder colors with.
// Continuous domains sample steps points evenly across [min, max]
// inclusive; discrete domains emit one entry per value in first-seen
// order, labeled with the raw color value: several rows can share one
// value, so no single measure display name can stand in for it. A
// neutral scale yields nil and the legend stays hidden.
func BuildLegend(scale Scale, domain Domain, steps int) []LegendEntry {
	switch domain.Kind {
	case ScaleContinuous:
		if steps < 2 {
			steps = DefaultLegendSteps
		}
		out := make([]LegendEntry, 0, steps)
		for i := 0; i < steps; i++ {
			v := domain.Min + (domain.Max-domain.Min)*float64(i)/float64(steps-1)
			out = append(out, LegendEntry{
				Color: scale.Color(ColorValue{Num: v, IsNum: true}),
				Label: fmt.Sprintf("%.2f", v),
			})
		}
		return out
	case ScaleDiscrete:
		out := make([]LegendEntry, 0, len(domain.Values))
		for _, v := range domain.Values {
			out = append(out, LegendEntry{
				Color: scale.Color(ColorValue{Raw: v}),
				Label: v,
			})
		}
		return out
	}
	return nil
}

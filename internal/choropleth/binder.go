package choropleth

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"choroglobe/internal/geo"
)

// The uninhabited continent never renders, regardless of payload.
const excludedRegion = "AQ"

// JoinKeyFunc derives the join key from a country display name. The
// default is exact identity; install a normalizing func for a looser
// match without touching the binder.
type JoinKeyFunc func(name string) string

// ExactJoinKey matches names verbatim: no case folding, no diacritics,
// no alternate spellings. Near misses drop silently.
func ExactJoinKey(name string) string { return name }

// BoundFeature is one catalog feature joined to a payload row for the
// current cycle.
type BoundFeature struct {
	Feature      *geo.Feature
	Value        ColorValue // zero value when no color column is bound
	OrderIndex   int        // originating row position, selection key
	TooltipNames []string   // bound measure display names, in order
}

// BoundFeatureSet is the renderable subset of the catalog this cycle.
// It is rebuilt whole on every update, never patched.
type BoundFeatureSet []BoundFeature

// Bind joins catalog features to rows by display name. Features with no
// matching row are dropped from the set; rows with no matching feature
// are ignored without disturbing other rows' indices. When a category
// appears more than once the first row wins.
func Bind(cat geo.Catalog, rows RowSet, key JoinKeyFunc) BoundFeatureSet {
	if key == nil {
		key = ExactJoinKey
	}
	rowByKey := make(map[string]int, rows.Len())
	for i, c := range rows.Categories {
		k := key(c)
		if _, dup := rowByKey[k]; !dup {
			rowByKey[k] = i
		}
	}
	names := make([]string, 0, len(rows.Measures))
	for _, m := range rows.Measures {
		names = append(names, m.DisplayName)
	}
	var out BoundFeatureSet
	for i := range cat.Features {
		f := &cat.Features[i]
		if f.RegionCode == excludedRegion {
			continue
		}
		row, ok := rowByKey[key(f.Name)]
		if !ok {
			continue
		}
		bf := BoundFeature{
			Feature:      f,
			OrderIndex:   row,
			TooltipNames: names,
		}
		if row < len(rows.ColorValues) {
			bf.Value = rows.ColorValues[row]
		}
		out = append(out, bf)
	}
	return out
}

// ColorFunc builds the per-feature color function over one scale. The
// renderer derives hover highlighting from feature identity plus this
// base function; the function itself never special-cases a feature.
func ColorFunc(scale Scale) func(BoundFeature) colorful.Color {
	return func(bf BoundFeature) colorful.Color {
		return scale.Color(bf.Value)
	}
}

// Label assembles the tooltip text block: the country name followed by
// one "name: value" line per bound measure. Out-of-range measure
// lookups render as empty values rather than failing.
func (bf BoundFeature) Label(rows RowSet) string {
	var b strings.Builder
	b.WriteString(bf.Feature.Name)
	for i, name := range bf.TooltipNames {
		b.WriteString("\n")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(rows.MeasureValue(i, bf.OrderIndex))
	}
	return b.String()
}

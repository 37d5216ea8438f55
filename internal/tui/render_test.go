package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choroglobe/internal/choropleth"
	"choroglobe/internal/geo"
)

func TestPointInRing(t *testing.T) {
	ring := [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}

	assert.True(t, pointInRing(2, 2, ring))
	assert.False(t, pointInRing(5, 2, ring))
	assert.False(t, pointInRing(-1, -1, ring))
}

func TestFeatureAtHitTestsBoundSet(t *testing.T) {
	feat := geo.Feature{
		Name:     "Country A",
		Polygons: [][][][2]float64{{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}},
		BBox:     geo.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
	}
	m := Model{
		zoom: 1.0,
		bbox: geo.BBox{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10},
		ctx: choropleth.UpdateContext{
			Bound: choropleth.BoundFeatureSet{{Feature: &feat, OrderIndex: 0}},
		},
	}

	w, h := 40, 20
	// top-right quadrant of the viewport maps inside the feature
	idx := m.featureAt(w*3/4, h/4, w, h)
	require.Equal(t, 0, idx)
	// bottom-left quadrant is open water
	assert.Equal(t, -1, m.featureAt(w/4, h*3/4, w, h))
}

func TestFeatureHexHoverAndSelection(t *testing.T) {
	feat := geo.Feature{Name: "Country A"}
	scale, _ := choropleth.Classify(nil)
	m := Model{
		ctx: choropleth.UpdateContext{
			Scale:  scale,
			Bound:  choropleth.BoundFeatureSet{{Feature: &feat, OrderIndex: 0}},
			Tokens: choropleth.NewTokenList(1, func(i int) choropleth.SelectionToken { return "tok-0" }),
		},
		selected: map[choropleth.SelectionToken]bool{},
		hoverIdx: -1,
	}

	base := m.featureHex(0)

	m.hoverIdx = 0
	assert.Equal(t, choropleth.HighlightColor(), m.featureHex(0))

	// releasing hover restores the bound color function
	m.hoverIdx = -1
	assert.Equal(t, base, m.featureHex(0))

	// host selection lightens, but stays distinct from hover
	m.selected["tok-0"] = true
	assert.NotEqual(t, base, m.featureHex(0))
	assert.NotEqual(t, choropleth.HighlightColor(), m.featureHex(0))
}

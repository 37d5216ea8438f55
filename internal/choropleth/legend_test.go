package choropleth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendContinuousSampling(t *testing.T) {
	scale, domain := Classify(colorValues("10", "20"))

	legend := BuildLegend(scale, domain, 5)

	require.Len(t, legend, 5)
	assert.Equal(t, "10.00", legend[0].Label)
	assert.Equal(t, "12.50", legend[1].Label)
	assert.Equal(t, "15.00", legend[2].Label)
	assert.Equal(t, "17.50", legend[3].Label)
	assert.Equal(t, "20.00", legend[4].Label)
	// legend swatches come from the very scale that colors features
	assert.Equal(t, scale.Color(ColorValue{Num: 10, IsNum: true}), legend[0].Color)
	assert.Equal(t, scale.Color(ColorValue{Num: 20, IsNum: true}), legend[4].Color)
}

func TestLegendStepDefaulting(t *testing.T) {
	scale, domain := Classify(colorValues("0", "1"))

	assert.Len(t, BuildLegend(scale, domain, 0), DefaultLegendSteps)
	assert.Len(t, BuildLegend(scale, domain, 3), 3)
}

func TestLegendDiscreteFirstSeenOrder(t *testing.T) {
	scale, domain := Classify(colorValues("red", "blue", "red"))

	legend := BuildLegend(scale, domain, 5)

	require.Len(t, legend, 2)
	assert.Equal(t, "red", legend[0].Label)
	assert.Equal(t, "blue", legend[1].Label)
	assert.Equal(t, scale.Color(ColorValue{Raw: "red"}), legend[0].Color)
}

func TestLegendSingleDiscreteValue(t *testing.T) {
	scale, domain := Classify(colorValues("red"))

	legend := BuildLegend(scale, domain, 5)
	require.Len(t, legend, 1)
	assert.Equal(t, "red", legend[0].Label)
}

func TestLegendHiddenWithoutColorField(t *testing.T) {
	scale, domain := Classify(nil)

	assert.Nil(t, BuildLegend(scale, domain, 5))
}

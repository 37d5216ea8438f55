package choropleth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCycleContinuousScenario(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleCategory, Values: []string{"Country A", "Country B"}},
		{Role: RoleColor, Values: []string{"10", "20"}},
	}}

	ctx, err := RunCycle(testCatalog(), payload, Options{})
	require.NoError(t, err)

	assert.Equal(t, ScaleContinuous, ctx.Scale.Kind())
	assert.Equal(t, 10.0, ctx.Domain.Min)
	assert.Equal(t, 20.0, ctx.Domain.Max)
	require.Len(t, ctx.Bound, 2)
	assert.Equal(t, 10.0, ctx.Bound[0].Value.Num)
	assert.Equal(t, 20.0, ctx.Bound[1].Value.Num)
	assert.Len(t, ctx.Legend, DefaultLegendSteps)
	assert.Len(t, ctx.Tokens, 2)
}

func TestRunCycleDiscreteScenario(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleCategory, Values: []string{"Country A"}},
		{Role: RoleColor, Values: []string{"red"}},
	}}

	ctx, err := RunCycle(testCatalog(), payload, Options{})
	require.NoError(t, err)

	assert.Equal(t, ScaleDiscrete, ctx.Scale.Kind())
	assert.Equal(t, []string{"red"}, ctx.Domain.Values)
	require.Len(t, ctx.Legend, 1)
	// legend and bound colors come from one scale instance
	assert.Equal(t, ctx.Color(ctx.Bound[0]), ctx.Legend[0].Color)
}

func TestRunCycleNoColorField(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleCategory, Values: []string{"Country A", "Country B"}},
	}}

	ctx, err := RunCycle(testCatalog(), payload, Options{})
	require.NoError(t, err)

	assert.Equal(t, ScaleNeutral, ctx.Scale.Kind())
	assert.Empty(t, ctx.Legend)
	require.Len(t, ctx.Bound, 2)
	// all matched features share one neutral color
	assert.Equal(t, ctx.Color(ctx.Bound[0]), ctx.Color(ctx.Bound[1]))
}

func TestRunCycleMissingCategoryClears(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleColor, Values: []string{"10"}},
	}}

	ctx, err := RunCycle(testCatalog(), payload, Options{})
	assert.ErrorIs(t, err, ErrNoCategories)
	assert.True(t, ctx.Empty())
	assert.Empty(t, ctx.Legend)
	assert.Empty(t, ctx.Tokens)
}

func TestRunCycleUnmatchedRowKeepsIndices(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleCategory, Values: []string{"Country Z", "Country A", "Country B"}},
		{Role: RoleColor, Values: []string{"1", "2", "3"}},
	}}

	ctx, err := RunCycle(testCatalog(), payload, Options{})
	require.NoError(t, err)

	require.Len(t, ctx.Bound, 2)
	assert.Equal(t, 1, ctx.Bound[0].OrderIndex)
	assert.Equal(t, 2, ctx.Bound[1].OrderIndex)
	// token list still spans every row, matched or not
	assert.Len(t, ctx.Tokens, 3)
}

func TestRunCycleClickResolvesToken(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleCategory, Values: []string{"Country A", "Country B"}},
	}}

	ctx, err := RunCycle(testCatalog(), payload, Options{IssueToken: namedToken})
	require.NoError(t, err)

	for _, bf := range ctx.Bound {
		tok, ok := ctx.ResolveClick(bf)
		require.True(t, ok)
		assert.Equal(t, namedToken(bf.OrderIndex), tok)
	}
}

func TestRunCycleDeterministic(t *testing.T) {
	payload := Payload{Columns: []Column{
		{Role: RoleCategory, Values: []string{"Country A", "Country B"}},
		{Role: RoleColor, Values: []string{"10", "20"}},
		{Role: RoleMeasure, DisplayName: "Pop", Values: []string{"5", "9"}},
	}}

	a, err := RunCycle(testCatalog(), payload, Options{})
	require.NoError(t, err)
	b, err := RunCycle(testCatalog(), payload, Options{})
	require.NoError(t, err)

	assert.Equal(t, a.Domain, b.Domain)
	assert.Equal(t, a.Bound, b.Bound)
	assert.Equal(t, a.Legend, b.Legend)
	assert.Equal(t, a.Tokens, b.Tokens)
	for i := range a.Bound {
		assert.Equal(t, a.Color(a.Bound[i]), b.Color(b.Bound[i]))
	}
}

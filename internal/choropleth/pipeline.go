package choropleth

import (
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"choroglobe/internal/geo"
)

// Options parameterize one update cycle.
type Options struct {
	JoinKey     JoinKeyFunc // nil means ExactJoinKey
	LegendSteps int         // <2 means DefaultLegendSteps
	IssueToken  func(orderIndex int) SelectionToken // nil means ordinal tokens
}

// UpdateContext is the derived state of one completed cycle: rows,
// scale, bound set, legend, and tokens, all built together so they
// cannot drift apart. It is a short-lived value produced at the start
// of a cycle and discarded when the next one completes; nothing in it
// is mutated afterwards.
type UpdateContext struct {
	Rows   RowSet
	Scale  Scale
	Domain Domain
	Bound  BoundFeatureSet
	Legend []LegendEntry
	Tokens TokenList
}

// Color applies the cycle's scale to a bound feature.
func (c UpdateContext) Color(bf BoundFeature) colorful.Color {
	return c.Scale.Color(bf.Value)
}

// ResolveClick maps a clicked feature to its selection token.
func (c UpdateContext) ResolveClick(bf BoundFeature) (SelectionToken, bool) {
	return c.Tokens.Resolve(bf.OrderIndex)
}

// Empty reports whether the cycle produced nothing to render.
func (c UpdateContext) Empty() bool { return len(c.Bound) == 0 }

func ordinalToken(i int) SelectionToken {
	return SelectionToken(strconv.Itoa(i))
}

// RunCycle executes one full update cycle: normalize, classify, bind,
// legend, tokens. The classification runs once and the resulting Scale
// instance is shared by the binder and the legend. A payload without a
// category column aborts the cycle with ErrNoCategories and an empty
// context, which the caller renders as a cleared set.
func RunCycle(cat geo.Catalog, payload Payload, opts Options) (UpdateContext, error) {
	rows, err := NormalizeRows(payload)
	if err != nil {
		return UpdateContext{Scale: neutralScale{}}, err
	}
	scale, domain := Classify(rows.ColorValues)
	issue := opts.IssueToken
	if issue == nil {
		issue = ordinalToken
	}
	ctx := UpdateContext{
		Rows:   rows,
		Scale:  scale,
		Domain: domain,
		Bound:  Bind(cat, rows, opts.JoinKey),
		Tokens: NewTokenList(rows.Len(), issue),
	}
	ctx.Legend = BuildLegend(scale, domain, opts.LegendSteps)
	return ctx, nil
}

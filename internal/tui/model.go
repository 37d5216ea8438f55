package tui

import (
	"errors"
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"choroglobe/internal/choropleth"
	"choroglobe/internal/config"
	"choroglobe/internal/geo"
	"choroglobe/internal/host"
)

// PayloadChangedMsg tells the model the host payload changed and a new
// update cycle must run. The watcher posts it via Program.Send, so the
// cycle executes on the update loop like every other mutation.
type PayloadChangedMsg struct{}

// SelectionChangedMsg carries the host's current selection back into
// the renderer; the highlight set is derived from it.
type SelectionChangedMsg struct {
	Tokens []choropleth.SelectionToken
}

type Model struct {
	width  int
	height int

	helpVisible bool
	showLegend  bool
	showRows    bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	catalog     geo.Catalog
	bbox        geo.BBox
	opts        config.Options
	payloadPath string

	// derived state of the latest completed cycle; replaced whole,
	// never patched
	ctx choropleth.UpdateContext

	log    *zap.Logger
	sink   choropleth.SelectionSink
	issuer *host.TokenIssuer

	// host selection state (inbound)
	selected map[choropleth.SelectionToken]bool

	// bound rows table
	tbl table.Model

	// hover state
	hovering bool
	hoverIdx int // index into ctx.Bound, -1 when nothing hovered
}

// New builds the model and runs the first update cycle.
func New(cat geo.Catalog, payloadPath string, opts config.Options, sink choropleth.SelectionSink, log *zap.Logger) Model {
	m := Model{
		helpVisible: true,
		showLegend:  true,
		zoom:        1.0,
		status:      "choroglobe ready",
		catalog:     cat,
		bbox:        cat.BBox,
		opts:        opts,
		payloadPath: payloadPath,
		log:         log,
		sink:        sink,
		issuer:      &host.TokenIssuer{},
		selected:    map[choropleth.SelectionToken]bool{},
		hoverIdx:    -1,
	}
	m.tbl = table.New()
	m = m.reload()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// reload runs one full update cycle against the current payload file.
// All prior derived state is superseded: a failed cycle leaves a
// cleared render, never a stale one.
func (m Model) reload() Model {
	payload, err := host.LoadPayload(m.payloadPath)
	if err != nil {
		m.log.Warn("payload load failed", zap.Error(err))
		m.ctx = choropleth.UpdateContext{}
		m.hoverIdx = -1
		m.status = "payload error: " + err.Error()
		return m
	}
	m.issuer.Reset()
	ctx, err := choropleth.RunCycle(m.catalog, payload, choropleth.Options{
		LegendSteps: m.opts.LegendSteps,
		IssueToken:  m.issuer.Issue,
	})
	m.ctx = ctx
	m.hoverIdx = -1
	m.selected = map[choropleth.SelectionToken]bool{}
	if err != nil {
		if errors.Is(err, choropleth.ErrNoCategories) {
			m.status = "no category column: render cleared"
		} else {
			m.status = "cycle error: " + err.Error()
		}
		m.log.Warn("cycle aborted", zap.Error(err))
		m.refreshRowsTable()
		return m
	}
	m.log.Info("cycle complete",
		zap.Int("rows", ctx.Rows.Len()),
		zap.Int("bound", len(ctx.Bound)),
		zap.Int("legend", len(ctx.Legend)))
	m.status = fmt.Sprintf("bound %d of %d rows", len(ctx.Bound), ctx.Rows.Len())
	m.refreshRowsTable()
	return m
}

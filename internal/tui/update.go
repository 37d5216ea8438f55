package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"choroglobe/internal/choropleth"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// resize only affects viewport sizing; derived cycle state is untouched
		m.width = msg.Width
		m.height = msg.Height
	case PayloadChangedMsg:
		m = m.reload()
	case SelectionChangedMsg:
		m.selected = map[choropleth.SelectionToken]bool{}
		for _, t := range msg.Tokens {
			m.selected[t] = true
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "r":
			m = m.reload()
		case "a":
			m.showRows = !m.showRows
			if m.showRows {
				m.refreshRowsTable()
			}
		case "g":
			m.showLegend = !m.showLegend
		case "n":
			m.opts.NightSky = !m.opts.NightSky
			m.status = fmt.Sprintf("night sky: %v", m.opts.NightSky)
		case "h":
			m.helpVisible = !m.helpVisible
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// the rows table covers the map, so hit testing is suspended
		// while it is up
		if m.showRows {
			m.hovering = false
			m.hoverIdx = -1
			return m, nil
		}
		mapOriginX, mapOriginY, mapWidth, mapHeight := m.mapArea()
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverIdx = m.featureAt(cx-mapOriginX, cy-mapOriginY, mapWidth, mapHeight)
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				return m.clickHovered()
			}
		} else {
			m.hovering = false
			m.hoverIdx = -1
		}
	}
	return m, nil
}

// clickHovered resolves the hovered feature's row to its selection
// token and issues a single selection request to the host. The demo
// host echoes the selection back as a SelectionChangedMsg.
func (m Model) clickHovered() (tea.Model, tea.Cmd) {
	if m.hoverIdx < 0 || m.hoverIdx >= len(m.ctx.Bound) {
		return m, nil
	}
	bf := m.ctx.Bound[m.hoverIdx]
	token, ok := m.ctx.ResolveClick(bf)
	if !ok {
		return m, nil
	}
	if err := m.sink.Select(token); err != nil {
		m.log.Warn("selection request failed", zap.Error(err))
		m.status = "selection failed"
		return m, nil
	}
	m.status = "selected " + bf.Feature.Name
	return m, func() tea.Msg {
		return SelectionChangedMsg{Tokens: []choropleth.SelectionToken{token}}
	}
}

// mapArea mirrors the View layout so mouse coordinates land on the
// same cells the renderer drew.
func (m Model) mapArea() (originX, originY, w, h int) {
	legendWidth := 0
	if m.showLegend && len(m.ctx.Legend) > 0 {
		legendWidth = legendPanelWidth
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	mapWidth := contentWidth - legendWidth
	if legendWidth > 0 {
		mapWidth--
	}
	if mapWidth < 10 {
		mapWidth = 10
	}
	return 0, headerHeight, mapWidth, contentHeight
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const legendPanelWidth = 24

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// mapArea is the single source of layout truth: the body renders at
	// exactly the origin mouse handling hit-tests against.
	_, _, mapWidth, mapHeight := m.mapArea()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" choroglobe ─ terminal choropleth globe ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Map viewport
	mapW := max(8, mapWidth)
	mapH := max(4, mapHeight)
	var mapView string
	if m.showRows {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		rowsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, rowsBox)
	} else {
		bg := lipgloss.NewStyle().Background(lipgloss.Color(m.opts.BackgroundHex()))
		mapView = bg.Width(mapWidth).Height(mapHeight).Render(m.renderMap(mapW, mapH))
	}

	// Legend panel (hidden whenever the cycle produced no legend)
	var legend string
	if m.showLegend && len(m.ctx.Legend) > 0 {
		legend = lipgloss.NewStyle().Width(legendPanelWidth).Render(m.renderLegend())
	}

	// Body row
	var body string
	if legend != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", legend)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderLegend() string {
	var b strings.Builder
	b.WriteString(legendTitle.Render("Legend"))
	for _, e := range m.ctx.Legend {
		b.WriteString("\n")
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color.Hex())).Render("██")
		b.WriteString(sw)
		b.WriteString(" ")
		b.WriteString(e.Label)
	}
	return b.String()
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"a rows",
		"g legend",
		"n sky",
		"r reload",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

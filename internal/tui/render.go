package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"choroglobe/internal/choropleth"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// drawFeature projects one bound feature's polygons and fills them.
// lift raises the feature by micro rows, used for the hover affordance.
func (m Model) drawFeature(br *brailleBuf, bf choropleth.BoundFeature, owner int16, w, h, lift int) {
	for _, poly := range bf.Feature.Polygons {
		var ringsMic [][][2]int
		for _, ring := range poly {
			var sm [][2]int
			for _, p := range ring {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				sm = append(sm, [2]int{mx, my - lift})
			}
			if len(sm) >= 3 {
				ringsMic = append(ringsMic, sm)
			}
		}
		if len(ringsMic) == 0 {
			continue
		}
		// fill using even-odd rule per scanline on outer ring (microgrid, holes ignored)
		outerMic := ringsMic[0]
		hMic := h * 4
		for yMic := 0; yMic < hMic; yMic++ {
			var xs []int
			for i := 0; i < len(outerMic); i++ {
				a := outerMic[i]
				b := outerMic[(i+1)%len(outerMic)]
				if a[1] == b[1] { // horizontal edge: skip
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
					t := float64(yMic-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
			if len(xs) >= 2 {
				sort.Ints(xs)
				for i := 0; i+1 < len(xs); i += 2 {
					xstart, xend := xs[i], xs[i+1]
					if xstart > xend {
						xstart, xend = xend, xstart
					}
					for xMic := max(0, xstart); xMic <= xend; xMic++ {
						br.setPixel(xMic, yMic, owner)
					}
				}
			}
		}
		// draw edges (high-res)
		for _, r := range ringsMic {
			for i := 0; i < len(r); i++ {
				a := r[i]
				b := r[(i+1)%len(r)]
				br.drawLineMicro(a[0], a[1], b[0], b[1], owner)
			}
		}
	}
}

// renderMap draws the bound feature set. Every feature gets its scale
// color; the hovered feature alone is drawn last, lifted by the
// altitude option and restyled with the highlight variant, so releasing
// hover falls straight back to the base color function.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	for i, bf := range m.ctx.Bound {
		if i == m.hoverIdx {
			continue
		}
		m.drawFeature(br, bf, int16(i), w, h, 0)
	}
	if m.hoverIdx >= 0 && m.hoverIdx < len(m.ctx.Bound) {
		lift := int(m.opts.PolygonAltitude * float64(h*4))
		m.drawFeature(br, m.ctx.Bound[m.hoverIdx], int16(m.hoverIdx), w, h, lift)
	}

	styleFor := make(map[string]lipgloss.Style)
	cellStyle := func(hex string) lipgloss.Style {
		s, ok := styleFor[hex]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			styleFor[hex] = s
		}
		return s
	}

	ov := m.tooltipOverlay(w, h)

	var out []string
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			if ov != nil && y >= ov.y && y < ov.y+len(ov.lines) && x == ov.x {
				row := ov.lines[y-ov.y]
				line.WriteString(tooltipStyle.Render(string(row)))
				x += len(row) - 1
				continue
			}
			r := br.cellRune(x, y)
			if r == ' ' {
				if m.opts.NightSky && starAt(x, y) {
					line.WriteString(starStyle.Render("·"))
				} else {
					line.WriteRune(' ')
				}
				continue
			}
			owner := br.ownerAt(x, y)
			line.WriteString(cellStyle(m.featureHex(owner)).Render(string(r)))
		}
		out = append(out, line.String())
	}
	return strings.Join(out, "\n")
}

// tooltipOverlay lays the hover tooltip out as a rune grid spliced into
// the map cells, so it covers the map without moving it. Nil when no
// feature is hovered.
type tooltipBox struct {
	x, y  int
	lines [][]rune
}

func (m Model) tooltipOverlay(w, h int) *tooltipBox {
	if !m.hovering || m.hoverIdx < 0 || m.hoverIdx >= len(m.ctx.Bound) {
		return nil
	}
	label := m.ctx.Bound[m.hoverIdx].Label(m.ctx.Rows)
	if label == "" || w < 20 {
		return nil
	}
	inner := min(44, w-6)
	var rows [][]rune
	for _, ln := range strings.Split(label, "\n") {
		rs := []rune(ln)
		for len(rs) > inner {
			rows = append(rows, rs[:inner])
			rs = rs[inner:]
		}
		rows = append(rows, rs)
	}
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	pad := func(r []rune) []rune {
		out := []rune{'│', ' '}
		out = append(out, r...)
		for i := len(r); i < width; i++ {
			out = append(out, ' ')
		}
		return append(out, ' ', '│')
	}
	bar := make([]rune, width+2)
	for i := range bar {
		bar[i] = '─'
	}
	top := append(append([]rune{'╭'}, bar...), '╮')
	bottom := append(append([]rune{'╰'}, bar...), '╯')

	lines := [][]rune{top}
	for _, r := range rows {
		lines = append(lines, pad(r))
	}
	lines = append(lines, bottom)

	y := (h - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	return &tooltipBox{x: 1, y: y, lines: lines}
}

// featureHex resolves the display color for a feature index: highlight
// when hovered, a lightened variant when host-selected, else the base
// color function.
func (m Model) featureHex(owner int) string {
	if owner < 0 || owner >= len(m.ctx.Bound) {
		return "#FFFFFF"
	}
	if owner == m.hoverIdx {
		return choropleth.HighlightColor()
	}
	bf := m.ctx.Bound[owner]
	c := m.ctx.Color(bf)
	if tok, ok := m.ctx.ResolveClick(bf); ok && m.selected[tok] {
		c = c.BlendLab(white, 0.4).Clamped()
	}
	return c.Hex()
}

// starAt sprinkles a deterministic sparse starfield over empty cells.
func starAt(x, y int) bool {
	return (x*73+y*151)%127 == 0
}

// featureAt hit-tests a map cell against the bound set in lon/lat
// space using the even-odd rule on outer rings, matching the fill.
func (m Model) featureAt(cx, cy, w, h int) int {
	lon, lat, ok := m.cellToLonLat(cx, cy, w, h)
	if !ok {
		return -1
	}
	for i, bf := range m.ctx.Bound {
		bb := bf.Feature.BBox
		if lon < bb.MinX || lon > bb.MaxX || lat < bb.MinY || lat > bb.MaxY {
			continue
		}
		for _, poly := range bf.Feature.Polygons {
			if len(poly) == 0 {
				continue
			}
			if pointInRing(lon, lat, poly[0]) {
				return i
			}
		}
	}
	return -1
}

func pointInRing(lon, lat float64, ring [][2]float64) bool {
	in := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > lat) != (yj > lat) &&
			lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}

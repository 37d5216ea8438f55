package tui

// brailleBuf is a 2x4 microgrid per terminal cell. Each cell also
// tracks which bound feature last drew into it, so the composited map
// can be colored per feature and hover hit-tested per cell.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	owner [][]int16 // per-cell feature index, -1 when empty
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	o := make([][]int16, h)
	for i := range m {
		m[i] = make([]uint8, w)
		o[i] = make([]int16, w)
		for j := range o[i] {
			o[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, owner: o}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, owner int16) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.owner[cy][cx] = owner
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, owner int16) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, owner)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cellRune returns the braille glyph for a cell, ' ' when empty.
func (b *brailleBuf) cellRune(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// ownerAt returns the feature index owning a cell, -1 when empty.
func (b *brailleBuf) ownerAt(x, y int) int {
	if y < 0 || y >= b.h || x < 0 || x >= b.w {
		return -1
	}
	return int(b.owner[y][x])
}

package tui

// layer decides which color a braille cell is styled with. When
// strokes overlap in one cell, the higher layer wins.
type layer uint8

const (
	layerNone layer = iota
	layerDim        // base polygon
	layerMain       // selected variant, or the tangent in normal mode
	layerBad        // naively transformed normal
	layerGood       // inverse-transpose normal
)

// brailleBuf is a 2x4-per-cell microgrid that renders to braille runes.
type brailleBuf struct {
	w, h   int // in cells
	mask   [][]uint8
	layers [][]layer
}

func newBrailleBuf(w, h int) *brailleBuf {
	mask := make([][]uint8, h)
	layers := make([][]layer, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		layers[i] = make([]layer, w)
	}
	return &brailleBuf{w: w, h: h, mask: mask, layers: layers}
}

// braille dot bit for a micro position within a cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell).
func (b *brailleBuf) setPixel(mx, my int, l layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.mask[cy][cx] |= brailleBits[ry][rx]
	if l > b.layers[cy][cx] {
		b.layers[cy][cx] = l
	}
}

// line draws a micro-grid line using Bresenham.
func (b *brailleBuf) line(x0, y0, x1, y1 int, l layer) {
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
		b.setPixel(x0, y0, l)
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

// cell returns the braille rune and layer at cell coords. Empty cells
// yield a space and layerNone.
func (b *brailleBuf) cell(x, y int) (rune, layer) {
	mask := b.mask[y][x]
	if mask == 0 {
		return ' ', layerNone
	}
	return rune(0x2800 + int(mask)), b.layers[y][x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrailleBuf_SetPixel(t *testing.T) {
	br := newBrailleBuf(2, 1)

	// top-left micro pixel of cell (0,0)
	br.setPixel(0, 0, layerDim)
	r, l := br.cell(0, 0)
	require.Equal(t, rune(0x2801), r)
	require.Equal(t, layerDim, l)

	// bottom-right micro pixel of cell (1,0)
	br.setPixel(3, 3, layerMain)
	r, l = br.cell(1, 0)
	require.Equal(t, rune(0x2880), r)
	require.Equal(t, layerMain, l)

	// untouched cells render as spaces
	br2 := newBrailleBuf(1, 1)
	r, l = br2.cell(0, 0)
	require.Equal(t, ' ', r)
	require.Equal(t, layerNone, l)
}

func TestBrailleBuf_HigherLayerWins(t *testing.T) {
	br := newBrailleBuf(1, 1)
	br.setPixel(0, 0, layerGood)
	br.setPixel(1, 0, layerDim)

	_, l := br.cell(0, 0)
	require.Equal(t, layerGood, l)
}

func TestBrailleBuf_OutOfBounds(t *testing.T) {
	br := newBrailleBuf(2, 2)
	// never panics
	br.setPixel(-1, 0, layerDim)
	br.setPixel(0, -3, layerDim)
	br.setPixel(100, 100, layerDim)
}

func TestBrailleBuf_Line(t *testing.T) {
	br := newBrailleBuf(4, 1)
	br.line(0, 0, 7, 0, layerMain)
	for x := 0; x < 4; x++ {
		r, l := br.cell(x, 0)
		require.NotEqual(t, ' ', r, "cell %d", x)
		require.Equal(t, layerMain, l)
	}
}

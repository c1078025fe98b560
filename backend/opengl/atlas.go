package opengl

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tillpoint/gui"
)

// Glyph cell size of the atlas. It matches gui.Style CharWidth and
// CharHeight at FontScale 1.
const (
	cellWidth  = 8
	cellHeight = 16
)

// buildAtlas rasterizes printable ASCII 32-127 into an alpha image laid out
// as gui.AtlasCols x gui.AtlasRows cells, the grid DrawList.AddText
// addresses.
func buildAtlas(face font.Face) *image.Alpha {
	atlas := image.NewAlpha(image.Rect(0, 0, gui.AtlasCols*cellWidth, gui.AtlasRows*cellHeight))

	metrics := face.Metrics()
	// Center the face vertically in the cell.
	lineH := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := (cellHeight-lineH)/2 + metrics.Ascent.Ceil()

	for ch := rune(32); ch < 128; ch++ {
		cell := int(ch - 32)
		x := (cell % gui.AtlasCols) * cellWidth
		y := (cell / gui.AtlasCols) * cellHeight

		advance, ok := face.GlyphAdvance(ch)
		if !ok {
			continue
		}
		// Glyphs narrower than the cell are centered in it.
		left := (cellWidth - advance.Ceil()) / 2
		dot := fixed.P(x+max(left, 0), y+baseline)

		dr, mask, maskp, _, ok := face.Glyph(dot, ch)
		if !ok {
			continue
		}
		clipped := dr.Intersect(image.Rect(x, y, x+cellWidth, y+cellHeight))
		maskp = maskp.Add(clipped.Min.Sub(dr.Min))
		draw.DrawMask(atlas, clipped, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	}
	return atlas
}

// defaultAtlas is the atlas of the built-in 7x13 face.
func defaultAtlas() *image.Alpha {
	return buildAtlas(basicfont.Face7x13)
}

package opengl

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tillpoint/gui"
)

func cellInk(atlas *image.Alpha, ch rune) int {
	cell := int(ch - 32)
	x0 := (cell % gui.AtlasCols) * cellWidth
	y0 := (cell / gui.AtlasCols) * cellHeight
	ink := 0
	for y := y0; y < y0+cellHeight; y++ {
		for x := x0; x < x0+cellWidth; x++ {
			if atlas.AlphaAt(x, y).A > 0 {
				ink++
			}
		}
	}
	return ink
}

func TestDefaultAtlasLayout(t *testing.T) {
	atlas := defaultAtlas()
	require.Equal(t, image.Rect(0, 0, 128, 96), atlas.Bounds())

	require.Zero(t, cellInk(atlas, ' '))
	for _, ch := range "AZaz09#?" {
		require.Positive(t, cellInk(atlas, ch), "glyph %q is empty", ch)
	}
}

func TestOrthoMatrixMapsCorners(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)
	// Column-major: x' = m[0]*x + m[12], y' = m[5]*y + m[13].
	require.InDelta(t, -1, m[0]*0+m[12], 1e-6)
	require.InDelta(t, 1, m[0]*800+m[12], 1e-6)
	require.InDelta(t, 1, m[5]*0+m[13], 1e-6)
	require.InDelta(t, -1, m[5]*600+m[13], 1e-6)
}

func TestScissorBox(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 220}, 600)
	require.True(t, ok)
	require.Equal(t, [4]int32{10, 380, 100, 200}, [4]int32{x, y, w, h})

	_, _, _, _, ok = scissorBox([4]float32{10, 700, 110, 800}, 600)
	require.False(t, ok, "rectangle below the framebuffer")
}

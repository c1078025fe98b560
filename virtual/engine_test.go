package virtual_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/gui/virtual"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func newFixedEngine(t *testing.T, n int, opts ...virtual.Option) *virtual.Engine[int] {
	t.Helper()
	eng, err := virtual.NewEngine(makeItems(n), virtual.FixedHeight(50), opts...)
	require.NoError(t, err)
	return eng
}

func TestEngine_FixedHeightAtTop(t *testing.T) {
	eng := newFixedEngine(t, 100)
	eng.Resize(600)

	// Item 11 ends exactly at 600, which is not past the viewport edge, so
	// the raw end is item 12. A closed-form floor(viewport/height) end would
	// give 11 and an overscanned 14; the walk over bottoms gives 15.
	require.Equal(t, virtual.Range{Start: 0, End: 15}, eng.Range())
	require.Equal(t, virtual.StateReady, eng.State())
}

func TestEngine_FixedHeightScrolled(t *testing.T) {
	eng := newFixedEngine(t, 100)
	eng.Resize(600)
	eng.Scroll(500)
	eng.Frame()

	require.Equal(t, virtual.Range{Start: 7, End: 25}, eng.Range())
}

func TestEngine_BoundaryItemIsFirstCounted(t *testing.T) {
	eng := newFixedEngine(t, 100, virtual.WithOverscan(0))
	eng.Resize(100)
	eng.Scroll(150)
	eng.Frame()

	// Item 3 starts exactly at 150.
	require.Equal(t, 3, eng.Range().Start)
	require.Equal(t, 5, eng.Range().End)
}

func TestEngine_ScrollPastEndKeepsLastItem(t *testing.T) {
	eng := newFixedEngine(t, 10, virtual.WithOverscan(1))
	eng.Resize(100)
	eng.Scroll(10_000)
	eng.Frame()

	require.Equal(t, virtual.Range{Start: 8, End: 9}, eng.Range())
}

func TestEngine_EmptyCollection(t *testing.T) {
	eng, err := virtual.NewEngine([]string{}, virtual.FixedHeight(20))
	require.NoError(t, err)
	eng.Resize(300)

	require.True(t, eng.Range().Empty())
	require.Empty(t, eng.Mount())
	require.Zero(t, eng.TotalHeight())
	require.Zero(t, eng.ScrollToIndex(3, virtual.AlignStart))
}

func TestEngine_AutoHeightMeasured(t *testing.T) {
	items := makeItems(50)
	eng, err := virtual.NewEngine(items, virtual.DynamicHeight(func(i int) float32 {
		if i == 5 {
			return 0
		}
		return 40
	}))
	require.NoError(t, err)
	eng.Resize(200)

	placements := eng.Mount()
	require.Len(t, placements, 10)
	auto := placements[5]
	require.Equal(t, 5, auto.Index)
	require.True(t, auto.Auto)
	require.True(t, auto.Measure)
	require.InDelta(t, 200, eng.OffsetOf(6), 0.001)

	var seen []virtual.Measurement
	eng.Events.Measured.Hook(func(m virtual.Measurement) { seen = append(seen, m) })

	before := eng.Recalculations()
	eng.ReportMeasurement(5, 80)

	require.Len(t, seen, 1)
	require.Equal(t, "5", seen[0].Key)
	require.Equal(t, float32(80), eng.HeightOf(5))
	require.True(t, eng.IsMeasured(5))
	require.Equal(t, before+1, eng.Recalculations(), "height correction recomputes eagerly")
	require.InDelta(t, 280, eng.OffsetOf(6), 0.001)
	require.InDelta(t, 440, eng.OffsetOf(10), 0.001)

	eng.Scroll(300)
	eng.Frame()
	require.Equal(t, virtual.Range{Start: 3, End: 14}, eng.Range())
}

func TestEngine_SameMeasurementDoesNotRecompute(t *testing.T) {
	eng, err := virtual.NewEngine(makeItems(20), virtual.DynamicHeight(func(int) float32 { return 30 }))
	require.NoError(t, err)
	eng.Resize(100)

	before := eng.Recalculations()
	eng.ReportMeasurement(2, 30.2)
	eng.ReportMeasurement(2, 30)
	require.Equal(t, before, eng.Recalculations())
}

func TestEngine_FixedSizingIgnoresMeasurements(t *testing.T) {
	eng := newFixedEngine(t, 20)
	eng.Resize(100)

	eng.ReportMeasurement(3, 400)
	require.Equal(t, float32(50), eng.HeightOf(3))
	require.False(t, eng.IsMeasured(3))
}

func TestEngine_NegativeMeasurementClamped(t *testing.T) {
	eng, err := virtual.NewEngine(makeItems(5), virtual.DynamicHeight(func(int) float32 { return 10 }))
	require.NoError(t, err)
	eng.Resize(100)

	eng.ReportMeasurement(1, -25)
	require.Zero(t, eng.HeightOf(1))
}

func TestEngine_UnknownMeasurementDropped(t *testing.T) {
	eng, err := virtual.NewEngine(makeItems(5), virtual.DynamicHeight(func(int) float32 { return 10 }))
	require.NoError(t, err)
	eng.Resize(100)

	fired := 0
	eng.Events.Measured.Hook(func(virtual.Measurement) { fired++ })
	eng.ReportMeasurement(7, 25)
	eng.ReportMeasurement(-1, 25)
	require.Zero(t, fired)
}

func TestEngine_ScrollCoalescing(t *testing.T) {
	var offsets []float32
	eng := newFixedEngine(t, 1000, virtual.WithScrollCallback(func(offset float32) {
		offsets = append(offsets, offset)
	}))
	eng.Resize(400)
	require.Equal(t, 1, eng.Recalculations())

	for i := 1; i <= 10; i++ {
		eng.Scroll(float32(i * 37))
	}
	require.Equal(t, 1, eng.Recalculations(), "scrolls wait for the next frame")
	require.Len(t, offsets, 10, "raw offsets are forwarded immediately")
	require.Equal(t, float32(370), offsets[9])

	require.Equal(t, 1, eng.Frame())
	require.Equal(t, 2, eng.Recalculations())
	require.Zero(t, eng.Frame())

	// 370 falls inside item 7.
	require.Equal(t, 4, eng.Range().Start)
}

func TestEngine_SharedScheduler(t *testing.T) {
	queue := virtual.NewFrameQueue()
	a := newFixedEngine(t, 100, virtual.WithScheduler(queue))
	b := newFixedEngine(t, 100, virtual.WithScheduler(queue))
	a.Resize(200)
	b.Resize(200)

	a.Scroll(100)
	a.Scroll(200)
	b.Scroll(300)
	require.Equal(t, 2, queue.Pending())
	require.Zero(t, a.Frame(), "an external scheduler is flushed by its owner")

	require.Equal(t, 2, queue.Flush())
	require.Equal(t, 1, a.Range().Start)
	require.Equal(t, 3, b.Range().Start)
}

func TestEngine_ResizeRecomputesImmediately(t *testing.T) {
	eng := newFixedEngine(t, 100, virtual.WithOverscan(0))
	eng.Resize(100)
	require.Equal(t, virtual.Range{Start: 0, End: 2}, eng.Range())

	eng.Resize(300)
	require.Equal(t, virtual.Range{Start: 0, End: 6}, eng.Range())
	require.Equal(t, float32(300), eng.ViewportHeight())
}

func TestEngine_IdleUntilResize(t *testing.T) {
	var offsets []float32
	eng := newFixedEngine(t, 100, virtual.WithScrollCallback(func(o float32) { offsets = append(offsets, o) }))

	eng.Scroll(500)
	eng.ReportMeasurement(3, 10)
	require.Zero(t, eng.Frame())
	require.Equal(t, virtual.StateIdle, eng.State())
	require.True(t, eng.Range().Empty())
	require.Nil(t, eng.Mount())
	require.Equal(t, []float32{500}, offsets)

	eng.Resize(600)
	require.Equal(t, virtual.Range{Start: 7, End: 25}, eng.Range(), "stored scroll is used once the viewport is known")
}

func TestEngine_StateTransitions(t *testing.T) {
	items := makeItems(30)
	eng, err := virtual.NewEngine(items, virtual.FixedHeight(20))
	require.NoError(t, err)

	var states []virtual.State
	eng.Events.StateChanged.Hook(func(s virtual.State) { states = append(states, s) })

	eng.Resize(100)
	eng.Scroll(40)
	eng.Frame()
	eng.Resize(120)
	eng.SetItems(makeItems(30))
	eng.Unmount()

	require.Equal(t, []virtual.State{
		virtual.StateMeasuring,
		virtual.StateReady,
		virtual.StateMeasuring,
		virtual.StateReady,
		virtual.StateUnmounted,
	}, states)
}

func TestEngine_SetItemsInvalidatesCache(t *testing.T) {
	calls := map[int]int{}
	sizing := virtual.DynamicHeight(func(i int) float32 {
		calls[i]++
		return 25
	})
	items := makeItems(40)
	eng, err := virtual.NewEngine(items, sizing)
	require.NoError(t, err)
	eng.Resize(100)

	eng.HeightOf(0)
	eng.HeightOf(0)
	require.Equal(t, 1, calls[0], "estimates are cached")

	eng.ReportMeasurement(1, 90)
	require.True(t, eng.IsMeasured(1))

	recalcs := eng.Recalculations()
	eng.SetItems(items)
	require.Equal(t, recalcs, eng.Recalculations(), "same collection is not a replacement")

	eng.SetItems(makeItems(40))
	require.Equal(t, recalcs+1, eng.Recalculations())
	require.False(t, eng.IsMeasured(1))
	require.Equal(t, float32(25), eng.HeightOf(1))
	require.Equal(t, 2, calls[0], "policy runs again after replacement")
}

func TestEngine_SetItemsShrinks(t *testing.T) {
	eng := newFixedEngine(t, 100)
	eng.Resize(200)
	eng.Scroll(4000)
	eng.Frame()

	eng.SetItems(makeItems(5))
	require.Equal(t, virtual.Range{Start: 1, End: 4}, eng.Range())
	for _, p := range eng.Mount() {
		require.Less(t, p.Index, 5)
	}
}

func TestEngine_Unmount(t *testing.T) {
	scrolled := 0
	eng := newFixedEngine(t, 100, virtual.WithScrollCallback(func(float32) { scrolled++ }))
	eng.Resize(300)
	eng.Scroll(100)
	require.Equal(t, 1, scrolled)

	eng.Unmount()
	require.Equal(t, virtual.StateUnmounted, eng.State())
	require.Zero(t, eng.Frame(), "pending scroll work is cancelled")

	recalcs := eng.Recalculations()
	eng.Scroll(200)
	eng.Resize(50)
	eng.SetItems(makeItems(3))
	eng.ReportMeasurement(0, 10)
	eng.Unmount()

	require.Equal(t, 1, scrolled)
	require.Equal(t, recalcs, eng.Recalculations())
	require.Nil(t, eng.Mount())
	require.Equal(t, virtual.StateUnmounted, eng.State())
}

func TestEngine_MeasuredHookRemovedOnUnmount(t *testing.T) {
	eng, err := virtual.NewEngine(makeItems(10), virtual.DynamicHeight(func(int) float32 { return 10 }))
	require.NoError(t, err)
	eng.Resize(50)
	eng.Unmount()

	// Triggering the event directly must not reach the engine any more.
	eng.Events.Measured.Trigger(virtual.Measurement{Index: 2, Height: 99})
	require.False(t, eng.IsMeasured(2))
}

func TestEngine_MountMeasureFlags(t *testing.T) {
	eng := newFixedEngine(t, 200, virtual.WithOverscan(0), virtual.WithMeasureMargin(0))
	eng.Resize(100)

	first := eng.Mount()
	require.Len(t, first, 3)
	for _, p := range first {
		require.True(t, p.Measure, "first mount measures %s", p.Key)
	}
	for _, p := range eng.Mount() {
		require.False(t, p.Measure, "still mounted, no remeasure for %s", p.Key)
	}

	eng.Scroll(5000)
	eng.Frame()
	eng.Mount()
	eng.Scroll(0)
	eng.Frame()
	for _, p := range eng.Mount() {
		require.True(t, p.Measure, "remounted %s is measured again", p.Key)
	}
}

func TestEngine_KeyFunc(t *testing.T) {
	type order struct{ ref string }
	orders := []order{{"A-1"}, {"A-2"}, {"A-3"}}
	eng, err := virtual.NewEngine(orders, virtual.FixedHeight(10),
		virtual.WithKeyFunc(func(o order, _ int) string { return o.ref }))
	require.NoError(t, err)
	eng.Resize(100)

	keys := []string{}
	for _, p := range eng.Mount() {
		keys = append(keys, p.Key)
	}
	require.Equal(t, []string{"A-1", "A-2", "A-3"}, keys)
	require.Equal(t, "A-2", eng.Key(1))
}

func TestNewEngine_Errors(t *testing.T) {
	_, err := virtual.NewEngine(makeItems(3), virtual.FixedHeight(0))
	require.ErrorIs(t, err, virtual.ErrInvalidSizing)

	_, err = virtual.NewEngine(makeItems(3), virtual.DynamicHeight(nil))
	require.ErrorIs(t, err, virtual.ErrInvalidSizing)

	_, err = virtual.NewEngine(makeItems(3), virtual.FixedHeight(10), virtual.WithOverscan(-1))
	require.ErrorIs(t, err, virtual.ErrInvalidOverscan)

	_, err = virtual.NewEngine(makeItems(3), virtual.FixedHeight(10),
		virtual.WithKeyFunc(func(s string, _ int) string { return s }))
	require.ErrorIs(t, err, virtual.ErrKeyFuncType)
}

func TestEngine_ScrollToIndex(t *testing.T) {
	eng := newFixedEngine(t, 100)
	eng.Resize(200)

	require.Equal(t, float32(1000), eng.ScrollToIndex(20, virtual.AlignStart))
	eng.Frame()
	require.True(t, eng.Range().Contains(20))

	require.Equal(t, float32(1000), eng.ScrollToIndex(21, virtual.AlignAuto), "visible item does not move")
	require.Equal(t, float32(900), eng.ScrollToIndex(21, virtual.AlignEnd))
	require.Equal(t, float32(975), eng.ScrollToIndex(21, virtual.AlignCenter))
	require.Equal(t, float32(200), eng.ScrollToIndex(4, virtual.AlignAuto))
	require.Equal(t, eng.MaxScroll(), eng.ScrollToIndex(99, virtual.AlignStart), "clamped to the end")
	require.Equal(t, float32(4800), eng.MaxScroll())
	require.Zero(t, eng.ScrollToIndex(-5, virtual.AlignCenter))
}

// randomHeights returns a deterministic height table with some zero entries.
func randomHeights(seed uint64, n int) []float32 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float32, n)
	for i := range out {
		if r.IntN(10) == 0 {
			continue
		}
		out[i] = float32(10 + r.IntN(120))
	}
	return out
}

func TestEngine_RangeProperties(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		heights := randomHeights(seed, 300)
		for _, indexed := range []bool{false, true} {
			opts := []virtual.Option{virtual.WithOverscan(int(seed % 4))}
			if indexed {
				opts = append(opts, virtual.WithOffsetIndex())
			}
			eng, err := virtual.NewEngine(makeItems(len(heights)),
				virtual.DynamicHeight(func(i int) float32 { return heights[i] }), opts...)
			require.NoError(t, err)

			viewport := float32(150 + seed*20)
			eng.Resize(viewport)
			total := eng.TotalHeight()

			tops := make([]float32, len(heights))
			var acc float32
			for i, h := range heights {
				tops[i] = acc
				acc += h
			}

			for s := float32(0); s <= total-viewport; s += 37 {
				eng.Scroll(s)
				eng.Frame()
				rng := eng.Range()

				require.GreaterOrEqual(t, rng.Start, 0)
				require.LessOrEqual(t, rng.Start, rng.End)
				require.LessOrEqual(t, rng.End, len(heights)-1)

				// The item covering s is mounted.
				for i, top := range tops {
					if top <= s && s < top+heights[i] {
						require.True(t, rng.Contains(i), "seed %d scroll %v: item %d missing from %v", seed, s, i, rng)
						break
					}
				}

				again := eng.Recalculations()
				eng.Scroll(s)
				eng.Frame()
				require.Equal(t, rng, eng.Range(), "idempotent")
				require.Equal(t, again+1, eng.Recalculations())
			}
		}
	}
}

func TestEngine_HeightCorrectionConverges(t *testing.T) {
	heights := randomHeights(7, 120)
	for _, indexed := range []bool{false, true} {
		var opts []virtual.Option
		if indexed {
			opts = append(opts, virtual.WithOffsetIndex())
		}
		eng, err := virtual.NewEngine(makeItems(len(heights)),
			virtual.DynamicHeight(func(i int) float32 { return heights[i] }), opts...)
		require.NoError(t, err)
		eng.Resize(400)
		eng.TotalHeight()

		corrected := map[int]float32{10: 333, 55: 0, 56: 12, 119: 75}
		for index, h := range corrected {
			eng.ReportMeasurement(index, h)
		}

		var acc float32
		for i := range heights {
			assert.InDelta(t, acc, eng.OffsetOf(i), 0.01, "offset of %d (indexed=%v)", i, indexed)
			want := heights[i]
			if h, ok := corrected[i]; ok {
				want = h
			}
			require.Equal(t, want, eng.HeightOf(i))
			acc += want
		}
		require.InDelta(t, acc, eng.TotalHeight(), 0.01)
	}
}

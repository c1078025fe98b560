package gui_test

import (
	"testing"

	"github.com/tillpoint/gui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastCmds    int
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	dl.Finalize()
	m.renderCalls++
	m.lastCmds = len(dl.CmdBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.BackOfficeStyle()))

	input := gui.NewInputState()
	ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastCmds == 0 {
		t.Error("expected draw commands for the text")
	}
}

func TestButton(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.Button("Test Button") {
		t.Error("button should not be clicked without mouse input")
	}
	_ = ui.End()
}

func TestButtonWithClick(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	// "Click Me" is 8 cells of 8px plus padding, drawn at the origin.
	input.SetMousePos(20, 10)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	clicked := ctx.Button("Click Me")
	_ = ui.End()

	if !clicked {
		t.Error("button under the mouse should report the click")
	}
}

func TestDisabledButtonIgnoresClick(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(5, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.Button("Void", gui.Disabled()) {
		t.Error("disabled button must not report clicks")
	}
	_ = ui.End()
}

func TestCheckbox(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(4, 4)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	value := false
	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	changed := ctx.Checkbox("Open only", &value)
	_ = ui.End()

	if !changed || !value {
		t.Errorf("checkbox should toggle on click, changed=%v value=%v", changed, value)
	}
}

func TestPanel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("Test Panel", gui.Gap(8), gui.Padding(12), gui.WithHotkey("P"))(func() {
		ctx.Text("Line 1")
		ctx.Text("Line 2")
	})

	// Header (16 + 2*12), padding 2*12, two lines with an 8px gap, then
	// the spacing after a top-level item.
	want := float32(40+24+40) + ctx.Style().ItemSpacing
	if got := ctx.GetCursorPos().Y; got != want {
		t.Errorf("cursor after panel = %v, want %v", got, want)
	}
	_ = ui.End()
}

func TestVStackHStack(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.VStack(gui.Gap(10))(func() {
		ctx.HStack(gui.Gap(5))(func() {
			ctx.Text("Label:")
			ctx.Text("Value")
		})
		ctx.Text("Below")
	})
	_ = ui.End()
}

func TestTextWrapping(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	defer func() { _ = ui.End() }()

	lines := gui.WrapText(ctx, "aaa bbb ccc", 56, gui.WrapModeWord)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc" {
		t.Errorf("unexpected word wrap: %q", lines)
	}

	lines = gui.WrapText(ctx, "first\n\nthird", 800, gui.WrapModeWord)
	if len(lines) != 3 || lines[1] != "" {
		t.Errorf("newlines should be kept, got %q", lines)
	}

	lines = gui.WrapText(ctx, "abcdefgh", 24, gui.WrapModeChar)
	if len(lines) != 3 || lines[2] != "gh" {
		t.Errorf("unexpected char wrap: %q", lines)
	}

	size := gui.MeasureWrappedText(ctx, "aaa bbb ccc", 56, gui.WrapModeWord)
	if size.X != 56 || size.Y != 32 {
		t.Errorf("wrapped size = %+v", size)
	}

	if got := gui.TruncateText(ctx, "abcdefghij", 48); got != "abcd.." {
		t.Errorf("TruncateText = %q", got)
	}
	if got := gui.TruncateText(ctx, "abc", 48); got != "abc" {
		t.Errorf("short text should not be truncated, got %q", got)
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := gui.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}
	dl1.AddRect(0, 0, 100, 100, gui.ColorWhite)
	gui.ReleaseDrawList(dl1)

	dl2 := gui.AcquireDrawList()
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}
	gui.ReleaseDrawList(dl2)
}

func TestDrawListTextSkipsSpaces(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddText(0, 0, "a b", gui.ColorWhite, 1, 8, 16)
	if got := len(dl.VtxBuffer); got != 8 {
		t.Errorf("expected 2 glyph quads, got %d vertices", got)
	}
	// Second glyph sits in the third cell.
	if x := dl.VtxBuffer[4].Pos[0]; x != 16 {
		t.Errorf("second glyph at x=%v, want 16", x)
	}
}

func TestDrawListSplitsBeforeIndexOverflow(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	for i := 0; i < 20000; i++ {
		dl.AddRect(float32(i%100), 0, 1, 1, gui.ColorWhite)
	}
	dl.Finalize()

	if len(dl.CmdBuffer) < 2 {
		t.Fatalf("80000 vertices need more than one command, got %d", len(dl.CmdBuffer))
	}
	var elems uint32
	for _, cmd := range dl.CmdBuffer {
		elems += cmd.ElemCount
	}
	if int(elems) != len(dl.IdxBuffer) {
		t.Errorf("commands cover %d indices, buffer has %d", elems, len(dl.IdxBuffer))
	}
}

func TestDrawListClipIntersect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	dl.PushClipRectIntersect(50, -20, 200, 80)
	if got := dl.ClipRect(); got != [4]float32{50, 0, 100, 80} {
		t.Errorf("intersected clip = %v", got)
	}
	dl.PopClipRect()
	if got := dl.ClipRect(); got != [4]float32{0, 0, 100, 100} {
		t.Errorf("restored clip = %v", got)
	}
}

func TestIDGeneration(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	if ctx.GetID("button") == ctx.GetID("button") {
		t.Error("same label should generate different IDs due to auto-increment")
	}
	stable := ctx.GetStableID("orders")
	_ = ui.End()

	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.GetID("something drawn first")
	if ctx.GetStableID("orders") != stable {
		t.Error("stable IDs must not depend on what was drawn before")
	}
	_ = ui.End()
}

func TestPushPopID(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	ctx.PushStableID("section1")
	id1 := ctx.GetStableID("item")
	ctx.PopID()

	ctx.PushStableID("section2")
	id2 := ctx.GetStableID("item")
	ctx.PopID()

	if id1 == id2 {
		t.Error("same label in different sections should have different IDs")
	}
	if ctx.CurrentID() != 0 {
		t.Error("ID stack should be empty after popping")
	}
	_ = ui.End()
}

func TestStyles(t *testing.T) {
	styles := []gui.Style{
		gui.DefaultStyle(),
		gui.BackOfficeStyle(),
		gui.DarkStyle(),
	}
	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 || style.CharHeight == 0 {
			t.Errorf("style %d has no glyph cell size", i)
		}
	}
}

func TestColorFunctions(t *testing.T) {
	c := gui.RGBA(255, 128, 64, 200)
	r, g, b, a := gui.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}
}

func TestInputWheelAccumulates(t *testing.T) {
	input := gui.NewInputState()
	input.AddMouseWheel(0, -1)
	input.AddMouseWheel(0, -2)
	if input.MouseWheelY != -3 {
		t.Errorf("wheel deltas should add up, got %v", input.MouseWheelY)
	}
	input.Reset()
	if input.MouseWheelY != 0 {
		t.Error("Reset should clear the wheel")
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%10000 == 0 {
			dl.Clear()
		}
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, gui.ColorWhite)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	displaySize := gui.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)
		ctx.Panel("Menu", gui.Gap(8))(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Selectable("Item", false)
			}
		})
		_ = ui.End()
	}
}

// Command gen draws the back-office screens with demo data in a hidden
// window, captures the framebuffer, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tillpoint/gui"
	"github.com/tillpoint/gui/backend/opengl"
	"github.com/tillpoint/gui/internal/demo"
	"github.com/tillpoint/gui/internal/screens"
	"github.com/tillpoint/gui/virtual"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

// screenshot is one capture of the screens.
type screenshot struct {
	name   string // filename without extension
	theme  string
	width  int
	height int
	// prepare runs in the first frame, after the screens were drawn once.
	prepare func(ctx *gui.Context)
	// frames to render before capturing; rows measured in one frame move
	// the rows below them in the next.
	frames int
}

func run() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return errors.Wrap(err, "gui renderer")
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return errors.Wrapf(err, "capture %s", s.name)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only the projection follows the screenshot size; the hidden window
	// stays at its creation size, which is at least as large as every shot.
	renderer.Resize(s.width, s.height)

	cfg, err := demo.LoadConfig(nil)
	if err != nil {
		return err
	}
	cfg.Theme = s.theme
	scr, err := screens.New(cfg, nil)
	if err != nil {
		return err
	}

	// Fresh GUI per screenshot so list state does not leak between captures.
	ui := gui.New(renderer, gui.WithStyle(scr.Style()))
	size := gui.Vec2{X: float32(s.width), Y: float32(s.height)}

	frames := max(s.frames, 3)
	for i := 0; i < frames; i++ {
		r, g, b, _ := gui.UnpackRGBA(scr.Style().PanelColor)
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(gui.NewInputState(), size, 1.0/60.0)
		scr.Draw(ctx, size)
		if i == 0 && s.prepare != nil {
			s.prepare(ctx)
		}
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create image file")
	}
	defer f.Close()
	return errors.Wrap(jpeg.Encode(f, img, &jpeg.Options{Quality: 90}), "encode")
}

func scrollOrdersTo(index int, align virtual.Align) func(ctx *gui.Context) {
	return func(ctx *gui.Context) {
		gui.ScrollVirtualListTo(ctx, screens.OrdersList, index, align)
	}
}

func scrollRosterTo(index int) func(ctx *gui.Context) {
	return func(ctx *gui.Context) {
		gui.ScrollVirtualListTo(ctx, screens.RosterList, index, virtual.AlignStart)
	}
}

// buildScreenshots returns the screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "orders_top", theme: "backoffice", width: 1280, height: 800},
		{name: "orders_dark", theme: "dark", width: 1280, height: 800},
		{
			name: "orders_middle", theme: "backoffice", width: 1280, height: 800, frames: 6,
			prepare: scrollOrdersTo(2500, virtual.AlignCenter),
		},
		{
			name: "orders_end", theme: "backoffice", width: 1280, height: 800, frames: 8,
			prepare: scrollOrdersTo(1<<30, virtual.AlignEnd),
		},
		{
			name: "roster_deep", theme: "dark", width: 1024, height: 640, frames: 4,
			prepare: scrollRosterTo(73000),
		},
		{name: "compact", theme: "backoffice", width: 800, height: 480},
	}
}

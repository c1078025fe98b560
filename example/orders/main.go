// Command orders opens a window with the back-office order and roster
// screens: thousands of orders with notes of very different lengths and a
// six-figure staff roster, each in a virtual list.
//
// Prerequisites:
//
//	devbox shell                          # Go + OpenGL/X11 headers
//	go run ./example/orders/ --orders.count 20000 -d
//
// Configuration comes from defaults, an optional YAML file (--config),
// TILLPOINT_* environment variables and flags, in that order.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tillpoint/gui"
	"github.com/tillpoint/gui/backend/opengl"
	"github.com/tillpoint/gui/internal/demo"
	"github.com/tillpoint/gui/internal/screens"
)

const windowTitle = "tillpoint back office"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func run(args []string) error {
	cfg, err := demo.LoadConfig(args)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Debug)
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer func() { _ = log.Sync() }()
	gui.SetVerbose(cfg.Debug)

	s, err := screens.New(cfg, log.Named("screens"))
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, windowTitle, nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}

	fbW, fbH := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbW, fbH)
	if err != nil {
		return errors.Wrap(err, "gui renderer")
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithStyle(s.Style()))
	log.Info("window open",
		zap.Int("width", fbW), zap.Int("height", fbH),
		zap.String("theme", cfg.Theme), zap.Bool("indexed", cfg.List.Indexed))

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if w, h, ok := input.Resized(); ok {
			fbW, fbH = w, h
			renderer.Resize(w, h)
			log.Debug("resized", zap.Int("width", w), zap.Int("height", h))
		}

		in := input.Update(dt)
		if in.KeyPressed(gui.KeyEscape) {
			window.SetShouldClose(true)
		}

		r, g, b, _ := gui.UnpackRGBA(s.Style().PanelColor)
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		size := gui.Vec2{X: float32(fbW), Y: float32(fbH)}
		ctx := ui.Begin(in, size, dt)
		s.Draw(ctx, size)
		if err := ui.End(); err != nil {
			return errors.Wrap(err, "frame")
		}
		input.EndFrame()

		window.SwapBuffers()
	}

	log.Info("closed", zap.Float32("orders_scroll", s.ScrollOffset()))
	return nil
}

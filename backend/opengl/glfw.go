package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tillpoint/gui"
)

// GLFWInputAdapter adapts GLFW window events to gui.InputState.
//
// Events are accumulated between frames: several wheel events add up, and a
// click that is pressed and released before the next frame is still seen as
// a click. Call EndFrame after the frame has been built.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState

	fbWidth, fbHeight int
	resized           bool
}

// NewGLFWInputAdapter installs the GLFW callbacks on window. It also
// installs the window as the GUI clipboard.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
	}
	a.fbWidth, a.fbHeight = window.GetFramebufferSize()

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	gui.SetClipboard(glfwClipboard{window: window})
	return a
}

// Update samples the modifier keys and returns the input for the frame
// about to be built. Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) Update(dt float32) *gui.InputState {
	a.input.ModCtrl = a.pressed(glfw.KeyLeftControl) || a.pressed(glfw.KeyRightControl)
	a.input.ModShift = a.pressed(glfw.KeyLeftShift) || a.pressed(glfw.KeyRightShift)
	a.input.ModAlt = a.pressed(glfw.KeyLeftAlt) || a.pressed(glfw.KeyRightAlt)
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// EndFrame clears the per-frame input once the frame has consumed it.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// Resized reports the framebuffer size when it changed since the last call.
func (a *GLFWInputAdapter) Resized() (width, height int, ok bool) {
	if !a.resized {
		return a.fbWidth, a.fbHeight, false
	}
	a.resized = false
	return a.fbWidth, a.fbHeight, true
}

func (a *GLFWInputAdapter) pressed(key glfw.Key) bool {
	return a.window.GetKey(key) == glfw.Press
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(guiKey, true)
	case glfw.Release:
		a.input.SetKey(guiKey, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		a.input.SetMouseButton(guiButton, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	a.fbWidth, a.fbHeight = width, height
	a.resized = true
}

// glfwClipboard implements gui.Clipboard with the GLFW window clipboard.
type glfwClipboard struct {
	window *glfw.Window
}

func (c glfwClipboard) ReadText() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c glfwClipboard) WriteText(text string) error {
	c.window.SetClipboardString(text)
	return nil
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyF1:
		return gui.KeyF1
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

package gui

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrNoClipboard is returned when no clipboard has been installed.
var ErrNoClipboard = errors.New("gui: no clipboard installed")

// Clipboard abstracts system clipboard access. Backends install one with
// SetClipboard during initialization.
//
// For GLFW:
//
//	type glfwClipboard struct{ window *glfw.Window }
//
//	func (c glfwClipboard) ReadText() (string, error) { return c.window.GetClipboardString(), nil }
//	func (c glfwClipboard) WriteText(s string) error  { c.window.SetClipboardString(s); return nil }
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

var (
	clipboardMu sync.RWMutex
	clipboard   Clipboard
)

// SetClipboard installs the clipboard used by the widgets. Pass nil to
// remove it.
func SetClipboard(cb Clipboard) {
	clipboardMu.Lock()
	clipboard = cb
	clipboardMu.Unlock()
}

func currentClipboard() Clipboard {
	clipboardMu.RLock()
	defer clipboardMu.RUnlock()
	return clipboard
}

// CopyText writes text to the installed clipboard.
func CopyText(text string) error {
	cb := currentClipboard()
	if cb == nil {
		return ErrNoClipboard
	}
	return errors.Wrap(cb.WriteText(text), "clipboard write")
}

// PasteText reads text from the installed clipboard.
func PasteText() (string, error) {
	cb := currentClipboard()
	if cb == nil {
		return "", ErrNoClipboard
	}
	text, err := cb.ReadText()
	return text, errors.Wrap(err, "clipboard read")
}

// copyShortcut reports whether Ctrl+C was pressed this frame.
func (ctx *Context) copyShortcut() bool {
	return ctx.Input != nil && ctx.Input.ModCtrl && ctx.Input.KeyPressed(KeyC)
}

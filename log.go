package gui

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the level of every GUI logger.
// Default is LevelInfo; SetVerbose(true) or GUI_DEBUG=1 lowers it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is the logger for GUI context and widget debugging.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

func init() {
	if os.Getenv("GUI_DEBUG") != "" {
		guiLogLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose enables or disables debug logging for GUI components,
// including the virtual list engines created by VirtualList.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

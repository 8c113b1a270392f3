package nodegraph

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetDebugMode enables or disables debug logging. When enabled without a
// logger set through SetLogger, a timestamped stderr logger is created.
func (ui *UI) SetDebugMode(enabled bool) {
	ui.debug = enabled
	if enabled && ui.logger == nil {
		ui.logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Level:           log.DebugLevel,
			Prefix:          "nodegraph",
		})
	}
}

// SetLogger replaces the debug logger. Messages are only written while debug
// mode is on.
func (ui *UI) SetLogger(l *log.Logger) {
	ui.logger = l
}

// DebugMode reports whether debug logging is enabled.
func (ui *UI) DebugMode() bool { return ui.debug }

func (ui *UI) logDebug(msg string, keyvals ...any) {
	if !ui.debug || ui.logger == nil {
		return
	}
	ui.logger.Debug(msg, append([]any{"frame", ui.frame}, keyvals...)...)
}

func (ui *UI) logState(from, to CanvasInteraction) {
	ui.logDebug("canvas state", "from", from, "to", to)
}

func (ui *UI) logEvent(e GraphEvent) {
	if !ui.debug || ui.logger == nil {
		return
	}
	switch e.Type {
	case EventConnect, EventDisconnect:
		ui.logDebug(e.Type.String(),
			"input", e.Connection.InputSlot, "output", e.Connection.OutputSlot)
	case EventNodeMoved:
		ui.logDebug(e.Type.String(), "x", e.Position.X, "y", e.Position.Y)
	case EventSelectionChanged:
		ui.logDebug(e.Type.String(), "selected", e.Selected)
	}
}

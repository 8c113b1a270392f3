package nodegraph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newBufferLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestDebugLoggingStateTransitions(t *testing.T) {
	var buf bytes.Buffer
	a := newTestNode("A", 100, 100)
	h := newHarness(a)
	h.ui.SetLogger(newBufferLogger(&buf))
	h.ui.SetDebugMode(true)
	if !h.ui.DebugMode() {
		t.Fatal("DebugMode = false")
	}
	h.frame()

	h.ui.InjectDrag(109, 109, 160, 109, 5)
	h.drain()

	out := buf.String()
	for _, want := range []string{"canvas state", "dragging", "node-moved"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugLoggingDisabled(t *testing.T) {
	var buf bytes.Buffer
	a := newTestNode("A", 100, 100)
	h := newHarness(a)
	h.ui.SetLogger(newBufferLogger(&buf))
	h.frame()

	h.ui.InjectDrag(109, 109, 160, 109, 5)
	h.drain()
	if buf.Len() != 0 {
		t.Errorf("logged with debug mode off:\n%s", buf.String())
	}
}

func TestDebugModeDefaultLogger(t *testing.T) {
	ui := NewUI()
	ui.SetDebugMode(true)
	if ui.logger == nil {
		t.Error("SetDebugMode(true) should create a logger")
	}
	ui.SetDebugMode(false)
	if ui.DebugMode() {
		t.Error("DebugMode should be off")
	}
}

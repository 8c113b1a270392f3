package nodegraph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	DX     float64  `json:"dx,omitempty"`
	DY     float64  `json:"dy,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Button string   `json:"button,omitempty"`
	Mods   []string `json:"mods,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input and screenshots across frames for
// automated testing and demos. Attach to a UI via SetScriptRunner.
//
// Supported actions: "click", "doubleClick", "hover", "drag", "wheel",
// "mods", "wait" and "screenshot".
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"click": true, "doubleClick": true, "hover": true, "drag": true,
	"wheel": true, "mods": true, "wait": true, "screenshot": true,
}

// LoadInputScript parses a JSON input script and returns a ScriptRunner
// ready to be attached to a UI via SetScriptRunner.
func LoadInputScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("nodegraph: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("nodegraph: parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("nodegraph: parse input script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseButton(st.Button); err != nil {
			return nil, fmt.Errorf("nodegraph: parse input script: step %d: %w", i, err)
		}
		if _, err := parseMods(st.Mods); err != nil {
			return nil, fmt.Errorf("nodegraph: parse input script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

func parseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return MouseButtonLeft, nil
	case "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

func parseMods(names []string) (KeyModifiers, error) {
	var m KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModCtrl
		case "alt":
			m |= ModAlt
		case "meta", "super", "cmd":
			m |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

// SetScriptRunner attaches a ScriptRunner to the UI. The runner's step
// method is called at the start of every NewFrame, before injected input is
// applied.
func (ui *UI) SetScriptRunner(runner *ScriptRunner) {
	ui.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from UI.NewFrame.
func (r *ScriptRunner) step(ui *UI) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(ui.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	// Errors were rejected by LoadInputScript.
	button, _ := parseButton(st.Button)

	switch st.Action {
	case "screenshot":
		ui.Screenshot(st.Label)
	case "mods":
		mods, _ := parseMods(st.Mods)
		ui.SetInjectedModifiers(mods)
	case "click":
		ui.inject(st.X, st.Y, button, true)
		ui.inject(st.X, st.Y, button, false)
	case "doubleClick":
		ui.InjectDoubleClick(st.X, st.Y)
	case "hover":
		ui.InjectHover(st.X, st.Y)
	case "drag":
		ui.InjectButtonDrag(button, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		ui.InjectWheel(st.X, st.Y, st.DX, st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(ui.injectQueue) == 0 {
		r.done = true
	}
}

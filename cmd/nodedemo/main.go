// Nodedemo opens a node-graph editor window with a small sample graph.
// Drag from a slot to another node's slot to connect them, double-click a
// curve to delete it, press N to add a node at the cursor and Delete to
// remove selected nodes.
//
//	nodedemo --theme themes/light.toml
//	nodedemo --script scripts/connect.json --debug
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/ebitenui"
)

const (
	windowTitle = "nodegraph demo"
	screenW     = 1280
	screenH     = 720
)

// options are the command-line flags.
type options struct {
	theme  string
	script string
	debug  bool
	fps    bool
	shots  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "nodedemo",
		Short:        "Interactive node-graph editor demo",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(opts.debug)
			app, ui, err := setup(opts, logger)
			if err != nil {
				return err
			}
			return ebitenui.Run(app, ebitenui.RunConfig{
				Title:      windowTitle,
				Width:      screenW,
				Height:     screenH,
				ShowFPS:    opts.fps,
				Background: nodegraph.Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
				UI:         ui,
				Logger:     logger,
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.theme, "theme", "", "TOML theme file")
	f.StringVar(&opts.script, "script", "", "JSON input script; the demo exits when it finishes")
	f.BoolVarP(&opts.debug, "debug", "d", false, "log editor state changes")
	f.BoolVar(&opts.fps, "fps", false, "show the FPS overlay")
	f.StringVar(&opts.shots, "screenshots", "screenshots", "directory for screenshots")
	return cmd
}

func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "nodedemo",
	})
}

// setup builds the UI, canvas and sample graph described by opts.
func setup(opts options, logger *log.Logger) (*graph, *nodegraph.UI, error) {
	ui := nodegraph.NewUI()
	ui.ScreenshotDir = opts.shots
	if opts.debug {
		ui.SetLogger(logger)
		ui.SetDebugMode(true)
	}

	canvas := nodegraph.NewCanvasState()
	if opts.theme != "" {
		data, err := os.ReadFile(opts.theme)
		if err != nil {
			return nil, nil, fmt.Errorf("read theme: %w", err)
		}
		theme, err := nodegraph.LoadTheme(data)
		if err != nil {
			return nil, nil, err
		}
		theme.Apply(canvas)
	}

	g := newGraph(canvas, logger)
	g.seed()

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return nil, nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := nodegraph.LoadInputScript(data)
		if err != nil {
			return nil, nil, err
		}
		ui.SetScriptRunner(runner)
		g.script = runner
	}
	return g, ui, nil
}

package ebitenui

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodegraph"
)

// App builds one frame of UI. Frame runs between UI.NewFrame and
// UI.EndFrame. Returning ebiten.Termination ends Run without error.
type App interface {
	Frame(ui *nodegraph.UI) error
}

// AppFunc adapts a function to the App interface.
type AppFunc func(ui *nodegraph.UI) error

// Frame calls f(ui).
func (f AppFunc) Frame(ui *nodegraph.UI) error { return f(ui) }

// RunConfig configures Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background clears the screen every frame.
	Background nodegraph.Color
	// UI is the context driven by the loop. Nil creates one.
	UI *nodegraph.UI
	// Font draws and measures text. Nil uses DefaultFont.
	Font *Font
	// Logger receives screenshot reports. Nil uses the charmbracelet/log
	// default logger.
	Logger *log.Logger
}

// game adapts an App to ebiten.Game.
type game struct {
	app      App
	ui       *nodegraph.UI
	renderer *Renderer
	cfg      RunConfig
	fps      *fpsOverlay
	logger   *log.Logger

	width, height int
	drawList      *nodegraph.DrawList
}

// Run opens a window and drives app until the window closes or app returns
// an error.
func Run(app App, cfg RunConfig) error {
	g, err := newGame(app, cfg)
	if err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func newGame(app App, cfg RunConfig) (*game, error) {
	font := cfg.Font
	if font == nil {
		var err error
		if font, err = DefaultFont(); err != nil {
			return nil, err
		}
	}
	ui := cfg.UI
	if ui == nil {
		ui = nodegraph.NewUI()
	}
	ui.SetTextMeasurer(font)

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ebitenui"})
	}
	g := &game{
		app:      app,
		ui:       ui,
		renderer: NewRenderer(font),
		cfg:      cfg,
		logger:   logger,
		width:    cfg.Width,
		height:   cfg.Height,
	}
	if cfg.ShowFPS {
		g.fps = &fpsOverlay{}
	}
	return g, nil
}

func (g *game) viewport() nodegraph.Rect {
	return nodegraph.Rect{Width: float64(g.width), Height: float64(g.height)}
}

func (g *game) Update() error {
	in := ReadInput(g.viewport())
	g.ui.NewFrame(in)
	err := g.app.Frame(g.ui)
	g.drawList = g.ui.EndFrame()
	if g.fps != nil {
		g.fps.update(in.DeltaTime)
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.RGBA())
	if g.drawList != nil {
		g.renderer.Draw(screen, g.drawList)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	flushScreenshots(screen, g.ui.ScreenshotDir, g.ui.TakeScreenshots(), g.logger)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Package ebitenui runs the overlay on ebiten: it polls touches, draws the
// widgets from an atlas and vibrates the device.
package ebitenui

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Alia5/vtouch/gamepad"
	"github.com/Alia5/vtouch/layout"
	"github.com/Alia5/vtouch/pad"
)

var background = color.RGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff}

// Game implements ebiten.Game around a built overlay.
// Esc quits, F1 toggles the controls, F2 toggles the status text.
type Game struct {
	ctx     context.Context
	overlay *gamepad.Overlay
	state   *pad.State
	atlas   *Atlas
	source  *TouchSource
	screen  layout.Screen
	logger  *slog.Logger

	// flags shared with the pause and unthrottle buttons
	paused     bool
	unthrottle bool
	showHUD    bool
}

// Options configures NewGame.
type Options struct {
	Layout  layout.Config // defaults already initialised
	Screen  layout.Screen
	State   *pad.State
	Atlas   *Atlas
	Haptics gamepad.HapticSink
	Tracer  gamepad.Tracer
	Mouse   bool
	HUD     bool
	Logger  *slog.Logger
}

// NewGame builds the overlay for opts. The game stops when ctx is done.
func NewGame(ctx context.Context, opts Options) *Game {
	g := &Game{
		ctx:     ctx,
		state:   opts.State,
		atlas:   opts.Atlas,
		source:  &TouchSource{Mouse: opts.Mouse},
		screen:  opts.Screen,
		logger:  opts.Logger,
		showHUD: opts.HUD,
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	g.overlay = layout.Build(opts.Layout, opts.Screen, layout.Deps{
		Sink:       opts.State,
		Haptics:    opts.Haptics,
		Atlas:      opts.Atlas,
		Tracer:     opts.Tracer,
		Unthrottle: &g.unthrottle,
		Pause:      &g.paused,
	})
	g.logger.Debug("overlay built", "widgets", len(g.overlay.Widgets()), "width", opts.Screen.Width, "height", opts.Screen.Height)
	return g
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.SetVisible(!g.overlay.Visible())
		g.logger.Info("touch controls", "visible", g.overlay.Visible())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.showHUD = !g.showHUD
	}

	for _, ev := range g.source.Poll() {
		g.overlay.Touch(ev)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.overlay.Draw(NewRenderer(screen, g.atlas))

	if g.showHUD {
		s := g.state.Snapshot()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"buttons: %s\nleft: %+.2f %+.2f\npaused: %v unthrottle: %v\nTPS: %.0f",
			s.Buttons, s.LX, s.LY, g.paused, g.unthrottle, ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.Width, g.screen.Height
}

// Close releases every held control.
func (g *Game) Close() {
	g.overlay.Close()
}

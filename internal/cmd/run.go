package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Alia5/vtouch/ebitenui"
	"github.com/Alia5/vtouch/gamepad"
	"github.com/Alia5/vtouch/internal/console"
	"github.com/Alia5/vtouch/internal/log"
	"github.com/Alia5/vtouch/layout"
	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/viiperlink"
)

type Viiper struct {
	Addr        string        `help:"VIIPER API address; the bridge is off when empty" env:"VTOUCH_VIIPER_ADDR"`
	Bus         uint32        `help:"Bus to attach to; 0 creates a new bus" default:"0" env:"VTOUCH_VIIPER_BUS"`
	Interval    time.Duration `help:"Input frame interval" default:"10ms" env:"VTOUCH_VIIPER_INTERVAL"`
	DialTimeout time.Duration `help:"Dial timeout" default:"3s" env:"VTOUCH_VIIPER_DIAL_TIMEOUT"`
}

type Run struct {
	LayoutFile string `name:"layout" help:"Layout file (.json, .yaml or .toml); defaults to layout.toml in the config dir" env:"VTOUCH_LAYOUT"`
	Width      int    `help:"Overlay width in pixels" default:"960" env:"VTOUCH_WIDTH"`
	Height     int    `help:"Overlay height in pixels" default:"544" env:"VTOUCH_HEIGHT"`
	Atlas      string `help:"TexturePacker JSON atlas; built-in artwork when empty" env:"VTOUCH_ATLAS"`
	Mouse      bool   `help:"Let the left mouse button act as a finger" default:"true" negatable:"" env:"VTOUCH_MOUSE"`
	HUD        bool   `name:"hud" help:"Show controller state text" default:"true" negatable:"" env:"VTOUCH_HUD"`

	Viiper Viiper `embed:"" prefix:"viiper."`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, logs *log.Setup) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen := layout.Screen{Width: r.Width, Height: r.Height}
	if screen.Width <= 0 || screen.Height <= 0 {
		return fmt.Errorf("invalid overlay size %dx%d", screen.Width, screen.Height)
	}

	store, err := layoutStore(r.LayoutFile)
	if err != nil {
		return err
	}
	cfg, err := layout.LoadOrInit(store, screen)
	if err != nil {
		return err
	}
	logger.Info("Loaded layout", "path", store.Path, "scale", cfg.ButtonScale, "opacity", cfg.ButtonOpacity)

	atlas := ebitenui.DefaultAtlas()
	if r.Atlas != "" {
		if atlas, err = ebitenui.LoadAtlasFile(r.Atlas); err != nil {
			return err
		}
	}

	state := pad.New()
	haptics := ebitenui.DefaultHaptics()

	var wg sync.WaitGroup
	if r.Viiper.Addr != "" {
		link, cleanup, err := r.attach(ctx, logger, state, haptics, logs.Frames)
		if err != nil {
			return err
		}
		defer cleanup()
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := link.Run(ctx); err != nil {
				logger.Error("VIIPER bridge stopped", "error", err)
			}
		}()
	}

	game := ebitenui.NewGame(ctx, ebitenui.Options{
		Layout:  cfg,
		Screen:  screen,
		State:   state,
		Atlas:   atlas,
		Haptics: haptics,
		Tracer:  logs.Touch,
		Mouse:   r.Mouse,
		HUD:     r.HUD,
		Logger:  logger,
	})

	ebiten.SetWindowTitle("vtouch")
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if console.LaunchedFromGUI() {
		go func() {
			time.Sleep(250 * time.Millisecond)
			console.Hide()
		}()
	}

	err = ebiten.RunGame(game)
	game.Close()
	stop()
	wg.Wait()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run overlay: %w", err)
	}
	logger.Info("Overlay closed")
	return nil
}

// attach registers a DualShock 4 on the VIIPER server and returns the link
// driving it plus a cleanup that removes the device again.
func (r *Run) attach(ctx context.Context, logger *slog.Logger, state *pad.State, haptics gamepad.HapticSink, frames viiperlink.FrameLogger) (*viiperlink.Link, func(), error) {
	client := viiperlink.New(r.Viiper.Addr, &viiperlink.Config{
		DialTimeout:  r.Viiper.DialTimeout,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	bus := r.Viiper.Bus
	if bus == 0 {
		id, err := client.CreateBus(ctx, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("create VIIPER bus: %w", err)
		}
		bus = id
	}

	stream, dev, err := client.Attach(ctx, bus)
	if err != nil {
		return nil, nil, fmt.Errorf("attach %s on bus %d: %w", viiperlink.DeviceType, bus, err)
	}
	logger.Info("Attached VIIPER device", "addr", r.Viiper.Addr, "bus", dev.BusID, "dev", dev.DevID)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = stream.Close()
		if err := client.RemoveDevice(ctx, bus, dev.DevID); err != nil {
			logger.Warn("failed to remove VIIPER device", "bus", bus, "dev", dev.DevID, "error", err)
		}
	}

	link := &viiperlink.Link{
		Stream:   stream,
		Source:   state,
		Haptics:  haptics,
		Interval: r.Viiper.Interval,
		Frames:   frames,
		Logger:   logger,
	}
	return link, cleanup, nil
}

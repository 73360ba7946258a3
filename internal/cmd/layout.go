package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/vtouch/layout"
)

type Layout struct {
	LayoutFile string `name:"layout" help:"Layout file (.json, .yaml or .toml); defaults to layout.toml in the config dir" env:"VTOUCH_LAYOUT"`
	Width      int    `help:"Overlay width in pixels" default:"960" env:"VTOUCH_WIDTH"`
	Height     int    `help:"Overlay height in pixels" default:"544" env:"VTOUCH_HEIGHT"`
	Reset      bool   `help:"Discard stored positions and compute them again"`
	Format     string `help:"Output format" enum:"text,json,yaml" default:"text"`

	Out io.Writer `kong:"-"`
}

type placed struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

func placements(cfg layout.Config, s layout.Screen) []placed {
	p := layout.Resolve(cfg, s)
	out := []placed{
		{"circle", p.Circle.X, p.Circle.Y},
		{"cross", p.Cross.X, p.Cross.Y},
		{"triangle", p.Triangle.X, p.Triangle.Y},
		{"square", p.Square.X, p.Square.Y},
		{"start", p.Start.X, p.Start.Y},
		{"select", p.Select.X, p.Select.Y},
		{"unthrottle", p.Unthrottle.X, p.Unthrottle.Y},
		{"l", p.L.X, p.L.Y},
		{"r", p.R.X, p.R.Y},
		{"dpad", p.DPad.X, p.DPad.Y},
	}
	if cfg.ShowAnalogStick {
		out = append(out, placed{"stick", p.Stick.X, p.Stick.Y})
	}
	if cfg.ShowPauseButton {
		out = append(out, placed{"pause", p.Pause.X, p.Pause.Y})
	}
	return out
}

// Run is called by Kong when the layout command is executed.
func (l *Layout) Run(logger *slog.Logger) error {
	screen := layout.Screen{Width: l.Width, Height: l.Height}
	store, err := layoutStore(l.LayoutFile)
	if err != nil {
		return err
	}

	if l.Reset {
		cfg, err := store.Load()
		if err != nil {
			return err
		}
		fresh := layout.DefaultConfig()
		fresh.ButtonScale = cfg.ButtonScale
		fresh.ButtonOpacity = cfg.ButtonOpacity
		fresh.HapticFeedback = cfg.HapticFeedback
		fresh.ShowTouchControls = cfg.ShowTouchControls
		fresh.ShowAnalogStick = cfg.ShowAnalogStick
		fresh.ShowPauseButton = cfg.ShowPauseButton
		if err := store.Save(fresh); err != nil {
			return err
		}
		logger.Info("Reset layout positions", "path", store.Path)
	}

	cfg, err := layout.LoadOrInit(store, screen)
	if err != nil {
		return err
	}
	logger.Debug("Resolved layout", "path", store.Path, "width", l.Width, "height", l.Height)

	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	items := placements(cfg, screen)

	switch l.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "yaml":
		return yaml.NewEncoder(out).Encode(items)
	default:
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "CONTROL\tX\tY\n")
		for _, it := range items {
			fmt.Fprintf(tw, "%s\t%.0f\t%.0f\n", it.Name, it.X, it.Y)
		}
		fmt.Fprintf(tw, "dpad radius\t%d\t\n", cfg.DpadRadius)
		return tw.Flush()
	}
}

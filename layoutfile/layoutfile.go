// Package layoutfile loads authored layout files (YAML) into envelopes.
// It is host-side tooling: referenced images are read relative to the
// layout file and embedded, so the resulting envelope is self-contained
// apart from loader-resolved fonts.
package layoutfile

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"lcdlink/layout"
)

// Simulated describes one sensor the preview tool synthesizes: a sine wave
// around Base with the given Amplitude and Period, keeping History samples.
type Simulated struct {
	ID        string        `mapstructure:"id"`
	Unit      string        `mapstructure:"unit"`
	Base      float64       `mapstructure:"base"`
	Amplitude float64       `mapstructure:"amplitude"`
	Period    time.Duration `mapstructure:"period"`
	History   int           `mapstructure:"history"`
}

type fileConfig struct {
	Canvas struct {
		Width      int    `mapstructure:"width"`
		Height     int    `mapstructure:"height"`
		Background string `mapstructure:"background"`
		Image      string `mapstructure:"image"`
	} `mapstructure:"canvas"`
	Elements []elementConfig `mapstructure:"elements"`
	Sensors  []Simulated     `mapstructure:"sensors"`
}

type elementConfig struct {
	ID   string `mapstructure:"id"`
	Kind string `mapstructure:"kind"`
	Rect struct {
		X, Y, W, H int
	} `mapstructure:"rect"`

	Sensor   string `mapstructure:"sensor"`
	Format   string `mapstructure:"format"`
	Align    string `mapstructure:"align"`
	Color    string `mapstructure:"color"`
	Font     string `mapstructure:"font"`
	FontSize int    `mapstructure:"font_size"`

	Path string `mapstructure:"path"`

	Mode        string   `mapstructure:"mode"`
	Min         *float64 `mapstructure:"min"`
	Max         *float64 `mapstructure:"max"`
	StrokeWidth int      `mapstructure:"stroke_width"`
	LineColor   string   `mapstructure:"line_color"`
	FillColor   string   `mapstructure:"fill_color"`
	BorderColor string   `mapstructure:"border_color"`

	Ranges []struct {
		Lo   float64 `mapstructure:"lo"`
		Hi   float64 `mapstructure:"hi"`
		Path string  `mapstructure:"path"`
	} `mapstructure:"ranges"`
	Default string `mapstructure:"default"`
}

// Load reads a layout file and builds a validated envelope plus the
// simulated sensor definitions for previewing.
func Load(path string) (*layout.Envelope, []Simulated, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, nil, err
	}
	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(path)
	env := &layout.Envelope{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height}

	if cfg.Canvas.Background != "" {
		c, err := layout.ParseHexColor(cfg.Canvas.Background)
		if err != nil {
			return nil, nil, err
		}
		env.Background.Color = c
	}
	if cfg.Canvas.Image != "" {
		data, err := os.ReadFile(filepath.Join(dir, cfg.Canvas.Image))
		if err != nil {
			return nil, nil, err
		}
		env.Background.Image = data
	}

	for i, ec := range cfg.Elements {
		e, err := buildElement(dir, ec)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		env.Elements = append(env.Elements, e)
	}
	if err := env.Validate(); err != nil {
		return nil, nil, err
	}
	return env, cfg.Sensors, nil
}

func buildElement(dir string, ec elementConfig) (layout.Element, error) {
	id := ec.ID
	if id == "" {
		id = uuid.NewString()
	}
	r := layout.Rect{X: ec.Rect.X, Y: ec.Rect.Y, W: ec.Rect.W, H: ec.Rect.H}

	switch ec.Kind {
	case "static_image":
		img := layout.StaticImage{Path: ec.Path}
		if ec.Path != "" {
			data, err := os.ReadFile(filepath.Join(dir, ec.Path))
			if err != nil {
				return layout.Element{}, err
			}
			img = layout.StaticImage{Data: data}
		}
		return layout.NewStaticImage(id, r, img)

	case "text":
		style, err := buildStyle(ec)
		if err != nil {
			return layout.Element{}, err
		}
		align, err := parseAlign(ec.Align)
		if err != nil {
			return layout.Element{}, err
		}
		return layout.NewText(id, r, layout.Text{
			Sensor: ec.Sensor,
			Format: ec.Format,
			Align:  align,
			Style:  style,
		})

	case "graph":
		g := layout.Graph{Sensor: ec.Sensor, StrokeWidth: ec.StrokeWidth}
		switch ec.Mode {
		case "", "line":
			g.Mode = layout.GraphLine
		case "filled":
			g.Mode = layout.GraphFilled
		default:
			return layout.Element{}, fmt.Errorf("unknown graph mode %q", ec.Mode)
		}
		if ec.Min != nil {
			g.HasMin, g.Min = true, *ec.Min
		}
		if ec.Max != nil {
			g.HasMax, g.Max = true, *ec.Max
		}
		var err error
		if g.LineColor, err = parseOptColor(ec.LineColor, "#FFFFFF"); err != nil {
			return layout.Element{}, err
		}
		if g.FillColor, err = parseOptColor(ec.FillColor, "#00000000"); err != nil {
			return layout.Element{}, err
		}
		if g.BorderColor, err = parseOptColor(ec.BorderColor, "#00000000"); err != nil {
			return layout.Element{}, err
		}
		return layout.NewGraph(id, r, g)

	case "conditional_image":
		c := layout.ConditionalImage{Sensor: ec.Sensor}
		for _, rc := range ec.Ranges {
			data, err := os.ReadFile(filepath.Join(dir, rc.Path))
			if err != nil {
				return layout.Element{}, err
			}
			c.Ranges = append(c.Ranges, layout.ImageRange{Lo: rc.Lo, Hi: rc.Hi, Image: data})
		}
		if ec.Default != "" {
			data, err := os.ReadFile(filepath.Join(dir, ec.Default))
			if err != nil {
				return layout.Element{}, err
			}
			c.Default = data
		}
		return layout.NewConditionalImage(id, r, c)

	default:
		return layout.Element{}, fmt.Errorf("unknown element kind %q", ec.Kind)
	}
}

func buildStyle(ec elementConfig) (layout.Style, error) {
	c, err := parseOptColor(ec.Color, "#FFFFFF")
	if err != nil {
		return layout.Style{}, err
	}
	size := ec.FontSize
	if size == 0 {
		size = 12
	}
	var ref layout.FontRef
	if ec.Font != "" {
		if filepath.Ext(ec.Font) != "" {
			ref.Path = ec.Font
		} else {
			ref.Builtin = ec.Font
		}
	}
	return layout.Style{Color: c, Font: ref, FontSize: size}, nil
}

func parseAlign(s string) (layout.TextAlign, error) {
	switch s {
	case "", "left":
		return layout.AlignLeft, nil
	case "center":
		return layout.AlignCenter, nil
	case "right":
		return layout.AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
}

func parseOptColor(s, fallback string) (color.RGBA, error) {
	if s == "" {
		s = fallback
	}
	return layout.ParseHexColor(s)
}

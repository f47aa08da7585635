// lcdpreview renders a layout file in a desktop window with synthesized
// sensor values, so layouts can be authored without the display hardware
// attached.
package main

import (
	"flag"
	"image"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"lcdlink/hal"
	"lcdlink/internal/buildinfo"
	"lcdlink/layout"
	"lcdlink/layoutfile"
	"lcdlink/render"
)

func main() {
	var (
		layoutPath = flag.String("layout", "layout.yml", "Layout file.")
		assetDir   = flag.String("assets", "", "Directory for path-referenced assets (default: layout file directory).")
	)
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	env, sims, err := layoutfile.Load(*layoutPath)
	if err != nil {
		log.Fatal("load layout", zap.String("path", *layoutPath), zap.Error(err))
	}
	if len(sims) == 0 {
		log.Warn("layout defines no simulated sensors; bound elements will be skipped")
	}

	dir := *assetDir
	if dir == "" {
		dir = filepath.Dir(*layoutPath)
	}
	loader := func(p string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, p))
	}

	sess := render.NewSession(render.WithAssetLoader(loader), render.WithLogger(log))
	sim := newSimulator(sims)
	start := time.Now()

	log.Info("preview starting",
		zap.Int("width", env.Width),
		zap.Int("height", env.Height),
		zap.Int("elements", len(env.Elements)),
		zap.String("build", buildinfo.Short()))

	err = hal.RunWindow("lcdlink preview ("+buildinfo.Short()+")", env.Width, env.Height,
		func() (*image.RGBA, error) {
			frame, _, err := sess.Render(env, sim.snapshot(time.Since(start)))
			return frame, err
		})
	if err != nil {
		log.Fatal("preview window", zap.Error(err))
	}
}

// simulator produces a sine wave per configured sensor and keeps the
// bounded history graph elements consume.
type simulator struct {
	defs []layoutfile.Simulated
	hist map[string][]float64
}

func newSimulator(defs []layoutfile.Simulated) *simulator {
	return &simulator{defs: defs, hist: make(map[string][]float64)}
}

func (s *simulator) snapshot(elapsed time.Duration) layout.SensorSnapshot {
	snap := make(layout.SensorSnapshot, len(s.defs))
	for _, d := range s.defs {
		period := d.Period
		if period <= 0 {
			period = 10 * time.Second
		}
		limit := d.History
		if limit <= 0 {
			limit = 120
		}
		v := d.Base + d.Amplitude*math.Sin(2*math.Pi*elapsed.Seconds()/period.Seconds())
		v = math.Round(v*10) / 10

		h := append(s.hist[d.ID], v)
		if len(h) > limit {
			h = h[len(h)-limit:]
		}
		s.hist[d.ID] = h

		snap[d.ID] = layout.Reading{Value: v, Unit: d.Unit, History: h}
	}
	return snap
}

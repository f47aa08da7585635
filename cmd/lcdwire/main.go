// lcdwire converts between layout files and envelope wire bytes, and can
// render a wire file to PNG for inspection without a display attached.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"lcdlink/internal/buildinfo"
	"lcdlink/layout"
	"lcdlink/layoutfile"
	"lcdlink/render"
	"lcdlink/wire"
)

func main() {
	var (
		inPath      = flag.String("in", "", "Input file (layout .yml for encode, wire .lcd for decode).")
		outPath     = flag.String("out", "", "Output file (.lcd for encode, .png for decode).")
		mode        = flag.String("mode", "encode", "encode|decode.")
		sensorsPath = flag.String("sensors", "", "Sensor values file used when rendering a decoded envelope.")
		assetDir    = flag.String("assets", "", "Directory for path-referenced assets (default: input file directory).")
		version     = flag.Bool("version", false, "Print build information and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println("lcdwire " + buildinfo.Full())
		return
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *inPath == "" || *outPath == "" {
		log.Fatal("usage: lcdwire -mode encode -in layout.yml -out screen.lcd | lcdwire -mode decode -in screen.lcd -out frame.png [-sensors values.yml]")
	}

	switch strings.ToLower(*mode) {
	case "encode":
		err = encodeLayout(*inPath, *outPath, log)
	case "decode":
		err = decodeWire(*inPath, *outPath, *sensorsPath, *assetDir, log)
	default:
		log.Fatal("unknown mode", zap.String("mode", *mode))
	}
	if err != nil {
		log.Fatal(*mode+" failed", zap.Error(err))
	}
}

func encodeLayout(in, out string, log *zap.Logger) error {
	env, _, err := layoutfile.Load(in)
	if err != nil {
		return err
	}
	b, err := wire.Encode(env)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return err
	}
	log.Info("encoded",
		zap.Int("elements", len(env.Elements)),
		zap.Int("bytes", len(b)),
		zap.String("out", out))
	return nil
}

func decodeWire(in, out, sensorsPath, assetDir string, log *zap.Logger) error {
	b, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	env, err := wire.Decode(b)
	if err != nil {
		return err
	}

	snap := layout.SensorSnapshot{}
	if sensorsPath != "" {
		if snap, err = loadSensors(sensorsPath); err != nil {
			return err
		}
	}

	dir := assetDir
	if dir == "" {
		dir = filepath.Dir(in)
	}
	sess := render.NewSession(
		render.WithLogger(log),
		render.WithAssetLoader(func(p string) ([]byte, error) {
			return os.ReadFile(filepath.Join(dir, p))
		}),
	)

	frame, failed, err := sess.Render(env, snap)
	if err != nil {
		return err
	}
	png, err := render.EncodePNG(frame)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return err
	}
	log.Info("decoded and rendered",
		zap.Int("elements", len(env.Elements)),
		zap.Int("skipped", len(failed)),
		zap.String("out", out))
	return nil
}

type sensorValue struct {
	Value   float64   `mapstructure:"value"`
	Unit    string    `mapstructure:"unit"`
	History []float64 `mapstructure:"history"`
}

func loadSensors(path string) (layout.SensorSnapshot, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var values map[string]sensorValue
	if err := v.UnmarshalKey("sensors", &values); err != nil {
		return nil, err
	}
	snap := make(layout.SensorSnapshot, len(values))
	for id, sv := range values {
		snap[id] = layout.Reading{Value: sv.Value, Unit: sv.Unit, History: sv.History}
	}
	return snap, nil
}

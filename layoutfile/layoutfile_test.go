package layoutfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lcdlink/layout"
)

const testLayout = `canvas:
  width: 160
  height: 128
  background: "#102030"
elements:
  - kind: text
    rect: {x: 4, y: 4, w: 120, h: 16}
    sensor: cpu_temp
    format: "CPU {value}{unit}"
    align: center
    color: "#EEEEEE"
    font: org01
    font_size: 12
  - id: cpu-graph
    kind: graph
    rect: {x: 0, y: 40, w: 160, h: 60}
    sensor: cpu_temp
    mode: filled
    min: 0
    max: 100
    line_color: "#00FF88"
sensors:
  - id: cpu_temp
    unit: "C"
    base: 55
    amplitude: 20
    period: 10s
    history: 120
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yml")
	if err := os.WriteFile(path, []byte(testLayout), 0o644); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}

	env, sims, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v, want nil", err)
	}

	if env.Width != 160 || env.Height != 128 {
		t.Fatalf("Load() canvas = %dx%d, want 160x128", env.Width, env.Height)
	}
	if len(env.Elements) != 2 {
		t.Fatalf("Load() elements = %d, want 2", len(env.Elements))
	}

	text := env.Elements[0]
	if text.Kind != layout.KindText {
		t.Fatalf("first element kind = %s, want text", text.Kind)
	}
	if text.ID == "" {
		t.Fatalf("first element id empty, want generated id")
	}
	if text.Text.Align != layout.AlignCenter {
		t.Fatalf("text align = %s, want center", text.Text.Align)
	}
	if text.Text.Style.Font.Builtin != "org01" {
		t.Fatalf("text font = %q, want builtin org01", text.Text.Style.Font.Builtin)
	}

	graph := env.Elements[1]
	if graph.ID != "cpu-graph" {
		t.Fatalf("graph id = %q, want cpu-graph", graph.ID)
	}
	if graph.Kind != layout.KindGraph {
		t.Fatalf("second element kind = %s, want graph", graph.Kind)
	}
	if !graph.Graph.HasMin || graph.Graph.Min != 0 || !graph.Graph.HasMax || graph.Graph.Max != 100 {
		t.Fatalf("graph bounds = %+v, want explicit 0..100", graph.Graph)
	}
	if graph.Graph.Mode != layout.GraphFilled {
		t.Fatalf("graph mode = %s, want filled", graph.Graph.Mode)
	}

	if len(sims) != 1 {
		t.Fatalf("Load() sensors = %d, want 1", len(sims))
	}
	if sims[0].ID != "cpu_temp" || sims[0].Period != 10*time.Second {
		t.Fatalf("simulated sensor = %+v, want cpu_temp with 10s period", sims[0])
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yml")
	bad := "canvas:\n  width: 16\n  height: 16\nelements:\n  - kind: dial\n    rect: {x: 0, y: 0, w: 8, h: 8}\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}

	if _, _, err := Load(path); err == nil {
		t.Fatalf("Load() with unknown element kind err = nil, want error")
	}
}

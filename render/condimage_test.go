package render

import (
	"bytes"
	"errors"
	"testing"

	"lcdlink/layout"
)

func TestResolveFirstMatchingRange(t *testing.T) {
	cond := &layout.ConditionalImage{
		Sensor: "cpu_temp",
		Ranges: []layout.ImageRange{
			{Lo: 0, Hi: 50, Image: []byte("cold.png")},
			{Lo: 51, Hi: 100, Image: []byte("hot.png")},
		},
	}

	tests := []struct {
		value float64
		want  string
	}{
		{30, "cold.png"},
		{75, "hot.png"},
		{0, "cold.png"},
		{50, "cold.png"},
		{51, "hot.png"},
		{100, "hot.png"},
	}
	for _, tc := range tests {
		got, err := Resolve(cond, tc.value)
		if err != nil {
			t.Fatalf("Resolve(%v) err = %v, want nil", tc.value, err)
		}
		if !bytes.Equal(got, []byte(tc.want)) {
			t.Fatalf("Resolve(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestResolveNoMatch(t *testing.T) {
	cond := &layout.ConditionalImage{
		Sensor: "cpu_temp",
		Ranges: []layout.ImageRange{
			{Lo: 0, Hi: 50, Image: []byte("cold.png")},
			{Lo: 51, Hi: 100, Image: []byte("hot.png")},
		},
	}

	_, err := Resolve(cond, 150)
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("Resolve(150) err = %T, want *ResolutionError", err)
	}
	if rerr.Value != 150 {
		t.Fatalf("ResolutionError value = %v, want 150", rerr.Value)
	}

	cond.Default = []byte("unknown.png")
	got, err := Resolve(cond, 150)
	if err != nil {
		t.Fatalf("Resolve(150) with default err = %v, want nil", err)
	}
	if !bytes.Equal(got, []byte("unknown.png")) {
		t.Fatalf("Resolve(150) with default = %q, want %q", got, "unknown.png")
	}
}

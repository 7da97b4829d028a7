package sketch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
curve_limit = 5
detection_radius = 12.5
allow_multi_valued = true
colors = ["Red", "Blue"]
`)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.CurveLimit = 5
	want.DetectionRadius = 12.5
	want.AllowMultiValued = true
	want.Colors = []string{"Red", "Blue"}
	diff(t, want, cfg)

	if r := cfg.KnotRadius(); r != 22.5 {
		t.Errorf("got knot radius %v, want 22.5", r)
	}
	if i, ok := cfg.ColorIndex("Blue"); !ok || i != 1 {
		t.Errorf("got colour index %d, %t, want 1, true", i, ok)
	}
	if _, ok := cfg.ColorIndex("Green"); ok {
		t.Error("Green shouldn't be in the palette")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		conf string
		msg  string
	}{
		{"curve_limt = 4", "undecoded fields"},
		{"curve_limit = 0", "curve_limit must be at least 1"},
		{"samples = 1", "samples must be at least 2"},
		{"edge_cutoff = 2", "edge_cutoff"},
		{"colors = []", "colors must name at least one colour"},
		{"curve_limit = ", "decoding configuration"},
	}
	for _, tt := range tests {
		_, err := ParseConfig(tt.conf)
		if err == nil || !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("ParseConfig(%q) = %v, want error containing %q", tt.conf, err, tt.msg)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sketch.toml")
	if err := os.WriteFile(name, []byte("samples = 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Samples != 50 {
		t.Errorf("got %d samples, want 50", cfg.Samples)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

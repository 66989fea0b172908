package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"hexmancer/pkg/hexmap"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	hm := cfg.HexMap()
	if hm.Resolution != hexmap.C(1200, 900) || hm.HexSize != 56 {
		t.Fatalf("unexpected map defaults %+v", hm)
	}
	if hm.Offset != hexmap.C(-2, -6) || hm.Start != hexmap.C(131, 43) {
		t.Fatalf("unexpected offset/start %v %v", hm.Offset, hm.Start)
	}
	if hm.FogMemory != FogMemory {
		t.Fatalf("fog memory = %d", hm.FogMemory)
	}
	if cfg.History.Backend != "file" || cfg.History.Path != DefaultHistoryPath {
		t.Fatalf("unexpected history defaults %+v", cfg.History)
	}
	if *cfg.Projector.Monitor != 1 || cfg.Projector.DumpPath != DefaultDumpPath {
		t.Fatalf("unexpected projector defaults %+v", cfg.Projector)
	}
	if hm.Palette.Outline != OutlineColor {
		t.Fatal("palette not wired")
	}
}

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
map:
  image: art/coast.jpg
  resolution: [600, 400]
  hex_size: 20
  offset: [1, 2]
  start: [10, 12]
  fog_memory: 0
  label: true
history:
  backend: sqlite
  path: data/history.db
projector:
  monitor: 0
  fullscreen: true
  thumbnail: [160, 0]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	hm := cfg.HexMap()
	if cfg.Map.Image != "art/coast.jpg" {
		t.Fatalf("image = %q", cfg.Map.Image)
	}
	if hm.Resolution != hexmap.C(600, 400) || hm.HexSize != 20 || hm.Offset != hexmap.C(1, 2) || hm.Start != hexmap.C(10, 12) {
		t.Fatalf("overrides lost: %+v", hm)
	}
	if hm.FogMemory != 0 || !hm.Label {
		t.Fatalf("explicit zero fog memory or label lost: %+v", hm)
	}
	if cfg.History.Backend != "sqlite" || cfg.History.Path != "data/history.db" {
		t.Fatalf("history = %+v", cfg.History)
	}
	if *cfg.Projector.Monitor != 0 || !cfg.Projector.Fullscreen || cfg.Projector.Thumbnail[0] != 160 {
		t.Fatalf("projector = %+v", cfg.Projector)
	}
}

func TestParse_Invalid(t *testing.T) {
	bad := []string{
		"history:\n  backend: redis\n",
		"map:\n  resolution: [0, 400]\n",
		"map:\n  hex_size: -3\n",
		"map: [",
	}
	for _, b := range bad {
		if _, err := Parse([]byte(b)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", b)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hexmancer/pkg/hexmap"
	"hexmancer/pkg/render"
)

func writeFixture(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	img := render.NewCanvas(800, 800, color.RGBA{40, 90, 40, 255}).Image
	if _, err := render.SavePNG(filepath.Join(dir, "map.png"), img); err != nil {
		t.Fatalf("write backdrop: %v", err)
	}
	cfg := fmt.Sprintf(`
map:
  image: %s
  resolution: [300, 200]
  hex_size: 20
  offset: [0, 0]
  start: [10, 12]
history:
  path: %s
projector:
  dump_path: %s
  thumbnail: [60, 60]
`, filepath.Join(dir, "map.png"), filepath.Join(dir, "history.txt"), filepath.Join(dir, "tmp.png"))
	configPath = filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(configPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, configPath
}

func TestParseArgs_RejectsUnknownCommand(t *testing.T) {
	_, err := parseArgs([]string{"right", "sideways"}, &bytes.Buffer{})
	var unknown *hexmap.UnknownCommandError
	if !errors.As(err, &unknown) || unknown.Token != "sideways" {
		t.Fatalf("err = %v, want UnknownCommandError for sideways", err)
	}
}

func TestRun_MovesAndDumps(t *testing.T) {
	dir, configPath := writeFixture(t)
	thumb := filepath.Join(dir, "thumb.png")
	o, err := parseArgs([]string{"-config", configPath, "-thumb", thumb, "right", "upper_right", "history"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	var out bytes.Buffer
	if err := run(o, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "grid=12,11") {
		t.Fatalf("status missing final position:\n%s", out.String())
	}

	view, err := render.LoadImage(filepath.Join(dir, "tmp.png"))
	if err != nil {
		t.Fatalf("load view: %v", err)
	}
	if b := view.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Fatalf("view bounds = %v, want 300x200", b)
	}
	small, err := render.LoadImage(thumb)
	if err != nil {
		t.Fatalf("load thumbnail: %v", err)
	}
	if b := small.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("thumbnail bounds = %v, want 60x40", b)
	}

	history, err := os.ReadFile(filepath.Join(dir, "history.txt"))
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if string(history) != "10,12\n11,12\n12,11\n" {
		t.Fatalf("history = %q", history)
	}
}

func TestRun_ResetAndUndo(t *testing.T) {
	dir, configPath := writeFixture(t)
	if err := os.WriteFile(filepath.Join(dir, "history.txt"), []byte("1,1\n2,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := parseArgs([]string{"-config", configPath, "-reset", "left", "undo"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	var out bytes.Buffer
	if err := run(o, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "grid=10,12") {
		t.Fatalf("reset should restart from the configured start:\n%s", out.String())
	}

	o, _ = parseArgs([]string{"-config", configPath, "undo"}, &bytes.Buffer{})
	if err := run(o, &out); !errors.Is(err, hexmap.ErrEmptyHistory) {
		t.Fatalf("undo at start: err = %v, want ErrEmptyHistory", err)
	}
}

func TestRun_Goto(t *testing.T) {
	dir, configPath := writeFixture(t)
	o, err := parseArgs([]string{"-config", configPath, "-goto", "13,9"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	var out bytes.Buffer
	if err := run(o, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "walked 4 steps to 13,9") || !strings.Contains(out.String(), "grid=13,9") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "tmp.png")); err != nil {
		t.Fatalf("view not written: %v", err)
	}
}

func TestRun_ImportMissingFileKeepsHistory(t *testing.T) {
	dir, configPath := writeFixture(t)
	historyPath := filepath.Join(dir, "history.txt")
	seed := "1,2\n3,4\n5,6\n"
	if err := os.WriteFile(historyPath, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := parseArgs([]string{"-config", configPath, "-import", filepath.Join(dir, "typo.txt")}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	var out bytes.Buffer
	if err := run(o, &out); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("run: err = %v, want fs.ErrNotExist", err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o.importPath = empty
	if err := run(o, &out); err == nil {
		t.Fatal("importing an empty log should fail")
	}

	got, err := os.ReadFile(historyPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != seed {
		t.Fatalf("history = %q, want %q", got, seed)
	}
}

package hexmap

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"hexmancer/pkg/render"
)

// memHistory is an in-memory History for tests.
type memHistory struct {
	entries   []Coordinate
	appendErr error
}

func (m *memHistory) Append(c Coordinate) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, c)
	return nil
}

func (m *memHistory) ReadAll() ([]Coordinate, error) {
	return append([]Coordinate(nil), m.entries...), nil
}

func (m *memHistory) Truncate() error {
	m.entries = nil
	return nil
}

func (m *memHistory) RemoveLast() (Coordinate, error) {
	if len(m.entries) < 2 {
		return Coordinate{}, ErrEmptyHistory
	}
	m.entries = m.entries[:len(m.entries)-1]
	return m.entries[len(m.entries)-1], nil
}

var backdropBlue = color.RGBA{0, 0, 255, 255}

func testBackdrop(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backdropBlue), image.Point{}, draw.Src)
	return img
}

func testConfig() Config {
	return Config{
		Resolution: C(600, 400),
		HexSize:    20,
		Offset:     C(1, 2),
		Start:      C(10, 12),
		FogMemory:  10,
		Palette:    render.DefaultPalette,
	}
}

func newTestMap(t *testing.T, h *memHistory) *HexMap {
	t.Helper()
	hm, err := New(testConfig(), testBackdrop(2000, 2000), h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return hm
}

func TestNew_SeedsEmptyHistory(t *testing.T) {
	h := &memHistory{}
	hm := newTestMap(t, h)
	if hm.Location() != C(10, 12) {
		t.Fatalf("location = %v, want start 10,12", hm.Location())
	}
	if len(h.entries) != 1 || h.entries[0] != C(10, 12) {
		t.Fatalf("history = %v, want [10,12]", h.entries)
	}
	if !hm.Stagger() {
		t.Fatal("row 12 should be staggered")
	}
}

func TestNew_ResumesFromHistory(t *testing.T) {
	h := &memHistory{entries: []Coordinate{C(1, 1), C(4, 7)}}
	hm := newTestMap(t, h)
	if hm.Location() != C(4, 7) {
		t.Fatalf("location = %v, want last record 4,7", hm.Location())
	}
	if len(h.entries) != 2 {
		t.Fatalf("history grew to %d entries on resume", len(h.entries))
	}
	if hm.Stagger() {
		t.Fatal("row 7 should not be staggered")
	}
}

func TestNew_RejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.HexSize = 0
	if _, err := New(cfg, testBackdrop(10, 10), &memHistory{}); err == nil {
		t.Fatal("expected error for zero hex size")
	}
	cfg = testConfig()
	cfg.Resolution = C(0, 400)
	if _, err := New(cfg, testBackdrop(10, 10), &memHistory{}); err == nil {
		t.Fatal("expected error for zero resolution")
	}
	if _, err := Open(testConfig(), "does/not/exist.png", &memHistory{}); err == nil {
		t.Fatal("expected error for missing backdrop")
	}
}

func TestMove_AppendsAndUpdates(t *testing.T) {
	h := &memHistory{}
	hm := newTestMap(t, h)
	for _, d := range []Direction{UpperRight, UpperRight, Left, LowerLeft, LowerRight, Right} {
		if err := hm.Move(d); err != nil {
			t.Fatalf("Move(%s): %v", d, err)
		}
		last := h.entries[len(h.entries)-1]
		if last != hm.Location() {
			t.Fatalf("after %s: history tail %v != location %v", d, last, hm.Location())
		}
		if hm.Stagger() != CheckStagger(hm.Location()) {
			t.Fatalf("after %s: stale stagger", d)
		}
		if hm.PixelLocation() != hm.GridToPixel(hm.Location()) {
			t.Fatalf("after %s: stale pixel location", d)
		}
		if !hm.CheckOnScreen(hm.PixelLocation()) {
			t.Fatalf("after %s: player off screen", d)
		}
	}
	// 10,12 -> 11,11 -> 11,10 -> 10,10 -> 10,11 -> 10,12 -> 11,12
	if hm.Location() != C(11, 12) {
		t.Fatalf("location = %v, want 11,12", hm.Location())
	}
}

func TestMove_FailedAppendKeepsPosition(t *testing.T) {
	h := &memHistory{}
	hm := newTestMap(t, h)
	h.appendErr = errors.New("disk full")
	if err := hm.Move(Right); err == nil {
		t.Fatal("expected error")
	}
	if hm.Location() != C(10, 12) {
		t.Fatalf("location moved to %v despite failed append", hm.Location())
	}
}

func TestMoveUndo_RoundTrip(t *testing.T) {
	h := &memHistory{}
	hm := newTestMap(t, h)
	start, startLen := hm.Location(), len(h.entries)

	moves := []Direction{UpperLeft, UpperLeft, Right, LowerRight, LowerRight, LowerRight, Left}
	for _, d := range moves {
		if err := hm.Move(d); err != nil {
			t.Fatalf("Move: %v", err)
		}
	}
	for range moves {
		if err := hm.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
		if h.entries[len(h.entries)-1] != hm.Location() {
			t.Fatal("history tail diverged from location after undo")
		}
	}
	if hm.Location() != start {
		t.Fatalf("location = %v, want %v", hm.Location(), start)
	}
	if len(h.entries) != startLen {
		t.Fatalf("history length = %d, want %d", len(h.entries), startLen)
	}
	if err := hm.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("undo past start: err = %v, want ErrEmptyHistory", err)
	}
	if hm.Location() != start {
		t.Fatal("failed undo must not move the player")
	}
}

func TestCommand_Dispatch(t *testing.T) {
	hm := newTestMap(t, &memHistory{})
	if err := hm.Command("right"); err != nil {
		t.Fatalf("right: %v", err)
	}
	if hm.Location() != C(11, 12) {
		t.Fatalf("location = %v", hm.Location())
	}
	if err := hm.Command("history"); err != nil || !hm.HistoryEnabled() {
		t.Fatalf("history toggle: err=%v enabled=%t", err, hm.HistoryEnabled())
	}
	if err := hm.Command("fog"); err != nil || !hm.FogEnabled() {
		t.Fatalf("fog toggle: err=%v enabled=%t", err, hm.FogEnabled())
	}
	if err := hm.Command("fog"); err != nil || hm.FogEnabled() {
		t.Fatal("second fog toggle should disable fog")
	}
	if err := hm.Command("undo"); err != nil || hm.Location() != C(10, 12) {
		t.Fatalf("undo: err=%v location=%v", err, hm.Location())
	}

	var unknown *UnknownCommandError
	if err := hm.Command("north"); !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownCommandError", err)
	}
}

func TestSetHexSize_RecomputesGeometry(t *testing.T) {
	hm := newTestMap(t, &memHistory{})
	if err := hm.SetHexSize(40); err != nil {
		t.Fatalf("SetHexSize: %v", err)
	}
	if hm.Layout().SideLength != SideLength(40) {
		t.Fatal("side length not recomputed")
	}
	if hm.PixelLocation() != hm.GridToPixel(hm.Location()) {
		t.Fatal("pixel location not recomputed")
	}
	if err := hm.SetHexSize(-1); err == nil {
		t.Fatal("expected error for negative hex size")
	}
	if err := hm.SetResolution(C(800, 600)); err != nil || hm.Resolution() != C(800, 600) {
		t.Fatalf("SetResolution: %v", err)
	}
}

func TestStatus(t *testing.T) {
	hm := newTestMap(t, &memHistory{})
	s := hm.Status()
	if s.Grid != C(10, 12) || !s.Stagger || s.HexSize != 20 || s.Frame != hm.Frame() {
		t.Fatalf("unexpected status %+v", s)
	}
	if s.String() == "" {
		t.Fatal("empty status line")
	}
}

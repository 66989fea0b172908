// pkg/hexmap/hexmap.go
package hexmap

import (
	"fmt"
	"image"
	"log/slog"

	"hexmancer/pkg/render"
)

// Config is the settings bundle a HexMap is built from.
type Config struct {
	Resolution Coordinate // viewport size in pixels
	HexSize    int        // edge-to-edge cell width in pixels
	Offset     Coordinate // backdrop misalignment correction
	Start      Coordinate // used only when the history is empty
	FogMemory  int        // history entries that stay clear of fog
	FogSeed    int64
	Label      bool // draw the grid coordinate in the corner
	Palette    render.Palette
}

// HexMap tracks a single player on a staggered hex grid drawn over a backdrop
// image and renders the viewport centred on that player. It is not safe for
// concurrent use, and the history backing it must not be shared with another
// process.
type HexMap struct {
	image   image.Image
	history History

	resolution Coordinate
	layout     Layout

	locationGrid  Coordinate
	locationPixel Point
	stagger       bool

	fogFlag     bool
	historyFlag bool

	fogMemory int
	label     bool
	palette   render.Palette
	fog       *render.Fog
}

// Open loads the backdrop at imagePath and builds a HexMap over it.
func Open(cfg Config, imagePath string, history History) (*HexMap, error) {
	img, err := render.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("load backdrop: %w", err)
	}
	return New(cfg, img, history)
}

// New builds a HexMap. The position resumes from the newest history record;
// an empty history is seeded with cfg.Start.
func New(cfg Config, backdrop image.Image, history History) (*HexMap, error) {
	if backdrop == nil {
		return nil, fmt.Errorf("hexmap: nil backdrop")
	}
	if history == nil {
		return nil, fmt.Errorf("hexmap: nil history")
	}
	if err := validateResolution(cfg.Resolution); err != nil {
		return nil, err
	}
	if err := validateHexSize(cfg.HexSize); err != nil {
		return nil, err
	}

	hm := &HexMap{
		image:      backdrop,
		history:    history,
		resolution: cfg.Resolution,
		layout:     NewLayout(cfg.HexSize, cfg.Offset),
		fogMemory:  cfg.FogMemory,
		label:      cfg.Label,
		palette:    cfg.Palette,
		fog:        render.NewFog(cfg.FogSeed),
	}

	entries, err := history.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if len(entries) == 0 {
		if err := history.Append(cfg.Start); err != nil {
			return nil, fmt.Errorf("seed history: %w", err)
		}
		hm.locationGrid = cfg.Start
	} else {
		hm.locationGrid = entries[len(entries)-1]
		slog.Info("resuming from history", "grid", hm.locationGrid.String(), "entries", len(entries))
	}
	hm.update()
	return hm, nil
}

func validateResolution(r Coordinate) error {
	if r.X <= 0 || r.Y <= 0 {
		return fmt.Errorf("hexmap: resolution must be positive, got %v", r)
	}
	return nil
}

func validateHexSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("hexmap: hex size must be positive, got %d", size)
	}
	return nil
}

// update recomputes the values derived from the grid position.
func (hm *HexMap) update() {
	hm.stagger = CheckStagger(hm.locationGrid)
	hm.locationPixel = hm.layout.GridToPixel(hm.locationGrid)
}

func (hm *HexMap) Location() Coordinate { return hm.locationGrid }
func (hm *HexMap) PixelLocation() Point { return hm.locationPixel }
func (hm *HexMap) Stagger() bool { return hm.stagger }
func (hm *HexMap) Resolution() Coordinate { return hm.resolution }
func (hm *HexMap) Layout() Layout { return hm.layout }
func (hm *HexMap) HistoryEnabled() bool { return hm.historyFlag }
func (hm *HexMap) FogEnabled() bool { return hm.fogFlag }
func (hm *HexMap) GridToPixel(g Coordinate) Point { return hm.layout.GridToPixel(g) }

// Viewport is the current view window over the backdrop.
func (hm *HexMap) Viewport() Viewport {
	return Viewport{Resolution: hm.resolution, Center: hm.locationPixel}
}

// Frame is where the backdrop's top-left corner lands in the view.
func (hm *HexMap) Frame() Coordinate {
	return hm.Viewport().Frame()
}

// HexPoints is the player marker outline at the middle of the view.
func (hm *HexMap) HexPoints() []Point {
	return hm.layout.HexPoints(hm.Viewport().ViewCenter())
}

// CheckOnScreen reports whether backdrop pixel p is inside the current view.
func (hm *HexMap) CheckOnScreen(p Point) bool {
	return hm.Viewport().Contains(p)
}

// NormalizePixelLocation maps backdrop pixel p into view-local pixels.
func (hm *HexMap) NormalizePixelLocation(p Point) Point {
	return hm.Viewport().Normalize(p)
}

// SetResolution changes the viewport size.
func (hm *HexMap) SetResolution(r Coordinate) error {
	if err := validateResolution(r); err != nil {
		return err
	}
	hm.resolution = r
	return nil
}

// SetHexSize changes the cell width and the derived side length.
func (hm *HexMap) SetHexSize(size int) error {
	if err := validateHexSize(size); err != nil {
		return err
	}
	hm.layout = NewLayout(size, hm.layout.Offset)
	hm.update()
	return nil
}

// Move steps one cell in direction d and records the new position.
func (hm *HexMap) Move(d Direction) error {
	next := hm.locationGrid.Add(d.Delta(hm.stagger))
	if err := hm.history.Append(next); err != nil {
		return fmt.Errorf("record move: %w", err)
	}
	hm.locationGrid = next
	hm.update()
	slog.Info("moved", "direction", d.String(), "grid", next.String())
	return nil
}

// Undo reverts to the previous recorded position.
func (hm *HexMap) Undo() error {
	prev, err := hm.history.RemoveLast()
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	hm.locationGrid = prev
	hm.update()
	slog.Info("undid movement", "grid", prev.String())
	return nil
}

// ToggleHistory flips the trail overlay.
func (hm *HexMap) ToggleHistory() bool {
	hm.historyFlag = !hm.historyFlag
	slog.Debug("history overlay", "enabled", hm.historyFlag)
	return hm.historyFlag
}

// ToggleFog flips the fog overlay.
func (hm *HexMap) ToggleFog() bool {
	hm.fogFlag = !hm.fogFlag
	slog.Debug("fog overlay", "enabled", hm.fogFlag)
	return hm.fogFlag
}

// Do executes cmd.
func (hm *HexMap) Do(cmd Command) error {
	if d, ok := cmd.Direction(); ok {
		return hm.Move(d)
	}
	switch cmd {
	case Undo:
		return hm.Undo()
	case ToggleHistory:
		hm.ToggleHistory()
		return nil
	case ToggleFog:
		hm.ToggleFog()
		return nil
	}
	return &UnknownCommandError{Token: cmd.String()}
}

// Command parses token and executes it.
func (hm *HexMap) Command(token string) error {
	cmd, err := ParseCommand(token)
	if err != nil {
		return err
	}
	return hm.Do(cmd)
}

// Status is a snapshot of the map state for debugging and status lines.
type Status struct {
	Grid       Coordinate
	Pixel      Point
	Stagger    bool
	HexSize    int
	SideLength float64
	Offset     Coordinate
	Resolution Coordinate
	Frame      Coordinate
	History    bool
	Fog        bool
}

// Status returns the current state.
func (hm *HexMap) Status() Status {
	return Status{
		Grid:       hm.locationGrid,
		Pixel:      hm.locationPixel,
		Stagger:    hm.stagger,
		HexSize:    hm.layout.HexSize,
		SideLength: hm.layout.SideLength,
		Offset:     hm.layout.Offset,
		Resolution: hm.resolution,
		Frame:      hm.Frame(),
		History:    hm.historyFlag,
		Fog:        hm.fogFlag,
	}
}

func (s Status) String() string {
	return fmt.Sprintf("grid=%v pixel=%.1f,%.1f stagger=%t hex=%d side=%.3f offset=%v resolution=%v frame=%v history=%t fog=%t",
		s.Grid, s.Pixel.X, s.Pixel.Y, s.Stagger, s.HexSize, s.SideLength, s.Offset, s.Resolution, s.Frame, s.History, s.Fog)
}

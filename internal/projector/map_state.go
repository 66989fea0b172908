package projector

import (
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hexmancer/internal/event"
	"hexmancer/pkg/hexmap"
)

// keyCommands maps projector keys onto map commands. The movement keys form
// a hexagon around S on a QWERTY keyboard. Keys pressed in the same frame
// are applied in this order.
var keyCommands = []struct {
	key ebiten.Key
	cmd hexmap.Command
}{
	{ebiten.KeyQ, hexmap.MoveUpperLeft},
	{ebiten.KeyE, hexmap.MoveUpperRight},
	{ebiten.KeyA, hexmap.MoveLeft},
	{ebiten.KeyD, hexmap.MoveRight},
	{ebiten.KeyZ, hexmap.MoveLowerLeft},
	{ebiten.KeyC, hexmap.MoveLowerRight},
	{ebiten.KeyU, hexmap.Undo},
	{ebiten.KeyH, hexmap.ToggleHistory},
	{ebiten.KeyF, hexmap.ToggleFog},
}

// pressedCommands returns the commands whose keys are down, in binding order.
func pressedCommands(pressed func(ebiten.Key) bool) []hexmap.Command {
	var out []hexmap.Command
	for _, kc := range keyCommands {
		if pressed(kc.key) {
			out = append(out, kc.cmd)
		}
	}
	return out
}

// MapState shows the hex map and routes key presses to it.
type MapState struct {
	hm     *hexmap.HexMap
	bus    *event.Dispatcher
	frame  *ebiten.Image
	dirty  bool
	logger *slog.Logger
}

// NewMapState returns a screen for hm. Every applied command is announced on
// bus, which may be nil.
func NewMapState(hm *hexmap.HexMap, bus *event.Dispatcher, logger *slog.Logger) *MapState {
	return &MapState{hm: hm, bus: bus, dirty: true, logger: logger}
}

func (s *MapState) Enter() { s.dirty = true }

func (s *MapState) Exit() {}

func (s *MapState) Update() error {
	for _, cmd := range pressedCommands(inpututil.IsKeyJustPressed) {
		if err := s.hm.Do(cmd); err != nil {
			if errors.Is(err, hexmap.ErrEmptyHistory) {
				s.logger.Warn("nothing to undo")
				continue
			}
			return err
		}
		s.dirty = true
		if s.bus != nil {
			s.bus.Dispatch(event.Event{Type: event.ForCommand(cmd), Status: s.hm.Status()})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		loc := s.hm.Location().String()
		if err := clipboard.WriteAll(loc); err != nil {
			s.logger.Warn("clipboard unavailable", "error", err)
		} else {
			s.logger.Info("copied position", "grid", loc)
		}
	}
	if s.dirty {
		return s.refresh()
	}
	return nil
}

func (s *MapState) refresh() error {
	img, err := s.hm.Render()
	if err != nil {
		return err
	}
	if s.frame != nil {
		s.frame.Deallocate()
	}
	s.frame = ebiten.NewImageFromImage(img)
	s.dirty = false
	return nil
}

func (s *MapState) Draw(screen *ebiten.Image) {
	if s.frame != nil {
		screen.DrawImage(s.frame, nil)
	}
}

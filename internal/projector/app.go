package projector

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App is the ebiten game driving the projector window. Tab switches between
// the map and the still image, Escape quits.
type App struct {
	sm      *StateMachine
	mapView State
	still   State
	width   int
	height  int
}

// NewApp starts on the map screen. still may be nil.
func NewApp(mapView, still State, width, height int) *App {
	sm := NewStateMachine()
	sm.SetState(mapView)
	return &App{sm: sm, mapView: mapView, still: still, width: width, height: height}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.still != nil && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if a.sm.Current() == a.mapView {
			a.sm.SetState(a.still)
		} else {
			a.sm.SetState(a.mapView)
		}
	}
	return a.sm.Update()
}

func (a *App) Draw(screen *ebiten.Image) {
	a.sm.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// SelectMonitor moves the window to monitor index (0 is the primary display).
// It reports false and leaves the window alone when that monitor is missing.
func SelectMonitor(index int) bool {
	monitors := ebiten.AppendMonitors(nil)
	if index < 0 || index >= len(monitors) {
		return false
	}
	ebiten.SetMonitor(monitors[index])
	return true
}

package projector

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"hexmancer/pkg/render"
)

// StillState shows a fixed image (a handout or scene art) scaled to fit the
// projector and centred on black.
type StillState struct {
	src    image.Image
	img    *ebiten.Image
	width  int
	height int
}

// NewStillState prepares src for a width×height screen.
func NewStillState(src image.Image, width, height int) *StillState {
	return &StillState{src: src, width: width, height: height}
}

func (s *StillState) Enter() {
	if s.img == nil {
		b := s.src.Bounds()
		w, h := render.FitSize(b.Dx(), b.Dy(), s.width, s.height)
		if w == b.Dx() && h == b.Dy() {
			s.img = ebiten.NewImageFromImage(s.src)
		} else {
			s.img = ebiten.NewImageFromImage(render.Thumbnail(s.src, w, h))
		}
	}
}

func (s *StillState) Exit() {}

func (s *StillState) Update() error { return nil }

func (s *StillState) Draw(screen *ebiten.Image) {
	if s.img == nil {
		return
	}
	b := s.img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.width-b.Dx())/2, float64(s.height-b.Dy())/2)
	screen.DrawImage(s.img, op)
}

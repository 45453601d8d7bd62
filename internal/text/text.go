// Package text measures and draws single-line labels with the bundled Go
// Regular face.
package text

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DPI matches the usual desktop assumption so point sizes line up with
// other panels.
const DPI = 96

// Measurer reports the logical size of a string.
type Measurer interface {
	Measure(s string) (width, height int)
}

// Service caches one face per output scale.
type Service struct {
	font  *sfnt.Font
	size  float64
	faces map[int]font.Face
}

// New parses the bundled font at the given point size.
func New(size float64) (*Service, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Service{font: f, size: size, faces: make(map[int]font.Face)}, nil
}

func (s *Service) face(scale int) (font.Face, error) {
	if scale < 1 {
		scale = 1
	}
	if face, ok := s.faces[scale]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    s.size,
		DPI:     DPI * float64(scale),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	s.faces[scale] = face
	return face, nil
}

// Measure returns the advance width and line height at scale 1. A face
// failure measures as zero so the item simply collapses.
func (s *Service) Measure(str string) (width, height int) {
	face, err := s.face(1)
	if err != nil {
		return 0, 0
	}
	m := face.Metrics()
	return font.MeasureString(face, str).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// Draw renders str with its top-left corner at origin (physical pixels).
// Nothing is drawn outside clip.
func (s *Service) Draw(dst *image.RGBA, clip image.Rectangle, origin image.Point, str string, c color.Color, scale int) error {
	face, err := s.face(scale)
	if err != nil {
		return err
	}
	sub, ok := dst.SubImage(clip).(*image.RGBA)
	if !ok || sub.Bounds().Empty() {
		return nil
	}
	fdraw := font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(origin.X), Y: fixed.I(origin.Y) + face.Metrics().Ascent},
	}
	fdraw.DrawString(str)
	return nil
}

// Close releases the cached faces.
func (s *Service) Close() error {
	for scale, face := range s.faces {
		face.Close()
		delete(s.faces, scale)
	}
	return nil
}

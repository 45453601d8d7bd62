package render

import (
	"image"
	"image/color"
	"image/draw"

	"deedles.dev/ximage/geom"
)

// Style is the panel palette.
type Style struct {
	Background   color.Color
	Text         color.Color
	Button       color.Color
	ButtonActive color.Color
}

// TextDrawer draws a label at origin, clipped to clip, in physical pixels.
type TextDrawer interface {
	Draw(dst *image.RGBA, clip image.Rectangle, origin image.Point, s string, c color.Color, scale int) error
}

// Painter rasterises frames. Equal inputs produce identical pixels.
type Painter struct {
	engine *Engine
	text   TextDrawer
	style  Style
}

func NewPainter(e *Engine, t TextDrawer, st Style) *Painter {
	return &Painter{engine: e, text: t, style: st}
}

// Paint draws f into a new image of f.Width*scale by f.Height*scale.
func (p *Painter) Paint(f Frame, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
	p.PaintInto(dst, f, scale)
	return dst
}

// PaintInto repaints dst completely: background, buttons, labels, clock and
// a one-pixel divider along the bottom edge.
func (p *Painter) PaintInto(dst *image.RGBA, f Frame, scale int) {
	phys := func(r geom.Rect[int]) image.Rectangle {
		return image.Rect(r.Min.X*scale, r.Min.Y*scale, r.Max.X*scale, r.Max.Y*scale)
	}
	fill := func(r image.Rectangle, c color.Color) {
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	fill(dst.Bounds(), p.style.Background)

	for _, r := range f.Regions {
		switch r.Kind {
		case KindTaskbar:
			bg := p.style.Button
			if r.Active {
				bg = p.style.ButtonActive
			}
			fill(phys(geom.Rt(r.Rect.Min.X, 2, r.Rect.Max.X, f.Height-2)), bg)

			content := geom.Rt(r.Rect.Min.X+Padding, 0, r.Rect.Max.X-Padding, f.Height)
			p.label(dst, phys(content), r.Rect.Min.X+Padding, f.Height, r.Label, scale)
		case KindClock:
			p.label(dst, phys(r.Rect), r.Rect.Min.X, f.Height, r.Label, scale)
		}
	}

	if f.Height > 0 {
		fill(phys(geom.Rt(0, f.Height-1, f.Width, f.Height)), p.style.Text)
	}
}

// label centres s vertically in the bar starting at logical x.
func (p *Painter) label(dst *image.RGBA, clip image.Rectangle, x, height int, s string, scale int) {
	if s == "" || clip.Empty() {
		return
	}
	_, th := p.engine.text.Measure(s)
	origin := image.Pt(x*scale, (height-th)*scale/2)
	if err := p.text.Draw(dst, clip, origin, s, p.style.Text, scale); err != nil {
		p.engine.log.WithError(err).Warn("failed to draw label")
	}
}

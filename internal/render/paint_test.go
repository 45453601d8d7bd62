package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// boxText fills the clipped text box instead of rasterising glyphs.
type boxText struct{ fixedText }

func (boxText) Draw(dst *image.RGBA, clip image.Rectangle, origin image.Point, s string, c color.Color, scale int) error {
	w, h := fixedText{}.Measure(s)
	box := image.Rect(origin.X, origin.Y, origin.X+w*scale, origin.Y+h*scale).Intersect(clip)
	draw.Draw(dst, box, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

var testStyle = Style{
	Background:   color.RGBA{0x32, 0x32, 0x32, 0xff},
	Text:         color.RGBA{0xff, 0xff, 0xff, 0xff},
	Button:       color.RGBA{0x4a, 0x4a, 0x4a, 0xff},
	ButtonActive: color.RGBA{0x5a, 0x8a, 0xc6, 0xff},
}

func newTestPainter(t *testing.T) (*Engine, *Painter) {
	t.Helper()
	e, _ := newTestEngine(t)
	return e, NewPainter(e, boxText{}, testStyle)
}

func TestPaint_Idempotent(t *testing.T) {
	e, p := newTestPainter(t)
	buttons := []Button{{Key: 1, Label: "term", Active: true}, {Key: 2, Label: "web"}}
	f := e.Layout(ParseItems("TSC"), buttons, "12:34", 400, 30)

	a := p.Paint(f, 2)
	b := p.Paint(f, 2)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("painting the same frame twice produced different pixels")
	}
}

func TestPaint_Colors(t *testing.T) {
	e, p := newTestPainter(t)
	buttons := []Button{{Key: 1, Label: "term", Active: true}, {Key: 2, Label: "web"}}
	f := e.Layout(ParseItems("TC"), buttons, "12:34", 400, 30)

	img := p.Paint(f, 1)

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{name: "background left of first button", x: 2, y: 10, want: testStyle.Background},
		{name: "active button padding", x: 10, y: 10, want: testStyle.ButtonActive},
		{name: "inactive button padding", x: 74, y: 10, want: testStyle.Button},
		{name: "button top inset", x: 10, y: 1, want: testStyle.Background},
		{name: "label inside content rect", x: 20, y: 15, want: testStyle.Text},
		{name: "divider", x: 200, y: 29, want: testStyle.Text},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y); !sameColor(got, tt.want) {
			t.Fatalf("%s: At(%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPaint_LabelClippedToContentRect(t *testing.T) {
	e, p := newTestPainter(t)
	long := "a label that is definitely longer than the cap"
	f := e.Layout(ParseItems("T"), []Button{{Key: 1, Label: long}}, "", 400, 30)

	img := p.Paint(f, 1)
	r := f.Regions[0]
	// Right padding of the capped button keeps the button colour.
	x := r.Rect.Max.X - Padding/2
	if got := img.At(x, 15); !sameColor(got, testStyle.Button) {
		t.Fatalf("At(%d,15) = %v, want button colour (label must be clipped)", x, got)
	}
}

func TestPaint_ScaledSize(t *testing.T) {
	e, p := newTestPainter(t)
	f := e.Layout(ParseItems("C"), nil, "12:34", 400, 30)
	img := p.Paint(f, 2)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 60 {
		t.Fatalf("Bounds() = %v, want 800x60", b)
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

package panel

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"deedles.dev/ximage/xcursor"

	"github.com/1broseidon/t2play/internal/protocol/wp"
	"github.com/1broseidon/t2play/internal/shm"
)

// DefaultCursorSize applies when XCURSOR_SIZE is unset or invalid.
const DefaultCursorSize = 24

// Names tried in order when loading the fallback cursor.
var cursorNames = []string{"default", "left_ptr"}

var errNoCursor = errors.New("theme has no default cursor")

// cursorImage is the themed cursor uploaded once per scale and shared by
// every pointer's cursor surface.
type cursorImage struct {
	scale      int
	buf        *shm.Buffer
	hotX, hotY int
}

func cursorSize() int {
	if n, err := strconv.Atoi(os.Getenv("XCURSOR_SIZE")); err == nil && n > 0 {
		return n
	}
	return DefaultCursorSize
}

// setCursor shows the default arrow over the bar.
func (p *Panel) setCursor(ptr *seatPointer) {
	if p.torndown {
		return
	}
	if p.cursorShape != nil {
		if ptr.shape == nil {
			ptr.shape = p.cursorShape.GetPointer(ptr.wl)
		}
		ptr.shape.SetShape(ptr.serial, wp.CursorShapeDeviceV1ShapeDefault)
		return
	}

	img := p.loadCursor()
	if img == nil {
		return
	}
	if ptr.surface == nil {
		ptr.surface = p.compositor.CreateSurface()
	}
	scale := 1
	if p.compositorVersion >= 3 {
		scale = img.scale
		ptr.surface.SetBufferScale(int32(scale))
	}
	s := ptr.surface
	s.Attach(wlBuffer(img.buf), 0, 0)
	s.Damage(0, 0, int32(img.buf.Width), int32(img.buf.Height))
	s.Commit()
	ptr.wl.SetCursor(ptr.serial, s, int32(img.hotX/scale), int32(img.hotY/scale))
}

// themeCursor picks the image closest to size from the first of
// cursorNames the theme provides.
func themeCursor(theme *xcursor.Theme, size int) (*xcursor.Image, error) {
	for _, name := range cursorNames {
		c, ok := theme.Cursors[name]
		if !ok {
			continue
		}
		if imgs := c.Images[c.BestSize(size)]; len(imgs) > 0 {
			return imgs[0], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", errNoCursor, theme.Name)
}

// loadTheme wraps xcursor.LoadTheme, which panics on an index.theme
// without an Inherits line.
func loadTheme(name string) (theme *xcursor.Theme, err error) {
	defer func() {
		if r := recover(); r != nil {
			theme, err = nil, fmt.Errorf("load cursor theme %q: %v", name, r)
		}
	}()
	return xcursor.LoadTheme(name)
}

// loadCursor returns the cursor for the current scale, loading it from the
// theme when needed. A missing theme leaves the compositor's cursor alone.
func (p *Panel) loadCursor() *cursorImage {
	if p.cursor != nil && p.cursor.scale == p.scale {
		return p.cursor
	}
	p.releaseCursorImage()

	if p.cursorTheme == nil {
		name := os.Getenv("XCURSOR_THEME")
		theme, err := loadTheme(name)
		if err != nil {
			p.log.WithError(err).WithField("theme", name).Warn("failed to load cursor theme")
			return nil
		}
		p.cursorTheme = theme
	}
	img, err := themeCursor(p.cursorTheme, cursorSize()*p.scale)
	if err != nil {
		p.log.WithError(err).Warn("no cursor theme available")
		return nil
	}

	bounds := img.Image.Rect
	buf, err := shm.NewBuffer(p.factory, bounds.Dx(), bounds.Dy(), nil)
	if err != nil {
		p.log.WithError(err).Warn("failed to allocate cursor buffer")
		return nil
	}
	// Xcursor pixels are premultiplied little-endian ARGB, the layout of
	// the buffer.
	copy(buf.Bytes(), img.Image.Pix)
	p.cursor = &cursorImage{scale: p.scale, buf: buf, hotX: img.Hot.X, hotY: img.Hot.Y}
	return p.cursor
}

func (p *Panel) releaseCursorImage() {
	if p.cursor == nil {
		return
	}
	if err := p.cursor.buf.Destroy(); err != nil {
		p.log.WithError(err).Warn("failed to release cursor buffer")
	}
	p.cursor = nil
}

// refreshCursors re-applies the fallback cursor after a scale change so it
// is drawn at the new resolution.
func (p *Panel) refreshCursors() {
	if p.cursorShape != nil || p.cursor == nil {
		return
	}
	for _, s := range p.seats {
		if s.pointer != nil && s.pointer.surface != nil {
			p.setCursor(s.pointer)
		}
	}
}

package panel

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/ximage/xcursor"
)

// writeXcursor writes a cursor file holding one square image per size.
// Every pixel of the size-n image is 0xff0000nn and its hotspot is
// (n/4, n/2).
func writeXcursor(t *testing.T, path string, sizes ...int) {
	t.Helper()
	var b bytes.Buffer
	put := func(vs ...uint32) {
		for _, v := range vs {
			binary.Write(&b, binary.LittleEndian, v)
		}
	}
	const (
		fileHeader  = 16
		tocEntry    = 12
		imageHeader = 36
		imageType   = 0xfffd0002
	)
	put(0x72756358, fileHeader, 0x10000, uint32(len(sizes)))
	pos := uint32(fileHeader + tocEntry*len(sizes))
	for _, n := range sizes {
		put(imageType, uint32(n), pos)
		pos += uint32(imageHeader + n*n*4)
	}
	for _, n := range sizes {
		put(imageHeader, imageType, uint32(n), 1, uint32(n), uint32(n), uint32(n/4), uint32(n/2), 50)
		for range n * n {
			put(0xff000000 | uint32(n))
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write cursor: %v", err)
	}
}

func TestThemeCursor_PicksClosestSize(t *testing.T) {
	dir := t.TempDir()
	writeXcursor(t, filepath.Join(dir, "left_ptr"), 24, 48)
	theme, err := xcursor.LoadThemeFromDir(dir)
	if err != nil {
		t.Fatalf("LoadThemeFromDir() error: %v", err)
	}

	tests := []struct {
		size int
		want int
	}{
		{size: 24, want: 24},
		{size: 30, want: 24},
		{size: 48, want: 48},
		{size: 96, want: 48},
	}
	for _, tt := range tests {
		img, err := themeCursor(theme, tt.size)
		if err != nil {
			t.Fatalf("themeCursor(%d) error: %v", tt.size, err)
		}
		if img.Image.Rect.Dx() != tt.want {
			t.Fatalf("themeCursor(%d) width = %d, want %d", tt.size, img.Image.Rect.Dx(), tt.want)
		}
	}
}

func TestThemeCursor_PrefersDefaultName(t *testing.T) {
	dir := t.TempDir()
	writeXcursor(t, filepath.Join(dir, "left_ptr"), 24)
	writeXcursor(t, filepath.Join(dir, "default"), 32)
	theme, err := xcursor.LoadThemeFromDir(dir)
	if err != nil {
		t.Fatalf("LoadThemeFromDir() error: %v", err)
	}

	img, err := themeCursor(theme, 24)
	if err != nil {
		t.Fatalf("themeCursor() error: %v", err)
	}
	if img.Image.Rect.Dx() != 32 {
		t.Fatalf("picked a %dpx image, want the 32px default cursor", img.Image.Rect.Dx())
	}
}

func TestThemeCursor_Missing(t *testing.T) {
	dir := t.TempDir()
	writeXcursor(t, filepath.Join(dir, "watch"), 24)
	theme, err := xcursor.LoadThemeFromDir(dir)
	if err != nil {
		t.Fatalf("LoadThemeFromDir() error: %v", err)
	}
	if _, err := themeCursor(theme, 24); !errors.Is(err, errNoCursor) {
		t.Fatalf("themeCursor() error = %v, want errNoCursor", err)
	}
}

func TestLoadCursor_UploadsThemeImage(t *testing.T) {
	root := t.TempDir()
	themeDir := filepath.Join(root, "testtheme")
	writeXcursor(t, filepath.Join(themeDir, "cursors", "left_ptr"), 24, 48)
	if err := os.WriteFile(filepath.Join(themeDir, "index.theme"), []byte("[Icon Theme]\nInherits=\n"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	t.Setenv("XCURSOR_PATH", root)
	t.Setenv("XCURSOR_THEME", "testtheme")
	t.Setenv("XCURSOR_SIZE", "24")

	tp := newTestPanel(t, "C")
	tp.scale = 2
	img := tp.loadCursor()
	if img == nil {
		t.Fatal("loadCursor() = nil, want the themed cursor")
	}
	if img.buf.Width != 48 || img.buf.Height != 48 {
		t.Fatalf("cursor buffer = %dx%d, want 48x48 at scale 2", img.buf.Width, img.buf.Height)
	}
	if img.hotX != 12 || img.hotY != 24 {
		t.Fatalf("hotspot = (%d,%d), want (12,24)", img.hotX, img.hotY)
	}
	if px := img.buf.Bytes()[:4]; !bytes.Equal(px, []byte{48, 0, 0, 0xff}) {
		t.Fatalf("first pixel = %v, want [48 0 0 255]", px)
	}
	if again := tp.loadCursor(); again != img {
		t.Fatal("cursor reloaded at an unchanged scale")
	}
}

func TestLoadCursor_NoThemeLeavesCursorAlone(t *testing.T) {
	t.Setenv("XCURSOR_PATH", t.TempDir())
	t.Setenv("XCURSOR_THEME", "absent")

	tp := newTestPanel(t, "C")
	if img := tp.loadCursor(); img != nil {
		t.Fatalf("loadCursor() = %v, want nil without a theme", img)
	}
	if len(tp.factory.sizes) != 0 {
		t.Fatalf("allocated %d buffers, want none", len(tp.factory.sizes))
	}
}

func TestLoadTheme_IndexWithoutInherits(t *testing.T) {
	root := t.TempDir()
	themeDir := filepath.Join(root, "plain")
	writeXcursor(t, filepath.Join(themeDir, "cursors", "default"), 24)
	if err := os.WriteFile(filepath.Join(themeDir, "index.theme"), []byte("[Icon Theme]\nName=plain\n"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	t.Setenv("XCURSOR_PATH", root)

	theme, err := loadTheme("plain")
	if err != nil {
		// Loaders that choke on such an index must fail, not crash.
		return
	}
	if _, err := themeCursor(theme, 24); err != nil {
		t.Fatalf("themeCursor() error: %v", err)
	}
}

func TestCursorSize(t *testing.T) {
	tests := []struct {
		env  string
		want int
	}{
		{env: "", want: DefaultCursorSize},
		{env: "32", want: 32},
		{env: "huge", want: DefaultCursorSize},
		{env: "-4", want: DefaultCursorSize},
	}
	for _, tt := range tests {
		t.Setenv("XCURSOR_SIZE", tt.env)
		if got := cursorSize(); got != tt.want {
			t.Fatalf("cursorSize() with %q = %d, want %d", tt.env, got, tt.want)
		}
	}
}

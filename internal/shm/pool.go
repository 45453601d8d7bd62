// Package shm implements the two-slot shared-memory buffer pool the panel
// renders into.
package shm

import (
	"errors"
	"fmt"
	"image"
	"os"

	wl "deedles.dev/wl/client"
	wlshm "deedles.dev/wl/shm"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// BytesPerPixel for ARGB8888.
const BytesPerPixel = 4

// ErrNoFreeBuffer is returned by Acquire when both slots are held by the
// compositor. Callers skip the frame.
var ErrNoFreeBuffer = errors.New("shm: no free buffer")

// Remote is the compositor side of a buffer.
type Remote interface {
	Destroy()
}

// Factory turns a shared-memory file into a compositor buffer. The file is
// only borrowed for the call. release must be invoked when the compositor
// gives the buffer back.
type Factory interface {
	CreateBuffer(file *os.File, size, width, height, stride int, release func()) (Remote, error)
}

// WaylandFactory creates wl_buffers through wl_shm. Each buffer gets its own
// pool, which is destroyed right away; the buffer keeps the memory alive.
type WaylandFactory struct {
	Shm *wl.Shm
}

func (f WaylandFactory) CreateBuffer(file *os.File, size, width, height, stride int, release func()) (Remote, error) {
	if f.Shm == nil {
		return nil, errors.New("shm: wl_shm not bound")
	}
	pool := f.Shm.CreatePool(file, int32(size))
	buf := pool.CreateBuffer(0, int32(width), int32(height), int32(stride), wl.ShmFormatArgb8888)
	pool.Destroy()
	buf.Listener = releaseListener(release)
	return buf, nil
}

type releaseListener func()

func (l releaseListener) Release() {
	if l != nil {
		l()
	}
}

// Buffer is one slot: a mapping of exactly Width*Height*4 bytes and the
// compositor buffer that shares it.
type Buffer struct {
	Width  int
	Height int
	Remote Remote

	mem  wlshm.Mmap
	busy bool
}

// NewBuffer allocates a standalone buffer outside any pool.
func NewBuffer(f Factory, width, height int, release func()) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("shm: invalid buffer size %dx%d", width, height)
	}
	stride := width * BytesPerPixel
	size := stride * height

	file, err := wlshm.Create()
	if file != nil {
		defer file.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("shm: create file: %w", err)
	}
	if err := file.Truncate(int64(size)); err != nil {
		return nil, fmt.Errorf("shm: truncate to %d: %w", size, err)
	}
	mem, err := wlshm.MapShared(file, size, unix.PROT_READ|unix.PROT_WRITE)
	if err != nil {
		return nil, fmt.Errorf("shm: mmap: %w", err)
	}

	remote, err := f.CreateBuffer(file, size, width, height, stride, release)
	if err != nil {
		mem.Unmap()
		return nil, fmt.Errorf("shm: create buffer: %w", err)
	}
	return &Buffer{Width: width, Height: height, Remote: remote, mem: mem}, nil
}

func (b *Buffer) Busy() bool { return b.busy }

// Bytes exposes the mapped pixels (ARGB8888, little endian, premultiplied).
func (b *Buffer) Bytes() []byte { return b.mem }

func (b *Buffer) Stride() int { return b.Width * BytesPerPixel }

// Blit copies src into the mapping, converting from RGBA byte order. Both
// sides are premultiplied, so this is a channel swap only. Pixels outside
// src are left as they are.
func (b *Buffer) Blit(src *image.RGBA) {
	dst := b.mem
	r := src.Bounds().Intersect(image.Rect(0, 0, b.Width, b.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := y*b.Stride() + r.Min.X*BytesPerPixel
		for x := r.Min.X; x < r.Max.X; x++ {
			dst[di+0] = src.Pix[si+2]
			dst[di+1] = src.Pix[si+1]
			dst[di+2] = src.Pix[si+0]
			dst[di+3] = src.Pix[si+3]
			si += 4
			di += 4
		}
	}
}

// Destroy releases the compositor buffer and the mapping.
func (b *Buffer) Destroy() error {
	if b.Remote != nil {
		b.Remote.Destroy()
		b.Remote = nil
	}
	if b.mem == nil {
		return nil
	}
	err := b.mem.Unmap()
	b.mem = nil
	return err
}

// Pool holds exactly two buffers. A buffer is busy from Acquire until the
// compositor releases it.
type Pool struct {
	factory Factory
	slots   [2]*Buffer
	log     logrus.FieldLogger
}

func NewPool(f Factory, log logrus.FieldLogger) *Pool {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pool{factory: f, log: log.WithField("component", "shm")}
}

// Acquire returns a free buffer of the requested physical size and marks it
// busy. A free slot of the right size is preferred; otherwise the first
// free slot is reallocated.
func (p *Pool) Acquire(width, height int) (*Buffer, error) {
	free := -1
	for i, b := range p.slots {
		if b != nil && b.busy {
			continue
		}
		if b != nil && b.Width == width && b.Height == height {
			b.busy = true
			return b, nil
		}
		if free < 0 {
			free = i
		}
	}
	if free < 0 {
		return nil, ErrNoFreeBuffer
	}

	if old := p.slots[free]; old != nil {
		p.log.WithFields(logrus.Fields{
			"slot": free,
			"from": fmt.Sprintf("%dx%d", old.Width, old.Height),
			"to":   fmt.Sprintf("%dx%d", width, height),
		}).Debug("resizing buffer")
		if err := old.Destroy(); err != nil {
			p.log.WithError(err).Warn("failed to release old buffer")
		}
		p.slots[free] = nil
	}

	var b *Buffer
	b, err := NewBuffer(p.factory, width, height, func() { p.Release(b) })
	if err != nil {
		return nil, err
	}
	b.busy = true
	p.slots[free] = b
	return b, nil
}

// Release marks b free again. It is the compositor's release callback.
func (p *Pool) Release(b *Buffer) {
	if b != nil {
		b.busy = false
	}
}

// Busy reports how many slots are held by the compositor.
func (p *Pool) Busy() int {
	n := 0
	for _, b := range p.slots {
		if b != nil && b.busy {
			n++
		}
	}
	return n
}

// Destroy frees both slots.
func (p *Pool) Destroy() {
	for i, b := range p.slots {
		if b == nil {
			continue
		}
		if err := b.Destroy(); err != nil {
			p.log.WithError(err).Warn("failed to release buffer")
		}
		p.slots[i] = nil
	}
}

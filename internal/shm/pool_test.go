package shm

import (
	"errors"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

type fakeRemote struct {
	destroyed bool
	release   func()
}

func (r *fakeRemote) Destroy() { r.destroyed = true }

type fakeFactory struct {
	created []*fakeRemote
	sizes   []int
}

func (f *fakeFactory) CreateBuffer(file *os.File, size, width, height, stride int, release func()) (Remote, error) {
	r := &fakeRemote{release: release}
	f.created = append(f.created, r)
	f.sizes = append(f.sizes, size)
	return r, nil
}

func newTestPool(t *testing.T) (*Pool, *fakeFactory) {
	t.Helper()
	f := &fakeFactory{}
	logger, _ := test.NewNullLogger()
	p := NewPool(f, logger)
	t.Cleanup(p.Destroy)
	return p, f
}

func TestAcquire_AllocatesExactSize(t *testing.T) {
	p, f := newTestPool(t)

	b, err := p.Acquire(400, 30)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if len(b.Bytes()) != 400*30*4 {
		t.Fatalf("mapping = %d bytes, want %d", len(b.Bytes()), 400*30*4)
	}
	if f.sizes[0] != 400*30*4 {
		t.Fatalf("factory size = %d, want %d", f.sizes[0], 400*30*4)
	}
	if !b.Busy() {
		t.Fatal("acquired buffer is not busy")
	}
}

func TestAcquire_NeverReturnsBusyBuffer(t *testing.T) {
	p, _ := newTestPool(t)

	first, err := p.Acquire(100, 30)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	second, err := p.Acquire(100, 30)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if first == second {
		t.Fatal("Acquire() returned a busy buffer")
	}
	if _, err := p.Acquire(100, 30); !errors.Is(err, ErrNoFreeBuffer) {
		t.Fatalf("third Acquire() error = %v, want ErrNoFreeBuffer", err)
	}
	if p.Busy() != 2 {
		t.Fatalf("Busy() = %d, want 2", p.Busy())
	}
}

func TestAcquire_ReusesReleasedBuffer(t *testing.T) {
	p, f := newTestPool(t)

	first, _ := p.Acquire(100, 30)
	second, _ := p.Acquire(100, 30)

	// Compositor releases the first buffer.
	f.created[0].release()
	if first.Busy() {
		t.Fatal("release callback did not clear busy")
	}

	got, err := p.Acquire(100, 30)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if got != first {
		t.Fatal("Acquire() did not reuse the released buffer")
	}
	if got == second {
		t.Fatal("Acquire() returned the busy buffer")
	}
	if len(f.created) != 2 {
		t.Fatalf("created %d remote buffers, want 2", len(f.created))
	}
}

func TestAcquire_ReallocatesOnResize(t *testing.T) {
	p, f := newTestPool(t)

	b, _ := p.Acquire(100, 30)
	p.Release(b)

	resized, err := p.Acquire(200, 60)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if resized.Width != 200 || resized.Height != 60 {
		t.Fatalf("size = %dx%d, want 200x60", resized.Width, resized.Height)
	}
	if !f.created[0].destroyed {
		t.Fatal("old remote buffer was not destroyed on resize")
	}
	if len(resized.Bytes()) != 200*60*4 {
		t.Fatalf("mapping = %d bytes, want %d", len(resized.Bytes()), 200*60*4)
	}
}

func TestAcquire_PrefersMatchingFreeSlot(t *testing.T) {
	p, f := newTestPool(t)

	small, _ := p.Acquire(100, 30)
	large, _ := p.Acquire(200, 30)
	p.Release(small)
	p.Release(large)

	got, err := p.Acquire(200, 30)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}
	if got != large {
		t.Fatal("Acquire() did not pick the slot that already had the right size")
	}
	if len(f.created) != 2 {
		t.Fatalf("created %d remote buffers, want 2", len(f.created))
	}
}

func TestDestroy_ReleasesBothSlots(t *testing.T) {
	f := &fakeFactory{}
	logger, _ := test.NewNullLogger()
	p := NewPool(f, logger)
	p.Acquire(10, 10)
	p.Acquire(10, 10)

	p.Destroy()
	for i, r := range f.created {
		if !r.destroyed {
			t.Fatalf("remote %d not destroyed", i)
		}
	}
	if p.Busy() != 0 {
		t.Fatalf("Busy() after Destroy = %d, want 0", p.Busy())
	}
}

func TestBlit_ConvertsToARGB8888(t *testing.T) {
	p, _ := newTestPool(t)
	b, err := p.Acquire(2, 1)
	if err != nil {
		t.Fatalf("Acquire() error: %v", err)
	}

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0x5a, G: 0x8a, B: 0xc6, A: 0xff})
	src.SetRGBA(1, 0, color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 0x04})
	b.Blit(src)

	want := []byte{0xc6, 0x8a, 0x5a, 0xff, 0x03, 0x02, 0x01, 0x04}
	got := b.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

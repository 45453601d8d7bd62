package panel

import (
	wl "deedles.dev/wl/client"
	"deedles.dev/wl/pointer"
	"deedles.dev/wl/wire"
	"github.com/sirupsen/logrus"

	"github.com/1broseidon/t2play/internal/protocol/wp"
	"github.com/1broseidon/t2play/internal/render"
)

type seat struct {
	p       *Panel
	name    uint32
	version uint32
	label   string
	wl      *wl.Seat
	pointer *seatPointer
}

type seatPointer struct {
	p      *Panel
	seat   *seat
	wl     *wl.Pointer
	x, y   int
	serial uint32

	// Exactly one of these is used, depending on whether the compositor
	// offers cursor-shape.
	shape   *wp.CursorShapeDeviceV1
	surface *wl.Surface
}

func (p *Panel) addSeat(name, version uint32, proxy *wl.Seat) *seat {
	s := &seat{p: p, name: name, version: version, wl: proxy}
	proxy.Listener = (*seatListener)(s)
	p.seats = append(p.seats, s)
	return s
}

type seatListener seat

func (l *seatListener) Name(label string) { l.label = label }

func (l *seatListener) Capabilities(caps wl.SeatCapability) {
	l.p.seatCapabilities((*seat)(l), caps)
}

// seatCapabilities follows the pointer capability alone; the seat itself
// stays bound whatever it advertises.
func (p *Panel) seatCapabilities(s *seat, caps wl.SeatCapability) {
	has := caps&wl.SeatCapabilityPointer != 0
	switch {
	case has && s.pointer == nil:
		s.pointer = p.newPointer(s)
		p.log.WithField("seat", s.label).Debug("pointer added")
	case !has && s.pointer != nil:
		s.pointer.release()
		s.pointer = nil
		p.log.WithField("seat", s.label).Debug("pointer removed")
	}
}

func (p *Panel) newPointer(s *seat) *seatPointer {
	ptr := &seatPointer{p: p, seat: s, wl: s.wl.GetPointer()}
	ptr.wl.Listener = (*pointerListener)(ptr)
	return ptr
}

type pointerListener seatPointer

func (l *pointerListener) Enter(serial uint32, _ *wl.Surface, x, y wire.Fixed) {
	l.serial = serial
	l.x, l.y = x.Int(), y.Int()
	l.p.setCursor((*seatPointer)(l))
}

func (l *pointerListener) Motion(_ uint32, x, y wire.Fixed) {
	l.x, l.y = x.Int(), y.Int()
}

func (l *pointerListener) Button(_, _, button uint32, state wl.PointerButtonState) {
	if pointer.Button(button) != pointer.ButtonLeft || state != wl.PointerButtonStatePressed {
		return
	}
	l.p.press(l.seat, l.x)
}

func (l *pointerListener) Leave(uint32, *wl.Surface)                                             {}
func (l *pointerListener) Axis(uint32, wl.PointerAxis, wire.Fixed)                               {}
func (l *pointerListener) Frame()                                                                {}
func (l *pointerListener) AxisSource(wl.PointerAxisSource)                                       {}
func (l *pointerListener) AxisStop(uint32, wl.PointerAxis)                                       {}
func (l *pointerListener) AxisDiscrete(wl.PointerAxis, int32)                                    {}
func (l *pointerListener) AxisValue120(wl.PointerAxis, int32)                                    {}
func (l *pointerListener) AxisRelativeDirection(wl.PointerAxis, wl.PointerAxisRelativeDirection) {}

// press routes a primary-button press at surface x to the region under it.
// Only taskbar buttons react; they ask for their window to be focused.
func (p *Panel) press(s *seat, x int) {
	// Presses during the commit round-trip find no regions and are dropped.
	r, ok := render.HitTest(p.regions, x)
	if !ok || r.Kind != render.KindTaskbar {
		return
	}
	if !p.toplevels.Activate(r.Key, s.wl) {
		p.log.WithField("key", r.Key).Debug("press on a window that is gone")
		return
	}
	p.log.WithFields(logrus.Fields{"key": r.Key, "label": r.Label, "seat": s.label}).Debug("activate requested")
}

func (ptr *seatPointer) release() {
	if ptr.shape != nil {
		ptr.shape.Destroy()
		ptr.shape = nil
	}
	if ptr.surface != nil {
		ptr.surface.Destroy()
		ptr.surface = nil
	}
	if ptr.seat.version >= 3 {
		ptr.wl.Release()
	}
}

func (s *seat) release() {
	if s.pointer != nil {
		s.pointer.release()
		s.pointer = nil
	}
	if s.version >= 5 {
		s.wl.Release()
	}
}

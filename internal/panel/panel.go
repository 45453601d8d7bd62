// Package panel owns the bar: its surface and layer surface, the outputs and
// seats the compositor announces, the window list and the buffers frames are
// drawn into. Everything runs on the event loop's goroutine.
package panel

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	wl "deedles.dev/wl/client"
	"deedles.dev/wl/wire"
	"deedles.dev/ximage/xcursor"
	"github.com/sirupsen/logrus"

	"github.com/1broseidon/t2play/internal/config"
	"github.com/1broseidon/t2play/internal/eventloop"
	"github.com/1broseidon/t2play/internal/protocol/wlr"
	"github.com/1broseidon/t2play/internal/protocol/wp"
	"github.com/1broseidon/t2play/internal/render"
	"github.com/1broseidon/t2play/internal/runtimepath"
	"github.com/1broseidon/t2play/internal/shm"
	"github.com/1broseidon/t2play/internal/text"
	"github.com/1broseidon/t2play/internal/toplevel"
)

// Namespace identifies the layer surface to the compositor.
const Namespace = "t2play"

var (
	// ErrMissingGlobal means the compositor does not offer a protocol the
	// panel cannot run without.
	ErrMissingGlobal = errors.New("panel: compositor lacks a required global")
	// ErrOutputNotFound means the configured output name was not announced.
	ErrOutputNotFound = errors.New("panel: output not found")
)

// Panel is the single bar instance.
type Panel struct {
	cfg   *config.Config
	log   logrus.FieldLogger
	now   func() time.Time
	items []render.Item

	client       *wl.Client
	registry     *wl.Registry
	compositor   *wl.Compositor
	shm          *wl.Shm
	layerShell   *wlr.LayerShellV1
	manager      *wlr.ForeignToplevelManagerV1
	cursorShape  *wp.CursorShapeManagerV1
	surface      *wl.Surface
	layerSurface *wlr.LayerSurfaceV1

	// Bound versions. The proxies report the highest version they know,
	// not the one negotiated with the compositor.
	compositorVersion uint32
	shmVersion        uint32
	layerShellVersion uint32

	outputs  []*output
	seats    []*seat
	selected *output
	current  *output

	text      *text.Service
	engine    *render.Engine
	painter   *render.Painter
	factory   shm.Factory
	pool      *shm.Pool
	toplevels *toplevel.Registry

	cursorTheme *xcursor.Theme
	cursor      *cursorImage

	width, height int
	scale         int
	configured    bool
	closed        bool
	running       bool
	regions       []render.Region

	rendering bool
	dirty     bool
	submit    func(buf *shm.Buffer) error
	fatal     error
	torndown  bool
}

// newPanel builds everything that does not need a compositor.
func newPanel(cfg *config.Config, log logrus.FieldLogger) (*Panel, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	ts, err := text.New(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	p := &Panel{
		cfg:   cfg,
		log:   log.WithField("component", "panel"),
		now:   time.Now,
		items: render.ParseItems(cfg.PanelItems),
		text:  ts,
		scale: 1,
	}
	p.engine = render.NewEngine(ts, log)
	p.painter = render.NewPainter(p.engine, ts, render.Style{
		Background:   cfg.Colors.Background.NRGBA(),
		Text:         cfg.Colors.Text.NRGBA(),
		Button:       cfg.Colors.ButtonBackground.NRGBA(),
		ButtonActive: cfg.Colors.ButtonActive.NRGBA(),
	})
	p.toplevels = toplevel.New(p.render, log)
	p.submit = p.present
	return p, nil
}

// New connects to the compositor, binds the globals and maps the bar. On
// error everything created so far has already been released.
func New(cfg *config.Config, log logrus.FieldLogger) (*Panel, error) {
	p, err := newPanel(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := p.connect(); err != nil {
		p.Close()
		return nil, err
	}
	if err := p.createSurface(); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// dial connects to the compositor. A socket handed down in WAYLAND_SOCKET
// wins; otherwise the path is resolved against the runtime directory.
func dial() (*wl.Client, string, error) {
	if _, ok := os.LookupEnv("WAYLAND_SOCKET"); ok {
		c, err := wl.Dial()
		if err != nil {
			return nil, "", fmt.Errorf("connect to WAYLAND_SOCKET: %w", err)
		}
		return c, "WAYLAND_SOCKET", nil
	}
	path, err := runtimepath.WaylandSocket()
	if err != nil {
		return nil, "", fmt.Errorf("locate compositor socket: %w", err)
	}
	conn, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, "", fmt.Errorf("connect to %s: %w", path, err)
	}
	return wl.NewClient(wire.NewConn(conn)), path, nil
}

func (p *Panel) connect() error {
	c, path, err := dial()
	if err != nil {
		return err
	}
	p.client = c
	p.log.WithField("socket", path).Debug("connected")

	c.Display().Listener = (*displayListener)(p)
	p.registry = c.Display().GetRegistry()
	p.registry.Listener = (*registryListener)(p)
	if err := p.roundTrip(); err != nil {
		return fmt.Errorf("registry roundtrip: %w", err)
	}

	var missing []string
	if p.compositor == nil {
		missing = append(missing, wl.CompositorInterface)
	}
	if p.shm == nil {
		missing = append(missing, wl.ShmInterface)
	}
	if p.layerShell == nil {
		missing = append(missing, wlr.LayerShellV1Interface)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingGlobal, missing)
	}
	if p.manager == nil {
		p.log.Warn("compositor has no foreign toplevel manager; taskbar stays empty")
	}
	p.factory = shm.WaylandFactory{Shm: p.shm}
	p.pool = shm.NewPool(p.factory, p.log)

	// Output names and scales arrive in reply to the binds made above.
	if err := p.roundTrip(); err != nil {
		return fmt.Errorf("output roundtrip: %w", err)
	}
	if p.cfg.Output != "" {
		p.selected = p.outputByName(p.cfg.Output)
		if p.selected == nil {
			return fmt.Errorf("%w: %q", ErrOutputNotFound, p.cfg.Output)
		}
	}
	return nil
}

// roundTrip flushes pending requests and handles every event up to the
// compositor's reply. A protocol error reported meanwhile is returned.
func (p *Panel) roundTrip() error {
	if err := p.client.RoundTrip(); err != nil {
		return err
	}
	return p.fatal
}

func (p *Panel) createSurface() error {
	p.surface = p.compositor.CreateSurface()
	p.surface.Listener = (*surfaceListener)(p)

	var out *wl.Output
	if p.selected != nil {
		out = p.selected.wl
	}
	ls := p.layerShell.GetLayerSurface(p.surface, out, wlr.LayerShellV1Layer(p.cfg.Layer.Protocol()), Namespace)
	p.layerSurface = ls
	ls.Listener = (*layerSurfaceListener)(p)

	anchor := wlr.LayerSurfaceV1AnchorLeft | wlr.LayerSurfaceV1AnchorRight
	if p.cfg.Anchor == config.AnchorBottom {
		anchor |= wlr.LayerSurfaceV1AnchorBottom
	} else {
		anchor |= wlr.LayerSurfaceV1AnchorTop
	}
	ls.SetSize(0, uint32(p.cfg.Height))
	ls.SetAnchor(anchor)
	ls.SetExclusiveZone(int32(p.cfg.Height))

	p.running = true
	p.surface.Commit()
	if err := p.roundTrip(); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	return nil
}

type displayListener Panel

func (l *displayListener) Error(id, code uint32, msg string) {
	p := (*Panel)(l)
	p.log.WithFields(logrus.Fields{"object": id, "code": code}).Error(msg)
	p.fatal = &ProtocolError{Object: id, Code: code, Message: msg}
	p.running = false
}

func (l *displayListener) DeleteId(id uint32) {
	l.client.Delete(id)
}

// ProtocolError is a fatal error reported by the compositor.
type ProtocolError struct {
	Object  uint32
	Code    uint32
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("panel: protocol error on object %d (code %d): %s", e.Object, e.Code, e.Message)
}

type layerSurfaceListener Panel

func (l *layerSurfaceListener) Configure(serial, width, height uint32) {
	(*Panel)(l).configure(serial, width, height)
}

func (l *layerSurfaceListener) Closed() { (*Panel)(l).shellClosed() }

type surfaceListener Panel

func (l *surfaceListener) Enter(out *wl.Output)                        { (*Panel)(l).surfaceEnter(out) }
func (l *surfaceListener) Leave(*wl.Output)                            {}
func (l *surfaceListener) PreferredBufferScale(int32)                  {}
func (l *surfaceListener) PreferredBufferTransform(wl.OutputTransform) {}

// configure handles zwlr_layer_surface_v1.configure.
func (p *Panel) configure(serial, width, height uint32) {
	if p.layerSurface == nil {
		return
	}
	p.width, p.height = int(width), int(height)
	if p.height == 0 {
		p.height = p.cfg.Height
	}
	p.configured = true
	p.layerSurface.AckConfigure(serial)
	p.log.WithFields(logrus.Fields{"width": p.width, "height": p.height}).Debug("configured")
	p.render()
}

// shellClosed handles the compositor dismissing the layer surface. The loop
// notices the cleared run flag and the caller tears down as usual.
func (p *Panel) shellClosed() {
	p.log.Info("layer surface closed by compositor")
	p.closed = true
	p.running = false
}

func (p *Panel) surfaceEnter(out *wl.Output) {
	o := p.outputByProxy(out)
	if o == nil {
		return
	}
	p.current = o
	p.log.WithFields(logrus.Fields{"output": o.label, "scale": o.scale}).Debug("surface entered output")
	if o.scale != p.scale {
		p.setScale(o.scale)
	}
	p.render()
}

func (p *Panel) setScale(scale int) {
	if scale < 1 {
		scale = 1
	}
	p.scale = scale
	p.refreshCursors()
}

// Running reports whether the bar should keep processing events.
func (p *Panel) Running() bool {
	return p.running
}

// Run drives the event loop until shutdown. A nil error covers the orderly
// exits: timeout, signal and compositor-initiated close.
func (p *Panel) Run() (eventloop.Reason, error) {
	loop, err := eventloop.New(p.client, eventloop.Config{
		CloseTimeout: p.cfg.CloseTimeout,
		Clock:        render.HasKind(p.items, render.KindClock),
		OnTick:       p.render,
		Running:      p.Running,
		Now:          p.now,
		Logger:       p.log,
	})
	if err != nil {
		return eventloop.ReasonStopped, err
	}
	defer loop.Close()

	reason, err := loop.Run()
	if p.fatal != nil {
		// The compositor hangs up right after a protocol error.
		return reason, p.fatal
	}
	return reason, err
}

// Close tears the panel down in dependency order: surface, buffers, the
// remaining protocol objects, then the connection. It is safe to call on a
// partially built panel and more than once.
func (p *Panel) Close() error {
	if p.torndown {
		return nil
	}
	p.torndown = true
	p.running = false
	p.regions = nil

	if p.layerSurface != nil {
		p.layerSurface.Destroy()
		p.layerSurface = nil
	}
	if p.surface != nil {
		p.surface.Destroy()
		p.surface = nil
	}

	if p.pool != nil {
		p.pool.Destroy()
	}
	p.releaseCursorImage()

	p.toplevels.DestroyAll()
	if p.manager != nil {
		p.manager.Stop()
		p.manager = nil
	}
	for _, s := range p.seats {
		s.release()
	}
	p.seats = nil
	for _, o := range p.outputs {
		o.release()
	}
	p.outputs, p.selected, p.current = nil, nil, nil
	if p.cursorShape != nil {
		p.cursorShape.Destroy()
		p.cursorShape = nil
	}
	if p.layerShell != nil && p.layerShellVersion >= 3 {
		p.layerShell.Destroy()
	}
	p.layerShell = nil
	if p.shm != nil && p.shmVersion >= 2 {
		p.shm.Release()
	}
	p.shm = nil

	var errs []error
	errs = append(errs, p.text.Close())
	if p.client != nil {
		// Requests only leave the queue while it is being drained.
		if err := p.client.RoundTrip(); err != nil && !errors.Is(err, net.ErrClosed) {
			p.log.WithError(err).Debug("final roundtrip failed")
		}
		if err := p.client.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, err)
		}
		p.client = nil
	}
	return errors.Join(errs...)
}

package panel

import (
	wl "deedles.dev/wl/client"
	"github.com/sirupsen/logrus"

	"github.com/1broseidon/t2play/internal/protocol/wlr"
	"github.com/1broseidon/t2play/internal/protocol/wp"
	"github.com/1broseidon/t2play/internal/toplevel"
)

// Highest interface versions this client speaks.
const (
	compositorVersion = 4
	shmVersion        = 2
	layerShellVersion = 4
	outputVersion     = 4
	seatVersion       = 5
	// Version 3 adds the parent event, whose null argument the bindings
	// cannot dispatch. Nothing here needs window parents.
	managerVersion     = 2
	cursorShapeVersion = 1
)

type output struct {
	p       *Panel
	name    uint32
	version uint32
	wl      *wl.Output
	label   string
	scale   int
}

type registryListener Panel

func (l *registryListener) Global(name uint32, iface string, version uint32) {
	(*Panel)(l).global(name, iface, version)
}

func (l *registryListener) GlobalRemove(name uint32) {
	(*Panel)(l).globalRemove(name)
}

func (p *Panel) global(name uint32, iface string, version uint32) {
	p.log.WithFields(logrus.Fields{"name": name, "interface": iface, "version": version}).Debug("global")
	c, r := p.client, p.registry
	switch iface {
	case wl.CompositorInterface:
		p.compositorVersion = min(version, compositorVersion)
		p.compositor = wl.BindCompositor(c, r, name, p.compositorVersion)
	case wl.ShmInterface:
		p.shmVersion = min(version, shmVersion)
		p.shm = wl.BindShm(c, r, name, p.shmVersion)
	case wlr.LayerShellV1Interface:
		p.layerShellVersion = min(version, layerShellVersion)
		p.layerShell = wlr.BindLayerShellV1(c, r, name, p.layerShellVersion)
	case wl.OutputInterface:
		v := min(version, outputVersion)
		p.addOutput(name, v, wl.BindOutput(c, r, name, v))
	case wl.SeatInterface:
		v := min(version, seatVersion)
		p.addSeat(name, v, wl.BindSeat(c, r, name, v))
	case wlr.ForeignToplevelManagerV1Interface:
		if p.manager == nil {
			p.bindManager(wlr.BindForeignToplevelManagerV1(c, r, name, min(version, managerVersion)))
		}
	case wp.CursorShapeManagerV1Interface:
		p.cursorShape = wp.BindCursorShapeManagerV1(c, r, name, min(version, cursorShapeVersion))
	}
}

func (p *Panel) globalRemove(name uint32) {
	for i, o := range p.outputs {
		if o.name != name {
			continue
		}
		p.outputs = append(p.outputs[:i], p.outputs[i+1:]...)
		p.removeOutput(o)
		return
	}
	for i, s := range p.seats {
		if s.name != name {
			continue
		}
		p.seats = append(p.seats[:i], p.seats[i+1:]...)
		p.log.WithField("seat", s.label).Debug("seat removed")
		s.release()
		return
	}
}

func (p *Panel) addOutput(name, version uint32, proxy *wl.Output) *output {
	o := &output{p: p, name: name, version: version, wl: proxy, scale: 1}
	proxy.Listener = (*outputListener)(o)
	p.outputs = append(p.outputs, o)
	return o
}

type outputListener output

func (l *outputListener) Geometry(int32, int32, int32, int32, wl.OutputSubpixel, string, string, wl.OutputTransform) {}

func (l *outputListener) Mode(wl.OutputMode, int32, int32, int32) {}
func (l *outputListener) Name(label string)                       { l.label = label }
func (l *outputListener) Description(string)                      {}
func (l *outputListener) Scale(factor int32)                      { l.scale = max(1, int(factor)) }
func (l *outputListener) Done()                                   { l.p.outputDone((*output)(l)) }

func (o *output) release() {
	if o.version >= 3 {
		o.wl.Release()
	}
}

// outputDone applies a settled output state. Only the output the surface
// is on can change the panel scale.
func (p *Panel) outputDone(o *output) {
	if o != p.current || o.scale == p.scale {
		return
	}
	p.log.WithFields(logrus.Fields{"output": o.label, "scale": o.scale}).Debug("output scale changed")
	p.setScale(o.scale)
	p.render()
}

// removeOutput handles a withdrawn output. Losing the output the bar was
// placed on ends the run.
func (p *Panel) removeOutput(o *output) {
	p.log.WithField("output", o.label).Debug("output removed")
	if o == p.selected || (p.selected == nil && o == p.current) {
		p.log.WithField("output", o.label).Info("panel output withdrawn")
		p.running = false
	}
	if o == p.current {
		p.current = nil
	}
	if o == p.selected {
		p.selected = nil
	}
	o.release()
}

func (p *Panel) outputByName(label string) *output {
	for _, o := range p.outputs {
		if o.label == label {
			return o
		}
	}
	return nil
}

func (p *Panel) outputByProxy(proxy *wl.Output) *output {
	for _, o := range p.outputs {
		if o.wl == proxy {
			return o
		}
	}
	return nil
}

// bindManager wires the toplevel manager into the registry. Finished clears
// p.manager: a nil manager means the compositor has already destroyed it,
// so Close must not send stop.
func (p *Panel) bindManager(m *wlr.ForeignToplevelManagerV1) {
	p.manager = m
	m.Listener = (*managerListener)(p)
}

type managerListener Panel

func (l *managerListener) Toplevel(h *wlr.ForeignToplevelHandleV1) {
	p := (*Panel)(l)
	h.Listener = &handleListener{p: p, key: p.toplevels.Add(h).Key}
}

func (l *managerListener) Finished() {
	p := (*Panel)(l)
	p.log.Info("foreign toplevel manager finished")
	p.manager = nil
}

// handleListener forwards one window's events to the registry by key, so
// events for a closed window are dropped there.
type handleListener struct {
	p   *Panel
	key uint64
}

func (l *handleListener) Title(title string)                  { l.p.toplevels.SetTitle(l.key, title) }
func (l *handleListener) AppId(appID string)                  { l.p.toplevels.SetAppID(l.key, appID) }
func (l *handleListener) OutputEnter(*wl.Output)              {}
func (l *handleListener) OutputLeave(*wl.Output)              {}
func (l *handleListener) State(raw []byte)                    { l.p.toplevels.SetState(l.key, toplevel.DecodeStates(raw)) }
func (l *handleListener) Done()                               { l.p.toplevels.Done(l.key) }
func (l *handleListener) Closed()                             { l.p.toplevels.Closed(l.key) }
func (l *handleListener) Parent(*wlr.ForeignToplevelHandleV1) {}

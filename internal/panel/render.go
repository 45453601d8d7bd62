package panel

import (
	"errors"
	"fmt"

	wl "deedles.dev/wl/client"
	"github.com/sirupsen/logrus"

	"github.com/1broseidon/t2play/internal/render"
	"github.com/1broseidon/t2play/internal/shm"
)

// render redraws the whole bar from the current model. Triggers that fire
// while a frame is being submitted are folded into one more pass.
func (p *Panel) render() {
	if p.rendering {
		p.dirty = true
		return
	}
	p.rendering = true
	defer func() { p.rendering = false }()

	for {
		p.dirty = false
		p.renderFrame()
		if !p.dirty {
			return
		}
	}
}

func (p *Panel) renderFrame() {
	// Stale regions must never be hit-tested, even when this frame is
	// skipped.
	p.regions = nil
	if !p.running || !p.configured || p.width == 0 || p.height == 0 {
		return
	}

	live := p.toplevels.Live()
	buttons := make([]render.Button, len(live))
	for i, t := range live {
		buttons[i] = render.Button{Key: t.Key, Label: t.Label(), Active: t.Activated}
	}
	var clock string
	if render.HasKind(p.items, render.KindClock) {
		clock = p.now().Format(p.cfg.ClockFormat)
	}
	frame := p.engine.Layout(p.items, buttons, clock, p.width, p.height)

	buf, err := p.pool.Acquire(p.width*p.scale, p.height*p.scale)
	if err != nil {
		if errors.Is(err, shm.ErrNoFreeBuffer) {
			p.log.Warn("both buffers busy, frame skipped")
		} else {
			p.log.WithError(err).Error("buffer allocation failed, frame skipped")
		}
		return
	}
	buf.Blit(p.painter.Paint(frame, p.scale))

	if err := p.submit(buf); err != nil {
		p.log.WithError(err).Error("frame submission failed")
		p.fatal = err
		p.running = false
		return
	}
	p.regions = frame.Regions
	p.log.WithFields(logrus.Fields{
		"regions": len(frame.Regions),
		"buttons": len(buttons),
		"scale":   p.scale,
	}).Debug("frame committed")
}

// present attaches buf, damages the whole surface, commits and waits for
// the compositor, which is where the previous buffer's release arrives.
func (p *Panel) present(buf *shm.Buffer) error {
	s := p.surface
	if p.compositorVersion >= 3 {
		s.SetBufferScale(int32(p.scale))
	}
	s.Attach(wlBuffer(buf), 0, 0)
	s.Damage(0, 0, int32(p.width), int32(p.height))
	s.Commit()
	if err := p.roundTrip(); err != nil {
		return fmt.Errorf("commit roundtrip: %w", err)
	}
	return nil
}

func wlBuffer(b *shm.Buffer) *wl.Buffer {
	wb, _ := b.Remote.(*wl.Buffer)
	return wb
}

// Package toplevel tracks the windows announced by the foreign-toplevel
// manager.
package toplevel

import (
	"encoding/binary"

	wl "deedles.dev/wl/client"
	"github.com/sirupsen/logrus"

	"github.com/1broseidon/t2play/internal/protocol/wlr"
)

// StateActivated is the state value that marks the focused window.
const StateActivated = uint32(wlr.ForeignToplevelHandleV1StateActivated)

// Handle is the remote side of a toplevel.
type Handle interface {
	Activate(seat *wl.Seat)
	Destroy()
}

// DecodeStates unpacks the state array of a handle's state event: native
// endian 32-bit values, with any trailing partial value ignored.
func DecodeStates(raw []byte) []uint32 {
	states := make([]uint32, 0, len(raw)/4)
	for len(raw) >= 4 {
		states = append(states, binary.NativeEndian.Uint32(raw))
		raw = raw[4:]
	}
	return states
}

// Toplevel is one live window.
type Toplevel struct {
	Key       uint64
	Title     string
	AppID     string
	Activated bool

	handle Handle
}

// Label is what a taskbar button shows: the title, else the app id,
// else a placeholder.
func (t *Toplevel) Label() string {
	if t.Title != "" {
		return t.Title
	}
	if t.AppID != "" {
		return t.AppID
	}
	return "?"
}

// Registry keeps toplevels in arrival order. Keys are never reused, so an
// update addressed to a closed toplevel cannot land on a new one.
type Registry struct {
	list     []*Toplevel
	byKey    map[uint64]*Toplevel
	nextKey  uint64
	onChange func()
	log      logrus.FieldLogger
}

// New creates a registry. onChange runs after a done or closed event.
func New(onChange func(), log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &Registry{
		byKey:    make(map[uint64]*Toplevel),
		nextKey:  1,
		onChange: onChange,
		log:      log.WithField("component", "toplevel"),
	}
}

// Add starts tracking a new toplevel.
func (r *Registry) Add(h Handle) *Toplevel {
	t := &Toplevel{Key: r.nextKey, handle: h}
	r.nextKey++
	r.list = append(r.list, t)
	r.byKey[t.Key] = t
	r.log.WithField("key", t.Key).Debug("toplevel added")
	return t
}

func (r *Registry) get(key uint64) *Toplevel {
	t, ok := r.byKey[key]
	if !ok {
		r.log.WithField("key", key).Debug("update for closed toplevel ignored")
	}
	return t
}

func (r *Registry) SetTitle(key uint64, title string) {
	if t := r.get(key); t != nil {
		t.Title = title
	}
}

func (r *Registry) SetAppID(key uint64, appID string) {
	if t := r.get(key); t != nil {
		t.AppID = appID
	}
}

// SetState replaces the activated flag from a state array.
func (r *Registry) SetState(key uint64, states []uint32) {
	t := r.get(key)
	if t == nil {
		return
	}
	t.Activated = false
	for _, s := range states {
		if s == StateActivated {
			t.Activated = true
		}
	}
}

// Done marks the end of an atomic batch of updates and triggers a render.
func (r *Registry) Done(key uint64) {
	if r.get(key) != nil {
		r.onChange()
	}
}

// Closed destroys the remote handle, drops the toplevel and triggers a
// render.
func (r *Registry) Closed(key uint64) {
	t := r.get(key)
	if t == nil {
		return
	}
	r.remove(t)
	r.log.WithFields(logrus.Fields{"key": key, "title": t.Title}).Debug("toplevel closed")
	r.onChange()
}

func (r *Registry) remove(t *Toplevel) {
	if t.handle != nil {
		t.handle.Destroy()
		t.handle = nil
	}
	delete(r.byKey, t.Key)
	for i, cur := range r.list {
		if cur == t {
			r.list = append(r.list[:i], r.list[i+1:]...)
			break
		}
	}
}

// Activate asks the compositor to focus the toplevel for seat. It reports
// false when the key is no longer live.
func (r *Registry) Activate(key uint64, seat *wl.Seat) bool {
	t := r.get(key)
	if t == nil || t.handle == nil {
		return false
	}
	t.handle.Activate(seat)
	return true
}

// Live returns the live toplevels in arrival order.
func (r *Registry) Live() []*Toplevel {
	out := make([]*Toplevel, len(r.list))
	copy(out, r.list)
	return out
}

func (r *Registry) Len() int { return len(r.list) }

// DestroyAll releases every handle. It does not trigger a render.
func (r *Registry) DestroyAll() {
	for len(r.list) > 0 {
		r.remove(r.list[0])
	}
}

// Package render turns panel items and model state into positioned regions
// and paints them.
package render

import (
	"deedles.dev/ximage/geom"
	"github.com/sirupsen/logrus"

	"github.com/1broseidon/t2play/internal/text"
)

const (
	// Padding separates items and insets labels inside buttons.
	Padding = 8
	// MaxButtonWidth caps a taskbar button including its padding.
	MaxButtonWidth = 200
)

// Button is the render view of one live toplevel.
type Button struct {
	Key    uint64
	Label  string
	Active bool
}

// Region is a hit-testable horizontal span over the full bar height.
// Taskbar regions carry the key of the toplevel they were drawn for.
type Region struct {
	Kind   Kind
	Rect   geom.Rect[int]
	Key    uint64
	Label  string
	Active bool
}

func (r Region) X() int { return r.Rect.Min.X }

func (r Region) Width() int { return r.Rect.Dx() }

// Frame is the result of one layout pass.
type Frame struct {
	Width   int
	Height  int
	Regions []Region
	// Natural is the width consumed by every non-spacer item plus padding.
	Natural int
	// SpacerWidth is the slack handed to the first spacer.
	SpacerWidth int
	// End is the cursor after the last item.
	End int
}

// Engine computes layouts. It remembers which unknown codes it has already
// reported.
type Engine struct {
	text   text.Measurer
	log    logrus.FieldLogger
	warned map[rune]struct{}
}

func NewEngine(m text.Measurer, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		text:   m,
		log:    log.WithField("component", "render"),
		warned: make(map[rune]struct{}),
	}
}

// ButtonWidth is the label width plus padding on both sides, capped.
func (e *Engine) ButtonWidth(label string) int {
	w, _ := e.text.Measure(label)
	return min(w+2*Padding, MaxButtonWidth)
}

// Layout positions items left to right starting at Padding. When a spacer
// is present a first pass sums the natural width of everything else and
// the first spacer absorbs what is left of width. Without a spacer the
// clock is pinned to the right edge, never overlapping earlier items,
// unless something after it still needs room; then it stays in line.
func (e *Engine) Layout(items []Item, buttons []Button, clock string, width, height int) Frame {
	f := Frame{Width: width, Height: height}

	clockWidth, _ := e.text.Measure(clock)
	buttonWidths := make([]int, len(buttons))
	groupWidth := 0
	for i, b := range buttons {
		buttonWidths[i] = e.ButtonWidth(b.Label)
		groupWidth += buttonWidths[i] + Padding
	}

	hasSpacer := HasKind(items, KindSpacer)
	if hasSpacer {
		f.Natural = Padding
		for _, item := range items {
			switch item.Kind {
			case KindTaskbar:
				f.Natural += groupWidth
			case KindClock:
				f.Natural += clockWidth + Padding
			}
		}
		f.SpacerWidth = max(0, width-f.Natural)
	}

	span := func(x, w int) geom.Rect[int] {
		return geom.Rt(x, 0, x+w, height)
	}

	// consumes reports whether an item takes horizontal space of its own.
	consumes := func(item Item) bool {
		switch item.Kind {
		case KindTaskbar:
			return len(buttons) > 0
		case KindClock:
			return true
		}
		return false
	}
	pinClock := func(i int) bool {
		if hasSpacer {
			return false
		}
		for _, later := range items[i+1:] {
			if consumes(later) {
				return false
			}
		}
		return true
	}

	x := Padding
	spacerUsed := false
	for i, item := range items {
		switch item.Kind {
		case KindTaskbar:
			for i, b := range buttons {
				f.Regions = append(f.Regions, Region{
					Kind:   KindTaskbar,
					Rect:   span(x, buttonWidths[i]),
					Key:    b.Key,
					Label:  b.Label,
					Active: b.Active,
				})
				x += buttonWidths[i] + Padding
			}
		case KindClock:
			if pinClock(i) {
				x = max(x, width-clockWidth-Padding)
			}
			f.Regions = append(f.Regions, Region{Kind: KindClock, Rect: span(x, clockWidth), Label: clock})
			x += clockWidth + Padding
		case KindSpacer:
			w := 0
			if !spacerUsed {
				w = f.SpacerWidth
				spacerUsed = true
			}
			f.Regions = append(f.Regions, Region{Kind: KindSpacer, Rect: span(x, w)})
			x += w
		default:
			e.warnUnknown(item.Code)
		}
	}
	f.End = x
	if !hasSpacer {
		f.Natural = x
	}
	return f
}

func (e *Engine) warnUnknown(code rune) {
	if _, ok := e.warned[code]; ok {
		return
	}
	e.warned[code] = struct{}{}
	e.log.WithField("code", string(code)).Warn("unknown panel item code ignored")
}

// HitTest returns the region whose span contains x.
func HitTest(regions []Region, x int) (Region, bool) {
	for _, r := range regions {
		if x >= r.Rect.Min.X && x < r.Rect.Max.X {
			return r, true
		}
	}
	return Region{}, false
}

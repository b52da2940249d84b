// Package gallery holds the interaction state of the picture viewer:
// which painting is on the wall, which one is open in the detail
// overlay, and the transition guard the wide layout uses to keep wall
// rotations from overlapping.
package gallery

import (
	"sync"
	"time"

	"github.com/TillGrassi/My-Portfolio/models"
)

// Breakpoint is the viewport width (px) below which the compact layout
// is used.
const Breakpoint = 768

// DefaultTransitionDelay matches the wall rotation animation.
const DefaultTransitionDelay = 200 * time.Millisecond

type Layout int

const (
	Wide Layout = iota
	Compact
)

// View is the long-lived gallery state. Navigation wraps around at both
// ends; while a wide-layout transition is running, further navigation
// is dropped, not queued. Jumping via an indicator bypasses the guard.
type View struct {
	mu            sync.Mutex
	paintings     []models.Painting
	index         int
	overlay       *models.Painting
	transitioning bool
	layout        Layout
	delay         time.Duration
	timer         *time.Timer
	lockScroll    func(locked bool)
}

type Option func(*View)

// WithTransitionDelay overrides the debounce delay.
func WithTransitionDelay(d time.Duration) Option {
	return func(v *View) { v.delay = d }
}

// WithScrollLock installs the hook called when the overlay suspends or
// restores background scrolling.
func WithScrollLock(fn func(locked bool)) Option {
	return func(v *View) { v.lockScroll = fn }
}

func NewView(paintings []models.Painting, opts ...Option) *View {
	v := &View{
		paintings: paintings,
		layout:    Wide,
		delay:     DefaultTransitionDelay,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Next advances to the following painting, wrapping to the first after
// the last. Dropped while a transition is running or the gallery is
// empty.
func (v *View) Next() {
	v.step(1)
}

// Previous retreats to the preceding painting, wrapping to the last
// from the first.
func (v *View) Previous() {
	v.step(-1)
}

func (v *View) step(delta int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.transitioning || len(v.paintings) == 0 {
		return
	}
	if v.layout == Wide {
		v.beginTransition()
	}
	n := len(v.paintings)
	v.index = (v.index + delta + n) % n
}

func (v *View) beginTransition() {
	v.transitioning = true
	v.timer = time.AfterFunc(v.delay, v.endTransition)
}

func (v *View) endTransition() {
	v.mu.Lock()
	v.transitioning = false
	v.mu.Unlock()
}

// Jump moves directly to the chosen indicator position, bypassing the
// transition guard. Out-of-range positions are ignored.
func (v *View) Jump(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 || index >= len(v.paintings) {
		return
	}
	v.index = index
}

// Index returns the position of the painting currently on the wall.
func (v *View) Index() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.index
}

// Current returns the painting on the wall, or false for an empty
// gallery.
func (v *View) Current() (models.Painting, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.paintings) == 0 {
		return models.Painting{}, false
	}
	return v.paintings[v.index], true
}

// Transitioning reports whether the wall rotation guard is engaged.
func (v *View) Transitioning() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transitioning
}

// Open shows the detail overlay for a painting and suspends background
// scrolling.
func (v *View) Open(p models.Painting) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.overlay = &p
	if v.lockScroll != nil {
		v.lockScroll(true)
	}
}

// Close dismisses the overlay and restores scrolling. Closing an
// already-closed overlay is a no-op.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.overlay == nil {
		return
	}
	v.overlay = nil
	if v.lockScroll != nil {
		v.lockScroll(false)
	}
}

// Escape handles the escape-key signal: it closes the overlay when one
// is open.
func (v *View) Escape() {
	v.Close()
}

// Overlay returns the painting shown in the detail overlay, or false
// when it is closed.
func (v *View) Overlay() (models.Painting, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.overlay == nil {
		return models.Painting{}, false
	}
	return *v.overlay, true
}

// Resize re-derives the layout from the viewport width. The layout is
// not persisted anywhere else.
func (v *View) Resize(width int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if width < Breakpoint {
		v.layout = Compact
	} else {
		v.layout = Wide
	}
}

// Layout returns the current layout mode.
func (v *View) Layout() Layout {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.layout
}

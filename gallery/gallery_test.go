package gallery

import (
	"fmt"
	"testing"
	"time"

	"github.com/TillGrassi/My-Portfolio/models"
)

func testPaintings(n int) []models.Painting {
	out := make([]models.Painting, n)
	for i := range out {
		out[i] = models.Painting{ID: uint(i + 1), Title: fmt.Sprintf("Painting %d", i+1)}
	}
	return out
}

// settle waits out any running transition so the next navigation is
// accepted.
func settle(v *View) {
	if v.timer != nil {
		v.timer.Stop()
	}
	v.endTransition()
}

func TestNextCyclesBackToStart(t *testing.T) {
	v := NewView(testPaintings(5))
	for i := 0; i < 5; i++ {
		v.Next()
		settle(v)
	}
	if got := v.Index(); got != 0 {
		t.Errorf("after a full cycle index = %d, want 0", got)
	}
}

func TestWraparound(t *testing.T) {
	v := NewView(testPaintings(4))

	v.Previous()
	if got := v.Index(); got != 3 {
		t.Errorf("previous from 0: index = %d, want 3", got)
	}
	settle(v)

	v.Jump(3)
	v.Next()
	if got := v.Index(); got != 0 {
		t.Errorf("next from last: index = %d, want 0", got)
	}
}

func TestEmptyGalleryNavigationIsNoop(t *testing.T) {
	v := NewView(nil)
	v.Next()
	v.Previous()
	if got := v.Index(); got != 0 {
		t.Errorf("index = %d", got)
	}
	if _, ok := v.Current(); ok {
		t.Error("empty gallery returned a current painting")
	}
}

func TestTransitionGuardDropsNavigation(t *testing.T) {
	v := NewView(testPaintings(5), WithTransitionDelay(time.Hour))

	v.Next()
	if !v.Transitioning() {
		t.Fatal("wide layout navigation should engage the guard")
	}
	v.Next() // dropped, not queued
	if got := v.Index(); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}

	settle(v)
	v.Next()
	if got := v.Index(); got != 2 {
		t.Errorf("after settling index = %d, want 2", got)
	}
}

func TestTransitionGuardAutoClears(t *testing.T) {
	v := NewView(testPaintings(3), WithTransitionDelay(5*time.Millisecond))
	v.Next()
	if !v.Transitioning() {
		t.Fatal("guard not engaged")
	}
	deadline := time.Now().Add(time.Second)
	for v.Transitioning() {
		if time.Now().After(deadline) {
			t.Fatal("guard never cleared")
		}
		time.Sleep(time.Millisecond)
	}
	v.Next()
	if got := v.Index(); got != 2 {
		t.Errorf("index = %d, want 2", got)
	}
}

func TestCompactLayoutSkipsGuard(t *testing.T) {
	v := NewView(testPaintings(5))
	v.Resize(Breakpoint - 1)
	if v.Layout() != Compact {
		t.Fatal("expected compact layout")
	}

	v.Next()
	v.Next()
	v.Next()
	if v.Transitioning() {
		t.Error("compact layout engaged the guard")
	}
	if got := v.Index(); got != 3 {
		t.Errorf("index = %d, want 3", got)
	}

	v.Resize(Breakpoint)
	if v.Layout() != Wide {
		t.Error("resize back to wide not applied")
	}
}

func TestJumpBypassesGuard(t *testing.T) {
	v := NewView(testPaintings(5), WithTransitionDelay(time.Hour))
	v.Next()
	if !v.Transitioning() {
		t.Fatal("guard not engaged")
	}

	v.Jump(4)
	if got := v.Index(); got != 4 {
		t.Errorf("jump during transition: index = %d, want 4", got)
	}

	v.Jump(17) // out of range, ignored
	v.Jump(-1)
	if got := v.Index(); got != 4 {
		t.Errorf("out-of-range jump moved index to %d", got)
	}
}

func TestOverlayScrollLockAndEscape(t *testing.T) {
	var locks []bool
	paintings := testPaintings(2)
	v := NewView(paintings, WithScrollLock(func(locked bool) {
		locks = append(locks, locked)
	}))

	if _, open := v.Overlay(); open {
		t.Fatal("overlay should start closed")
	}

	v.Open(paintings[1])
	if p, open := v.Overlay(); !open || p.ID != paintings[1].ID {
		t.Errorf("overlay = %v, %v", p, open)
	}

	v.Escape()
	if _, open := v.Overlay(); open {
		t.Error("escape did not close the overlay")
	}
	v.Escape() // closed overlay: no extra unlock

	if len(locks) != 2 || locks[0] != true || locks[1] != false {
		t.Errorf("scroll lock calls = %v", locks)
	}
}

func TestCurrentFollowsIndex(t *testing.T) {
	paintings := testPaintings(3)
	v := NewView(paintings)
	v.Jump(2)
	p, ok := v.Current()
	if !ok || p.ID != paintings[2].ID {
		t.Errorf("current = %+v, %v", p, ok)
	}
}

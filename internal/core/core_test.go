package core

import (
	"testing"
	"time"
)

func TestPixelBufferStartsOpaqueBlack(t *testing.T) {
	b := NewPixelBuffer(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			r, g, bl, a := b.At(x, y)
			if r != 0 || g != 0 || bl != 0 || a != 0xff {
				t.Fatalf("pixel (%d,%d) = %d,%d,%d,%d", x, y, r, g, bl, a)
			}
		}
	}
	b.Set(2, 1, 10, 20, 30)
	if i := b.Index(2, 1); b.Pix()[i] != 10 || b.Pix()[i+2] != 30 {
		t.Fatalf("Set did not land at index %d", i)
	}
}

func TestPixelBufferResize(t *testing.T) {
	b := NewPixelBuffer(0, -4)
	if b.Size() != (Size{W: 1, H: 1}) {
		t.Fatalf("degenerate size %+v", b.Size())
	}
	if !b.Resize(8, 4) {
		t.Fatalf("resize reported no change")
	}
	if len(b.Pix()) != 4*8*4 {
		t.Fatalf("buffer length %d", len(b.Pix()))
	}
	if b.Resize(8, 4) {
		t.Fatalf("resize to same size reallocated")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) View { return nil })
	Register("aa-test", func(map[string]string) View { return nil })
	Register("", func(map[string]string) View { return nil })
	defer delete(views, "zz-test")
	defer delete(views, "aa-test")

	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if _, ok := Views()[""]; ok {
		t.Fatalf("empty name registered")
	}
}

func TestNudgeSnapsAndClamps(t *testing.T) {
	c := ParameterControl{Type: ParamTypeFloat, Step: 0.1, Min: 0, Max: 1, HasMin: true, HasMax: true}
	if v := c.Nudge(0.95, 1); v != 1 {
		t.Fatalf("nudge up to %v, expected clamp at 1", v)
	}
	if v := c.Nudge(0.05, -1); v != 0 {
		t.Fatalf("nudge down to %v, expected clamp at 0", v)
	}
	steps := ParameterControl{Type: ParamTypeInt, Step: 8, Min: 16, Max: 128, HasMin: true, HasMax: true}
	if v := steps.Nudge(64, 1); v != 72 {
		t.Fatalf("steps nudge to %v, expected 72", v)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{Name: "a", Params: []Parameter{{Key: "haze", Value: "0.2"}}}}}
	if p, ok := s.Lookup("haze"); !ok || p.Value != "0.2" {
		t.Fatalf("lookup haze = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Fatalf("lookup found unknown key")
	}
}

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func TestFrameClockPause(t *testing.T) {
	f := &fakeNow{t: time.Unix(100, 0)}
	c := newFrameClock(f.now)
	f.t = f.t.Add(2 * time.Second)
	if s := c.Seconds(); s != 2 {
		t.Fatalf("seconds %v, expected 2", s)
	}
	c.SetPaused(true)
	f.t = f.t.Add(5 * time.Second)
	if s := c.Seconds(); s != 2 {
		t.Fatalf("paused clock moved to %v", s)
	}
	c.Toggle()
	f.t = f.t.Add(time.Second)
	if s := c.Seconds(); s != 3 {
		t.Fatalf("seconds %v after resume, expected 3", s)
	}
	c.Reset()
	if s := c.Seconds(); s != 0 {
		t.Fatalf("seconds %v after reset", s)
	}
}

func TestFixedStepAdvance(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	if !fs.advance(start) {
		t.Fatalf("first tick should fire immediately")
	}
	if fs.advance(start.Add(50 * time.Millisecond)) {
		t.Fatalf("ticked before the interval elapsed")
	}
	if !fs.advance(start.Add(100 * time.Millisecond)) {
		t.Fatalf("did not tick after a full interval")
	}
}

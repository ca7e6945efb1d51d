package gui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bytelens/internal/session"
	"github.com/san-kum/bytelens/internal/source"
	"github.com/san-kum/bytelens/internal/view"
)

type fakeKeys struct {
	pressed  map[int32]bool
	repeated map[int32]bool
	shift    bool
}

func (f fakeKeys) Pressed(k int32) bool  { return f.pressed[k] }
func (f fakeKeys) Repeated(k int32) bool { return f.repeated[k] }
func (f fakeKeys) Shift() bool           { return f.shift }

func press(shift bool, keys ...int32) fakeKeys {
	f := fakeKeys{pressed: map[int32]bool{}, shift: shift}
	for _, k := range keys {
		f.pressed[k] = true
	}
	return f
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want []session.Action
	}{
		{"nothing", press(false), nil},
		{"zoom in", press(false, rl.KeyEqual), []session.Action{session.ZoomIn}},
		{"plus", press(true, rl.KeyEqual), []session.Action{session.ZoomIn}},
		{"zoom out", press(false, rl.KeyMinus), []session.Action{session.ZoomOut}},
		{"row down", press(false, rl.KeyDown), []session.Action{session.ScrollDown}},
		{"page up", press(false, rl.KeyPageUp), []session.Action{session.PageUp}},
		{"fine", press(false, rl.KeyRight), []session.Action{session.FineForward}},
		{"widen", press(false, rl.KeyRightBracket), []session.Action{session.WidenRow}},
		{"double", press(true, rl.KeyRightBracket), []session.Action{session.DoubleWidth}},
		{"halve", press(true, rl.KeyLeftBracket), []session.Action{session.HalveWidth}},
		{"stride", press(true, rl.KeyS), []session.Action{session.StrideUp}},
		{"stride down", press(false, rl.KeyD), []session.Action{session.StrideDown}},
		{"tab", press(false, rl.KeyTab), []session.Action{session.NextScheme}},
		{"backspace", press(false, rl.KeyBackspace), []session.Action{session.PrevScheme}},
		{"shift c", press(true, rl.KeyC), []session.Action{session.PrevScheme}},
		{"reset", press(false, rl.KeyR), []session.Action{session.Reset}},
		{"escape", press(false, rl.KeyEscape), []session.Action{session.Quit}},
		{"q", press(true, rl.KeyQ), []session.Action{session.Quit}},
		{"chord", press(false, rl.KeyEqual, rl.KeyDown), []session.Action{session.ZoomIn, session.ScrollDown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := actionsFor(tt.keys)
			if len(got) != len(tt.want) {
				t.Fatalf("actionsFor() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("action %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestActionsFor_Repeat(t *testing.T) {
	held := fakeKeys{repeated: map[int32]bool{rl.KeyDown: true, rl.KeyS: true}}
	got := actionsFor(held)
	if len(got) != 1 || got[0] != session.ScrollDown {
		t.Errorf("held keys gave %v, want only scroll down", got)
	}
}

func TestWheelAction(t *testing.T) {
	if a, n := wheelAction(-2); a != session.ScrollDown || n != 2 {
		t.Errorf("wheel -2 = %v x%d", a, n)
	}
	if a, n := wheelAction(1); a != session.ScrollUp || n != 1 {
		t.Errorf("wheel 1 = %v x%d", a, n)
	}
	if _, n := wheelAction(0); n != 0 {
		t.Errorf("wheel 0 gave %d steps", n)
	}
}

func TestSliderValue(t *testing.T) {
	tests := []struct {
		mouse  float32
		lo, hi int
		want   int
	}{
		{100, 1, 64, 1},
		{300, 1, 64, 64},
		{50, 1, 64, 1},
		{400, 1, 64, 64},
		{200, 0, 100, 50},
		{200, 5, 5, 5},
	}
	for _, tt := range tests {
		if got := sliderValue(tt.mouse, 100, 200, tt.lo, tt.hi); got != tt.want {
			t.Errorf("sliderValue(%v, [%d,%d]) = %d, want %d", tt.mouse, tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := sliderValue(10, 0, 0, 3, 9); got != 3 {
		t.Errorf("zero-width track gave %d, want 3", got)
	}
}

func TestSliderFraction(t *testing.T) {
	if f := sliderFraction(50, 0, 100); f != 0.5 {
		t.Errorf("fraction = %v, want 0.5", f)
	}
	if f := sliderFraction(500, 0, 100); f != 1 {
		t.Errorf("fraction = %v, want 1", f)
	}
	if f := sliderFraction(3, 3, 3); f != 0 {
		t.Errorf("fraction on empty range = %v, want 0", f)
	}
}

func TestSlidersBindSettings(t *testing.T) {
	s := view.DefaultSettings(1000, 64)
	want := map[string]int{"zoom": 3, "width": 17, "offset": 250, "fine offset": 5, "stride": 4}
	for _, sl := range sliders {
		v, ok := want[sl.label]
		if !ok {
			t.Fatalf("unexpected slider %q", sl.label)
		}
		sl.set(&s, v)
		if got := sl.get(s); got != v {
			t.Errorf("%s: get after set = %d, want %d", sl.label, got, v)
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("slider values do not validate: %v", err)
	}
	if got := sliders[2].max(s); got != 999 {
		t.Errorf("offset max = %d, want 999", got)
	}
}

func TestRedraw_RefreshesStatusOnlyWhenDirty(t *testing.T) {
	file := &source.File{Path: "data.bin", Name: "data.bin", Data: make([]byte, 256)}
	sess, err := session.New(file, view.DefaultSettings(256, 8), 8, 8, 1)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	a := &App{Sess: sess}

	if !a.redraw() {
		t.Fatal("first redraw did nothing")
	}
	if len(a.status) != 4 || a.status[0] != "data.bin" || a.status[3] != "canvas 8x8" {
		t.Fatalf("status = %q", a.status)
	}

	a.status = nil
	if a.redraw() {
		t.Error("redraw without changes rendered again")
	}
	if a.status != nil {
		t.Errorf("status recomputed on a clean frame: %q", a.status)
	}

	sess.Apply(session.ScrollDown)
	if !a.redraw() || a.status == nil {
		t.Error("status not refreshed after a view change")
	}
}

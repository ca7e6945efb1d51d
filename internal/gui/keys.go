package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bytelens/internal/session"
)

type modifier int

const (
	anyShift modifier = iota
	noShift
	withShift
)

type binding struct {
	key    int32
	mod    modifier
	repeat bool
	action session.Action
}

// bindings are checked in order; every match fires. Repeating bindings also
// fire while the key is held.
var bindings = []binding{
	{rl.KeyEqual, anyShift, true, session.ZoomIn},
	{rl.KeyKpAdd, anyShift, true, session.ZoomIn},
	{rl.KeyMinus, anyShift, true, session.ZoomOut},
	{rl.KeyKpSubtract, anyShift, true, session.ZoomOut},
	{rl.KeyDown, anyShift, true, session.ScrollDown},
	{rl.KeyUp, anyShift, true, session.ScrollUp},
	{rl.KeyPageDown, anyShift, true, session.PageDown},
	{rl.KeyPageUp, anyShift, true, session.PageUp},
	{rl.KeyRight, anyShift, true, session.FineForward},
	{rl.KeyLeft, anyShift, true, session.FineBack},
	{rl.KeyRightBracket, noShift, true, session.WidenRow},
	{rl.KeyLeftBracket, noShift, true, session.NarrowRow},
	{rl.KeyRightBracket, withShift, false, session.DoubleWidth},
	{rl.KeyLeftBracket, withShift, false, session.HalveWidth},
	{rl.KeyS, anyShift, false, session.StrideUp},
	{rl.KeyD, anyShift, false, session.StrideDown},
	{rl.KeyTab, anyShift, false, session.NextScheme},
	{rl.KeyBackspace, anyShift, false, session.PrevScheme},
	{rl.KeyC, noShift, false, session.NextScheme},
	{rl.KeyC, withShift, false, session.PrevScheme},
	{rl.KeyW, anyShift, false, session.AutoWidth},
	{rl.KeyR, anyShift, false, session.Reset},
	{rl.KeyEscape, anyShift, false, session.Quit},
	{rl.KeyQ, anyShift, false, session.Quit},
}

// keyState abstracts raylib's keyboard polling.
type keyState interface {
	Pressed(key int32) bool
	Repeated(key int32) bool
	Shift() bool
}

// actionsFor returns the actions triggered this frame, in binding order.
func actionsFor(ks keyState) []session.Action {
	shift := ks.Shift()
	var out []session.Action
	for _, b := range bindings {
		if b.mod == noShift && shift || b.mod == withShift && !shift {
			continue
		}
		if ks.Pressed(b.key) || b.repeat && ks.Repeated(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}

type raylibKeys struct{}

func (raylibKeys) Pressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (raylibKeys) Repeated(key int32) bool { return rl.IsKeyPressedRepeat(key) }
func (raylibKeys) Shift() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

// wheelAction turns a wheel delta into scroll steps: one row per notch.
func wheelAction(move float32) (session.Action, int) {
	switch {
	case move < 0:
		return session.ScrollDown, int(-move + 0.5)
	case move > 0:
		return session.ScrollUp, int(move + 0.5)
	}
	return session.ActionNone, 0
}

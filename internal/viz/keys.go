package viz

import "github.com/san-kum/bytelens/internal/session"

var keyActions = map[string]session.Action{
	"+":      session.ZoomIn,
	"=":      session.ZoomIn,
	"-":      session.ZoomOut,
	"j":      session.ScrollDown,
	"down":   session.ScrollDown,
	"k":      session.ScrollUp,
	"up":     session.ScrollUp,
	"J":      session.PageDown,
	"pgdown": session.PageDown,
	"K":      session.PageUp,
	"pgup":   session.PageUp,
	"l":      session.FineForward,
	"right":  session.FineForward,
	"h":      session.FineBack,
	"left":   session.FineBack,
	"]":      session.WidenRow,
	"[":      session.NarrowRow,
	"}":      session.DoubleWidth,
	"{":      session.HalveWidth,
	"s":      session.StrideUp,
	"d":      session.StrideDown,
	"c":      session.NextScheme,
	"C":      session.PrevScheme,
	"w":      session.AutoWidth,
	"r":      session.Reset,
	"q":      session.Quit,
	"esc":    session.Quit,
	"ctrl+c": session.Quit,
}

// ActionForKey maps a bubbletea key string to a session action.
func ActionForKey(key string) (session.Action, bool) {
	a, ok := keyActions[key]
	return a, ok
}

const helpText = `KEYBOARD SHORTCUTS

  + / -     zoom in / out
  j / k     scroll one row
  J / K     scroll one page
  l / h     fine offset +1 / -1
  ] / [     row width +1 / -1
  } / {     row width x2 / /2
  s / d     stride +1 / -1
  c / C     next / previous scheme
  w         detect row width
  r         reset view
  t         cycle theme
  p         toggle panel
  ?         toggle this help
  q / Esc   quit`

package session

// Action is a view change requested by a control surface. Presenters translate
// raw key and mouse input into actions.
type Action int

const (
	ActionNone Action = iota
	ZoomIn
	ZoomOut
	ScrollDown
	ScrollUp
	PageDown
	PageUp
	FineForward
	FineBack
	WidenRow
	NarrowRow
	DoubleWidth
	HalveWidth
	StrideUp
	StrideDown
	NextScheme
	PrevScheme
	AutoWidth
	Reset
	Quit
)

var actionNames = map[Action]string{
	ActionNone:  "none",
	ZoomIn:      "zoom in",
	ZoomOut:     "zoom out",
	ScrollDown:  "scroll down",
	ScrollUp:    "scroll up",
	PageDown:    "page down",
	PageUp:      "page up",
	FineForward: "fine offset +1",
	FineBack:    "fine offset -1",
	WidenRow:    "width +1",
	NarrowRow:   "width -1",
	DoubleWidth: "width x2",
	HalveWidth:  "width /2",
	StrideUp:    "stride +1",
	StrideDown:  "stride -1",
	NextScheme:  "next scheme",
	PrevScheme:  "previous scheme",
	AutoWidth:   "detect width",
	Reset:       "reset view",
	Quit:        "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

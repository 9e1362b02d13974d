package core

// Key identifies a keyboard key. Values match GLFW key codes so the window
// layer can convert with a plain cast.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyH       Key = 72
	KeyEscape  Key = 256
	KeyEnter   Key = 257
	KeyTab     Key = 258
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
)

// Action is the state transition reported with a key or button event.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// ModifierKey is a bit set of held modifiers.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

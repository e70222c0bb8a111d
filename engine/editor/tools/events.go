package tools

import (
	"honnef.co/go/curve"
)

// Pointer is an abstract pointer event in screen coordinates. The shell
// translates its native mouse or tablet events into this form before
// feeding them to a Controller.
type Pointer struct {
	Pos   curve.Point // position in screen space
	Count int         // click count, 2 for a double click
	Shift bool
	Ctrl  bool
	Alt   bool
}

// KeyCode names the non-character keys the tools react to.
type KeyCode int8

//go:generate stringer -type=KeyCode

// Key codes. KeyRune stands for character input, with the character in
// Key.Rune.
const (
	KeyRune KeyCode = iota
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// Key is an abstract key-press event.
type Key struct {
	Code  KeyCode
	Rune  rune // the character, when Code is KeyRune
	Shift bool
	Ctrl  bool
}

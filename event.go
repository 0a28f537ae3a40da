package arbor

// Event is a discrete platform event record delivered to [Engine.Dispatch].
// The concrete kinds are [KeyboardEvent], [WindowEvent], and [MouseEvent];
// translating platform-native codes into these records is the job of a
// platform adapter such as [Window], never of the tree.
type Event interface {
	isEvent()
}

// KeyAction distinguishes keyboard event kinds.
type KeyAction uint8

const (
	KeyActionNone KeyAction = iota
	KeyPressed
	KeyReleased
)

// KeyboardEvent reports a key press or release, identified by a
// platform-independent [Key].
type KeyboardEvent struct {
	Action KeyAction
	Key    Key
}

func (KeyboardEvent) isEvent() {}

// WindowAction distinguishes window lifecycle event kinds.
type WindowAction uint8

const (
	WindowActionNone WindowAction = iota
	WindowMoved
	WindowResized
	WindowClosed
)

// WindowEvent reports a window lifecycle change.
type WindowEvent struct {
	Action WindowAction
}

func (WindowEvent) isEvent() {}

// MouseAction distinguishes mouse event kinds.
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseButtonPressed
	MouseButtonReleased
	MouseMoved
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// MouseEvent reports a button change or cursor movement. Position is the
// cursor location in window coordinates, the same space widget bounds live
// in, so it can be passed straight to [Widget.WidgetAt].
type MouseEvent struct {
	Action   MouseAction
	Button   MouseButton
	Position Vec2
}

func (MouseEvent) isEvent() {}

// Key is a platform-independent key identifier.
type Key uint8

const (
	KeyNone Key = iota
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyZero
	KeyOne
	KeyTwo
	KeyThree
	KeyFour
	KeyFive
	KeySix
	KeySeven
	KeyEight
	KeyNine
	KeySemicolon
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGrave

	// Function keys
	KeySpace
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyMenu

	// Keypad keys
	KeyKp0
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpDecimal
	KeyKpDivide
	KeyKpMultiply
	KeyKpSubtract
	KeyKpAdd
	KeyKpEnter
	KeyKpEqual
)

package arbor

import "github.com/hajimehoshi/ebiten/v2"

// keyMappings translates Ebitengine key codes to the platform-independent
// [Key] identifiers carried by [KeyboardEvent]. The window adapter walks
// this table each frame; keys not listed here are never reported.
var keyMappings = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeyA, KeyA},
	{ebiten.KeyB, KeyB},
	{ebiten.KeyC, KeyC},
	{ebiten.KeyD, KeyD},
	{ebiten.KeyE, KeyE},
	{ebiten.KeyF, KeyF},
	{ebiten.KeyG, KeyG},
	{ebiten.KeyH, KeyH},
	{ebiten.KeyI, KeyI},
	{ebiten.KeyJ, KeyJ},
	{ebiten.KeyK, KeyK},
	{ebiten.KeyL, KeyL},
	{ebiten.KeyM, KeyM},
	{ebiten.KeyN, KeyN},
	{ebiten.KeyO, KeyO},
	{ebiten.KeyP, KeyP},
	{ebiten.KeyQ, KeyQ},
	{ebiten.KeyR, KeyR},
	{ebiten.KeyS, KeyS},
	{ebiten.KeyT, KeyT},
	{ebiten.KeyU, KeyU},
	{ebiten.KeyV, KeyV},
	{ebiten.KeyW, KeyW},
	{ebiten.KeyX, KeyX},
	{ebiten.KeyY, KeyY},
	{ebiten.KeyZ, KeyZ},
	{ebiten.KeyDigit0, KeyZero},
	{ebiten.KeyDigit1, KeyOne},
	{ebiten.KeyDigit2, KeyTwo},
	{ebiten.KeyDigit3, KeyThree},
	{ebiten.KeyDigit4, KeyFour},
	{ebiten.KeyDigit5, KeyFive},
	{ebiten.KeyDigit6, KeySix},
	{ebiten.KeyDigit7, KeySeven},
	{ebiten.KeyDigit8, KeyEight},
	{ebiten.KeyDigit9, KeyNine},
	{ebiten.KeyQuote, KeyApostrophe},
	{ebiten.KeyComma, KeyComma},
	{ebiten.KeyMinus, KeyMinus},
	{ebiten.KeyPeriod, KeyPeriod},
	{ebiten.KeySlash, KeySlash},
	{ebiten.KeySemicolon, KeySemicolon},
	{ebiten.KeyEqual, KeyEqual},
	{ebiten.KeyBracketLeft, KeyLeftBracket},
	{ebiten.KeyBackslash, KeyBackslash},
	{ebiten.KeyBracketRight, KeyRightBracket},
	{ebiten.KeyBackquote, KeyGrave},
	{ebiten.KeySpace, KeySpace},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyTab, KeyTab},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyInsert, KeyInsert},
	{ebiten.KeyDelete, KeyDelete},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
	{ebiten.KeyHome, KeyHome},
	{ebiten.KeyEnd, KeyEnd},
	{ebiten.KeyCapsLock, KeyCapsLock},
	{ebiten.KeyScrollLock, KeyScrollLock},
	{ebiten.KeyNumLock, KeyNumLock},
	{ebiten.KeyPrintScreen, KeyPrintScreen},
	{ebiten.KeyPause, KeyPause},
	{ebiten.KeyF1, KeyF1},
	{ebiten.KeyF2, KeyF2},
	{ebiten.KeyF3, KeyF3},
	{ebiten.KeyF4, KeyF4},
	{ebiten.KeyF5, KeyF5},
	{ebiten.KeyF6, KeyF6},
	{ebiten.KeyF7, KeyF7},
	{ebiten.KeyF8, KeyF8},
	{ebiten.KeyF9, KeyF9},
	{ebiten.KeyF10, KeyF10},
	{ebiten.KeyF11, KeyF11},
	{ebiten.KeyF12, KeyF12},
	{ebiten.KeyShiftLeft, KeyLeftShift},
	{ebiten.KeyControlLeft, KeyLeftControl},
	{ebiten.KeyAltLeft, KeyLeftAlt},
	{ebiten.KeyMetaLeft, KeyLeftSuper},
	{ebiten.KeyShiftRight, KeyRightShift},
	{ebiten.KeyControlRight, KeyRightControl},
	{ebiten.KeyAltRight, KeyRightAlt},
	{ebiten.KeyMetaRight, KeyRightSuper},
	{ebiten.KeyContextMenu, KeyMenu},
	{ebiten.KeyNumpad0, KeyKp0},
	{ebiten.KeyNumpad1, KeyKp1},
	{ebiten.KeyNumpad2, KeyKp2},
	{ebiten.KeyNumpad3, KeyKp3},
	{ebiten.KeyNumpad4, KeyKp4},
	{ebiten.KeyNumpad5, KeyKp5},
	{ebiten.KeyNumpad6, KeyKp6},
	{ebiten.KeyNumpad7, KeyKp7},
	{ebiten.KeyNumpad8, KeyKp8},
	{ebiten.KeyNumpad9, KeyKp9},
	{ebiten.KeyNumpadDecimal, KeyKpDecimal},
	{ebiten.KeyNumpadDivide, KeyKpDivide},
	{ebiten.KeyNumpadMultiply, KeyKpMultiply},
	{ebiten.KeyNumpadSubtract, KeyKpSubtract},
	{ebiten.KeyNumpadAdd, KeyKpAdd},
	{ebiten.KeyNumpadEnter, KeyKpEnter},
	{ebiten.KeyNumpadEqual, KeyKpEqual},
}

// convertKey returns the platform-independent identifier for an Ebitengine
// key, or KeyNone if the key is not mapped.
func convertKey(k ebiten.Key) Key {
	for _, m := range keyMappings {
		if m.ebiten == k {
			return m.key
		}
	}
	return KeyNone
}

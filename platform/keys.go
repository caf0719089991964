// platform/keys.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import "github.com/veandco/go-sdl2/sdl"

// Key identifies a key by its position on a USB HID keyboard, independent of
// the active layout. The list is frozen; backends map their native scancodes
// onto it and drop what they cannot express. Mobile and reserved scancodes
// are omitted on purpose.
type Key int

const (
	KeyA Key = iota
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
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeyNonUSHash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock
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
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyNumLockClear
	KeyKpDivide
	KeyKpMultiply
	KeyKpMinus
	KeyKpPlus
	KeyKpEnter
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKp0
	KeyKpPeriod
	KeyNonUSBackslash
	KeyApplication
	KeyPower
	KeyKpEquals
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyExecute
	KeyHelp
	KeyMenu
	KeySelect
	KeyStop
	KeyAgain
	KeyUndo
	KeyCut
	KeyCopy
	KeyPaste
	KeyFind
	KeyMute
	KeyVolumeUp
	KeyVolumeDown
	KeyKpComma
	KeyKpEqualsAS400
	KeyInternational1
	KeyInternational2
	KeyInternational3
	KeyInternational4
	KeyInternational5
	KeyInternational6
	KeyInternational7
	KeyInternational8
	KeyInternational9
	KeyLang1
	KeyLang2
	KeyLang3
	KeyLang4
	KeyLang5
	KeyLang6
	KeyLang7
	KeyLang8
	KeyLang9
	KeyAltErase
	KeySysReq
	KeyCancel
	KeyClear
	KeyPrior
	KeyReturn2
	KeySeparator
	KeyOut
	KeyOper
	KeyClearAgain
	KeyCrSel
	KeyExSel
	KeyKp00
	KeyKp000
	KeyThousandsSeparator
	KeyDecimalSeparator
	KeyCurrencyUnit
	KeyCurrencySubunit
	KeyKpLeftParen
	KeyKpRightParen
	KeyKpLeftBrace
	KeyKpRightBrace
	KeyKpTab
	KeyKpBackspace
	KeyKpA
	KeyKpB
	KeyKpC
	KeyKpD
	KeyKpE
	KeyKpF
	KeyKpXor
	KeyKpPower
	KeyKpPercent
	KeyKpLess
	KeyKpGreater
	KeyKpAmpersand
	KeyKpDblAmpersand
	KeyKpVerticalBar
	KeyKpDblVerticalBar
	KeyKpColon
	KeyKpHash
	KeyKpSpace
	KeyKpAt
	KeyKpExclam
	KeyKpMemStore
	KeyKpMemRecall
	KeyKpMemClear
	KeyKpMemAdd
	KeyKpMemSubtract
	KeyKpMemMultiply
	KeyKpMemDivide
	KeyKpPlusMinus
	KeyKpClear
	KeyKpClearEntry
	KeyKpBinary
	KeyKpOctal
	KeyKpDecimal
	KeyKpHexadecimal
	KeyLCtrl
	KeyLShift
	KeyLAlt
	KeyLGui
	KeyRCtrl
	KeyRShift
	KeyRAlt
	KeyRGui
	KeyMode
	KeySleep

	// The remaining keys exist in the frozen list but not all of them have
	// an SDL2 scancode; those without one are never produced by this
	// backend.
	KeyWake
	KeyChannelIncrement
	KeyChannelDecrement
	KeyMediaPlay
	KeyMediaPause
	KeyMediaRecord
	KeyMediaFastForward
	KeyMediaRewind
	KeyMediaNextTrack
	KeyMediaPreviousTrack
	KeyMediaStop
	KeyMediaEject
	KeyMediaPlayPause
	KeyMediaSelect
	KeyAcNew
	KeyAcOpen
	KeyAcClose
	KeyAcExit
	KeyAcSave
	KeyAcPrint
	KeyAcProperties
	KeyAcSearch
	KeyAcHome
	KeyAcBack
	KeyAcForward
	KeyAcStop
	KeyAcRefresh
	KeyAcBookmarks
)

// scancodeToKey maps every scancode this backend can report onto the frozen
// Key list. Media keys map from SDL2's AUDIO* scancodes; both MUTE and
// AUDIOMUTE collapse onto KeyMute. KeyWake, the channel keys, MediaPause,
// MediaRecord, MediaPlayPause and the AC document keys (New through
// Properties) have no SDL2 scancode and therefore no entry.
var scancodeToKey = map[sdl.Scancode]Key{
	sdl.SCANCODE_A:                  KeyA,
	sdl.SCANCODE_B:                  KeyB,
	sdl.SCANCODE_C:                  KeyC,
	sdl.SCANCODE_D:                  KeyD,
	sdl.SCANCODE_E:                  KeyE,
	sdl.SCANCODE_F:                  KeyF,
	sdl.SCANCODE_G:                  KeyG,
	sdl.SCANCODE_H:                  KeyH,
	sdl.SCANCODE_I:                  KeyI,
	sdl.SCANCODE_J:                  KeyJ,
	sdl.SCANCODE_K:                  KeyK,
	sdl.SCANCODE_L:                  KeyL,
	sdl.SCANCODE_M:                  KeyM,
	sdl.SCANCODE_N:                  KeyN,
	sdl.SCANCODE_O:                  KeyO,
	sdl.SCANCODE_P:                  KeyP,
	sdl.SCANCODE_Q:                  KeyQ,
	sdl.SCANCODE_R:                  KeyR,
	sdl.SCANCODE_S:                  KeyS,
	sdl.SCANCODE_T:                  KeyT,
	sdl.SCANCODE_U:                  KeyU,
	sdl.SCANCODE_V:                  KeyV,
	sdl.SCANCODE_W:                  KeyW,
	sdl.SCANCODE_X:                  KeyX,
	sdl.SCANCODE_Y:                  KeyY,
	sdl.SCANCODE_Z:                  KeyZ,
	sdl.SCANCODE_1:                  Key1,
	sdl.SCANCODE_2:                  Key2,
	sdl.SCANCODE_3:                  Key3,
	sdl.SCANCODE_4:                  Key4,
	sdl.SCANCODE_5:                  Key5,
	sdl.SCANCODE_6:                  Key6,
	sdl.SCANCODE_7:                  Key7,
	sdl.SCANCODE_8:                  Key8,
	sdl.SCANCODE_9:                  Key9,
	sdl.SCANCODE_0:                  Key0,
	sdl.SCANCODE_RETURN:             KeyReturn,
	sdl.SCANCODE_ESCAPE:             KeyEscape,
	sdl.SCANCODE_BACKSPACE:          KeyBackspace,
	sdl.SCANCODE_TAB:                KeyTab,
	sdl.SCANCODE_SPACE:              KeySpace,
	sdl.SCANCODE_MINUS:              KeyMinus,
	sdl.SCANCODE_EQUALS:             KeyEquals,
	sdl.SCANCODE_LEFTBRACKET:        KeyLeftBracket,
	sdl.SCANCODE_RIGHTBRACKET:       KeyRightBracket,
	sdl.SCANCODE_BACKSLASH:          KeyBackslash,
	sdl.SCANCODE_NONUSHASH:          KeyNonUSHash,
	sdl.SCANCODE_SEMICOLON:          KeySemicolon,
	sdl.SCANCODE_APOSTROPHE:         KeyApostrophe,
	sdl.SCANCODE_GRAVE:              KeyGrave,
	sdl.SCANCODE_COMMA:              KeyComma,
	sdl.SCANCODE_PERIOD:             KeyPeriod,
	sdl.SCANCODE_SLASH:              KeySlash,
	sdl.SCANCODE_CAPSLOCK:           KeyCapsLock,
	sdl.SCANCODE_F1:                 KeyF1,
	sdl.SCANCODE_F2:                 KeyF2,
	sdl.SCANCODE_F3:                 KeyF3,
	sdl.SCANCODE_F4:                 KeyF4,
	sdl.SCANCODE_F5:                 KeyF5,
	sdl.SCANCODE_F6:                 KeyF6,
	sdl.SCANCODE_F7:                 KeyF7,
	sdl.SCANCODE_F8:                 KeyF8,
	sdl.SCANCODE_F9:                 KeyF9,
	sdl.SCANCODE_F10:                KeyF10,
	sdl.SCANCODE_F11:                KeyF11,
	sdl.SCANCODE_F12:                KeyF12,
	sdl.SCANCODE_PRINTSCREEN:        KeyPrintScreen,
	sdl.SCANCODE_SCROLLLOCK:         KeyScrollLock,
	sdl.SCANCODE_PAUSE:              KeyPause,
	sdl.SCANCODE_INSERT:             KeyInsert,
	sdl.SCANCODE_HOME:               KeyHome,
	sdl.SCANCODE_PAGEUP:             KeyPageUp,
	sdl.SCANCODE_DELETE:             KeyDelete,
	sdl.SCANCODE_END:                KeyEnd,
	sdl.SCANCODE_PAGEDOWN:           KeyPageDown,
	sdl.SCANCODE_RIGHT:              KeyRight,
	sdl.SCANCODE_LEFT:               KeyLeft,
	sdl.SCANCODE_DOWN:               KeyDown,
	sdl.SCANCODE_UP:                 KeyUp,
	sdl.SCANCODE_NUMLOCKCLEAR:       KeyNumLockClear,
	sdl.SCANCODE_KP_DIVIDE:          KeyKpDivide,
	sdl.SCANCODE_KP_MULTIPLY:        KeyKpMultiply,
	sdl.SCANCODE_KP_MINUS:           KeyKpMinus,
	sdl.SCANCODE_KP_PLUS:            KeyKpPlus,
	sdl.SCANCODE_KP_ENTER:           KeyKpEnter,
	sdl.SCANCODE_KP_1:               KeyKp1,
	sdl.SCANCODE_KP_2:               KeyKp2,
	sdl.SCANCODE_KP_3:               KeyKp3,
	sdl.SCANCODE_KP_4:               KeyKp4,
	sdl.SCANCODE_KP_5:               KeyKp5,
	sdl.SCANCODE_KP_6:               KeyKp6,
	sdl.SCANCODE_KP_7:               KeyKp7,
	sdl.SCANCODE_KP_8:               KeyKp8,
	sdl.SCANCODE_KP_9:               KeyKp9,
	sdl.SCANCODE_KP_0:               KeyKp0,
	sdl.SCANCODE_KP_PERIOD:          KeyKpPeriod,
	sdl.SCANCODE_NONUSBACKSLASH:     KeyNonUSBackslash,
	sdl.SCANCODE_APPLICATION:        KeyApplication,
	sdl.SCANCODE_POWER:              KeyPower,
	sdl.SCANCODE_KP_EQUALS:          KeyKpEquals,
	sdl.SCANCODE_F13:                KeyF13,
	sdl.SCANCODE_F14:                KeyF14,
	sdl.SCANCODE_F15:                KeyF15,
	sdl.SCANCODE_F16:                KeyF16,
	sdl.SCANCODE_F17:                KeyF17,
	sdl.SCANCODE_F18:                KeyF18,
	sdl.SCANCODE_F19:                KeyF19,
	sdl.SCANCODE_F20:                KeyF20,
	sdl.SCANCODE_F21:                KeyF21,
	sdl.SCANCODE_F22:                KeyF22,
	sdl.SCANCODE_F23:                KeyF23,
	sdl.SCANCODE_F24:                KeyF24,
	sdl.SCANCODE_EXECUTE:            KeyExecute,
	sdl.SCANCODE_HELP:               KeyHelp,
	sdl.SCANCODE_MENU:               KeyMenu,
	sdl.SCANCODE_SELECT:             KeySelect,
	sdl.SCANCODE_STOP:               KeyStop,
	sdl.SCANCODE_AGAIN:              KeyAgain,
	sdl.SCANCODE_UNDO:               KeyUndo,
	sdl.SCANCODE_CUT:                KeyCut,
	sdl.SCANCODE_COPY:               KeyCopy,
	sdl.SCANCODE_PASTE:              KeyPaste,
	sdl.SCANCODE_FIND:               KeyFind,
	sdl.SCANCODE_MUTE:               KeyMute,
	sdl.SCANCODE_VOLUMEUP:           KeyVolumeUp,
	sdl.SCANCODE_VOLUMEDOWN:         KeyVolumeDown,
	sdl.SCANCODE_KP_COMMA:           KeyKpComma,
	sdl.SCANCODE_KP_EQUALSAS400:     KeyKpEqualsAS400,
	sdl.SCANCODE_INTERNATIONAL1:     KeyInternational1,
	sdl.SCANCODE_INTERNATIONAL2:     KeyInternational2,
	sdl.SCANCODE_INTERNATIONAL3:     KeyInternational3,
	sdl.SCANCODE_INTERNATIONAL4:     KeyInternational4,
	sdl.SCANCODE_INTERNATIONAL5:     KeyInternational5,
	sdl.SCANCODE_INTERNATIONAL6:     KeyInternational6,
	sdl.SCANCODE_INTERNATIONAL7:     KeyInternational7,
	sdl.SCANCODE_INTERNATIONAL8:     KeyInternational8,
	sdl.SCANCODE_INTERNATIONAL9:     KeyInternational9,
	sdl.SCANCODE_LANG1:              KeyLang1,
	sdl.SCANCODE_LANG2:              KeyLang2,
	sdl.SCANCODE_LANG3:              KeyLang3,
	sdl.SCANCODE_LANG4:              KeyLang4,
	sdl.SCANCODE_LANG5:              KeyLang5,
	sdl.SCANCODE_LANG6:              KeyLang6,
	sdl.SCANCODE_LANG7:              KeyLang7,
	sdl.SCANCODE_LANG8:              KeyLang8,
	sdl.SCANCODE_LANG9:              KeyLang9,
	sdl.SCANCODE_ALTERASE:           KeyAltErase,
	sdl.SCANCODE_SYSREQ:             KeySysReq,
	sdl.SCANCODE_CANCEL:             KeyCancel,
	sdl.SCANCODE_CLEAR:              KeyClear,
	sdl.SCANCODE_PRIOR:              KeyPrior,
	sdl.SCANCODE_RETURN2:            KeyReturn2,
	sdl.SCANCODE_SEPARATOR:          KeySeparator,
	sdl.SCANCODE_OUT:                KeyOut,
	sdl.SCANCODE_OPER:               KeyOper,
	sdl.SCANCODE_CLEARAGAIN:         KeyClearAgain,
	sdl.SCANCODE_CRSEL:              KeyCrSel,
	sdl.SCANCODE_EXSEL:              KeyExSel,
	sdl.SCANCODE_KP_00:              KeyKp00,
	sdl.SCANCODE_KP_000:             KeyKp000,
	sdl.SCANCODE_THOUSANDSSEPARATOR: KeyThousandsSeparator,
	sdl.SCANCODE_DECIMALSEPARATOR:   KeyDecimalSeparator,
	sdl.SCANCODE_CURRENCYUNIT:       KeyCurrencyUnit,
	sdl.SCANCODE_CURRENCYSUBUNIT:    KeyCurrencySubunit,
	sdl.SCANCODE_KP_LEFTPAREN:       KeyKpLeftParen,
	sdl.SCANCODE_KP_RIGHTPAREN:      KeyKpRightParen,
	sdl.SCANCODE_KP_LEFTBRACE:       KeyKpLeftBrace,
	sdl.SCANCODE_KP_RIGHTBRACE:      KeyKpRightBrace,
	sdl.SCANCODE_KP_TAB:             KeyKpTab,
	sdl.SCANCODE_KP_BACKSPACE:       KeyKpBackspace,
	sdl.SCANCODE_KP_A:               KeyKpA,
	sdl.SCANCODE_KP_B:               KeyKpB,
	sdl.SCANCODE_KP_C:               KeyKpC,
	sdl.SCANCODE_KP_D:               KeyKpD,
	sdl.SCANCODE_KP_E:               KeyKpE,
	sdl.SCANCODE_KP_F:               KeyKpF,
	sdl.SCANCODE_KP_XOR:             KeyKpXor,
	sdl.SCANCODE_KP_POWER:           KeyKpPower,
	sdl.SCANCODE_KP_PERCENT:         KeyKpPercent,
	sdl.SCANCODE_KP_LESS:            KeyKpLess,
	sdl.SCANCODE_KP_GREATER:         KeyKpGreater,
	sdl.SCANCODE_KP_AMPERSAND:       KeyKpAmpersand,
	sdl.SCANCODE_KP_DBLAMPERSAND:    KeyKpDblAmpersand,
	sdl.SCANCODE_KP_VERTICALBAR:     KeyKpVerticalBar,
	sdl.SCANCODE_KP_DBLVERTICALBAR:  KeyKpDblVerticalBar,
	sdl.SCANCODE_KP_COLON:           KeyKpColon,
	sdl.SCANCODE_KP_HASH:            KeyKpHash,
	sdl.SCANCODE_KP_SPACE:           KeyKpSpace,
	sdl.SCANCODE_KP_AT:              KeyKpAt,
	sdl.SCANCODE_KP_EXCLAM:          KeyKpExclam,
	sdl.SCANCODE_KP_MEMSTORE:        KeyKpMemStore,
	sdl.SCANCODE_KP_MEMRECALL:       KeyKpMemRecall,
	sdl.SCANCODE_KP_MEMCLEAR:        KeyKpMemClear,
	sdl.SCANCODE_KP_MEMADD:          KeyKpMemAdd,
	sdl.SCANCODE_KP_MEMSUBTRACT:     KeyKpMemSubtract,
	sdl.SCANCODE_KP_MEMMULTIPLY:     KeyKpMemMultiply,
	sdl.SCANCODE_KP_MEMDIVIDE:       KeyKpMemDivide,
	sdl.SCANCODE_KP_PLUSMINUS:       KeyKpPlusMinus,
	sdl.SCANCODE_KP_CLEAR:           KeyKpClear,
	sdl.SCANCODE_KP_CLEARENTRY:      KeyKpClearEntry,
	sdl.SCANCODE_KP_BINARY:          KeyKpBinary,
	sdl.SCANCODE_KP_OCTAL:           KeyKpOctal,
	sdl.SCANCODE_KP_DECIMAL:         KeyKpDecimal,
	sdl.SCANCODE_KP_HEXADECIMAL:     KeyKpHexadecimal,
	sdl.SCANCODE_LCTRL:              KeyLCtrl,
	sdl.SCANCODE_LSHIFT:             KeyLShift,
	sdl.SCANCODE_LALT:               KeyLAlt,
	sdl.SCANCODE_LGUI:               KeyLGui,
	sdl.SCANCODE_RCTRL:              KeyRCtrl,
	sdl.SCANCODE_RSHIFT:             KeyRShift,
	sdl.SCANCODE_RALT:               KeyRAlt,
	sdl.SCANCODE_RGUI:               KeyRGui,
	sdl.SCANCODE_MODE:               KeyMode,
	sdl.SCANCODE_SLEEP:              KeySleep,
	sdl.SCANCODE_AUDIOPLAY:          KeyMediaPlay,
	sdl.SCANCODE_AUDIOFASTFORWARD:   KeyMediaFastForward,
	sdl.SCANCODE_AUDIOREWIND:        KeyMediaRewind,
	sdl.SCANCODE_AUDIONEXT:          KeyMediaNextTrack,
	sdl.SCANCODE_AUDIOPREV:          KeyMediaPreviousTrack,
	sdl.SCANCODE_AUDIOSTOP:          KeyMediaStop,
	sdl.SCANCODE_AUDIOMUTE:          KeyMute,
	sdl.SCANCODE_EJECT:              KeyMediaEject,
	sdl.SCANCODE_MEDIASELECT:        KeyMediaSelect,
	sdl.SCANCODE_AC_SEARCH:          KeyAcSearch,
	sdl.SCANCODE_AC_HOME:            KeyAcHome,
	sdl.SCANCODE_AC_BACK:            KeyAcBack,
	sdl.SCANCODE_AC_FORWARD:         KeyAcForward,
	sdl.SCANCODE_AC_STOP:            KeyAcStop,
	sdl.SCANCODE_AC_REFRESH:         KeyAcRefresh,
	sdl.SCANCODE_AC_BOOKMARKS:       KeyAcBookmarks,
}

// keyFromScancode resolves a native scancode; ok is false for scancodes
// outside the frozen list.
func keyFromScancode(sc sdl.Scancode) (Key, bool) {
	k, ok := scancodeToKey[sc]
	return k, ok
}

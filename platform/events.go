// platform/events.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

// Event is the closed set of platform events surfaced by Poll. The set is
// sealed; every variant is a comparable value struct, so batches can be
// compared, journaled and replayed byte-for-byte. Native events with no
// variant here are dropped during translation.
type Event interface {
	isEvent()
}

// Window events. The platform owns a single window, so no variant carries a
// window id.
type (
	WindowShown   struct{}
	WindowHidden  struct{}
	WindowExposed struct{}

	// WindowMoved reports the new window position in screen coordinates.
	WindowMoved struct {
		X, Y int32
	}

	// WindowResized reports the new window size in screen coordinates.
	WindowResized struct {
		Width, Height int32
	}

	// WindowPixelSizeChanged reports the new drawable size in pixels; on
	// high-DPI displays this differs from WindowResized. Use it to refresh
	// the viewport.
	WindowPixelSizeChanged struct {
		Width, Height int32
	}

	WindowMinimized  struct{}
	WindowMaximized  struct{}
	WindowRestored   struct{}
	WindowMouseEnter struct{}
	WindowMouseLeave struct{}

	WindowFocusGained struct{}
	WindowFocusLost   struct{}

	// WindowCloseRequested is the close signal for the window, surfaced
	// instead of the global quit event.
	WindowCloseRequested struct{}

	// WindowICCProfileChanged fires when the ICC profile of the display
	// holding the window changes.
	WindowICCProfileChanged struct{}
)

func (WindowShown) isEvent()             {}
func (WindowHidden) isEvent()            {}
func (WindowExposed) isEvent()           {}
func (WindowMoved) isEvent()             {}
func (WindowResized) isEvent()           {}
func (WindowPixelSizeChanged) isEvent()  {}
func (WindowMinimized) isEvent()         {}
func (WindowMaximized) isEvent()         {}
func (WindowRestored) isEvent()          {}
func (WindowMouseEnter) isEvent()        {}
func (WindowMouseLeave) isEvent()        {}
func (WindowFocusGained) isEvent()       {}
func (WindowFocusLost) isEvent()         {}
func (WindowCloseRequested) isEvent()    {}
func (WindowICCProfileChanged) isEvent() {}

// Keyboard events. SDL2 reports no per-keyboard device id, so these carry
// only the key. Key repeats are delivered as further KeyboardKeyDown events.
type (
	KeyboardKeyDown struct {
		Key Key
	}
	KeyboardKeyUp struct {
		Key Key
	}
)

func (KeyboardKeyDown) isEvent() {}
func (KeyboardKeyUp) isEvent()   {}

// Text events.
type (
	// TextEditing reports an in-progress IME composition; Start and Length
	// select the edited range within the candidate text.
	TextEditing struct {
		Text          string
		Start, Length int32
	}

	// TextInput delivers committed text input.
	TextInput struct {
		Text string
	}
)

func (TextEditing) isEvent() {}
func (TextInput) isEvent()   {}

// Mouse events. Which identifies the mouse device.
type (
	MouseMotion struct {
		Which      uint32
		XRel, YRel int32
	}

	MouseButtonDown struct {
		Which  uint32
		Button MouseButton
	}
	MouseButtonUp struct {
		Which  uint32
		Button MouseButton
	}

	// MouseWheel reports scroll amounts; Y grows positive scrolling down,
	// aligned with the window coordinate direction.
	MouseWheel struct {
		Which uint32
		X, Y  int32
	}
)

func (MouseMotion) isEvent()     {}
func (MouseButtonDown) isEvent() {}
func (MouseButtonUp) isEvent()   {}
func (MouseWheel) isEvent()      {}

// MouseButton identifies a mouse button; buttons beyond X2 are dropped
// during translation.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

// Joystick events. Which is the joystick instance id, except for
// JoystickAdded where it is the device index to open.
type (
	JoystickAxisMotion struct {
		Which int32
		Axis  uint8
		Value int16
	}

	JoystickBallMotion struct {
		Which      int32
		Ball       uint8
		XRel, YRel int16
	}

	JoystickHatMotion struct {
		Which    int32
		Hat      uint8
		Position JoystickHat
	}

	JoystickButtonDown struct {
		Which  int32
		Button uint8
	}
	JoystickButtonUp struct {
		Which  int32
		Button uint8
	}

	JoystickAdded struct {
		Which int32
	}
	JoystickRemoved struct {
		Which int32
	}
)

func (JoystickAxisMotion) isEvent() {}
func (JoystickBallMotion) isEvent() {}
func (JoystickHatMotion) isEvent()  {}
func (JoystickButtonDown) isEvent() {}
func (JoystickButtonUp) isEvent()   {}
func (JoystickAdded) isEvent()      {}
func (JoystickRemoved) isEvent()    {}

// JoystickHat is a hat switch position.
type JoystickHat uint8

const (
	JoystickHatCentered JoystickHat = iota
	JoystickHatUp
	JoystickHatRight
	JoystickHatDown
	JoystickHatLeft
	JoystickHatRightUp
	JoystickHatRightDown
	JoystickHatLeftUp
	JoystickHatLeftDown
)

// Gamepad events cover joysticks recognized as game controllers with a
// standardized button and axis layout.
type (
	GamepadAxisMotion struct {
		Which int32
		Axis  GamepadAxis
		Value int16
	}

	GamepadButtonDown struct {
		Which  int32
		Button GamepadButton
	}
	GamepadButtonUp struct {
		Which  int32
		Button GamepadButton
	}

	GamepadAdded struct {
		Which int32
	}
	GamepadRemoved struct {
		Which int32
	}

	// GamepadRemapped fires when the controller mapping for the device
	// changes.
	GamepadRemapped struct {
		Which int32
	}

	GamepadTouchpadDown struct {
		Which, Touchpad, Finger int32
		X, Y, Pressure          float32
	}
	GamepadTouchpadMotion struct {
		Which, Touchpad, Finger int32
		X, Y, Pressure          float32
	}
	GamepadTouchpadUp struct {
		Which, Touchpad, Finger int32
		X, Y, Pressure          float32
	}
)

func (GamepadAxisMotion) isEvent()     {}
func (GamepadButtonDown) isEvent()     {}
func (GamepadButtonUp) isEvent()       {}
func (GamepadAdded) isEvent()          {}
func (GamepadRemoved) isEvent()        {}
func (GamepadRemapped) isEvent()       {}
func (GamepadTouchpadDown) isEvent()   {}
func (GamepadTouchpadMotion) isEvent() {}
func (GamepadTouchpadUp) isEvent()     {}

// GamepadAxis identifies a standardized controller axis.
type GamepadAxis uint8

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisTriggerLeft
	GamepadAxisTriggerRight
)

// GamepadButton identifies a standardized controller button.
type GamepadButton uint8

const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonDpadUp
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	GamepadButtonDpadRight
	GamepadButtonMisc1
	GamepadButtonPaddle1
	GamepadButtonPaddle2
	GamepadButtonPaddle3
	GamepadButtonPaddle4
	GamepadButtonTouchpad
)

// Drag-and-drop events. A drop of several items arrives as DropBegin, one
// DropFile or DropText per item, then DropComplete.
type (
	DropFile struct {
		Path string
	}
	DropText struct {
		Text string
	}
	DropBegin    struct{}
	DropComplete struct{}
)

func (DropFile) isEvent()     {}
func (DropText) isEvent()     {}
func (DropBegin) isEvent()    {}
func (DropComplete) isEvent() {}

// Display events carry an opaque handle usable with DisplayInfo. The
// platform's display records are updated before the event is surfaced.
type (
	DisplayAdded struct {
		Display DisplayHandle
	}
	DisplayRemoved struct {
		Display DisplayHandle
	}
	DisplayMoved struct {
		Display DisplayHandle
	}
)

func (DisplayAdded) isEvent()   {}
func (DisplayRemoved) isEvent() {}
func (DisplayMoved) isEvent()   {}

// Render events signal driver-side state loss; textures and target contents
// must be recreated.
type (
	RenderTargetsReset struct{}
	RenderDeviceReset  struct{}
)

func (RenderTargetsReset) isEvent() {}
func (RenderDeviceReset) isEvent()  {}

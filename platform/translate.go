// platform/translate.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"bytes"

	"github.com/veandco/go-sdl2/sdl"
)

// Sub-event codes that postdate the pinned binding, matched by value:
// the ICC profile window event arrived with SDL 2.0.18, the display move
// event with SDL 2.24.
const (
	windowEventICCProfChanged = 17
	displayEventMoved         = 4
)

// translate maps one native event onto the Event set; ok is false for
// native events that have no place in it. Display events update the display
// records as a side effect before they are surfaced.
func (p *SDLPlatform) translate(native sdl.Event) (Event, bool) {
	switch e := native.(type) {
	case *sdl.WindowEvent:
		// The single window owns every window event, so the id is not
		// inspected.
		switch e.Event {
		case sdl.WINDOWEVENT_SHOWN:
			return WindowShown{}, true
		case sdl.WINDOWEVENT_HIDDEN:
			return WindowHidden{}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return WindowExposed{}, true
		case sdl.WINDOWEVENT_MOVED:
			return WindowMoved{X: e.Data1, Y: e.Data2}, true
		case sdl.WINDOWEVENT_RESIZED:
			return WindowResized{Width: e.Data1, Height: e.Data2}, true
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return WindowPixelSizeChanged{Width: e.Data1, Height: e.Data2}, true
		case sdl.WINDOWEVENT_MINIMIZED:
			return WindowMinimized{}, true
		case sdl.WINDOWEVENT_MAXIMIZED:
			return WindowMaximized{}, true
		case sdl.WINDOWEVENT_RESTORED:
			return WindowRestored{}, true
		case sdl.WINDOWEVENT_ENTER:
			return WindowMouseEnter{}, true
		case sdl.WINDOWEVENT_LEAVE:
			return WindowMouseLeave{}, true
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return WindowFocusGained{}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return WindowFocusLost{}, true
		case sdl.WINDOWEVENT_CLOSE:
			return WindowCloseRequested{}, true
		case windowEventICCProfChanged:
			return WindowICCProfileChanged{}, true
		}
		return nil, false

	case *sdl.KeyboardEvent:
		// Key repeats with no usable scancode are suppressed before the
		// table lookup; repeats for known keys pass through.
		if e.Repeat != 0 && e.Keysym.Scancode == sdl.SCANCODE_UNKNOWN {
			return nil, false
		}
		key, ok := keyFromScancode(e.Keysym.Scancode)
		if !ok {
			return nil, false
		}
		if e.Type == sdl.KEYDOWN {
			return KeyboardKeyDown{Key: key}, true
		}
		return KeyboardKeyUp{Key: key}, true

	case *sdl.TextEditingEvent:
		return TextEditing{
			Text:   textFromNative(e.Text[:]),
			Start:  e.Start,
			Length: e.Length,
		}, true

	case *sdl.TextInputEvent:
		return TextInput{Text: textFromNative(e.Text[:])}, true

	case *sdl.MouseMotionEvent:
		return MouseMotion{Which: e.Which, XRel: e.XRel, YRel: e.YRel}, true

	case *sdl.MouseButtonEvent:
		button, ok := mouseButtonFromNative(e.Button)
		if !ok {
			return nil, false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return MouseButtonDown{Which: e.Which, Button: button}, true
		}
		return MouseButtonUp{Which: e.Which, Button: button}, true

	case *sdl.MouseWheelEvent:
		// The vertical axis is inverted so that scrolling down is positive,
		// aligned with the window coordinate direction.
		return MouseWheel{Which: e.Which, X: e.X, Y: -e.Y}, true

	case *sdl.JoyAxisEvent:
		return JoystickAxisMotion{Which: int32(e.Which), Axis: e.Axis, Value: e.Value}, true

	case *sdl.JoyBallEvent:
		return JoystickBallMotion{
			Which: int32(e.Which),
			Ball:  e.Ball,
			XRel:  e.XRel,
			YRel:  e.YRel,
		}, true

	case *sdl.JoyHatEvent:
		return JoystickHatMotion{
			Which:    int32(e.Which),
			Hat:      e.Hat,
			Position: hatFromNative(e.Value),
		}, true

	case *sdl.JoyButtonEvent:
		if e.Type == sdl.JOYBUTTONDOWN {
			return JoystickButtonDown{Which: int32(e.Which), Button: e.Button}, true
		}
		return JoystickButtonUp{Which: int32(e.Which), Button: e.Button}, true

	case *sdl.JoyDeviceAddedEvent:
		return JoystickAdded{Which: int32(e.Which)}, true

	case *sdl.JoyDeviceRemovedEvent:
		return JoystickRemoved{Which: int32(e.Which)}, true

	case *sdl.ControllerAxisEvent:
		axis, ok := gamepadAxisFromNative(e.Axis)
		if !ok {
			return nil, false
		}
		return GamepadAxisMotion{Which: int32(e.Which), Axis: axis, Value: e.Value}, true

	case *sdl.ControllerButtonEvent:
		button, ok := gamepadButtonFromNative(e.Button)
		if !ok {
			return nil, false
		}
		if e.Type == sdl.CONTROLLERBUTTONDOWN {
			return GamepadButtonDown{Which: int32(e.Which), Button: button}, true
		}
		return GamepadButtonUp{Which: int32(e.Which), Button: button}, true

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			return GamepadAdded{Which: int32(e.Which)}, true
		case sdl.CONTROLLERDEVICEREMOVED:
			return GamepadRemoved{Which: int32(e.Which)}, true
		case sdl.CONTROLLERDEVICEREMAPPED:
			return GamepadRemapped{Which: int32(e.Which)}, true
		}
		return nil, false

	case *sdl.ControllerTouchpadEvent:
		switch e.Type {
		case sdl.CONTROLLERTOUCHPADDOWN:
			return GamepadTouchpadDown{
				Which: int32(e.Which), Touchpad: e.Touchpad, Finger: e.Finger,
				X: e.X, Y: e.Y, Pressure: e.Pressure,
			}, true
		case sdl.CONTROLLERTOUCHPADMOTION:
			return GamepadTouchpadMotion{
				Which: int32(e.Which), Touchpad: e.Touchpad, Finger: e.Finger,
				X: e.X, Y: e.Y, Pressure: e.Pressure,
			}, true
		case sdl.CONTROLLERTOUCHPADUP:
			return GamepadTouchpadUp{
				Which: int32(e.Which), Touchpad: e.Touchpad, Finger: e.Finger,
				X: e.X, Y: e.Y, Pressure: e.Pressure,
			}, true
		}
		return nil, false

	case *sdl.DropEvent:
		switch e.Type {
		case sdl.DROPFILE:
			return DropFile{Path: e.File}, true
		case sdl.DROPTEXT:
			return DropText{Text: e.File}, true
		case sdl.DROPBEGIN:
			return DropBegin{}, true
		case sdl.DROPCOMPLETE:
			return DropComplete{}, true
		}
		return nil, false

	case *sdl.DisplayEvent:
		index := int32(e.Display)
		switch e.Event {
		case sdl.DISPLAYEVENT_CONNECTED:
			p.displayConnected(index)
			return DisplayAdded{Display: DisplayHandle{index: index}}, true
		case sdl.DISPLAYEVENT_DISCONNECTED:
			p.displayDisconnected(index)
			return DisplayRemoved{Display: DisplayHandle{index: index}}, true
		case displayEventMoved:
			p.displayMoved(index)
			return DisplayMoved{Display: DisplayHandle{index: index}}, true
		}
		return nil, false

	case *sdl.QuitEvent:
		// Not surfaced; WindowCloseRequested is the close signal for the
		// single window.
		return nil, false

	case *sdl.RenderEvent:
		// The binding delivers both render reset codes through this one
		// struct; everything interesting is in the type field.
		switch e.Type {
		case sdl.RENDER_TARGETS_RESET:
			return RenderTargetsReset{}, true
		case sdl.RENDER_DEVICE_RESET:
			return RenderDeviceReset{}, true
		}
		return nil, false
	}

	return nil, false
}

// textFromNative converts a fixed-size native text buffer, trimming at the
// first NUL.
func textFromNative(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

func mouseButtonFromNative(button uint8) (MouseButton, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return MouseButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return MouseButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return MouseButtonRight, true
	case sdl.BUTTON_X1:
		return MouseButtonX1, true
	case sdl.BUTTON_X2:
		return MouseButtonX2, true
	}
	return 0, false
}

func hatFromNative(value uint8) JoystickHat {
	switch value {
	case sdl.HAT_UP:
		return JoystickHatUp
	case sdl.HAT_RIGHT:
		return JoystickHatRight
	case sdl.HAT_DOWN:
		return JoystickHatDown
	case sdl.HAT_LEFT:
		return JoystickHatLeft
	case sdl.HAT_RIGHTUP:
		return JoystickHatRightUp
	case sdl.HAT_RIGHTDOWN:
		return JoystickHatRightDown
	case sdl.HAT_LEFTUP:
		return JoystickHatLeftUp
	case sdl.HAT_LEFTDOWN:
		return JoystickHatLeftDown
	}
	return JoystickHatCentered
}

func gamepadAxisFromNative(axis uint8) (GamepadAxis, bool) {
	switch axis {
	case uint8(sdl.CONTROLLER_AXIS_LEFTX):
		return GamepadAxisLeftX, true
	case uint8(sdl.CONTROLLER_AXIS_LEFTY):
		return GamepadAxisLeftY, true
	case uint8(sdl.CONTROLLER_AXIS_RIGHTX):
		return GamepadAxisRightX, true
	case uint8(sdl.CONTROLLER_AXIS_RIGHTY):
		return GamepadAxisRightY, true
	case uint8(sdl.CONTROLLER_AXIS_TRIGGERLEFT):
		return GamepadAxisTriggerLeft, true
	case uint8(sdl.CONTROLLER_AXIS_TRIGGERRIGHT):
		return GamepadAxisTriggerRight, true
	}
	return 0, false
}

func gamepadButtonFromNative(button uint8) (GamepadButton, bool) {
	switch button {
	case uint8(sdl.CONTROLLER_BUTTON_A):
		return GamepadButtonA, true
	case uint8(sdl.CONTROLLER_BUTTON_B):
		return GamepadButtonB, true
	case uint8(sdl.CONTROLLER_BUTTON_X):
		return GamepadButtonX, true
	case uint8(sdl.CONTROLLER_BUTTON_Y):
		return GamepadButtonY, true
	case uint8(sdl.CONTROLLER_BUTTON_BACK):
		return GamepadButtonBack, true
	case uint8(sdl.CONTROLLER_BUTTON_GUIDE):
		return GamepadButtonGuide, true
	case uint8(sdl.CONTROLLER_BUTTON_START):
		return GamepadButtonStart, true
	case uint8(sdl.CONTROLLER_BUTTON_LEFTSTICK):
		return GamepadButtonLeftStick, true
	case uint8(sdl.CONTROLLER_BUTTON_RIGHTSTICK):
		return GamepadButtonRightStick, true
	case uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):
		return GamepadButtonLeftShoulder, true
	case uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER):
		return GamepadButtonRightShoulder, true
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):
		return GamepadButtonDpadUp, true
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):
		return GamepadButtonDpadDown, true
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):
		return GamepadButtonDpadLeft, true
	case uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):
		return GamepadButtonDpadRight, true
	case uint8(sdl.CONTROLLER_BUTTON_MISC1):
		return GamepadButtonMisc1, true
	case uint8(sdl.CONTROLLER_BUTTON_PADDLE1):
		return GamepadButtonPaddle1, true
	case uint8(sdl.CONTROLLER_BUTTON_PADDLE2):
		return GamepadButtonPaddle2, true
	case uint8(sdl.CONTROLLER_BUTTON_PADDLE3):
		return GamepadButtonPaddle3, true
	case uint8(sdl.CONTROLLER_BUTTON_PADDLE4):
		return GamepadButtonPaddle4, true
	case uint8(sdl.CONTROLLER_BUTTON_TOUCHPAD):
		return GamepadButtonTouchpad, true
	}
	return 0, false
}

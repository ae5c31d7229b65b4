package input

import "fmt"

// Device identifies the source of a button
type Device uint8

const (
	DeviceKeyboard Device = iota + 1
	DeviceMouse
)

// MouseButton identifies a mouse button
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
	MouseMiddle
)

// Button is a device-independent press target
// Keyboard buttons carry a normalized lowercase rune, mouse buttons a MouseButton
type Button struct {
	Device Device
	Key    rune
	Mouse  MouseButton
}

// Key returns the keyboard button for r
func Key(r rune) Button {
	return Button{Device: DeviceKeyboard, Key: r}
}

// Mouse returns the mouse button b
func Mouse(b MouseButton) Button {
	return Button{Device: DeviceMouse, Mouse: b}
}

func (b Button) String() string {
	switch b.Device {
	case DeviceKeyboard:
		return fmt.Sprintf("key(%c)", b.Key)
	case DeviceMouse:
		return fmt.Sprintf("mouse(%d)", b.Mouse)
	default:
		return "none"
	}
}

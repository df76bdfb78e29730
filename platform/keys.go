package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// keyCodes maps GLFW keys to the DOM KeyboardEvent.code strings the core
// understands, so every host speaks the same key identifiers.
var keyCodes = map[glfw.Key]string{
	glfw.KeyW:            "KeyW",
	glfw.KeyA:            "KeyA",
	glfw.KeyS:            "KeyS",
	glfw.KeyD:            "KeyD",
	glfw.KeyY:            "KeyY",
	glfw.KeyZ:            "KeyZ",
	glfw.KeyE:            "KeyE",
	glfw.KeyQ:            "KeyQ",
	glfw.KeySpace:        "Space",
	glfw.KeyLeftShift:    "ShiftLeft",
	glfw.KeyRightShift:   "ShiftRight",
	glfw.KeyEscape:       "Escape",
	glfw.Key1:            "Digit1",
	glfw.Key2:            "Digit2",
	glfw.Key3:            "Digit3",
	glfw.KeyUp:           "ArrowUp",
	glfw.KeyDown:         "ArrowDown",
	glfw.KeyLeft:         "ArrowLeft",
	glfw.KeyRight:        "ArrowRight",
	glfw.KeyLeftControl:  "ControlLeft",
	glfw.KeyRightControl: "ControlRight",
}

// KeyCode returns the DOM code for a GLFW key, or "" when it is unmapped.
func KeyCode(key glfw.Key) string {
	return keyCodes[key]
}

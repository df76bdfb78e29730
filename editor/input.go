package editor

// Key is a logical control, independent of the host's key codes.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySlot1
	KeySlot2
	KeySlot3
	KeyUndo
	KeyRedo

	keyCount
)

// Mouse buttons use the host's DOM numbering.
const (
	ButtonBreak = 0
	ButtonPlace = 2

	buttonCount = 3
)

var keyBindings = map[string]Key{
	"KeyW":      KeyForward,
	"KeyS":      KeyBack,
	"KeyA":      KeyLeft,
	"KeyD":      KeyRight,
	"Space":     KeyUp,
	"ShiftLeft": KeyDown,
	"Digit1":    KeySlot1,
	"Digit2":    KeySlot2,
	"Digit3":    KeySlot3,
	"KeyZ":      KeyUndo,
	"KeyY":      KeyRedo,
}

// BindingFor maps a host key code to a logical key.
func BindingFor(code string) (Key, bool) {
	k, ok := keyBindings[code]
	return k, ok
}

// InputState collects host events between frame steps. Held state is
// level-triggered; presses are latched until EndFrame so a press and
// release inside one frame is still seen once.
type InputState struct {
	keys       [keyCount]bool
	keyPresses [keyCount]bool

	buttons       [buttonCount]bool
	buttonPresses [buttonCount]bool

	// Mouse motion accumulated since the last EndFrame.
	MouseDX, MouseDY float32
}

func NewInputState() *InputState {
	return &InputState{}
}

// SetKey records a host key event. Unknown codes are ignored.
func (in *InputState) SetKey(down bool, code string) {
	k, ok := BindingFor(code)
	if !ok {
		return
	}
	if down && !in.keys[k] {
		in.keyPresses[k] = true
	}
	in.keys[k] = down
}

func (in *InputState) SetButton(down bool, button int) {
	if button < 0 || button >= buttonCount {
		return
	}
	if down && !in.buttons[button] {
		in.buttonPresses[button] = true
	}
	in.buttons[button] = down
}

func (in *InputState) AddMouseMotion(dx, dy float32) {
	in.MouseDX += dx
	in.MouseDY += dy
}

func (in *InputState) IsKeyDown(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.keys[k]
}

// IsKeyPressed reports a key that went down during the current frame.
func (in *InputState) IsKeyPressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.keyPresses[k]
}

func (in *InputState) IsButtonDown(button int) bool {
	if button < 0 || button >= buttonCount {
		return false
	}
	return in.buttons[button]
}

func (in *InputState) IsButtonPressed(button int) bool {
	if button < 0 || button >= buttonCount {
		return false
	}
	return in.buttonPresses[button]
}

// Axis returns +1, -1 or 0 for a pair of opposing keys.
func (in *InputState) Axis(positive, negative Key) float32 {
	var v float32
	if in.IsKeyDown(positive) {
		v++
	}
	if in.IsKeyDown(negative) {
		v--
	}
	return v
}

// EndFrame clears latched presses and consumed mouse motion.
func (in *InputState) EndFrame() {
	in.keyPresses = [keyCount]bool{}
	in.buttonPresses = [buttonCount]bool{}
	in.MouseDX, in.MouseDY = 0, 0
}

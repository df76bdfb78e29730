package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputPressLatchesUntilEndFrame(t *testing.T) {
	in := NewInputState()
	in.SetKey(true, "KeyW")
	in.SetKey(false, "KeyW")

	assert.True(t, in.IsKeyPressed(KeyForward))
	assert.False(t, in.IsKeyDown(KeyForward))

	in.EndFrame()
	assert.False(t, in.IsKeyPressed(KeyForward))
}

func TestInputHeldKeyPressesOnce(t *testing.T) {
	in := NewInputState()
	in.SetKey(true, "Space")
	in.EndFrame()
	in.SetKey(true, "Space")

	assert.True(t, in.IsKeyDown(KeyUp))
	assert.False(t, in.IsKeyPressed(KeyUp))
}

func TestInputUnknownCodes(t *testing.T) {
	in := NewInputState()
	in.SetKey(true, "F13")
	in.SetButton(true, 7)
	in.SetButton(true, -1)

	for k := Key(0); k < keyCount; k++ {
		assert.False(t, in.IsKeyDown(k))
	}
	assert.False(t, in.IsButtonPressed(7))
	assert.False(t, in.IsKeyDown(Key(99)))
	_, ok := BindingFor("KeyQ")
	assert.False(t, ok)
}

func TestInputAxis(t *testing.T) {
	in := NewInputState()
	assert.Equal(t, float32(0), in.Axis(KeyForward, KeyBack))
	in.SetKey(true, "KeyW")
	assert.Equal(t, float32(1), in.Axis(KeyForward, KeyBack))
	in.SetKey(true, "KeyS")
	assert.Equal(t, float32(0), in.Axis(KeyForward, KeyBack))
	in.SetKey(false, "KeyW")
	assert.Equal(t, float32(-1), in.Axis(KeyForward, KeyBack))
}

func TestInputMouse(t *testing.T) {
	in := NewInputState()
	in.AddMouseMotion(3, -2)
	in.AddMouseMotion(1, 1)
	in.SetButton(true, ButtonPlace)

	assert.Equal(t, float32(4), in.MouseDX)
	assert.Equal(t, float32(-1), in.MouseDY)
	assert.True(t, in.IsButtonPressed(ButtonPlace))
	assert.True(t, in.IsButtonDown(ButtonPlace))

	in.EndFrame()
	assert.Zero(t, in.MouseDX)
	assert.Zero(t, in.MouseDY)
	assert.False(t, in.IsButtonPressed(ButtonPlace))
	assert.True(t, in.IsButtonDown(ButtonPlace))
}

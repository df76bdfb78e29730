package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandbox/math"
	"sandbox/scene"
)

type countingCommand struct {
	value    *int
	failDo   bool
	failUndo bool
}

var errFail = errors.New("fail")

func (c *countingCommand) Execute() error {
	if c.failDo {
		return errFail
	}
	*c.value++
	return nil
}

func (c *countingCommand) Undo() error {
	if c.failUndo {
		return errFail
	}
	*c.value--
	return nil
}

func (c *countingCommand) Description() string { return "count" }

func TestHistoryUndoRedo(t *testing.T) {
	var n int
	h := NewHistory(10)

	require.NoError(t, h.Do(&countingCommand{value: &n}))
	require.NoError(t, h.Do(&countingCommand{value: &n}))
	assert.Equal(t, 2, n)

	_, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, h.CanRedo())

	_, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.False(t, h.CanRedo())

	_, err = h.Undo()
	require.NoError(t, err)
	require.NoError(t, h.Do(&countingCommand{value: &n}))
	assert.False(t, h.CanRedo(), "a new command drops redo entries")
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(4)
	_, err := h.Undo()
	require.ErrorIs(t, err, ErrNothingToUndo)
	_, err = h.Redo()
	require.ErrorIs(t, err, ErrNothingToRedo)
}

func TestHistoryFailures(t *testing.T) {
	var n int
	h := NewHistory(4)

	require.ErrorIs(t, h.Do(&countingCommand{value: &n, failDo: true}), errFail)
	assert.False(t, h.CanUndo())

	require.NoError(t, h.Do(&countingCommand{value: &n, failUndo: true}))
	_, err := h.Undo()
	require.ErrorIs(t, err, errFail)
	assert.True(t, h.CanUndo(), "a failed undo stays on the stack")
	assert.Equal(t, 1, n)
}

func TestHistoryDepth(t *testing.T) {
	var n int
	h := NewHistory(2)
	for i := 0; i < 5; i++ {
		require.NoError(t, h.Do(&countingCommand{value: &n}))
	}
	for h.CanUndo() {
		_, err := h.Undo()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, n)
}

func TestPlaceCommandRollsBackPaymentOnFullWorld(t *testing.T) {
	w := scene.NewWorld(0)
	inv := NewInventory(scene.ItemBlock)
	require.NoError(t, inv.Add(scene.ItemBlock, 1))

	cmd := NewPlaceCommand(w, inv, scene.Object{Shape: scene.ShapeCube, Scale: math.Vec3One}, scene.ItemBlock)
	require.ErrorIs(t, cmd.Execute(), scene.ErrWorldFull)
	assert.Equal(t, 1, inv.Count(scene.ItemBlock))
}

func TestBreakCommandUndoNeedsDrop(t *testing.T) {
	w := scene.NewWorld(4)
	slot, err := w.Place(scene.Object{Shape: scene.ShapeCube, Scale: math.Vec3One, DropItem: scene.ItemWood})
	require.NoError(t, err)
	inv := NewInventory(scene.ItemWood)

	cmd := NewBreakCommand(w, inv, slot)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, inv.Count(scene.ItemWood))

	require.NoError(t, inv.Take(scene.ItemWood, 1))
	require.ErrorIs(t, cmd.Undo(), ErrNoItem)
	assert.False(t, w.At(slot).Exists)

	require.NoError(t, inv.Add(scene.ItemWood, 1))
	require.NoError(t, cmd.Undo())
	assert.True(t, w.At(slot).Exists)
	assert.Zero(t, inv.Count(scene.ItemWood))
}

func TestBreakCommandWithoutDrop(t *testing.T) {
	w := scene.NewWorld(4)
	slot, err := w.Place(scene.Object{Shape: scene.ShapeCylinder, Scale: math.Vec3One})
	require.NoError(t, err)
	inv := NewInventory()

	cmd := NewBreakCommand(w, inv, slot)
	require.NoError(t, cmd.Execute())
	require.NoError(t, cmd.Undo())
	assert.True(t, w.At(slot).Exists)

	require.ErrorIs(t, NewBreakCommand(w, inv, 9).Execute(), scene.ErrNoSuchObject)
}

func TestInventory(t *testing.T) {
	inv := NewInventory(scene.ItemBlock, scene.ItemPole)

	assert.Equal(t, scene.ItemBlock, inv.Selected())
	require.NoError(t, inv.Select(1))
	assert.Equal(t, scene.ItemPole, inv.Selected())
	require.ErrorIs(t, inv.Select(2), ErrBadSlot)
	assert.Equal(t, 1, inv.SelectedSlot())

	require.ErrorIs(t, inv.Add(scene.ItemNone, 1), ErrBadItem)
	require.NoError(t, inv.Add(scene.ItemPole, 2))
	require.ErrorIs(t, inv.Take(scene.ItemPole, 3), ErrNoItem)
	assert.Equal(t, 2, inv.Count(scene.ItemPole))
	require.NoError(t, inv.Take(scene.ItemPole, 2))
	assert.Zero(t, inv.Count(scene.ItemPole))

	assert.Equal(t, scene.ItemNone, NewInventory().Selected())
}

func TestPlaceCommandRedoHonoursCheck(t *testing.T) {
	w := scene.NewWorld(4)
	inv := NewInventory(scene.ItemBlock)
	require.NoError(t, inv.Add(scene.ItemBlock, 2))

	blocked := true
	cmd := NewPlaceCommand(w, inv, scene.Object{Shape: scene.ShapeCube, Scale: math.Vec3One}, scene.ItemBlock)
	cmd.Check = func(scene.Object) error {
		if blocked {
			return ErrOccluded
		}
		return nil
	}

	require.NoError(t, cmd.Execute(), "the first placement is vetted by the caller")
	require.NoError(t, cmd.Undo())
	require.ErrorIs(t, cmd.Execute(), ErrOccluded)
	assert.False(t, w.At(cmd.Slot).Exists)
	assert.Equal(t, 2, inv.Count(scene.ItemBlock))

	blocked = false
	require.NoError(t, cmd.Execute())
	assert.True(t, w.At(cmd.Slot).Exists)
	assert.Equal(t, 1, inv.Count(scene.ItemBlock))
}

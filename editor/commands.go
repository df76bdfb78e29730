package editor

import (
	"errors"
	"fmt"

	"sandbox/scene"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrUnbreakable   = errors.New("object is unbreakable")
)

// Command is an undoable world edit. A failed Execute or Undo must leave
// the world and inventory unchanged.
type Command interface {
	Execute() error
	Undo() error
	Description() string
}

// History manages undo/redo stacks
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
}

func NewHistory(maxDepth int) *History {
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Do executes cmd and, on success, pushes it to the undo stack and drops
// any redo entries.
func (h *History) Do(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}
	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[1:]
	}
	h.redoStack = h.redoStack[:0]
	return nil
}

// Undo reverts the last command. A command whose Undo fails stays on the stack.
func (h *History) Undo() (Command, error) {
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	if err := cmd.Undo(); err != nil {
		return cmd, fmt.Errorf("undo %s: %w", cmd.Description(), err)
	}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, cmd)
	return cmd, nil
}

// Redo reapplies the last undone command.
func (h *History) Redo() (Command, error) {
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	if err := cmd.Execute(); err != nil {
		return cmd, fmt.Errorf("redo %s: %w", cmd.Description(), err)
	}
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, cmd)
	return cmd, nil
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

// RestoreCheck vets an object about to be put back into the world.
type RestoreCheck func(o scene.Object) error

// PlaceCommand places an object, paying one of its item from the
// inventory. Redo restores the same slot instead of appending a new one,
// after Check accepts it.
type PlaceCommand struct {
	World     *scene.World
	Inventory *Inventory
	Object    scene.Object
	Item      scene.ItemKind
	Slot      int
	Check     RestoreCheck
}

func NewPlaceCommand(w *scene.World, inv *Inventory, obj scene.Object, item scene.ItemKind) *PlaceCommand {
	return &PlaceCommand{World: w, Inventory: inv, Object: obj, Item: item, Slot: -1}
}

func (c *PlaceCommand) Execute() error {
	if c.Slot >= 0 {
		if err := c.check(); err != nil {
			return err
		}
	}
	if err := c.Inventory.Take(c.Item, 1); err != nil {
		return err
	}
	if c.Slot >= 0 {
		if err := c.World.Restore(c.Slot); err != nil {
			_ = c.Inventory.Add(c.Item, 1)
			return err
		}
		return nil
	}
	slot, err := c.World.Place(c.Object)
	if err != nil {
		_ = c.Inventory.Add(c.Item, 1)
		return err
	}
	c.Slot = slot
	return nil
}

func (c *PlaceCommand) check() error {
	o := c.World.At(c.Slot)
	if o == nil {
		return fmt.Errorf("restore slot %d: %w", c.Slot, scene.ErrNoSuchObject)
	}
	if c.Check == nil {
		return nil
	}
	return c.Check(*o)
}

func (c *PlaceCommand) Undo() error {
	if err := c.World.Remove(c.Slot); err != nil {
		return err
	}
	return c.Inventory.Add(c.Item, 1)
}

func (c *PlaceCommand) Description() string { return "place " + c.Item.String() }

// BreakCommand removes a breakable object and credits its drop. Undo
// puts the object back once Check accepts it.
type BreakCommand struct {
	World     *scene.World
	Inventory *Inventory
	Slot      int
	Check     RestoreCheck
}

func NewBreakCommand(w *scene.World, inv *Inventory, slot int) *BreakCommand {
	return &BreakCommand{World: w, Inventory: inv, Slot: slot}
}

func (c *BreakCommand) Execute() error {
	o := c.World.At(c.Slot)
	if o == nil {
		return fmt.Errorf("break slot %d: %w", c.Slot, scene.ErrNoSuchObject)
	}
	if o.Unbreakable {
		return fmt.Errorf("break slot %d: %w", c.Slot, ErrUnbreakable)
	}
	if err := c.World.Remove(c.Slot); err != nil {
		return err
	}
	if o.DropItem.Valid() {
		return c.Inventory.Add(o.DropItem, 1)
	}
	return nil
}

func (c *BreakCommand) Undo() error {
	o := c.World.At(c.Slot)
	if o == nil {
		return fmt.Errorf("restore slot %d: %w", c.Slot, scene.ErrNoSuchObject)
	}
	if c.Check != nil {
		if err := c.Check(*o); err != nil {
			return err
		}
	}
	if o.DropItem.Valid() {
		if err := c.Inventory.Take(o.DropItem, 1); err != nil {
			return err
		}
	}
	if err := c.World.Restore(c.Slot); err != nil {
		if o.DropItem.Valid() {
			_ = c.Inventory.Add(o.DropItem, 1)
		}
		return err
	}
	return nil
}

func (c *BreakCommand) Description() string {
	return fmt.Sprintf("break slot %d", c.Slot)
}

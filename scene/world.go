package scene

import (
	"errors"
	"fmt"

	"sandbox/math"
)

var (
	ErrWorldFull    = errors.New("world at capacity")
	ErrZeroScale    = errors.New("object scale has a zero component")
	ErrUnknownShape = errors.New("unknown shape")
	ErrNoSuchObject = errors.New("no such object")
)

// Object is a placed shape. Its identity is its slot in the World.
type Object struct {
	Shape       Shape
	DropItem    ItemKind
	Position    math.Vec3
	Rotation    math.Vec3
	Scale       math.Vec3
	Exists      bool
	Unbreakable bool
}

// Model returns the object-to-world matrix: scale, then rotate, then translate.
func (o *Object) Model() math.Mat4 {
	return math.Mat4TRS(o.Position, o.Rotation, o.Scale)
}

// World is an append-only arena of objects. Slots are never compacted or
// reused; removal only clears Exists.
type World struct {
	objects []Object
}

func NewWorld(capacity int) *World {
	return &World{objects: make([]Object, 0, capacity)}
}

func (w *World) Count() int    { return len(w.objects) }
func (w *World) Capacity() int { return cap(w.objects) }

// Place appends obj and returns its slot. A full world or a zero scale
// component rejects the object without writing anything.
func (w *World) Place(obj Object) (int, error) {
	if len(w.objects) == cap(w.objects) {
		return -1, fmt.Errorf("place %s (capacity %d): %w", obj.Shape, cap(w.objects), ErrWorldFull)
	}
	if !obj.Shape.Valid() {
		return -1, fmt.Errorf("place shape %d: %w", int(obj.Shape), ErrUnknownShape)
	}
	if obj.Scale.HasZero() {
		return -1, fmt.Errorf("place %s scale %v: %w", obj.Shape, obj.Scale, ErrZeroScale)
	}
	obj.Exists = true
	w.objects = append(w.objects, obj)
	return len(w.objects) - 1, nil
}

// At returns the object in slot i, existing or not, or nil when i is out of range.
func (w *World) At(i int) *Object {
	if i < 0 || i >= len(w.objects) {
		return nil
	}
	return &w.objects[i]
}

// Remove marks slot i as no longer existing.
func (w *World) Remove(i int) error {
	o := w.At(i)
	if o == nil || !o.Exists {
		return fmt.Errorf("remove slot %d: %w", i, ErrNoSuchObject)
	}
	o.Exists = false
	return nil
}

// Restore marks a removed slot as existing again.
func (w *World) Restore(i int) error {
	o := w.At(i)
	if o == nil || o.Exists {
		return fmt.Errorf("restore slot %d: %w", i, ErrNoSuchObject)
	}
	o.Exists = true
	return nil
}

// Each calls fn for every existing object in placement order.
func (w *World) Each(fn func(i int, o *Object)) {
	for i := range w.objects {
		if w.objects[i].Exists {
			fn(i, &w.objects[i])
		}
	}
}

// Existing counts objects whose Exists flag is set.
func (w *World) Existing() int {
	n := 0
	for i := range w.objects {
		if w.objects[i].Exists {
			n++
		}
	}
	return n
}

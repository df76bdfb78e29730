package editor

import (
	"errors"
	"fmt"

	"sandbox/scene"
)

var (
	ErrNoItem     = errors.New("not enough items")
	ErrBadSlot    = errors.New("hotbar slot out of range")
	ErrBadItem    = errors.New("invalid item kind")
	ErrNoSelected = errors.New("selected slot holds nothing placeable")
)

// Inventory counts held items and tracks the selected hotbar slot.
type Inventory struct {
	slots    []scene.ItemKind
	counts   map[scene.ItemKind]int
	selected int
}

// NewInventory creates an empty inventory whose hotbar holds the given kinds.
func NewInventory(slots ...scene.ItemKind) *Inventory {
	return &Inventory{
		slots:  slots,
		counts: make(map[scene.ItemKind]int),
	}
}

func (inv *Inventory) Slots() []scene.ItemKind { return inv.slots }
func (inv *Inventory) SelectedSlot() int       { return inv.selected }

// Selected returns the item kind in the selected slot, or ItemNone.
func (inv *Inventory) Selected() scene.ItemKind {
	if inv.selected < 0 || inv.selected >= len(inv.slots) {
		return scene.ItemNone
	}
	return inv.slots[inv.selected]
}

func (inv *Inventory) Select(slot int) error {
	if slot < 0 || slot >= len(inv.slots) {
		return fmt.Errorf("select slot %d of %d: %w", slot, len(inv.slots), ErrBadSlot)
	}
	inv.selected = slot
	return nil
}

func (inv *Inventory) Count(k scene.ItemKind) int {
	return inv.counts[k]
}

// Add credits n items of kind k.
func (inv *Inventory) Add(k scene.ItemKind, n int) error {
	if !k.Valid() {
		return fmt.Errorf("add %d of %s: %w", n, k, ErrBadItem)
	}
	inv.counts[k] += n
	return nil
}

// Take debits n items of kind k, failing without change when fewer are held.
func (inv *Inventory) Take(k scene.ItemKind, n int) error {
	if !k.Valid() {
		return fmt.Errorf("take %d of %s: %w", n, k, ErrBadItem)
	}
	if inv.counts[k] < n {
		return fmt.Errorf("take %d of %s (have %d): %w", n, k, inv.counts[k], ErrNoItem)
	}
	inv.counts[k] -= n
	return nil
}

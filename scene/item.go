package scene

// ItemKind names something an object drops or the player can place.
// ItemNone means "no item".
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemBlock
	ItemPole
	ItemWood

	itemCount
)

func (k ItemKind) String() string {
	switch k {
	case ItemNone:
		return "none"
	case ItemBlock:
		return "block"
	case ItemPole:
		return "pole"
	case ItemWood:
		return "wood"
	}
	return "unknown"
}

func (k ItemKind) Valid() bool {
	return k > ItemNone && k < itemCount
}

// PlacedShape is the shape an item becomes when placed, and whether it
// can be placed at all.
func (k ItemKind) PlacedShape() (Shape, bool) {
	switch k {
	case ItemBlock, ItemWood:
		return ShapeCube, true
	case ItemPole:
		return ShapeCylinder, true
	}
	return 0, false
}

package world

import (
	"cmp"
	"strings"
)

// ItemKind classifies what an item is used for
type ItemKind int

const (
	ItemKey ItemKind = iota
	ItemTool
	ItemClue
)

// String returns the display name of the kind
func (k ItemKind) String() string {
	switch k {
	case ItemKey:
		return "Key"
	case ItemTool:
		return "Tool"
	case ItemClue:
		return "Clue"
	default:
		return "Unknown"
	}
}

// Item represents a collectible item in the world.
// Items are identified by pointer: two items may share a name.
type Item struct {
	name  string
	value int
	kind  ItemKind
}

// NewItem creates a new item with the given name, value and kind
func NewItem(name string, value int, kind ItemKind) *Item {
	return &Item{name: name, value: value, kind: kind}
}

// NewKey creates a key item
func NewKey(name string, value int) *Item {
	return NewItem(name, value, ItemKey)
}

// Name returns the item's name
func (i *Item) Name() string {
	return i.name
}

// Value returns the item's value
func (i *Item) Value() int {
	return i.value
}

// Kind returns the item's kind
func (i *Item) Kind() ItemKind {
	return i.kind
}

// IsKey returns true if the item is a key
func (i *Item) IsKey() bool {
	return i.kind == ItemKey
}

// Compare orders items by value, then by name
func (i *Item) Compare(other *Item) int {
	if c := cmp.Compare(i.value, other.value); c != 0 {
		return c
	}
	return strings.Compare(i.name, other.name)
}

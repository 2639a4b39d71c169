package model

import "sort"

// Default dimensions applied when an item has no explicit size and its
// type tag is not in the size table.
const (
	DefaultItemWidth  = 200.0
	DefaultItemHeight = 150.0
)

// SizeTable maps item type tags to their default footprint. Tables are
// built once and injected; the engine never mutates them.
type SizeTable map[string]Size2D

// Resolve returns the effective size of an item: the explicit override if
// present, then the table entry for its type tag, then the hard default.
func (t SizeTable) Resolve(item Item) Size2D {
	if item.Size != nil && item.Size.Width > 0 && item.Size.Height > 0 {
		return *item.Size
	}
	if s, ok := t[item.TypeTag]; ok {
		return s
	}
	return Size2D{Width: DefaultItemWidth, Height: DefaultItemHeight}
}

// TypeTags returns the table's known type tags in sorted order, for
// populating pickers.
func (t SizeTable) TypeTags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DefaultSizes returns the built-in type tag size table.
func DefaultSizes() SizeTable {
	return SizeTable{
		"note":     {Width: 200, Height: 150},
		"todo":     {Width: 220, Height: 260},
		"timer":    {Width: 180, Height: 120},
		"calendar": {Width: 280, Height: 240},
		"sketch":   {Width: 320, Height: 240},
		"palette":  {Width: 240, Height: 160},
		"audio":    {Width: 260, Height: 100},
		"photo":    {Width: 240, Height: 180},
		"bookmark": {Width: 200, Height: 90},
	}
}

// CategoryTable maps item type tags to routing categories. Categories are
// only used to route unassigned items to containers; they carry no other
// semantics.
type CategoryTable map[string]string

// CategoryOf returns the category for a type tag, or "" when unmapped.
func (t CategoryTable) CategoryOf(typeTag string) string {
	return t[typeTag]
}

// DefaultCategories returns the built-in type tag category table.
func DefaultCategories() CategoryTable {
	return CategoryTable{
		"note":     "productivity",
		"todo":     "productivity",
		"timer":    "productivity",
		"calendar": "productivity",
		"sketch":   "creative",
		"palette":  "creative",
		"audio":    "creative",
		"photo":    "media",
		"bookmark": "media",
	}
}

package model

import (
	"testing"
)

func TestSizeTableResolvePriority(t *testing.T) {
	sizes := DefaultSizes()

	// Explicit override wins over the table
	item := NewItem("Note", "note")
	item.Size = &Size2D{Width: 640, Height: 480}
	got := sizes.Resolve(item)
	if got.Width != 640 || got.Height != 480 {
		t.Errorf("explicit size not honored, got %+v", got)
	}

	// Table entry for a known tag
	item.Size = nil
	got = sizes.Resolve(item)
	if got.Width != 200 || got.Height != 150 {
		t.Errorf("table size not used for note, got %+v", got)
	}

	// Unknown tag falls back to the hard default
	unknown := NewItem("Mystery", "wormhole")
	got = sizes.Resolve(unknown)
	if got.Width != DefaultItemWidth || got.Height != DefaultItemHeight {
		t.Errorf("default size not used for unknown tag, got %+v", got)
	}
}

func TestSizeTableResolveIgnoresZeroOverride(t *testing.T) {
	sizes := DefaultSizes()
	item := NewItem("Broken", "timer")
	item.Size = &Size2D{Width: 0, Height: 100}

	got := sizes.Resolve(item)
	if got.Width != 180 || got.Height != 120 {
		t.Errorf("zero-width override should fall through to table, got %+v", got)
	}
}

func TestBoundingBoxDerivedEdges(t *testing.T) {
	b := BoundingBox{X: 10, Y: 20, Width: 200, Height: 100}
	if b.Right() != 210 {
		t.Errorf("Right = %v, want 210", b.Right())
	}
	if b.Bottom() != 120 {
		t.Errorf("Bottom = %v, want 120", b.Bottom())
	}
	c := b.Center()
	if c.X != 110 || c.Y != 70 {
		t.Errorf("Center = %+v, want (110, 70)", c)
	}
}

func TestCategoryTableLookup(t *testing.T) {
	cats := DefaultCategories()
	if cats.CategoryOf("todo") != "productivity" {
		t.Errorf("todo should map to productivity")
	}
	if cats.CategoryOf("sketch") != "creative" {
		t.Errorf("sketch should map to creative")
	}
	if cats.CategoryOf("wormhole") != "" {
		t.Errorf("unknown tag should map to empty category")
	}
}

func TestNewItemGeneratesUniqueIDs(t *testing.T) {
	a := NewItem("A", "note")
	b := NewItem("B", "note")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("item IDs should be unique and non-empty: %q vs %q", a.ID, b.ID)
	}
}

func TestPackResultDegradedCount(t *testing.T) {
	pr := PackResult{
		Placements: []Placement{
			{Degraded: false},
			{Degraded: true},
			{Degraded: true},
		},
	}
	if pr.DegradedCount() != 2 {
		t.Errorf("DegradedCount = %d, want 2", pr.DegradedCount())
	}
}

func TestAppConfigApplyToConfig(t *testing.T) {
	ac := DefaultAppConfig()
	ac.DefaultSpacing = 12
	ac.DefaultStrategy = StrategyFlow

	cfg := DefaultConfig()
	ac.ApplyToConfig(&cfg)

	if cfg.Spacing != 12 {
		t.Errorf("Spacing = %v, want 12", cfg.Spacing)
	}
	if cfg.Strategy != StrategyFlow {
		t.Errorf("Strategy = %v, want flow", cfg.Strategy)
	}
}

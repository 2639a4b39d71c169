package engine

import (
	"testing"

	"github.com/piwi3910/driftboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrange_DistributesThenPacks(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	containers := []model.Container{
		{ID: "work", Position: model.Point2D{X: 0, Y: 0}, Size: model.Size2D{Width: 1000, Height: 1000}, AcceptedCategories: []string{"productivity"}},
		{ID: "studio", Position: model.Point2D{X: 1200, Y: 0}, Size: model.Size2D{Width: 1000, Height: 1000}, AcceptedCategories: []string{"creative"}},
	}
	items := []model.Item{
		model.NewItem("Todo", "todo"),
		model.NewItem("Note", "note"),
		model.NewItem("Sketch", "sketch"),
		model.NewItem("Orphan", "wormhole"),
	}

	res := eng.Arrange(items, containers, model.DefaultCategories())

	require.Len(t, res.Items, 4)
	require.Len(t, res.Unassigned, 1)
	assert.Equal(t, "Orphan", res.Unassigned[0].Label)
	require.Len(t, res.Packs, 2)

	// Every assigned item landed inside its container's frame.
	for _, item := range res.Items {
		switch item.ContainerID {
		case "work":
			assert.GreaterOrEqual(t, item.Position.X, 0.0)
			assert.Less(t, item.Position.X, 1000.0)
		case "studio":
			assert.GreaterOrEqual(t, item.Position.X, 1200.0)
		}
	}

	// Co-located items don't overlap after the initial pass.
	for _, pack := range res.Packs {
		assertNoOverlaps(t, eng, pack)
	}
}

func TestArrange_PreservesItemOrder(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	containers := []model.Container{
		{ID: "work", Size: model.Size2D{Width: 1000, Height: 1000}, AcceptedCategories: []string{"productivity"}},
	}
	items := []model.Item{
		model.NewItem("First", "todo"),
		model.NewItem("Second", "note"),
		model.NewItem("Third", "timer"),
	}

	res := eng.Arrange(items, containers, model.DefaultCategories())
	require.Len(t, res.Items, 3)
	assert.Equal(t, "First", res.Items[0].Label)
	assert.Equal(t, "Second", res.Items[1].Label)
	assert.Equal(t, "Third", res.Items[2].Label)
}

func TestArrange_EmptyInputs(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	res := eng.Arrange(nil, nil, model.DefaultCategories())
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Unassigned)
	assert.Empty(t, res.Packs)
}

func TestCompareStrategies_CoversAllThree(t *testing.T) {
	containers := []model.Container{
		{ID: "work", Size: model.Size2D{Width: 1000, Height: 1000}, AcceptedCategories: []string{"productivity"}},
	}
	var items []model.Item
	for i := 0; i < 8; i++ {
		items = append(items, model.NewItem("Note", "note"))
	}

	reports := CompareStrategies(defaultTestConfig(), nil, items, containers, model.DefaultCategories())
	require.Len(t, reports, 3)

	seen := map[model.LayoutStrategy]bool{}
	for _, r := range reports {
		seen[r.Strategy] = true
		assert.Greater(t, r.Density, 0.0, "strategy %s placed nothing", r.Strategy)
		assert.Zero(t, r.UnassignedCount)
	}
	assert.True(t, seen[model.StrategyOccupancy])
	assert.True(t, seen[model.StrategyGrid])
	assert.True(t, seen[model.StrategyFlow])
}

package engine

import (
	"testing"

	"github.com/piwi3910/driftboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContainers() []model.Container {
	return []model.Container{
		{ID: "work", Label: "Work", Size: model.Size2D{Width: 1000, Height: 1000}, AcceptedCategories: []string{"productivity"}},
		{ID: "studio", Label: "Studio", Size: model.Size2D{Width: 1000, Height: 1000}, AcceptedCategories: []string{"creative", "media"}},
	}
}

func TestDistribute_RoutesByCategory(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	items := []model.Item{
		model.NewItem("Todo", "todo"),       // productivity
		model.NewItem("Sketch", "sketch"),   // creative
		model.NewItem("Photo", "photo"),     // media
		model.NewItem("Note", "note"),       // productivity
	}

	res := eng.Distribute(items, testContainers(), model.DefaultCategories())

	require.Len(t, res.Items, 4)
	assert.Empty(t, res.Unassigned)
	assert.Equal(t, "work", res.Items[0].ContainerID)
	assert.Equal(t, "studio", res.Items[1].ContainerID)
	assert.Equal(t, "studio", res.Items[2].ContainerID)
	assert.Equal(t, "work", res.Items[3].ContainerID)
}

func TestDistribute_PreassignedItemsKeepTheirContainer(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	pinned := model.NewItem("Pinned", "todo")
	pinned.ContainerID = "studio" // user moved it there on purpose

	res := eng.Distribute([]model.Item{pinned}, testContainers(), model.DefaultCategories())
	assert.Equal(t, "studio", res.Items[0].ContainerID)
	assert.Empty(t, res.Unassigned)
}

func TestDistribute_UnmatchedItemsReported(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	orphan := model.NewItem("Orphan", "wormhole")
	res := eng.Distribute([]model.Item{orphan}, testContainers(), model.DefaultCategories())

	require.Len(t, res.Unassigned, 1)
	assert.Equal(t, orphan.ID, res.Unassigned[0].ID)
	assert.Empty(t, res.Items[0].ContainerID, "unmatched items keep an empty container id")
}

func TestDistribute_ContainerOrderWins(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	// Both containers accept productivity; the first declared wins.
	containers := []model.Container{
		{ID: "first", AcceptedCategories: []string{"productivity"}},
		{ID: "second", AcceptedCategories: []string{"productivity"}},
	}

	res := eng.Distribute([]model.Item{model.NewItem("Todo", "todo")}, containers, model.DefaultCategories())
	assert.Equal(t, "first", res.Items[0].ContainerID)
}

func TestDistribute_Deterministic(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	items := []model.Item{
		model.NewItem("A", "todo"),
		model.NewItem("B", "sketch"),
		model.NewItem("C", "wormhole"),
		model.NewItem("D", "photo"),
	}
	containers := testContainers()
	cats := model.DefaultCategories()

	first := eng.Distribute(items, containers, cats)
	for i := 0; i < 5; i++ {
		again := eng.Distribute(items, containers, cats)
		assert.Equal(t, first, again, "same inputs must produce the same assignment")
	}
}

func TestDistribute_DoesNotMutateInput(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	items := []model.Item{model.NewItem("Todo", "todo")}
	eng.Distribute(items, testContainers(), model.DefaultCategories())
	assert.Empty(t, items[0].ContainerID, "caller's slice must stay untouched")
}

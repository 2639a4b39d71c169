package engine

import (
	"testing"

	"github.com/piwi3910/driftboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePosition_FreePreferredReturnedUnchanged(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	item := testItem("mover", "A", 0, 0, 100, 100)
	far := testItem("far", "A", 2000, 2000, 100, 100)
	preferred := model.Point2D{X: 300, Y: 300}

	res := eng.ResolvePosition(item, preferred, []model.Item{far})
	assert.True(t, res.Resolved)
	assert.Equal(t, preferred, res.Position)
}

func TestResolvePosition_NoSiblingsIsTrivial(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	item := testItem("mover", "A", 0, 0, 100, 100)
	preferred := model.Point2D{X: 42, Y: 17}

	res := eng.ResolvePosition(item, preferred, nil)
	assert.True(t, res.Resolved)
	assert.Equal(t, preferred, res.Position)
	assert.Zero(t, res.Iterations)
}

func TestResolvePosition_SpiralsToCollisionFreeSpot(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	item := testItem("mover", "A", 0, 0, 100, 100)
	blocker := testItem("blocker", "A", 200, 200, 100, 100)

	// Dropping directly on top of the blocker must move somewhere clear.
	res := eng.ResolvePosition(item, model.Point2D{X: 200, Y: 200}, []model.Item{blocker})
	require.True(t, res.Resolved)
	assert.NotEqual(t, model.Point2D{X: 200, Y: 200}, res.Position)

	settled := item
	settled.Position = res.Position
	assert.False(t, eng.Detect(settled, blocker).Colliding)
}

func TestResolvePosition_BudgetExhaustedFallsBackToPreferred(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.MaxSearchIterations = 3
	eng := New(cfg, nil)

	item := testItem("mover", "A", 0, 0, 100, 100)
	// Wall of blockers so the first few candidates all collide.
	var siblings []model.Item
	for i := 0; i < 10; i++ {
		siblings = append(siblings, testItem("b", "A", float64(i%4)*60, float64(i/4)*60, 100, 100))
	}

	preferred := model.Point2D{X: 100, Y: 100}
	res := eng.ResolvePosition(item, preferred, siblings)

	assert.False(t, res.Resolved)
	assert.Equal(t, preferred, res.Position, "exhausted search returns the preferred position unchanged")
	assert.LessOrEqual(t, res.Iterations, 3, "never exceeds the collision-test budget")
}

func TestResolvePosition_RadiusBoundTerminates(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.MaxSearchRadius = 15 // Too small to escape the blocker
	eng := New(cfg, nil)

	item := testItem("mover", "A", 0, 0, 100, 100)
	blocker := testItem("blocker", "A", 200, 200, 100, 100)

	preferred := model.Point2D{X: 200, Y: 200}
	res := eng.ResolvePosition(item, preferred, []model.Item{blocker})

	assert.False(t, res.Resolved)
	assert.Equal(t, preferred, res.Position)
}

func TestResolvePosition_IgnoresOtherContainers(t *testing.T) {
	eng := New(defaultTestConfig(), nil)

	item := testItem("mover", "A", 0, 0, 100, 100)
	stranger := testItem("s", "B", 200, 200, 100, 100)

	// The stranger occupies the exact drop spot but lives in another
	// container, so the preferred position stands.
	res := eng.ResolvePosition(item, model.Point2D{X: 200, Y: 200}, []model.Item{stranger})
	assert.True(t, res.Resolved)
	assert.Equal(t, model.Point2D{X: 200, Y: 200}, res.Position)
}

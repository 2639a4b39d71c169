package engine

import (
	"math"

	"github.com/piwi3910/driftboard/internal/model"
)

// Angular samples tested per spiral ring, and the extra twist applied to
// each successive ring so repeated drops don't settle into a visible
// lattice pattern.
const (
	searchSamplesPerRing = 8
	searchRingTwist      = 0.35 // radians
)

// SearchResult is the outcome of resolving a drop position. When the
// search budget runs out, Position is the original preferred position
// unchanged and Resolved is false — an intentional best-effort fallback,
// not an error.
type SearchResult struct {
	Position   model.Point2D
	Resolved   bool
	Iterations int // Collision tests consumed
}

// ResolvePosition returns a collision-free resting position for the item,
// preferring the requested drop position. If the preferred position
// collides with a same-container sibling, it spirals outward testing
// candidate positions ring by ring until one is free or the budget
// (MaxSearchRadius, MaxSearchIterations) is exhausted.
func (e *Engine) ResolvePosition(item model.Item, preferred model.Point2D, siblings []model.Item) SearchResult {
	cand := item
	cand.Position = preferred
	bounds := e.BoundsFor(cand)

	// Only co-located siblings participate; padding is the max adaptive
	// padding across all of them so every test uses the same clearance.
	var others []model.Item
	maxPad := 0.0
	for _, s := range siblings {
		if s.ID == item.ID || s.ContainerID != item.ContainerID {
			continue
		}
		others = append(others, s)
		if p := PaddingBetween(bounds, e.BoundsFor(s)); p > maxPad {
			maxPad = p
		}
	}
	if len(others) == 0 {
		return SearchResult{Position: preferred, Resolved: true}
	}

	budget := e.Config.MaxSearchIterations
	iterations := 0

	// free reports whether pos collides with no sibling. It spends one
	// iteration per collision test and gives up once the budget is gone.
	free := func(pos model.Point2D) (ok, exhausted bool) {
		c := cand
		c.Position = pos
		for _, s := range others {
			if iterations >= budget {
				return false, true
			}
			iterations++
			if e.DetectPadded(c, s, maxPad).Colliding {
				return false, false
			}
		}
		return true, false
	}

	if ok, exhausted := free(preferred); ok || exhausted {
		return SearchResult{Position: preferred, Resolved: ok, Iterations: iterations}
	}

	step := 0.1 * math.Max(bounds.Width, bounds.Height)
	if step < 1 {
		step = 1
	}

	twist := 0.0
	for r := step; r <= e.Config.MaxSearchRadius; r += step {
		twist += searchRingTwist
		for i := 0; i < searchSamplesPerRing; i++ {
			angle := twist + 2*math.Pi*float64(i)/searchSamplesPerRing
			pos := model.Point2D{
				X: preferred.X + r*math.Cos(angle),
				Y: preferred.Y + r*math.Sin(angle),
			}
			ok, exhausted := free(pos)
			if ok {
				return SearchResult{Position: pos, Resolved: true, Iterations: iterations}
			}
			if exhausted {
				return SearchResult{Position: preferred, Iterations: iterations}
			}
		}
	}

	return SearchResult{Position: preferred, Iterations: iterations}
}

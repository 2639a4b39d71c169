package engine

import (
	"math"

	"github.com/piwi3910/driftboard/internal/model"
)

// Collision reports the outcome of testing two items' padded boxes.
// Distance is always populated for co-located items, colliding or not,
// since the repulsion model needs it either way. Items in different
// containers never collide and report an infinite distance.
type Collision struct {
	Colliding bool
	OverlapX  float64 // Minimum push-apart distance along X
	OverlapY  float64 // Minimum push-apart distance along Y
	Distance  float64 // Center-to-center distance
}

// Detect tests two items using the adaptive padding for their sizes.
func (e *Engine) Detect(a, b model.Item) Collision {
	if a.ContainerID != b.ContainerID {
		return Collision{Distance: math.Inf(1)}
	}
	ba := e.BoundsFor(a)
	bb := e.BoundsFor(b)
	return detect(ba, bb, PaddingBetween(ba, bb))
}

// DetectPadded tests two items with an explicit padding instead of the
// adaptive one.
func (e *Engine) DetectPadded(a, b model.Item, padding float64) Collision {
	if a.ContainerID != b.ContainerID {
		return Collision{Distance: math.Inf(1)}
	}
	return detect(e.BoundsFor(a), e.BoundsFor(b), padding)
}

// detect expands each box by padding/2 on every side and runs an AABB
// overlap test. Expansion does not move the centers, so the reported
// distance is the true center distance.
func detect(a, b model.BoundingBox, padding float64) Collision {
	half := padding / 2
	ea := expand(a, half)
	eb := expand(b, half)

	ca := a.Center()
	cb := b.Center()
	dx := ca.X - cb.X
	dy := ca.Y - cb.Y
	dist := math.Hypot(dx, dy)

	overlapping := ea.X < eb.Right() && ea.Right() > eb.X &&
		ea.Y < eb.Bottom() && ea.Bottom() > eb.Y
	if !overlapping {
		return Collision{Distance: dist}
	}

	// Minimum penetration per axis: the smaller of the two possible
	// push-apart distances.
	overlapX := math.Min(ea.Right()-eb.X, eb.Right()-ea.X)
	overlapY := math.Min(ea.Bottom()-eb.Y, eb.Bottom()-ea.Y)

	return Collision{
		Colliding: true,
		OverlapX:  overlapX,
		OverlapY:  overlapY,
		Distance:  dist,
	}
}

func expand(b model.BoundingBox, by float64) model.BoundingBox {
	return model.BoundingBox{
		X:      b.X - by,
		Y:      b.Y - by,
		Width:  b.Width + 2*by,
		Height: b.Height + 2*by,
	}
}

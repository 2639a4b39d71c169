package engine

import (
	"math"

	"github.com/piwi3910/driftboard/internal/model"
)

// Adaptive padding constants: padding grows with the average dimension of
// the two boxes involved, clamped so small items still separate visibly
// and large items don't demand absurd gaps.
const (
	paddingBase  = 20.0
	paddingScale = 0.1
	paddingMin   = 20.0
	paddingMax   = 100.0
)

// BoundsFor derives the axis-aligned bounding box of an item. Size
// resolves in priority order: explicit override on the item, the size
// table entry for its type tag, then the hard-coded default.
func (e *Engine) BoundsFor(item model.Item) model.BoundingBox {
	s := e.Sizes.Resolve(item)
	return model.BoundingBox{
		X:      item.Position.X,
		Y:      item.Position.Y,
		Width:  s.Width,
		Height: s.Height,
	}
}

// PaddingBetween computes the required clearance between two boxes as a
// function of their sizes.
func PaddingBetween(a, b model.BoundingBox) float64 {
	avg := (a.Width + a.Height + b.Width + b.Height) / 4
	return clamp(paddingBase+paddingScale*avg, paddingMin, paddingMax)
}

// boxRadius returns half the diagonal of a box, the "personal space"
// radius used by the repulsion model. More generous than half-width or
// half-height alone.
func boxRadius(b model.BoundingBox) float64 {
	return math.Sqrt(b.Width*b.Width+b.Height*b.Height) / 2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

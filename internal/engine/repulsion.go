package engine

import (
	"hash/fnv"
	"math"

	"github.com/piwi3910/driftboard/internal/model"
)

// Push is the repulsion force one neighbor exerts on a moving item
// during a single interactive step. Strength is 1 at zero distance and
// falls to 0 at the repulsion radius.
type Push struct {
	X        float64
	Y        float64
	Strength float64
}

// Repulse computes the push a neighbor exerts on the mover. Items in
// different containers exert no force. Beyond the repulsion radius
// (sum of both diagonal radii plus the adaptive padding) the force is
// zero; inside it the magnitude falls off quadratically with distance.
//
// When the two centers coincide exactly there is no direction to push
// along, so the direction is derived from a hash of the two item ids.
// That keeps the degenerate case deterministic and testable while still
// scattering perfectly stacked items in varied directions.
func (e *Engine) Repulse(mover, neighbor model.Item) Push {
	if mover.ContainerID != neighbor.ContainerID {
		return Push{}
	}

	bm := e.BoundsFor(mover)
	bn := e.BoundsFor(neighbor)
	repulsionRadius := boxRadius(bm) + boxRadius(bn) + PaddingBetween(bm, bn)

	cm := bm.Center()
	cn := bn.Center()
	dx := cm.X - cn.X
	dy := cm.Y - cn.Y
	dist := math.Hypot(dx, dy)

	if dist >= repulsionRadius {
		return Push{}
	}

	k := e.Config.RepulsionConstant
	if dist == 0 {
		angle := pairAngle(mover.ID, neighbor.ID)
		return Push{X: math.Cos(angle) * k, Y: math.Sin(angle) * k, Strength: 1}
	}

	strength := 1 - dist/repulsionRadius
	magnitude := strength * strength * k
	return Push{
		X:        dx / dist * magnitude,
		Y:        dy / dist * magnitude,
		Strength: strength,
	}
}

// DragStep sums the pushes from every same-container sibling and scales
// the sum by the damping fraction. It returns the positional delta for
// one interactive step; the caller applies it to the mover. No velocity
// state survives between steps.
func (e *Engine) DragStep(mover model.Item, siblings []model.Item) model.Point2D {
	var sx, sy float64
	for _, s := range siblings {
		if s.ID == mover.ID {
			continue
		}
		p := e.Repulse(mover, s)
		sx += p.X
		sy += p.Y
	}
	d := e.Config.DampingFraction
	return model.Point2D{X: sx * d, Y: sy * d}
}

// pairAngle maps an ordered item id pair to a stable angle in [0, 2π).
func pairAngle(moverID, neighborID string) float64 {
	h := fnv.New32a()
	h.Write([]byte(moverID))
	h.Write([]byte{'|'})
	h.Write([]byte(neighborID))
	return float64(h.Sum32()) / float64(math.MaxUint32) * 2 * math.Pi
}

// Package engine implements the spatial collision and layout engine for
// the board: container distribution, initial packing, interactive
// magnetic repulsion while dragging, and collision-free drop resolution.
//
// Every function is a pure computation over its inputs. Degraded outcomes
// (an exhausted position search, a container with no room left, an item
// with no accepting container) are reported as explicit result values,
// never as errors and never via logging.
package engine

import "github.com/piwi3910/driftboard/internal/model"

// Engine runs the layout algorithms with a fixed configuration and
// size table. It holds no per-gesture or per-board state.
type Engine struct {
	Config model.LayoutConfig
	Sizes  model.SizeTable
}

// New creates an Engine. A nil size table falls back to the built-in
// defaults.
func New(config model.LayoutConfig, sizes model.SizeTable) *Engine {
	if sizes == nil {
		sizes = model.DefaultSizes()
	}
	return &Engine{Config: config, Sizes: sizes}
}

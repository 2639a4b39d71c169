package model

import "github.com/google/uuid"

// Point2D represents a 2D coordinate on the board, in canvas units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size2D represents a width/height pair in canvas units.
type Size2D struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Item represents a freeform visual element on the board: a note card,
// a todo list, a media widget. Identity and type are stable; position and
// container assignment change as the user works.
type Item struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	TypeTag     string  `json:"type"`           // Drives default sizing and category routing
	Position    Point2D `json:"position"`       // Top-left corner in board coordinates
	Size        *Size2D `json:"size,omitempty"` // Explicit size override; nil = resolve from the size table
	ContainerID string  `json:"container_id,omitempty"`
}

func NewItem(label, typeTag string) Item {
	return Item{
		ID:      uuid.New().String()[:8],
		Label:   label,
		TypeTag: typeTag,
	}
}

// Container represents a bounded zone on the board that groups items.
// Containers never move and are never collision-checked themselves; they
// define the coordinate frame and the collision scope for their items.
type Container struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Position           Point2D  `json:"position"`
	Size               Size2D   `json:"size"`
	AcceptedCategories []string `json:"accepted_categories"` // In routing priority order
}

func NewContainer(label string, x, y, w, h float64) Container {
	return Container{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Position: Point2D{X: x, Y: y},
		Size:     Size2D{Width: w, Height: h},
	}
}

// BoundingBox is the derived axis-aligned rectangle of an item. It is
// always recomputed from the item and the size table, never stored.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the X coordinate of the right edge.
func (b BoundingBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (b BoundingBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point2D {
	return Point2D{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// LayoutStrategy selects the packing algorithm used when a container is
// populated.
type LayoutStrategy string

const (
	StrategyOccupancy LayoutStrategy = "occupancy" // Occupancy-grid shelf packing (dense)
	StrategyGrid      LayoutStrategy = "grid"      // Uniform columns sized from the average item width
	StrategyFlow      LayoutStrategy = "flow"      // Left-to-right flow with row wrap, largest first
)

// LayoutConfig holds every tunable of the layout engine.
type LayoutConfig struct {
	Strategy LayoutStrategy `json:"strategy"`

	// Packing
	Spacing      float64 `json:"spacing"`        // Minimum gap reserved around each packed item
	StartX       float64 `json:"start_x"`        // Packing start offset from the container origin
	StartY       float64 `json:"start_y"`
	GridCellSize float64 `json:"grid_cell_size"` // Occupancy grid resolution

	// Drop position search
	MaxSearchRadius     float64 `json:"max_search_radius"`
	MaxSearchIterations int     `json:"max_search_iterations"` // Budget counted in collision tests

	// Interactive repulsion
	RepulsionConstant float64 `json:"repulsion_constant"` // Peak push magnitude per step
	DampingFraction   float64 `json:"damping_fraction"`   // Scales the summed push, < 1 for a springy feel
}

func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Strategy:            StrategyOccupancy,
		Spacing:             40.0,
		StartX:              50.0,
		StartY:              50.0,
		GridCellSize:        10.0,
		MaxSearchRadius:     600.0,
		MaxSearchIterations: 2000,
		RepulsionConstant:   60.0,
		DampingFraction:     0.35,
	}
}

// Placement represents a single item placed inside a container by the packer.
type Placement struct {
	Item     Item    `json:"item"`
	Position Point2D `json:"position"` // Absolute board coordinates
	Degraded bool    `json:"degraded"` // True when the packer had to fall back below the occupied area
}

// PackResult holds the outcome of packing one container.
type PackResult struct {
	Container  Container   `json:"container"`
	Placements []Placement `json:"placements"`
}

// DegradedCount returns how many placements fell into the fallback branch.
func (pr PackResult) DegradedCount() int {
	n := 0
	for _, p := range pr.Placements {
		if p.Degraded {
			n++
		}
	}
	return n
}

// UsedArea returns the total footprint area of the placed items, resolved
// against the given size table.
func (pr PackResult) UsedArea(sizes SizeTable) float64 {
	var total float64
	for _, p := range pr.Placements {
		s := sizes.Resolve(p.Item)
		total += s.Width * s.Height
	}
	return total
}

// Density returns the fraction of the container area claimed by placements.
func (pr PackResult) Density(sizes SizeTable) float64 {
	area := pr.Container.Size.Width * pr.Container.Size.Height
	if area == 0 {
		return 0
	}
	return pr.UsedArea(sizes) / area
}

// DistributionResult reports the outcome of routing items to containers.
// Items that matched no container keep their zero ContainerID and are
// listed in Unassigned rather than silently dropped.
type DistributionResult struct {
	Items      []Item `json:"items"`
	Unassigned []Item `json:"unassigned"`
}

// ArrangeResult is the combined distribute-then-pack outcome for a board.
type ArrangeResult struct {
	Items      []Item       `json:"items"`
	Unassigned []Item       `json:"unassigned"`
	Packs      []PackResult `json:"packs"`
}

// DegradedCount sums degraded placements across all containers.
func (ar ArrangeResult) DegradedCount() int {
	n := 0
	for _, p := range ar.Packs {
		n += p.DegradedCount()
	}
	return n
}

// Board ties everything together for save/load.
type Board struct {
	Name       string       `json:"name"`
	Items      []Item       `json:"items"`
	Containers []Container  `json:"containers"`
	Config     LayoutConfig `json:"config"`
}

func NewBoard() Board {
	return Board{
		Name:       "Untitled",
		Items:      []Item{},
		Containers: []Container{},
		Config:     DefaultConfig(),
	}
}

package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/driftboard/internal/model"
)

// Pack computes initial non-overlapping positions for a set of items
// inside one container, using the strategy from the engine config.
// Items are returned as placements with absolute board positions; the
// input slice is not modified.
func (e *Engine) Pack(items []model.Item, container model.Container) model.PackResult {
	switch e.Config.Strategy {
	case model.StrategyGrid:
		return e.packGrid(items, container)
	case model.StrategyFlow:
		return e.packFlow(items, container)
	default:
		return e.packOccupancy(items, container)
	}
}

// packOccupancy is the dense shelf-style packer. It tracks claimed space
// on a virtual fine-grained grid over the container interior, places the
// tallest items first, and scans row-major for the first footprint-sized
// free region. Items that fit nowhere are placed below the lowest
// occupied row and flagged as degraded.
func (e *Engine) packOccupancy(items []model.Item, container model.Container) model.PackResult {
	result := model.PackResult{Container: container}
	if len(items) == 0 {
		return result
	}

	cell := e.Config.GridCellSize
	if cell <= 0 {
		cell = model.DefaultConfig().GridCellSize
	}
	spacing := e.Config.Spacing

	cols := int(math.Ceil(container.Size.Width / cell))
	rows := int(math.Ceil(container.Size.Height / cell))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	occupied := make([][]bool, rows)
	for i := range occupied {
		occupied[i] = make([]bool, cols)
	}

	startCol := int(e.Config.StartX / cell)
	startRow := int(e.Config.StartY / cell)
	if startCol < 0 || startCol >= cols {
		startCol = 0
	}
	if startRow < 0 || startRow >= rows {
		startRow = 0
	}

	// Tallest first reduces fragmentation versus arrival order.
	ordered := make([]model.Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return e.Sizes.Resolve(ordered[i]).Height > e.Sizes.Resolve(ordered[j]).Height
	})

	// Overflow cursor for degraded placements that stack below the grid.
	overflowY := math.Inf(-1)

	for _, item := range ordered {
		s := e.Sizes.Resolve(item)
		// Large items demand more clearance than the configured spacing;
		// reserve whichever is bigger so padded boxes never touch.
		gap := spacing
		if pad := PaddingBetween(model.BoundingBox{Width: s.Width, Height: s.Height}, model.BoundingBox{Width: s.Width, Height: s.Height}); pad > gap {
			gap = pad
		}
		fw := int(math.Ceil((s.Width + gap) / cell))
		fh := int(math.Ceil((s.Height + gap) / cell))

		row, col, found := findFootprint(occupied, startRow, startCol, fh, fw)
		if found {
			markFootprint(occupied, row, col, fh, fw)
			pos := model.Point2D{
				X: container.Position.X + float64(col)*cell,
				Y: container.Position.Y + float64(row)*cell,
			}
			placed := item
			placed.Position = pos
			result.Placements = append(result.Placements, model.Placement{Item: placed, Position: pos})
			continue
		}

		// Degraded fallback: directly below the lowest occupied row.
		fallRow := lowestOccupiedRow(occupied) + 1
		y := container.Position.Y + float64(fallRow)*cell
		if y < overflowY {
			y = overflowY
		}
		overflowY = y + s.Height + gap
		pos := model.Point2D{
			X: container.Position.X + float64(startCol)*cell,
			Y: y,
		}
		// Claim whatever part of the footprint still lies on the grid so
		// later items see the space as taken.
		if fallRow < rows {
			markFootprint(occupied, fallRow, startCol, minInt(fh, rows-fallRow), minInt(fw, cols-startCol))
		}
		placed := item
		placed.Position = pos
		result.Placements = append(result.Placements, model.Placement{Item: placed, Position: pos, Degraded: true})
	}

	return result
}

// findFootprint scans row-major from the start offset for the first
// fully-unoccupied fh x fw region. Returns its top-left cell.
func findFootprint(occupied [][]bool, startRow, startCol, fh, fw int) (row, col int, found bool) {
	rows := len(occupied)
	cols := len(occupied[0])
	for r := startRow; r <= rows-fh; r++ {
		for c := startCol; c <= cols-fw; c++ {
			if footprintFree(occupied, r, c, fh, fw) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func footprintFree(occupied [][]bool, row, col, fh, fw int) bool {
	for r := row; r < row+fh; r++ {
		for c := col; c < col+fw; c++ {
			if occupied[r][c] {
				return false
			}
		}
	}
	return true
}

func markFootprint(occupied [][]bool, row, col, fh, fw int) {
	for r := row; r < row+fh; r++ {
		for c := col; c < col+fw; c++ {
			occupied[r][c] = true
		}
	}
}

// lowestOccupiedRow returns the bottom-most row with any claimed cell,
// or -1 when the grid is empty.
func lowestOccupiedRow(occupied [][]bool) int {
	for r := len(occupied) - 1; r >= 0; r-- {
		for _, taken := range occupied[r] {
			if taken {
				return r
			}
		}
	}
	return -1
}

// packGrid lays items out in uniform columns sized from the average item
// width, in arrival order. Simpler than occupancy packing; meant for
// callers that want a predictable table-like arrangement.
func (e *Engine) packGrid(items []model.Item, container model.Container) model.PackResult {
	result := model.PackResult{Container: container}
	if len(items) == 0 {
		return result
	}
	spacing := e.Config.Spacing

	var avgW, avgH float64
	for _, item := range items {
		s := e.Sizes.Resolve(item)
		avgW += s.Width
		avgH += s.Height
	}
	avgW /= float64(len(items))
	avgH /= float64(len(items))

	usable := container.Size.Width - e.Config.StartX
	colsf := math.Floor(usable / (avgW + spacing))
	cols := int(colsf)
	if cols < 1 {
		cols = 1
	}

	for i, item := range items {
		col := i % cols
		row := i / cols
		pos := model.Point2D{
			X: container.Position.X + e.Config.StartX + float64(col)*(avgW+spacing),
			Y: container.Position.Y + e.Config.StartY + float64(row)*(avgH+spacing),
		}
		s := e.Sizes.Resolve(item)
		placed := item
		placed.Position = pos
		result.Placements = append(result.Placements, model.Placement{
			Item:     placed,
			Position: pos,
			Degraded: pos.Y+s.Height > container.Position.Y+container.Size.Height,
		})
	}
	return result
}

// packFlow places items left to right, largest first, wrapping to a new
// row when the running X position would leave the container's usable
// width. The start offset doubles as a right margin so rows stay inset
// on both sides.
func (e *Engine) packFlow(items []model.Item, container model.Container) model.PackResult {
	result := model.PackResult{Container: container}
	if len(items) == 0 {
		return result
	}
	spacing := e.Config.Spacing

	ordered := make([]model.Item, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		si := e.Sizes.Resolve(ordered[i])
		sj := e.Sizes.Resolve(ordered[j])
		return si.Width*si.Height > sj.Width*sj.Height
	})

	x := e.Config.StartX
	y := e.Config.StartY
	rowHeight := 0.0

	for _, item := range ordered {
		s := e.Sizes.Resolve(item)
		if x > e.Config.StartX && x+s.Width > container.Size.Width-e.Config.StartX {
			x = e.Config.StartX
			y += rowHeight + spacing
			rowHeight = 0
		}
		pos := model.Point2D{
			X: container.Position.X + x,
			Y: container.Position.Y + y,
		}
		placed := item
		placed.Position = pos
		result.Placements = append(result.Placements, model.Placement{
			Item:     placed,
			Position: pos,
			Degraded: y+s.Height > container.Size.Height,
		})
		x += s.Width + spacing
		if s.Height > rowHeight {
			rowHeight = s.Height
		}
	}
	return result
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

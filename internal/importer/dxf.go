package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/driftboard/internal/model"
)

// ZoneImportResult holds the containers recovered from a drawing.
type ZoneImportResult struct {
	Containers []model.Container
	Errors     []string
	Warnings   []string
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed loops.
type segment struct {
	start model.Point2D
	end   model.Point2D
}

// ImportZonesDXF imports board containers from a DXF drawing. Each
// closed shape (LWPOLYLINE or a chain of connected LINEs) becomes a
// container spanning the shape's bounding box — useful for seeding a
// board's zones from a CAD-drawn floor plan or template.
func ImportZonesDXF(path string) ZoneImportResult {
	result := ZoneImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var loops [][]model.Point2D
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			var loop []model.Point2D
			for _, v := range e.Vertices {
				loop = append(loop, model.Point2D{X: v[0], Y: v[1]})
			}
			if len(loop) >= 3 {
				loops = append(loops, loop)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point2D{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point2D{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Circles, arcs and text don't make rectangular zones; skip.
		}
	}

	loops = append(loops, chainSegments(segments, 0.01)...)

	if len(loops) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	// Largest zones first so their declared routing order is stable.
	sort.SliceStable(loops, func(i, j int) bool {
		return loopArea(loops[i]) > loopArea(loops[j])
	})

	zoneNum := 0
	for _, loop := range loops {
		minP, maxP := loopBounds(loop)
		width := maxP.X - minP.X
		height := maxP.Y - minP.Y

		if width < 1 || height < 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate zone (%.2f x %.2f)", width, height))
			continue
		}

		zoneNum++
		c := model.NewContainer(fmt.Sprintf("Zone %d", zoneNum), minP.X, minP.Y, width, height)
		result.Containers = append(result.Containers, c)
	}

	return result
}

// chainSegments connects individual segments into closed loops.
// tolerance is the maximum distance between endpoints to consider them
// connected.
func chainSegments(segs []segment, tolerance float64) [][]model.Point2D {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var loops [][]model.Point2D

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point2D{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains count as zones
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			loops = append(loops, chain[:len(chain)-1])
		}
	}

	return loops
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b model.Point2D, tolerance float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}

// loopBounds returns the min and max corners of a point loop.
func loopBounds(loop []model.Point2D) (minP, maxP model.Point2D) {
	minP = loop[0]
	maxP = loop[0]
	for _, p := range loop[1:] {
		if p.X < minP.X {
			minP.X = p.X
		}
		if p.Y < minP.Y {
			minP.Y = p.Y
		}
		if p.X > maxP.X {
			maxP.X = p.X
		}
		if p.Y > maxP.Y {
			maxP.Y = p.Y
		}
	}
	return minP, maxP
}

// loopArea computes the absolute area of a polygon using the shoelace
// formula.
func loopArea(loop []model.Point2D) float64 {
	n := len(loop)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += loop[i].X * loop[j].Y
		area -= loop[j].X * loop[i].Y
	}
	return math.Abs(area) / 2
}

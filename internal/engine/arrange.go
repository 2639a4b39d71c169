package engine

import "github.com/piwi3910/driftboard/internal/model"

// Arrange runs the full initial layout pass: route ungrouped items to
// containers, then pack each container's items into non-overlapping
// positions with the configured strategy. Items keep their input order;
// only positions and container ids change.
func (e *Engine) Arrange(items []model.Item, containers []model.Container, categories model.CategoryTable) model.ArrangeResult {
	dist := e.Distribute(items, containers, categories)

	byContainer := make(map[string][]model.Item)
	for _, item := range dist.Items {
		if item.ContainerID != "" {
			byContainer[item.ContainerID] = append(byContainer[item.ContainerID], item)
		}
	}

	result := model.ArrangeResult{Unassigned: dist.Unassigned}
	positions := make(map[string]model.Point2D)

	for _, c := range containers {
		group := byContainer[c.ID]
		if len(group) == 0 {
			continue
		}
		pack := e.Pack(group, c)
		result.Packs = append(result.Packs, pack)
		for _, p := range pack.Placements {
			positions[p.Item.ID] = p.Position
		}
	}

	out := dist.Items
	for i := range out {
		if pos, ok := positions[out[i].ID]; ok {
			out[i].Position = pos
		}
	}
	result.Items = out
	return result
}

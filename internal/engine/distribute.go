package engine

import "github.com/piwi3910/driftboard/internal/model"

// Distribute routes ungrouped items to containers. Containers are
// considered in their declared order, and within each container its
// accepted categories in their declared order, so the assignment is
// deterministic for deterministic input ordering.
//
// An item already carrying a container id is never reassigned. Items
// whose category matches no container are returned in Unassigned rather
// than silently dropped.
func (e *Engine) Distribute(items []model.Item, containers []model.Container, categories model.CategoryTable) model.DistributionResult {
	out := make([]model.Item, len(items))
	copy(out, items)

	assigned := make([]bool, len(out))
	for i := range out {
		if out[i].ContainerID != "" {
			assigned[i] = true
		}
	}

	for _, c := range containers {
		for _, cat := range c.AcceptedCategories {
			for i := range out {
				if assigned[i] {
					continue
				}
				if categories.CategoryOf(out[i].TypeTag) == cat {
					out[i].ContainerID = c.ID
					assigned[i] = true
				}
			}
		}
	}

	var unassigned []model.Item
	for i := range out {
		if !assigned[i] {
			unassigned = append(unassigned, out[i])
		}
	}

	return model.DistributionResult{Items: out, Unassigned: unassigned}
}

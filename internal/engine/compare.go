package engine

import "github.com/piwi3910/driftboard/internal/model"

// StrategyReport holds the arrange outcome and computed statistics for a
// single layout strategy.
type StrategyReport struct {
	Strategy        model.LayoutStrategy
	Result          model.ArrangeResult
	Density         float64 // Placed footprint area over total container area
	DegradedCount   int
	UnassignedCount int
}

// CompareStrategies runs the full arrange pass once per layout strategy
// and returns the results in a fixed order. This enables side-by-side
// comparison when choosing how a board population should be laid out.
func CompareStrategies(config model.LayoutConfig, sizes model.SizeTable, items []model.Item, containers []model.Container, categories model.CategoryTable) []StrategyReport {
	strategies := []model.LayoutStrategy{
		model.StrategyOccupancy,
		model.StrategyGrid,
		model.StrategyFlow,
	}

	reports := make([]StrategyReport, 0, len(strategies))
	for _, strat := range strategies {
		cfg := config
		cfg.Strategy = strat
		eng := New(cfg, sizes)
		result := eng.Arrange(items, containers, categories)

		var used, total float64
		for _, pack := range result.Packs {
			used += pack.UsedArea(eng.Sizes)
			total += pack.Container.Size.Width * pack.Container.Size.Height
		}
		density := 0.0
		if total > 0 {
			density = used / total
		}

		reports = append(reports, StrategyReport{
			Strategy:        strat,
			Result:          result,
			Density:         density,
			DegradedCount:   result.DegradedCount(),
			UnassignedCount: len(result.Unassigned),
		})
	}
	return reports
}

package model

// AppConfig holds application-wide preferences and default layout settings.
type AppConfig struct {
	// Default layout settings applied to new boards
	DefaultStrategy          LayoutStrategy `json:"default_strategy"`
	DefaultSpacing           float64        `json:"default_spacing"`
	DefaultGridCellSize      float64        `json:"default_grid_cell_size"`
	DefaultRepulsionConstant float64        `json:"default_repulsion_constant"`
	DefaultDampingFraction   float64        `json:"default_damping_fraction"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentBoards     []string `json:"recent_boards"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultConfig()
	return AppConfig{
		DefaultStrategy:          defaults.Strategy,
		DefaultSpacing:           defaults.Spacing,
		DefaultGridCellSize:      defaults.GridCellSize,
		DefaultRepulsionConstant: defaults.RepulsionConstant,
		DefaultDampingFraction:   defaults.DampingFraction,
		AutoSaveInterval:         0,
		RecentBoards:             []string{},
		Theme:                    "system",
	}
}

// ApplyToConfig copies the default values from AppConfig into a LayoutConfig.
// This is used when creating a new board so it inherits the user's saved
// defaults.
func (c AppConfig) ApplyToConfig(cfg *LayoutConfig) {
	if c.DefaultStrategy != "" {
		cfg.Strategy = c.DefaultStrategy
	}
	cfg.Spacing = c.DefaultSpacing
	cfg.GridCellSize = c.DefaultGridCellSize
	cfg.RepulsionConstant = c.DefaultRepulsionConstant
	cfg.DampingFraction = c.DefaultDampingFraction
}

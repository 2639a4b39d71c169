// Package ui provides the Driftboard application UI components.
//
// This file defines a custom compact Fyne theme for a dense board layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DriftboardTheme wraps the default Fyne theme with compact sizing
// overrides so more of the canvas stays visible.
type DriftboardTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewDriftboardTheme creates a new DriftboardTheme with the system default variant.
func NewDriftboardTheme() *DriftboardTheme {
	return &DriftboardTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// NewDriftboardThemeWithVariant creates a DriftboardTheme with a specific light/dark variant.
func NewDriftboardThemeWithVariant(variant fyne.ThemeVariant) *DriftboardTheme {
	return &DriftboardTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *DriftboardTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *DriftboardTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *DriftboardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *DriftboardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *DriftboardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}

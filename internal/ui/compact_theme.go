package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/animal-sounds/internal/model"
)

// Result region tints, one per style class. Translucent so they sit on
// both the light and the dark background.
var (
	ResultErrorColor   = color.NRGBA{R: 211, G: 47, B: 47, A: 48} // Red
	ResultLoadingColor = color.NRGBA{R: 255, G: 193, B: 7, A: 48} // Amber
	ResultDefaultColor = color.NRGBA{R: 67, G: 160, B: 71, A: 48} // Green
)

// ResultColor returns the background tint for a result style class
func ResultColor(styleClass string) color.Color {
	switch styleClass {
	case model.StyleError:
		return ResultErrorColor
	case model.StyleLoading:
		return ResultLoadingColor
	default:
		return ResultDefaultColor
	}
}

// CompactTheme defines a compact theme for the form with reduced padding
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 125, B: 50, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 121, G: 85, B: 72, A: 255} // Brown for primary actions
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

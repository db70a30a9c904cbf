// Package geometry maps a daily trade series onto drawing-surface primitives.
// Every function here is pure: identical inputs yield identical output and
// degenerate input produces empty or zero-extent geometry instead of errors.
package geometry

import "StockChart/internal/model"

const (
	// TopMargin is reserved above the price region for the header and legend.
	TopMargin = 57.0
	// TextStripHeight is the month label strip below the volume region.
	TextStripHeight = 25.0
	// VolumeHeight is the fixed height of the volume region.
	VolumeHeight = 37.0

	MinLabelWidth = 32.0
	MaxLabelWidth = 54.0
)

// Layout holds the two regions derived for one render.
type Layout struct {
	Surface model.Size `json:"surface"`
	Price   model.Rect `json:"price"`
	Volume  model.Rect `json:"volume"`
}

// ClampLabelWidth bounds the measured price label width to [MinLabelWidth, MaxLabelWidth].
func ClampLabelWidth(w float64) float64 {
	if w < MinLabelWidth {
		return MinLabelWidth
	}
	if w > MaxLabelWidth {
		return MaxLabelWidth
	}
	return w
}

// ComputeLayout splits the surface into the price and volume regions.
// Non-positive dimensions are passed through untouched.
func ComputeLayout(surface model.Size, labelWidth float64) Layout {
	labelWidth = ClampLabelWidth(labelWidth)
	width := surface.Width - labelWidth
	volumeTop := surface.Height - TextStripHeight - VolumeHeight

	return Layout{
		Surface: surface,
		Price: model.Rect{
			X:      0,
			Y:      TopMargin,
			Width:  width,
			Height: volumeTop - TopMargin,
		},
		Volume: model.Rect{
			X:      0,
			Y:      volumeTop,
			Width:  width,
			Height: VolumeHeight,
		},
	}
}

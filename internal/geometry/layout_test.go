package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockChart/internal/model"
)

func TestClampLabelWidth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{10, MinLabelWidth},
		{32, 32},
		{40, 40},
		{54, 54},
		{128, MaxLabelWidth},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLabelWidth(tt.in), "width %.0f", tt.in)
	}
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(model.Size{Width: 320, Height: 240}, 40)

	assert.Equal(t, model.Rect{X: 0, Y: 57, Width: 280, Height: 121}, l.Price)
	assert.Equal(t, model.Rect{X: 0, Y: 178, Width: 280, Height: 37}, l.Volume)
	assert.Equal(t, l.Price.MaxY(), l.Volume.MinY(), "volume sits directly below price")
}

func TestComputeLayout_ClampsHint(t *testing.T) {
	l := ComputeLayout(model.Size{Width: 320, Height: 240}, 200)
	assert.Equal(t, 320-MaxLabelWidth, l.Price.Width)
}

func TestComputeLayout_DegenerateSurface(t *testing.T) {
	l := ComputeLayout(model.Size{Width: 20, Height: 50}, 40)
	assert.Negative(t, l.Price.Width)
	assert.Negative(t, l.Price.Height)
	assert.Equal(t, VolumeHeight, l.Volume.Height)
}

package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/model"
)

func TestComputeClosingPricePath_WorkedExample(t *testing.T) {
	region := model.Rect{X: 0, Y: 0, Width: 90, Height: 100}
	path := ComputeClosingPricePath(region, []float64{10, 20, 15}, 20, 10, 0)

	assert.Equal(t, []model.Point{
		{X: 0, Y: 100},
		{X: 60, Y: 0},
		{X: 90, Y: 50},
	}, path)
}

func TestComputeClosingPricePath_HigherCloseIsHigherOnScreen(t *testing.T) {
	region := model.Rect{X: 0, Y: 57, Width: 200, Height: 120}
	path := ComputeClosingPricePath(region, []float64{5, 9, 7, 1}, 9, 1, 2)

	require.Len(t, path, 4)
	assert.Less(t, path[1].Y, path[2].Y)
	assert.Less(t, path[2].Y, path[0].Y)
	assert.Less(t, path[0].Y, path[3].Y)
}

func TestComputeClosingPricePath_StrokeInset(t *testing.T) {
	region := model.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	path := ComputeClosingPricePath(region, []float64{10, 20}, 20, 10, 2)

	assert.Equal(t, []model.Point{{X: 1, Y: 98}, {X: 99, Y: 2}}, path)
}

func TestComputeClosingPricePath_InteriorOffsetByRegion(t *testing.T) {
	region := model.Rect{X: 10, Y: 0, Width: 90, Height: 100}
	path := ComputeClosingPricePath(region, []float64{0, 5, 10}, 10, 0, 0)

	require.Len(t, path, 3)
	assert.Equal(t, model.Point{X: 70, Y: 50}, path[1])
	assert.Equal(t, 10.0, path[0].X)
	assert.Equal(t, 100.0, path[2].X)
}

func TestComputeClosingPricePath_VertexCount(t *testing.T) {
	region := model.Rect{Width: 300, Height: 100}
	for n := 0; n < 10; n++ {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = float64(i % 3)
		}
		path := ComputeClosingPricePath(region, closes, 2, 0, 2)
		if n < 2 {
			assert.Empty(t, path, "n=%d", n)
			continue
		}
		assert.Len(t, path, n)
	}
}

func TestComputeClosingPricePath_FlatSeries(t *testing.T) {
	region := model.Rect{X: 0, Y: 0, Width: 90, Height: 100}
	path := ComputeClosingPricePath(region, []float64{15, 15, 15, 15}, 15, 15, 2)

	require.Len(t, path, 4)
	for _, p := range path {
		assert.False(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0))
		assert.Equal(t, 50.0, p.Y)
	}
}

func TestComputeClosingPricePath_Idempotent(t *testing.T) {
	region := model.Rect{X: 0, Y: 57, Width: 271, Height: 133}
	closes := []float64{101.3, 99.8, 104.2, 98.7, 100.1}
	a := ComputeClosingPricePath(region, closes, 104.2, 98.7, 2)
	b := ComputeClosingPricePath(region, closes, 104.2, 98.7, 2)
	assert.Equal(t, a, b)
}

package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/model"
)

func TestDeriveClipRegion(t *testing.T) {
	region := model.Rect{X: 0, Y: 0, Width: 90, Height: 100}
	path := []model.Point{{X: 0, Y: 100}, {X: 60, Y: 0}, {X: 90, Y: 50}}

	below := DeriveClipRegion(path, region, Below)
	assert.Equal(t, model.Polygon{
		{X: 0, Y: 100}, {X: 60, Y: 0}, {X: 90, Y: 50},
		{X: 90, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 100},
	}, below)

	above := DeriveClipRegion(path, region, Above)
	assert.Equal(t, model.Polygon{
		{X: 0, Y: 100}, {X: 60, Y: 0}, {X: 90, Y: 50},
		{X: 90, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 100}, {X: 0, Y: 100},
	}, above)
}

func TestDeriveClipRegion_ClosedWithFourExtraVertices(t *testing.T) {
	region := model.Rect{X: 0, Y: 57, Width: 280, Height: 121}
	path := ComputeClosingPricePath(region, []float64{3, 1, 4, 1, 5, 9, 2, 6}, 9, 1, 2)

	for _, side := range []Side{Below, Above} {
		poly := DeriveClipRegion(path, region, side)
		require.Len(t, poly, len(path)+4, side.String())
		assert.Equal(t, poly[0], poly[len(poly)-1], side.String())
	}
}

func TestDeriveClipRegion_EmptyPath(t *testing.T) {
	assert.Empty(t, DeriveClipRegion(nil, model.Rect{Width: 10, Height: 10}, Below))
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "below", Below.String())
	assert.Equal(t, "above", Above.String())
	assert.Equal(t, "Side(7)", Side(7).String())
}

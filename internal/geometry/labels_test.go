package geometry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/model"
)

func TestComputeMonthLabels(t *testing.T) {
	layout := ComputeLayout(model.Size{Width: 130, Height: 240}, 40)
	bs := []model.MonthBucket{
		{Key: model.MonthKey{Year: 2016, Month: time.January}, Count: 3},
		{Key: model.MonthKey{Year: 2016, Month: time.February}, Count: 2},
		{Key: model.MonthKey{Year: 2016, Month: time.March}, Count: 1},
	}
	labels := ComputeMonthLabels(layout, []float64{45, 75, 90}, bs)

	require.Len(t, labels, 3)
	assert.Equal(t, "Jan", labels[0].Text)
	assert.Equal(t, "Mar", labels[2].Text)
	assert.Equal(t, []float64{22.5, 60, 82.5}, []float64{labels[0].Anchor.X, labels[1].Anchor.X, labels[2].Anchor.X})
	assert.Equal(t, 227.5, labels[0].Anchor.Y)
}

func TestComputeMonthLabels_Mismatch(t *testing.T) {
	layout := ComputeLayout(model.Size{Width: 130, Height: 240}, 40)
	assert.Nil(t, ComputeMonthLabels(layout, nil, nil))
	assert.Nil(t, ComputeMonthLabels(layout, []float64{10}, nil))
}

func TestComputePriceLabels(t *testing.T) {
	layout := ComputeLayout(model.Size{Width: 320, Height: 240}, 40)
	labels := ComputePriceLabels(layout, model.Summary{Count: 3, MaxClose: 20, MinClose: 10}, 2)

	require.Len(t, labels, 2)
	assert.Equal(t, PriceLabel{Value: 20, Anchor: model.Point{X: 284, Y: 59}}, labels[0])
	assert.Equal(t, PriceLabel{Value: 10, Anchor: model.Point{X: 284, Y: 176}}, labels[1])
}

func TestComputePriceLabels_FlatAndEmpty(t *testing.T) {
	layout := ComputeLayout(model.Size{Width: 320, Height: 240}, 40)

	flat := ComputePriceLabels(layout, model.Summary{Count: 2, MaxClose: 5, MinClose: 5}, 2)
	require.Len(t, flat, 1)
	assert.Equal(t, 117.5, flat[0].Anchor.Y)

	assert.Nil(t, ComputePriceLabels(layout, model.Summary{}, 2))
}

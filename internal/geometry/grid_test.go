package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"StockChart/internal/model"
)

func buckets(counts ...int) []model.MonthBucket {
	out := make([]model.MonthBucket, len(counts))
	for i, c := range counts {
		out[i] = model.MonthBucket{Key: model.MonthKey{Year: 2016, Month: 1}, Count: c}
	}
	return out
}

func TestComputeVerticalGridPositions(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		counts []int
		want   []float64
	}{
		{"exact spacing", 90, []int{3, 2, 1}, []float64{45, 75, 90}},
		{"rounded down spacing", 100, []int{1, 1, 1}, []float64{33, 66, 100}},
		{"rounded up spacing is capped", 100, []int{149, 1}, []float64{100, 100}},
		{"fractional width", 90.4, []int{2, 1}, []float64{60, 90}},
		{"half spacing rounds to even", 250, []int{10, 10}, []float64{120, 250}},
		{"half width rounds to even", 92.5, []int{1, 1}, []float64{46, 92}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := 0
			for _, c := range tt.counts {
				total += c
			}
			got := ComputeVerticalGridPositions(model.Rect{Width: tt.width, Height: 10}, total, buckets(tt.counts...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeVerticalGridPositions_MonotonicAndClosing(t *testing.T) {
	price := model.Rect{Y: 57, Width: 283.6, Height: 100}
	for n := 1; n < 400; n += 7 {
		counts := []int{n / 3, n / 3, n - 2*(n/3)}
		got := ComputeVerticalGridPositions(price, n, buckets(counts...))
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i], got[i-1], "n=%d", n)
		}
		assert.Equal(t, math.RoundToEven(price.Width), got[len(got)-1], "n=%d", n)
	}
}

func TestComputeVerticalGridPositions_NoRecords(t *testing.T) {
	assert.Nil(t, ComputeVerticalGridPositions(model.Rect{Width: 100}, 0, buckets(1)))
	assert.Nil(t, ComputeVerticalGridPositions(model.Rect{Width: 100}, 3, nil))
}

func TestComputeHorizontalGridPositions(t *testing.T) {
	got := ComputeHorizontalGridPositions(model.Rect{Y: 57, Width: 280, Height: 125}, 4)
	assert.Equal(t, []float64{82, 107, 132, 157}, got)

	assert.Nil(t, ComputeHorizontalGridPositions(model.Rect{Height: 125}, 0))
	assert.Nil(t, ComputeHorizontalGridPositions(model.Rect{Height: -5}, 4))
}

func TestDayLineSpacing(t *testing.T) {
	assert.Equal(t, 0.0, DayLineSpacing(100, 0))
	assert.Equal(t, 33.0, DayLineSpacing(100, 3))
	assert.Equal(t, 17.0, DayLineSpacing(100, 6))
	assert.Equal(t, 12.0, DayLineSpacing(250, 20))
	assert.Equal(t, 14.0, DayLineSpacing(270, 20))
}

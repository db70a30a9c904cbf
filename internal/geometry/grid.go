package geometry

import (
	"math"

	"StockChart/internal/model"
)

// DayLineSpacing is the whole-pixel width given to one trading day, rounded
// half to even. It returns 0 when there are no records.
func DayLineSpacing(width float64, recordCount int) float64 {
	if recordCount <= 0 {
		return 0
	}
	return math.RoundToEven(width / float64(recordCount))
}

// ComputeVerticalGridPositions returns the month-end gridline offsets from the
// left edge of the price region, one per bucket. Offsets never pass the
// rounded region width and the last one always lands on it.
func ComputeVerticalGridPositions(price model.Rect, recordCount int, buckets []model.MonthBucket) []float64 {
	if recordCount <= 0 || len(buckets) == 0 {
		return nil
	}
	spacing := DayLineSpacing(price.Width, recordCount)
	right := math.RoundToEven(price.Width)

	positions := make([]float64, len(buckets))
	cumulative := 0
	for i, b := range buckets {
		cumulative += b.Count
		positions[i] = math.Min(spacing*float64(cumulative), right)
	}
	positions[len(positions)-1] = right
	return positions
}

// ComputeHorizontalGridPositions returns the y values of lines evenly spaced
// inside the price region, excluding its top and bottom edges.
func ComputeHorizontalGridPositions(price model.Rect, lines int) []float64 {
	if lines <= 0 || price.Height <= 0 {
		return nil
	}
	step := price.Height / float64(lines+1)
	ys := make([]float64, lines)
	for k := range ys {
		ys[k] = math.RoundToEven(price.Y + step*float64(k+1))
	}
	return ys
}

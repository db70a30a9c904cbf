package geometry

import "StockChart/internal/model"

// ComputeClosingPricePath builds the price polyline inside region, one vertex
// per close. The region is inset by half the stroke horizontally and the full
// stroke vertically so the stroked line stays inside it. Higher closes map to
// smaller y. A flat series is drawn through the vertical center.
func ComputeClosingPricePath(region model.Rect, closes []float64, maxClose, minClose, strokeWidth float64) []model.Point {
	n := len(closes)
	if n < 2 {
		return nil
	}
	half := strokeWidth / 2
	inset := region.Inset(half, strokeWidth)

	spacing := inset.Width / float64(n)
	priceRange := maxClose - minClose

	y := func(close float64) float64 {
		if priceRange == 0 {
			return inset.Y + inset.Height/2
		}
		return inset.Y + (maxClose-close)*(inset.Height/priceRange)
	}

	path := make([]model.Point, n)
	path[0] = model.Point{X: inset.MinX(), Y: y(closes[0])}
	for i := 1; i < n-1; i++ {
		path[i] = model.Point{X: region.X + float64(i+1)*spacing, Y: y(closes[i])}
	}
	path[n-1] = model.Point{X: inset.MaxX(), Y: y(closes[n-1])}
	return path
}
